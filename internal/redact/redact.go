package redact

import (
	"fmt"
	"regexp"
)

// envVar is the environment variable every replacement expression reads.
const envVar = "REPLACEMENT_KEY"

// defaultIdentifier is the assignment left-hand side that gets scrubbed.
const defaultIdentifier = "authKey"

// defaultReplacements maps file extensions to the language-appropriate
// environment-lookup expression substituted for a matched value.
var defaultReplacements = map[string]string{
	".kt":   `System.getenv("` + envVar + `")`,
	".java": `System.getenv("` + envVar + `")`,
	".py":   `os.getenv("` + envVar + `")`,
	".js":   "process.env." + envVar,
	".ts":   "process.env." + envVar,
}

// Redactor rewrites sensitive assignment values in source text. Matching is
// textual, not syntax-aware: the identifier followed by "=" and either a
// quoted string literal (non-greedy) or a single whitespace-free token.
type Redactor struct {
	pattern      *regexp.Regexp
	replacements map[string]string
}

// New creates a Redactor for the given assignment identifier and
// extension-to-replacement table. Extension lookups are case-sensitive.
func New(identifier string, replacements map[string]string) *Redactor {
	pattern := regexp.MustCompile(fmt.Sprintf(`(%s\s*=\s*)(["'].*?["']|\S+)`, regexp.QuoteMeta(identifier)))
	return &Redactor{
		pattern:      pattern,
		replacements: replacements,
	}
}

// Default returns a Redactor configured for the authKey identifier and the
// stock Kotlin/Java/Python/JavaScript/TypeScript replacement expressions.
func Default() *Redactor {
	return New(defaultIdentifier, defaultReplacements)
}

// Redact replaces the value of every matched assignment in text with the
// replacement expression registered for ext. The assignment's left-hand
// side is preserved verbatim. Text with an unregistered extension is
// returned unchanged.
func (r *Redactor) Redact(text, ext string) string {
	replacement, ok := r.replacements[ext]
	if !ok {
		return text
	}
	return r.pattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := r.pattern.FindStringSubmatch(match)
		return sub[1] + replacement
	})
}
