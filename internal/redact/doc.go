// Package redact scrubs a known sensitive assignment from source text
// before it is uploaded to a repository.
//
// Detection is a regex over raw text, deliberately not a parser: the value
// of an "authKey = ..." assignment is replaced with an idiomatic
// environment-variable lookup for the file's language, chosen by extension.
// Files with an unregistered extension pass through untouched.
package redact
