package redact

import (
	"strings"
	"testing"
)

func TestRedact_ByLanguage(t *testing.T) {
	r := Default()

	tests := []struct {
		name  string
		ext   string
		input string
		want  string
	}{
		{
			name:  "python double quotes",
			ext:   ".py",
			input: `authKey = "abc123"`,
			want:  `authKey = os.getenv("REPLACEMENT_KEY")`,
		},
		{
			name:  "python single quotes",
			ext:   ".py",
			input: `authKey = 'abc123'`,
			want:  `authKey = os.getenv("REPLACEMENT_KEY")`,
		},
		{
			name:  "kotlin",
			ext:   ".kt",
			input: `val authKey = "sk-live-secret"`,
			want:  `val authKey = System.getenv("REPLACEMENT_KEY")`,
		},
		{
			name:  "java",
			ext:   ".java",
			input: `String authKey = "hunter2";`,
			want:  `String authKey = System.getenv("REPLACEMENT_KEY");`,
		},
		{
			name:  "javascript",
			ext:   ".js",
			input: `const authKey = "tok_12345";`,
			want:  `const authKey = process.env.REPLACEMENT_KEY;`,
		},
		{
			name:  "typescript bare token",
			ext:   ".ts",
			input: `authKey = someVariable`,
			want:  `authKey = process.env.REPLACEMENT_KEY`,
		},
		{
			name:  "no spaces around equals",
			ext:   ".py",
			input: `authKey="abc123"`,
			want:  `authKey=os.getenv("REPLACEMENT_KEY")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Redact(tt.input, tt.ext)
			if got != tt.want {
				t.Errorf("Redact(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRedact_UnknownExtension(t *testing.T) {
	r := Default()
	input := `authKey = "abc123"`

	for _, ext := range []string{".go", ".rb", "", ".PY", ".txt"} {
		if got := r.Redact(input, ext); got != input {
			t.Errorf("Redact with ext %q = %q, want input unchanged", ext, got)
		}
	}
}

func TestRedact_MultipleOccurrences(t *testing.T) {
	r := Default()
	input := "authKey = \"first\"\nother = 1\nauthKey = 'second'\n"
	got := r.Redact(input, ".py")

	if strings.Contains(got, "first") || strings.Contains(got, "second") {
		t.Errorf("secrets survived redaction: %q", got)
	}
	if n := strings.Count(got, `os.getenv("REPLACEMENT_KEY")`); n != 2 {
		t.Errorf("replacement count = %d, want 2", n)
	}
	if !strings.Contains(got, "other = 1") {
		t.Errorf("unrelated assignment was altered: %q", got)
	}
}

func TestRedact_Idempotent(t *testing.T) {
	r := Default()

	inputs := map[string]string{
		".py": `authKey = "abc123"`,
		".kt": `authKey = 'xyz'`,
		".js": `authKey = bareToken`,
	}
	for ext, input := range inputs {
		once := r.Redact(input, ext)
		twice := r.Redact(once, ext)
		if once != twice {
			t.Errorf("ext %s: not idempotent:\n  once:  %q\n  twice: %q", ext, once, twice)
		}
	}
}

func TestRedact_SurroundingCodeUntouched(t *testing.T) {
	r := Default()
	input := "import os\n\nauthKey = \"secret\"\n\ndef main():\n    print(authKey)\n"
	got := r.Redact(input, ".py")

	want := "import os\n\nauthKey = os.getenv(\"REPLACEMENT_KEY\")\n\ndef main():\n    print(authKey)\n"
	if got != want {
		t.Errorf("Redact altered surrounding code:\n got  %q\n want %q", got, want)
	}
}

func TestRedact_CustomIdentifier(t *testing.T) {
	r := New("apiToken", map[string]string{".py": `os.getenv("TOKEN")`})

	got := r.Redact(`apiToken = "s3cret"`, ".py")
	if got != `apiToken = os.getenv("TOKEN")` {
		t.Errorf("Redact = %q", got)
	}

	// The default identifier is not special for a custom Redactor.
	input := `authKey = "s3cret"`
	if got := r.Redact(input, ".py"); got != input {
		t.Errorf("unexpected redaction of %q: %q", input, got)
	}
}
