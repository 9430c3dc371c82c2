package content

import (
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantEmpty  bool
		wantTitle  string
		wantBody   string
	}{
		{
			name: "Basic Header",
			input: `---
title: Hello World
---
# Content Here`,
			wantTitle: "Hello World",
			wantBody:  "# Content Here",
		},
		{
			name:      "No Header",
			input:     "# Just Markdown",
			wantEmpty: true,
			wantBody:  "# Just Markdown",
		},
		{
			name:      "Empty Document",
			input:     "",
			wantEmpty: true,
			wantBody:  "",
		},
		{
			name: "Invalid YAML Degrades To Empty",
			input: `---
title: [unclosed
---
body text`,
			wantEmpty: true,
			wantBody:  "body text",
		},
		{
			name: "Unclosed Header Treated As Body",
			input: `---
title: Unclosed
body text`,
			wantEmpty: true,
		},
		{
			name: "Empty Header",
			input: `---
---
body`,
			wantEmpty: true,
			wantBody:  "body",
		},
		{
			name: "Header Without Body",
			input: `---
title: Only Meta
---`,
			wantTitle: "Only Meta",
			wantBody:  "",
		},
		{
			name:      "Delimiter Not At Start",
			input:     "intro\n---\ntitle: nope\n---\n",
			wantEmpty: true,
		},
		{
			name: "CRLF Line Endings",
			input: "---\r\ntitle: Windows\r\n---\r\nbody",
			wantTitle: "Windows",
			wantBody:  "body",
		},
		{
			name: "First Closing Delimiter Wins",
			input: `---
title: First
---
text
---
more`,
			wantTitle: "First",
			wantBody:  "text\n---\nmore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, body := ParseFrontMatter([]byte(tt.input))

			if fields == nil {
				t.Fatal("ParseFrontMatter() returned nil Fields")
			}
			if tt.wantEmpty && len(fields) != 0 {
				t.Errorf("ParseFrontMatter() fields = %v, want empty", fields)
			}
			if tt.wantTitle != "" && fields.String("title") != tt.wantTitle {
				t.Errorf("title = %q, want %q", fields.String("title"), tt.wantTitle)
			}
			if tt.wantBody != "" && string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestFieldsTags(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"List", []any{"go", "ml"}, []string{"go", "ml"}},
		{"Scalar String", "single-tag", []string{"single-tag"}},
		{"Blank Scalar", "   ", []string{}},
		{"Empty List", []any{}, []string{}},
		{"Omitted", nil, []string{}},
		{"Mixed Types Stringified", []any{"go", 42, ""}, []string{"go", "42"}},
		{"Number Scalar", 7, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Fields{}
			if tt.in != nil {
				f["tags"] = tt.in
			}
			got := f.Tags()
			if got == nil {
				t.Fatal("Tags() returned nil, want non-nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Tags() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tags()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
