package textutil

import (
	"strings"
	"testing"
)

func TestCleanEmptyInput(t *testing.T) {
	doc := Clean("")
	if doc.RawText != "" {
		t.Errorf("Clean(\"\") RawText = %q, want empty", doc.RawText)
	}
	if len(doc.Lines) != 0 {
		t.Errorf("Clean(\"\") Lines = %v, want none", doc.Lines)
	}
	if !doc.IsEmpty() {
		t.Error("Clean(\"\") should yield an empty document")
	}
}

func TestCleanRemovesArtifacts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantGot string
		wantNot string
	}{
		{
			name:    "cid glyph markers",
			input:   "John (cid:12) Doe",
			wantGot: "John Doe",
			wantNot: "cid",
		},
		{
			name:    "urls",
			input:   "see https://example.com/me for details",
			wantGot: "see for details",
			wantNot: "example.com",
		},
		{
			name:    "social tokens",
			input:   "reach me on LinkedIn or GitHub",
			wantGot: "reach me on or",
			wantNot: "LinkedIn",
		},
		{
			name:    "non-ascii residue",
			input:   "Résumé • Engineer",
			wantGot: "R sum Engineer",
			wantNot: "é",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Clean(tt.input)
			if doc.RawText != tt.wantGot {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, doc.RawText, tt.wantGot)
			}
			if strings.Contains(doc.RawText, tt.wantNot) {
				t.Errorf("Clean(%q) still contains %q", tt.input, tt.wantNot)
			}
		})
	}
}

func TestCleanPreservesLineOrder(t *testing.T) {
	doc := Clean("first line\n\n  second   line\t\nthird line\n")
	want := []string{"first line", "second line", "third line"}
	if len(doc.Lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(doc.Lines), len(want))
	}
	for i, line := range want {
		if doc.Lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, doc.Lines[i], line)
		}
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"John Doe\njohn@x.com\nSkills: Python, SQL",
		"messy\t\ttext   with (cid:4) markers\nand https://u.rl stuff",
		"",
		"   \n\t\n  ",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once.RawText)
		if twice.RawText != once.RawText {
			t.Errorf("Clean not idempotent for %q: %q != %q", input, twice.RawText, once.RawText)
		}
	}
}

func TestFlattenWhitespace(t *testing.T) {
	got := FlattenWhitespace("  a\tjob \n description  ")
	if got != "a job description" {
		t.Errorf("FlattenWhitespace = %q", got)
	}
}
