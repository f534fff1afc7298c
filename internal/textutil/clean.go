package textutil

import (
	"regexp"
	"strings"

	"github.com/fmuoria/resume-analyzer/internal/models"
)

var (
	cidRe        = regexp.MustCompile(`\(cid:\d+\)`)
	urlRe        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	socialRe     = regexp.MustCompile(`(?i)\b(linkedin|hackerrank|github|portfolio|behance|dribbble)\b`)
	weirdCharsRe = regexp.MustCompile(`[\x{F000}-\x{FFFF}]`)
	nonASCIIRe   = regexp.MustCompile(`[^\x00-\x7F]+`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

// Clean normalizes raw extracted resume text into a Document. It removes
// PDF glyph markers, URLs, social-platform tokens and non-ASCII residue,
// collapses whitespace within each line and drops empty lines while
// preserving line order. Empty input yields an empty Document; Clean never
// fails and is idempotent.
func Clean(raw string) models.Document {
	if raw == "" {
		return models.Document{}
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = cidRe.ReplaceAllString(text, " ")
	text = urlRe.ReplaceAllString(text, " ")
	text = socialRe.ReplaceAllString(text, " ")
	text = weirdCharsRe.ReplaceAllString(text, " ")
	text = nonASCIIRe.ReplaceAllString(text, " ")

	var lines []string
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.ReplaceAll(rawLine, "\t", " ")
		line = strings.TrimSpace(spacesRe.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}

	return models.Document{
		RawText: strings.Join(lines, "\n"),
		Lines:   lines,
	}
}

// FlattenWhitespace collapses all whitespace runs into single spaces.
// Used for job description text where line structure is irrelevant.
func FlattenWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}
