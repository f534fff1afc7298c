package overview

import (
	"regexp"
	"strings"
)

var (
	emailRe  = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe  = regexp.MustCompile(`(\+?\d{1,3}[-\s]?)?(\d{10}|\d{5}[-\s]\d{5}|\d{3}[-\s]\d{3}[-\s]\d{4})`)
	urlRe    = regexp.MustCompile(`https?://\S+|www\.\S+`)
	socialRe = regexp.MustCompile(`(?i)\b(linkedin|hackerrank|github|portfolio|behance|dribbble)\b`)
	spacesRe = regexp.MustCompile(`\s+`)
)

// sectionHeaders are the names recognized when delimiting blocks
var sectionHeaders = []string{
	"summary", "profile", "professional summary", "objective",
	"education", "experience", "projects", "skills",
	"certifications", "work experience", "achievements", "education:",
}

// locationTokens is a small gazetteer used to strip trailing locations
// from name candidates
var locationTokens = map[string]struct{}{
	"india": {}, "gujarat": {}, "ahmedabad": {}, "mumbai": {}, "delhi": {},
	"bangalore": {}, "bengaluru": {}, "pune": {}, "chennai": {}, "hyderabad": {},
	"rajkot": {}, "surat": {}, "vadodara": {}, "karnataka": {}, "maharashtra": {},
	"united states": {}, "usa": {}, "uk": {}, "united kingdom": {},
}

// techKeywords flag parenthetical tech stacks and project-title lines
var techKeywords = []string{
	"gan", "flask", "tensorflow", "pytorch", "llm", "web scraping", "scrapy", "docker",
	"aws", "azure", "gcp", "image", "resolution", "nlp", "deep learning", "computer vision",
	"opencv", "streamlit", "scikit", "keras", "dl", "api", "r", "sql", "react", "node",
	"mongodb", "fastapi",
}

var (
	techParenRe    = buildTechParenRe()
	parenAcronymRe = regexp.MustCompile(`\(\s*[A-Z]{1,6}(?:\s*,\s*[A-Z]{1,6})*\s*\)`) // (GAN), (GAN, FLASK)
	nameSplitRe    = regexp.MustCompile(`\||,|-|•`)
	nonLetterRe    = regexp.MustCompile(`[^A-Za-z\s]`)
	yearRe         = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	yearRangeRe    = regexp.MustCompile(`^\(?\d{4}[-–]\d{4}\)?$`)
	percentRe      = regexp.MustCompile(`\b\d{1,3}%|\bpercent\b|\bpercentile\b`)
	cgpaRe         = regexp.MustCompile(`\bcgpa\b`)
	educationRe    = regexp.MustCompile(`(?i)\beducation\b`)
	inlineLabelRe  = regexp.MustCompile(`(?i)^(profile summary|profile|summary|professional summary|objective)[:\-\s]+(.+)$`)
)

func buildTechParenRe() *regexp.Regexp {
	quoted := make([]string, len(techKeywords))
	for i, tok := range techKeywords {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return regexp.MustCompile(`(?i)\([^)]*(?:` + strings.Join(quoted, "|") + `)[^)]*\)`)
}

// isNameLine reports whether a line may carry the candidate's name: no
// contact patterns, at least three letters, and none of the common section
// words.
func isNameLine(line string) bool {
	if line == "" || len(line) > 100 {
		return false
	}
	if emailRe.MatchString(line) || phoneRe.MatchString(line) || urlRe.MatchString(line) {
		return false
	}
	alpha := 0
	for _, c := range line {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			alpha++
		}
	}
	if alpha < 3 {
		return false
	}
	low := strings.ToLower(line)
	for _, k := range []string{"summary", "experience", "education", "skills", "projects", "address", "profile"} {
		if strings.Contains(low, k) {
			return false
		}
	}
	return true
}

// cleanNameCandidate strips contact patterns, separators and trailing
// location tokens from a raw line and keeps at most the first four words
func cleanNameCandidate(raw string) string {
	if raw == "" {
		return ""
	}
	s := emailRe.ReplaceAllString(raw, " ")
	s = phoneRe.ReplaceAllString(s, " ")
	s = urlRe.ReplaceAllString(s, " ")
	s = socialRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(nameSplitRe.Split(s, 2)[0])

	tokens := []string{}
	for _, t := range spacesRe.Split(s, -1) {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	for len(tokens) > 0 {
		if _, ok := locationTokens[strings.ToLower(tokens[len(tokens)-1])]; !ok {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) > 4 {
		tokens = tokens[:4]
	}
	name := strings.TrimSpace(nonLetterRe.ReplaceAllString(strings.Join(tokens, " "), ""))
	return name
}

// isSectionHeader reports whether a line looks like a section header:
// it equals or starts with a canonical header name (trailing colon
// stripped), or is fully upper-case and under 40 characters.
func isSectionHeader(line string) bool {
	if line == "" {
		return false
	}
	low := strings.TrimSuffix(strings.TrimSpace(strings.ToLower(line)), ":")
	for _, h := range sectionHeaders {
		if low == h {
			return true
		}
	}
	for _, h := range sectionHeaders {
		if strings.HasPrefix(low, h+" ") || strings.HasPrefix(low, h+":") {
			return true
		}
	}
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 40 && isUpper(trimmed) {
		return true
	}
	return false
}

// isUpper reports whether s has at least one cased character and no
// lower-case ones
func isUpper(s string) bool {
	hasCased := false
	for _, c := range s {
		if c >= 'a' && c <= 'z' {
			return false
		}
		if c >= 'A' && c <= 'Z' {
			hasCased = true
		}
	}
	return hasCased
}

// removeTechParens drops parentheses that look like tech stacks or short
// acronym lists
func removeTechParens(s string) string {
	if s == "" {
		return s
	}
	s = techParenRe.ReplaceAllString(s, " ")
	s = parenAcronymRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}

// looksLikeProjectTitle flags short lines dense with tech keywords, or
// lines pairing a parenthesis with a tech keyword
func looksLikeProjectTitle(l string) bool {
	low := strings.ToLower(l)
	techMatches := 0
	for _, tok := range techKeywords {
		if strings.Contains(low, tok) {
			techMatches++
		}
	}
	if techMatches >= 2 && len(strings.Fields(low)) <= 12 {
		return true
	}
	if strings.Contains(l, "(") {
		for _, tok := range techKeywords {
			if strings.Contains(low, tok) {
				return true
			}
		}
	}
	return false
}

// splitSentences splits on sentence-ending punctuation followed by
// whitespace
func splitSentences(s string) []string {
	var out []string
	start := 0
	runes := []rune(s)
	for i := 0; i < len(runes)-1; i++ {
		c := runes[i]
		if (c == '.' || c == '!' || c == '?') && isSpace(runes[i+1]) {
			out = append(out, string(runes[start:i+1]))
			j := i + 1
			for j < len(runes) && isSpace(runes[j]) {
				j++
			}
			start = j
			i = j - 1
		}
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
