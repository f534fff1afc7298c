// Package overview builds a best-effort resume summary (name, contact,
// professional summary, education, top skills) from cleaned resume text.
// Everything here is pattern matching with hand-tuned priority rules; the
// heuristics may misfire on irregular layouts and that is accepted
// behavior.
package overview

import (
	"fmt"
	"strings"

	"github.com/fmuoria/resume-analyzer/internal/models"
)

const (
	// NotFound is the sentinel for absent name/contact fields
	NotFound = "Not found"
	// NoEducation is the sentinel entry when nothing education-like was detected
	NoEducation = "No education details detected."

	maxSummaryLen      = 900
	maxSummarySentence = 3
	maxSkillShow       = 10
)

var summaryLabels = []string{"profile summary", "profile", "summary", "professional summary", "objective"}

var eduKeys = []string{
	"b.tech", "bachelor", "master", "university", "college", "cgpa",
	"hsc", "ssc", "diploma", "degree", "graduation", "expected",
}

var personalTokens = []string{
	"student", "passionate", "dedicated", "enthusiast", "seeking", "intern",
	"professional", "graduate", "undergraduate", "research", "aspiring",
}

var summaryActionVerbs = []string{
	"developed", "implemented", "designed", "built", "trained", "optimized",
	"deployed", "created", "engineered", "improved", "led", "analyzed", "automated",
}

// Generate extracts the overview from cleaned resume text. detectedSkills
// is the sorted skill list found by the skill matcher; it feeds the top
// skills section and the synthesized summary fallback.
func Generate(text string, detectedSkills []string) models.Overview {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Overview{
			Name:      NotFound,
			Email:     NotFound,
			Phone:     NotFound,
			Summary:   "",
			Education: []string{NoEducation},
			TopSkills: topSkills(detectedSkills),
			Markdown:  "_No resume text available._",
		}
	}

	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	name := extractName(lines)
	email, phone := extractContact(text)
	summary := extractSummary(text, lines, name, detectedSkills)
	edu := extractEducationBlock(lines)

	ov := models.Overview{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Summary:   summary,
		Education: edu,
		TopSkills: topSkills(detectedSkills),
	}
	ov.Markdown = renderMarkdown(ov)
	return ov
}

func extractName(lines []string) string {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, l := range lines[:limit] {
		if isNameLine(l) {
			if nc := cleanNameCandidate(l); nc != "" {
				return nc
			}
		}
	}
	if len(lines) > 0 {
		if nc := cleanNameCandidate(lines[0]); nc != "" {
			return nc
		}
	}
	return NotFound
}

func extractContact(text string) (email, phone string) {
	email, phone = NotFound, NotFound
	if m := emailRe.FindString(text); m != "" {
		email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		phone = m
	}
	return email, phone
}

// extractSummary tries, in priority order: an inline "<label>: text" line,
// a block under a standalone summary header, the first long non-contact
// line, and finally a synthesized summary. First success wins.
func extractSummary(text string, lines []string, name string, detectedSkills []string) string {
	// inline labelled line
	limit := len(lines)
	if limit > 20 {
		limit = 20
	}
	for _, l := range lines[:limit] {
		m := inlineLabelRe.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		cand := removeTechParens(strings.TrimSpace(m[2]))
		if cand != "" && len(cand) > 15 && !looksLikeProjectTitle(cand) {
			return cand
		}
	}

	// block under a standalone header
	if s := summaryFromHeaderBlock(lines); s != "" {
		return s
	}

	// first long non-contact, non-project line near the top
	limit = len(lines)
	if limit > 12 {
		limit = 12
	}
	for _, l := range lines[:limit] {
		if l == name || emailRe.MatchString(l) || phoneRe.MatchString(l) {
			continue
		}
		cand := removeTechParens(l)
		if !looksLikeProjectTitle(cand) && len(cand) > 40 {
			return cand
		}
	}

	return synthesizeSummary(text, detectedSkills)
}

func summaryFromHeaderBlock(lines []string) string {
	for idx, l := range lines {
		low := strings.TrimSpace(strings.ToLower(l))
		if !isSummaryHeader(low) {
			continue
		}

		var collected []string
		end := idx + 8
		if end > len(lines) {
			end = len(lines)
		}
		for _, nl := range lines[idx+1 : end] {
			if emailRe.MatchString(nl) || phoneRe.MatchString(nl) || urlRe.MatchString(nl) {
				continue
			}
			if isSectionHeader(nl) && len(collected) > 0 {
				break
			}
			cleaned := removeTechParens(nl)
			if looksLikeProjectTitle(cleaned) && len(strings.Fields(cleaned)) <= 12 {
				continue
			}
			collected = append(collected, cleaned)
		}
		if len(collected) == 0 {
			return ""
		}

		// prefer up to three sentence-like lines over raw joining
		var candidates []string
		for _, c := range collected {
			if len(c) > 40 && !looksLikeProjectTitle(c) {
				candidates = append(candidates, c)
			}
			if len(candidates) >= maxSummarySentence {
				break
			}
		}
		if len(candidates) > 0 {
			return truncate(strings.Join(candidates, " "), maxSummaryLen)
		}
		return truncate(strings.Join(collected, " "), maxSummaryLen)
	}
	return ""
}

func isSummaryHeader(low string) bool {
	for _, label := range summaryLabels {
		if low == label || strings.HasPrefix(low, label+":") {
			return true
		}
	}
	return false
}

// synthesizeSummary picks up to three sentences carrying personal or
// action vocabulary from the whole text, or templates one from the top
// detected skills.
func synthesizeSummary(text string, detectedSkills []string) string {
	if text == "" {
		return "_No clear summary found._"
	}

	cleaned := removeTechParens(text)
	var chosen []string
	for _, s := range splitSentences(cleaned) {
		s = strings.TrimSpace(s)
		if len(s) <= 15 {
			continue
		}
		low := strings.ToLower(s)
		if looksLikeProjectTitle(s) {
			continue
		}
		if (containsAny(low, personalTokens) || containsAny(low, summaryActionVerbs)) && len(chosen) < maxSummarySentence {
			chosen = append(chosen, strings.TrimSpace(spacesRe.ReplaceAllString(s, " ")))
		}
		if len(chosen) >= maxSummarySentence {
			break
		}
	}
	if len(chosen) > 0 {
		return truncate(strings.Join(chosen, " "), maxSummaryLen)
	}

	var s string
	if len(detectedSkills) > 0 {
		top := detectedSkills
		if len(top) > 4 {
			top = top[:4]
		}
		s = fmt.Sprintf("Skilled in %s. Experienced in building machine learning models and data-driven solutions.", strings.Join(top, ", "))
	} else {
		s = "Passionate Machine Learning practitioner with experience in applied ML and data-driven solutions."
	}
	sents := splitSentences(s)
	if len(sents) > maxSummarySentence {
		sents = sents[:maxSummarySentence]
	}
	return strings.Join(sents, " ")
}

// extractEducationBlock prefers the block under an "education" anchor and
// falls back to scanning all lines for institution cues.
func extractEducationBlock(lines []string) []string {
	eduIdx := -1
	for i, l := range lines {
		if educationRe.MatchString(l) {
			eduIdx = i
			break
		}
	}

	var edu []string
	if eduIdx >= 0 {
		var block []string
		end := eduIdx + 16
		if end > len(lines) {
			end = len(lines)
		}
		for _, nl := range lines[eduIdx+1 : end] {
			if isSectionHeader(nl) && len(block) > 0 {
				break
			}
			block = append(block, nl)
		}
		edu = extractEducationLines(block)
	} else {
		edu = extractEducationLines(lines)
	}

	if len(edu) == 0 {
		edu = []string{NoEducation}
	}
	return edu
}

// extractEducationLines keeps lines with education markers (degree or
// institution keywords, years, percentages, CGPA) excluding project-like
// lines, merging a line with the following one when that holds a bare year
// or year range.
func extractEducationLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}

	var edu []string
	for i, l := range lines {
		lineClean := removeTechParens(l)
		lowc := strings.ToLower(lineClean)
		if looksLikeProjectTitle(l) {
			continue
		}
		if containsAny(lowc, eduKeys) || yearRe.MatchString(lineClean) ||
			percentRe.MatchString(lowc) || cgpaRe.MatchString(lowc) {
			entry := strings.TrimSpace(lineClean)
			if i+1 < len(lines) {
				nxt := strings.TrimSpace(lines[i+1])
				if yearRangeRe.MatchString(nxt) || yearRe.MatchString(nxt) {
					entry = entry + " " + nxt
				}
			}
			edu = append(edu, entry)
		}
	}

	// fallback: short lines that look like institution names
	if len(edu) == 0 {
		limit := len(lines)
		if limit > 8 {
			limit = 8
		}
		for _, l := range lines[:limit] {
			if isSectionHeader(l) {
				continue
			}
			low := strings.ToLower(l)
			if strings.Contains(low, "university") || strings.Contains(low, "institute") ||
				(len(strings.Fields(l)) < 8 && upperCount(l) >= 2) {
				edu = append(edu, strings.TrimSpace(removeTechParens(l)))
			}
			if len(edu) >= 3 {
				break
			}
		}
	}

	return dedupe(edu, 5)
}

func renderMarkdown(ov models.Overview) string {
	md := []string{
		"### 📄 Resume Overview",
		"",
		"#### 👤 Name",
		ov.Name,
		"",
		"#### 📬 Contact",
		fmt.Sprintf("- Email: %s", ov.Email),
		fmt.Sprintf("- Phone: %s", ov.Phone),
		"",
		"---",
		"",
		"#### 📝 Professional Summary",
		ov.Summary,
		"",
		"---",
		"",
		"#### 🎯 Top Skills",
		strings.Join(ov.TopSkills, ", "),
		"",
		"---",
		"",
		"#### 🎓 Education",
	}
	for _, e := range ov.Education {
		md = append(md, fmt.Sprintf("- %s", e))
	}
	md = append(md, "", "---", "_Generated clean overview._")
	return strings.Join(md, "\n\n")
}

func topSkills(detected []string) []string {
	if len(detected) == 0 {
		return []string{"No skills detected"}
	}
	if len(detected) > maxSkillShow {
		detected = detected[:maxSkillShow]
	}
	return detected
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

func upperCount(s string) int {
	n := 0
	for _, c := range s {
		if c >= 'A' && c <= 'Z' {
			n++
		}
	}
	return n
}

func dedupe(entries []string, limit int) []string {
	seen := make(map[string]struct{}, len(entries))
	var out []string
	for _, e := range entries {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
