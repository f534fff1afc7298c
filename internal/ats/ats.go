package ats

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/fmuoria/resume-analyzer/internal/models"
)

// DefaultTopFraction is the leading share of the resume (by word count)
// where keyword matches are weighted more heavily.
const DefaultTopFraction = 0.3

// actionVerbs is the fixed vocabulary used for style scoring
var actionVerbs = map[string]struct{}{
	"achieved": {}, "built": {}, "created": {}, "designed": {}, "developed": {},
	"engineered": {}, "improved": {}, "implemented": {}, "led": {}, "managed": {},
	"optimized": {}, "reduced": {}, "increased": {}, "deployed": {}, "automated": {},
	"trained": {}, "analyzed": {}, "spearheaded": {}, "orchestrated": {},
	"delivered": {}, "launched": {},
}

// canonicalSections are the section headers an ATS expects to find
var canonicalSections = []string{
	"experience", "education", "projects", "skills", "certifications", "summary", "profile",
}

var (
	// passiveRe matches auxiliary-verb-plus-word phrases such as
	// "is implemented" or "was managed". It is a heuristic, not a
	// linguistic parse, and both over- and under-counts.
	passiveRe = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\b\s+\b[\w-]+\b`)
	wordRe    = regexp.MustCompile(`\b[a-zA-Z-]+\b`)
)

// TopFraction returns the first f proportion of words in t
func TopFraction(t string, f float64) string {
	words := strings.Fields(t)
	return strings.Join(words[:int(float64(len(words))*f)], " ")
}

// KeywordDensity reports which required skills appear in the resume text,
// split between the top fraction and the document as a whole. An empty
// required set yields zero coverage rather than a division error.
func KeywordDensity(text string, requiredSkills []string) models.KeywordReport {
	lower := strings.ToLower(text)
	jd := make(map[string]struct{}, len(requiredSkills))
	for _, s := range requiredSkills {
		jd[strings.ToLower(s)] = struct{}{}
	}

	top := TopFraction(lower, DefaultTopFraction)

	matchedTop := make([]string, 0)
	matchedAny := make([]string, 0)
	missing := make([]string, 0)
	for k := range jd {
		if strings.Contains(top, k) {
			matchedTop = append(matchedTop, k)
		}
		if strings.Contains(lower, k) {
			matchedAny = append(matchedAny, k)
		} else {
			missing = append(missing, k)
		}
	}
	sort.Strings(matchedTop)
	sort.Strings(matchedAny)
	sort.Strings(missing)

	var topCov, overallCov float64
	if len(jd) > 0 {
		topCov = float64(len(matchedTop)) / float64(len(jd))
		overallCov = float64(len(matchedAny)) / float64(len(jd))
	}

	return models.KeywordReport{
		TopMatched:      matchedTop,
		AllMatched:      matchedAny,
		Missing:         missing,
		TopCoverage:     topCov,
		OverallCoverage: overallCov,
	}
}

// SectionPresence checks the text for the canonical section headers.
// Presence is a case-insensitive substring match anywhere in the text.
func SectionPresence(text string) models.SectionReport {
	t := strings.ToLower(text)
	present := make([]string, 0, len(canonicalSections))
	missing := make([]string, 0)
	for _, h := range canonicalSections {
		if strings.Contains(t, h) {
			present = append(present, h)
		} else {
			missing = append(missing, h)
		}
	}
	return models.SectionReport{
		Present: present,
		Missing: missing,
		Score:   float64(len(present)) / float64(len(canonicalSections)),
	}
}

// ActionVsPassive counts action verbs and passive-looking phrases
func ActionVsPassive(text string) models.StyleReport {
	words := wordRe.FindAllString(strings.ToLower(text), -1)

	actionCount := 0
	for _, w := range words {
		if _, ok := actionVerbs[w]; ok {
			actionCount++
		}
	}
	passiveCount := len(passiveRe.FindAllString(text, -1))

	rate := 0.0
	if len(words) > 0 {
		rate = float64(actionCount) / float64(len(words))
	}

	return models.StyleReport{
		ActionVerbs:    actionCount,
		PassivePhrases: passiveCount,
		ActionRate:     rate,
	}
}

// Score computes the ATS compatibility score from keyword density, section
// presence and writing style. The weights are fixed; the 0.1*1 term always
// contributes a flat 10 points, so an empty resume scores 10 rather than 0.
// The action-rate contribution is capped once the verb density exceeds 2%.
func Score(text string, jdSkills []string) models.ScoreResult {
	kd := KeywordDensity(text, jdSkills)
	sp := SectionPresence(text)
	av := ActionVsPassive(text)

	score := 0.5*(0.7*kd.TopCoverage+0.3*kd.OverallCoverage) +
		0.2*sp.Score +
		0.15*math.Min(1, av.ActionRate*50) +
		0.1*1 +
		0.05*sp.Score

	return models.ScoreResult{
		Score: Round2(score * 100),
		Components: map[string]float64{
			"keyword_score_percent":    Round2(kd.OverallCoverage * 100),
			"section_score_percent":    Round2(sp.Score * 100),
			"action_component_percent": Round2(av.ActionRate * 100),
		},
		Details: models.ATSDetails{
			KeywordDensity: kd,
			Sections:       sp,
			ActionPassive:  av,
		},
		Suggestions: []string{},
	}
}

// Round2 rounds to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
