package models

// Document holds cleaned resume text split into ordered lines.
// It is built once by the text cleaner and never mutated afterwards.
type Document struct {
	RawText string   `json:"raw_text"`
	Lines   []string `json:"lines"`
}

// IsEmpty reports whether the document contains no text at all
func (d Document) IsEmpty() bool {
	return d.RawText == ""
}

// JobDescription represents a parsed job description
type JobDescription struct {
	RawText        string   `json:"raw_text"`
	RequiredSkills []string `json:"required_skills"`
}

// SectionReport describes which canonical resume sections were found
type SectionReport struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
	Score   float64  `json:"score"` // present / total, in [0,1]
}

// KeywordReport describes required-skill matches against the resume text,
// weighting matches in the leading "top fraction" of the document
type KeywordReport struct {
	TopMatched      []string `json:"top_matched"`
	AllMatched      []string `json:"all_matched"`
	Missing         []string `json:"missing"`
	TopCoverage     float64  `json:"top_coverage"`
	OverallCoverage float64  `json:"overall_coverage"`
}

// StyleReport counts action verbs versus passive-looking phrases
type StyleReport struct {
	ActionVerbs    int     `json:"action_verbs"`
	PassivePhrases int     `json:"passive_phrases"`
	ActionRate     float64 `json:"action_rate"`
}

// ATSDetails groups the sub-reports feeding the ATS score
type ATSDetails struct {
	KeywordDensity KeywordReport `json:"keyword_density"`
	Sections       SectionReport `json:"sections"`
	ActionPassive  StyleReport   `json:"action_passive"`
}

// ScoreResult is the ATS compatibility score with its component breakdown.
// Suggestions is an extension point and currently always empty.
type ScoreResult struct {
	Score       float64            `json:"score"` // 0-100
	Components  map[string]float64 `json:"components"`
	Details     ATSDetails         `json:"details"`
	Suggestions []string           `json:"suggestions"`
}

// SkillCoverage describes resume skills against the JD's required skills
type SkillCoverage struct {
	Ratio   float64  `json:"ratio"` // matched / required, 0 when nothing required
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Overview is the heuristic resume summary shown alongside the scores.
// Every field is best-effort; absent data is reported with sentinels
// rather than errors.
type Overview struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Summary   string   `json:"summary"`
	Education []string `json:"education"`
	TopSkills []string `json:"top_skills"`
	Markdown  string   `json:"markdown"`
}

// AnalysisReport is the full result of one resume-vs-JD analysis
type AnalysisReport struct {
	ID                 string        `json:"id"`
	GeneratedAt        string        `json:"generated_at"`
	OverallScore       float64       `json:"overall_score"` // 0-100
	SemanticSimilarity float64       `json:"semantic_similarity"`
	SimilarityProvider string        `json:"similarity_provider"`
	SkillCoverage      SkillCoverage `json:"skill_coverage"`
	ATS                ScoreResult   `json:"ats"`
	Overview           Overview      `json:"overview"`
}
