package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fmuoria/resume-analyzer/internal/models"
)

// coreSkills is the built-in technical vocabulary. Matching is substring
// based, so multi-word entries like "machine learning" work as-is.
var coreSkills = []string{
	"python", "java", "c++", "javascript", "html", "css", "react", "node.js", "django", "flask",
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "sql", "mysql", "postgresql",
	"mongodb", "aws", "azure", "gcp", "docker", "kubernetes", "git", "linux", "nlp",
	"computer vision", "machine learning", "deep learning", "rest api", "ci/cd",
	"spark", "hadoop",
}

// softSkills is the built-in soft-skill vocabulary
var softSkills = []string{
	"communication", "teamwork", "leadership", "problem solving", "time management",
	"adaptability", "creativity",
}

// DefaultVocabulary returns the built-in skill list, lower-cased
func DefaultVocabulary() []string {
	vocab := make([]string, 0, len(coreSkills)+len(softSkills))
	for _, s := range append(append([]string{}, coreSkills...), softSkills...) {
		vocab = append(vocab, strings.ToLower(s))
	}
	return vocab
}

// LoadVocabulary reads a JSON array of skill strings from path. An empty
// path or a missing file falls back to the built-in vocabulary; the list is
// configuration loaded once at startup, not runtime-discovered data.
func LoadVocabulary(path string) ([]string, error) {
	if path == "" {
		return DefaultVocabulary(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultVocabulary(), nil
		}
		return nil, fmt.Errorf("failed to read skills file: %w", err)
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse skills file: %w", err)
	}

	vocab := make([]string, 0, len(list))
	for _, s := range list {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			vocab = append(vocab, s)
		}
	}
	if len(vocab) == 0 {
		return DefaultVocabulary(), nil
	}
	return vocab, nil
}

// Extract returns the vocabulary entries found in text, lower-cased and
// sorted. Matching is a case-insensitive substring test of each entry
// against the full text.
func Extract(text string, vocabulary []string) []string {
	t := strings.ToLower(text)
	found := make(map[string]struct{})
	for _, sk := range vocabulary {
		if strings.Contains(t, strings.ToLower(sk)) {
			found[strings.ToLower(sk)] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for sk := range found {
		out = append(out, sk)
	}
	sort.Strings(out)
	return out
}

// Coverage compares detected resume skills against the JD's required
// skills. The ratio is matched/required; an empty required set yields 0
// rather than a division error. Matched and missing are sorted.
func Coverage(resumeSkills, jdSkills []string) models.SkillCoverage {
	r := toSet(resumeSkills)
	j := toSet(jdSkills)

	matched := make([]string, 0)
	missing := make([]string, 0)
	for sk := range j {
		if _, ok := r[sk]; ok {
			matched = append(matched, sk)
		} else {
			missing = append(missing, sk)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	ratio := 0.0
	if len(j) > 0 {
		ratio = float64(len(matched)) / float64(len(j))
	}

	return models.SkillCoverage{Ratio: ratio, Matched: matched, Missing: missing}
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}
