// Package jd turns raw job description text into a structured requirement
// set for matching.
package jd

import (
	"strings"

	"github.com/fmuoria/resume-analyzer/internal/models"
	"github.com/fmuoria/resume-analyzer/internal/skills"
	"github.com/fmuoria/resume-analyzer/internal/textutil"
)

// Parse flattens the job description text and extracts the required
// skills against the given vocabulary. Empty input yields an empty
// requirement set.
func Parse(text string, vocabulary []string) models.JobDescription {
	flat := textutil.FlattenWhitespace(text)
	if strings.TrimSpace(flat) == "" {
		return models.JobDescription{RequiredSkills: []string{}}
	}
	return models.JobDescription{
		RawText:        flat,
		RequiredSkills: skills.Extract(flat, vocabulary),
	}
}
