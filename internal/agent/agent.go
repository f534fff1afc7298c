// Package agent orchestrates the full resume analysis pipeline.
package agent

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-analyzer/internal/ats"
	"github.com/fmuoria/resume-analyzer/internal/ingestion"
	"github.com/fmuoria/resume-analyzer/internal/jd"
	"github.com/fmuoria/resume-analyzer/internal/models"
	"github.com/fmuoria/resume-analyzer/internal/overview"
	"github.com/fmuoria/resume-analyzer/internal/scoring"
	"github.com/fmuoria/resume-analyzer/internal/similarity"
	"github.com/fmuoria/resume-analyzer/internal/skills"
	"github.com/fmuoria/resume-analyzer/internal/textutil"
)

// ErrNoReport is returned when no analysis has completed yet
var ErrNoReport = errors.New("no analysis report available")

// Analyzer runs the resume-vs-JD pipeline: extraction, cleaning, skill
// matching, ATS scoring, similarity and overview, aggregated into one
// report. The last report is kept in memory for export; nothing is
// persisted across restarts.
type Analyzer struct {
	FileHandler *ingestion.FileHandler
	engine      *similarity.Engine
	vocabulary  []string
	logger      *zap.Logger

	mu   sync.RWMutex
	last *models.AnalysisReport
}

// NewAnalyzer creates an analyzer with the given similarity engine and
// skill vocabulary.
func NewAnalyzer(engine *similarity.Engine, vocabulary []string, uploadsDir string, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		FileHandler: ingestion.NewFileHandler(uploadsDir),
		engine:      engine,
		vocabulary:  vocabulary,
		logger:      logger,
	}
}

// Analyze runs the full pipeline on an uploaded resume file and the raw
// job description text. Extraction failures degrade to an empty resume
// rather than aborting the analysis; every downstream stage has a
// defined empty-input behavior.
func (a *Analyzer) Analyze(ctx context.Context, filename string, fileData []byte, jobDescText string) (models.AnalysisReport, error) {
	raw, err := ingestion.ExtractResumeText(filename, fileData)
	if err != nil {
		a.logger.Warn("resume text extraction failed, continuing with empty text",
			zap.String("filename", filename),
			zap.Error(err))
		raw = ""
	}

	doc := textutil.Clean(raw)
	desc := jd.Parse(jobDescText, a.vocabulary)

	resumeSkills := skills.Extract(doc.RawText, a.vocabulary)
	coverage := skills.Coverage(resumeSkills, desc.RequiredSkills)
	atsResult := ats.Score(doc.RawText, desc.RequiredSkills)

	sim, provider := a.engine.Score(ctx, doc.RawText, desc.RawText)
	ov := overview.Generate(doc.RawText, resumeSkills)

	report := models.AnalysisReport{
		ID:                 uuid.NewString(),
		GeneratedAt:        time.Now().UTC().Format(time.RFC3339),
		OverallScore:       scoring.OverallScore(sim, coverage.Ratio),
		SemanticSimilarity: ats.Round2(sim),
		SimilarityProvider: provider,
		SkillCoverage:      coverage,
		ATS:                atsResult,
		Overview:           ov,
	}

	a.mu.Lock()
	a.last = &report
	a.mu.Unlock()

	a.logger.Info("analysis complete",
		zap.String("report_id", report.ID),
		zap.Float64("overall_score", report.OverallScore),
		zap.String("similarity_provider", provider))

	return report, nil
}

// LastReport returns the most recent analysis, or ErrNoReport when none
// has run yet.
func (a *Analyzer) LastReport() (models.AnalysisReport, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.last == nil {
		return models.AnalysisReport{}, ErrNoReport
	}
	return *a.last, nil
}
