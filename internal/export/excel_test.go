package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/fmuoria/resume-analyzer/internal/models"
)

func sampleReport() models.AnalysisReport {
	return models.AnalysisReport{
		ID:                 "test-id",
		GeneratedAt:        "2024-01-01T00:00:00Z",
		OverallScore:       72.5,
		SemanticSimilarity: 0.81,
		SimilarityProvider: "tfidf",
		SkillCoverage: models.SkillCoverage{
			Ratio:   0.5,
			Matched: []string{"python"},
			Missing: []string{"sql"},
		},
		ATS: models.ScoreResult{
			Score:       64.2,
			Components:  map[string]float64{},
			Suggestions: []string{},
		},
		Overview: models.Overview{
			Name:      "Jane Roe",
			Email:     "jane@example.com",
			Phone:     "9876543210",
			Summary:   "Backend developer.",
			Education: []string{"B.Tech Computer Science 2020"},
			TopSkills: []string{"python"},
		},
	}
}

func TestToExcelSheets(t *testing.T) {
	data, err := ToExcel(sampleReport())
	if err != nil {
		t.Fatalf("ToExcel: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	want := map[string]bool{
		"Summary": false, "Skills": false, "ATS Breakdown": false, "Overview": false,
	}
	for _, name := range f.GetSheetList() {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing sheet %q", name)
		}
	}
}

func TestToExcelSummaryValues(t *testing.T) {
	data, err := ToExcel(sampleReport())
	if err != nil {
		t.Fatalf("ToExcel: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Summary", "B3")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "test-id" {
		t.Errorf("Summary!B3 = %q, want report id", got)
	}

	name, err := f.GetCellValue("Overview", "B3")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if name != "Jane Roe" {
		t.Errorf("Overview!B3 = %q, want candidate name", name)
	}
}
