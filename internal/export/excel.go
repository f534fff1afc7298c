// Package export renders an analysis report as an Excel workbook.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fmuoria/resume-analyzer/internal/models"
)

// ToExcel generates an Excel workbook for the report and returns it as
// bytes, ready for an HTTP download.
func ToExcel(report models.AnalysisReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Summary"
	skillsSheet := "Skills"
	atsSheet := "ATS Breakdown"
	overviewSheet := "Overview"

	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(skillsSheet)
	f.NewSheet(atsSheet)
	f.NewSheet(overviewSheet)

	if err := createSummarySheet(f, summarySheet, report); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := createSkillsSheet(f, skillsSheet, report); err != nil {
		return nil, fmt.Errorf("failed to create skills sheet: %w", err)
	}
	if err := createATSSheet(f, atsSheet, report); err != nil {
		return nil, fmt.Errorf("failed to create ats sheet: %w", err)
	}
	if err := createOverviewSheet(f, overviewSheet, report); err != nil {
		return nil, fmt.Errorf("failed to create overview sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
}

func newLabelStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
}

func createSummarySheet(f *excelize.File, sheetName string, report models.AnalysisReport) error {
	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 55)

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return err
	}
	labelStyle, err := newLabelStyle(f)
	if err != nil {
		return err
	}

	row := 1
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Resume Analysis Report")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	entries := []struct {
		label string
		value interface{}
	}{
		{"Report ID:", report.ID},
		{"Generated:", report.GeneratedAt},
		{"Overall Match Score:", fmt.Sprintf("%.2f%%", report.OverallScore)},
		{"Semantic Similarity:", fmt.Sprintf("%.2f", report.SemanticSimilarity)},
		{"Similarity Provider:", report.SimilarityProvider},
		{"Skill Coverage:", fmt.Sprintf("%.0f%%", report.SkillCoverage.Ratio*100)},
		{"ATS Score:", fmt.Sprintf("%.2f%%", report.ATS.Score)},
	}
	for _, e := range entries {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.label)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.value)
		row++
	}

	return nil
}

func createSkillsSheet(f *excelize.File, sheetName string, report models.AnalysisReport) error {
	f.SetColWidth(sheetName, "A", "B", 35)

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", "Matched Skills")
	f.SetCellValue(sheetName, "B1", "Missing Skills")
	f.SetCellStyle(sheetName, "A1", "B1", headerStyle)

	for i, sk := range report.SkillCoverage.Matched {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+2), sk)
	}
	for i, sk := range report.SkillCoverage.Missing {
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+2), sk)
	}

	return nil
}

func createATSSheet(f *excelize.File, sheetName string, report models.AnalysisReport) error {
	f.SetColWidth(sheetName, "A", "A", 32)
	f.SetColWidth(sheetName, "B", "B", 55)

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return err
	}
	labelStyle, err := newLabelStyle(f)
	if err != nil {
		return err
	}

	row := 1
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "ATS Compatibility")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	kd := report.ATS.Details.KeywordDensity
	entries := []struct {
		label string
		value interface{}
	}{
		{"ATS Score:", fmt.Sprintf("%.2f%%", report.ATS.Score)},
		{"Keywords in Top Section:", strings.Join(kd.TopMatched, ", ")},
		{"Keywords Anywhere:", strings.Join(kd.AllMatched, ", ")},
		{"Missing Keywords:", strings.Join(kd.Missing, ", ")},
		{"Sections Present:", strings.Join(report.ATS.Details.Sections.Present, ", ")},
		{"Sections Missing:", strings.Join(report.ATS.Details.Sections.Missing, ", ")},
		{"Action Verbs:", report.ATS.Details.ActionPassive.ActionVerbs},
		{"Passive Phrases:", report.ATS.Details.ActionPassive.PassivePhrases},
	}
	for _, e := range entries {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.label)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.value)
		row++
	}

	return nil
}

func createOverviewSheet(f *excelize.File, sheetName string, report models.AnalysisReport) error {
	f.SetColWidth(sheetName, "A", "A", 20)
	f.SetColWidth(sheetName, "B", "B", 80)

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return err
	}
	labelStyle, err := newLabelStyle(f)
	if err != nil {
		return err
	}

	ov := report.Overview
	row := 1
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Candidate Overview")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	entries := []struct {
		label string
		value string
	}{
		{"Name:", ov.Name},
		{"Email:", ov.Email},
		{"Phone:", ov.Phone},
		{"Summary:", ov.Summary},
		{"Top Skills:", strings.Join(ov.TopSkills, ", ")},
		{"Education:", strings.Join(ov.Education, "; ")},
	}
	for _, e := range entries {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.label)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.value)
		row++
	}

	return nil
}
