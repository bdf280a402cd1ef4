// Package export renders the candidate board as an Excel workbook.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/artem13815/hrboard/pkg/candidate"
)

const (
	SheetCandidates = "Candidates"
	SheetSummary    = "Summary"
)

var candidateHeader = []interface{}{
	"ID", "First Name", "Family Name", "Email", "Phone", "Applied Role", "Stage",
	"Overall Score", "Recommendation", "Years Experience", "Skills", "Strengths", "Skill Gaps", "Created At",
}

// WriteWorkbook writes records (in the given order) and their stats as xlsx to w.
func WriteWorkbook(w io.Writer, records []candidate.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCandidates); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	if err := writeCandidates(f, records); err != nil {
		return fmt.Errorf("failed to create candidates sheet: %w", err)
	}
	if err := writeSummary(f, candidate.Summarize(records)); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeCandidates(f *excelize.File, records []candidate.Record) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	strongStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C6EFCE"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	weakStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetCandidates, "A1", &candidateHeader); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(candidateHeader))
	if err := f.SetCellStyle(SheetCandidates, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, r := range records {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.ID,
			r.Candidate.Name.First,
			r.Candidate.Name.Family,
			r.Candidate.PrimaryEmail(),
			r.Candidate.PrimaryPhone(),
			r.AppliedRole,
			r.Stage.Title(),
			r.OverallScore,
			r.Recommendation,
			r.Candidate.TotalYearsExperience,
			joinSkills(r.Candidate.DisplaySkills()),
			"",
			"",
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
		if r.Evaluation != nil {
			values[11] = strings.Join(r.Evaluation.Strengths, ", ")
			values[12] = strings.Join(r.Evaluation.SkillGaps, ", ")
		}
		if err := f.SetSheetRow(SheetCandidates, cell, &values); err != nil {
			return err
		}

		scoreCell := fmt.Sprintf("H%d", row)
		switch candidate.Recommendation(r.Recommendation) {
		case candidate.RecommendationStrong:
			err = f.SetCellStyle(SheetCandidates, scoreCell, scoreCell, strongStyle)
		case candidate.RecommendationWeak:
			err = f.SetCellStyle(SheetCandidates, scoreCell, scoreCell, weakStyle)
		}
		if err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetCandidates, "B", "F", 18); err != nil {
		return err
	}
	return f.SetColWidth(SheetCandidates, "K", "M", 40)
}

func writeSummary(f *excelize.File, st candidate.Stats) error {
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Total Candidates", st.Total},
		{"Average Score", st.AvgScore},
		{"High Scorers (75+)", st.HighScorers},
	}
	for _, s := range candidate.Stages() {
		rows = append(rows, []interface{}{s.Title(), st.ByStage[s]})
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetSummary, cell, cell, labelStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetSummary, "A", "A", 24)
}

func joinSkills(skills []candidate.Skill) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}
