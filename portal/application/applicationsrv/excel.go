package applicationsrv

import (
	"bytes"
	"fmt"

	"github.com/talentgate/jobportal/portal/application"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Applications"

var exportColumns = []string{
	"ID", "Position", "Name", "Email", "Phone", "College", "Degree",
	"Passout Year", "Skills", "Resume File", "Applied Date", "Status",
}

// buildApplicationsWorkbook renders the applications into a styled sheet:
// a filled header row and column widths sized to the longest cell.
func buildApplicationsWorkbook(apps []application.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create export sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	widths := make([]int, len(exportColumns))
	for col, title := range exportColumns {
		widths[col] = len(title)
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return nil, err
		}
	}

	lastHeader, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err := f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}

	for row, app := range apps {
		values := []any{
			app.ID.Int64(), app.Position, app.Name, app.Email, app.Phone,
			app.College, app.Degree, app.PassoutYear, app.Skills,
			app.ResumeFile, app.AppliedDate, string(app.Status),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, err
			}
			if n := len(fmt.Sprint(value)); n > widths[col] {
				widths[col] = n
			}
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		w := width + 2
		if w > 50 {
			w = 50
		}
		if err := f.SetColWidth(exportSheet, name, name, float64(w)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}
