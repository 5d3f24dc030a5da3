package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LeadRow is one sales lead as exported to the workbook.
type LeadRow struct {
	Name         string
	Email        string
	Phone        string
	Company      string
	ServiceType  string
	QuoteRef     string
	MonthlyPrice string
	Message      string
	CreatedDate  string
}

// GenerateLeadBook creates an Excel workbook from the given leads and returns
// the file contents as a byte slice.
func GenerateLeadBook(rows []LeadRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Leads"

	// Rename default sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through I).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	lastCol := columns[len(columns)-1] // "I"

	// Set column widths.
	widths := []float64{22, 28, 16, 24, 18, 14, 16, 48, 12}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// Title style: bold, 16pt.
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	// Column header style: bold, white text, charcoal background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Data row style: normal with borders.
	rowStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	// Row 1: Title merged across all columns.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Sales Leads")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Row 3: Column headers.
	headers := []string{"Name", "Email", "Phone", "Company", "Service", "Quote Ref", "Monthly Price", "Message", "Date"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s3", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	// Data rows starting row 4.
	row := 4
	for _, r := range rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.Name))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Email))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Phone))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Company))
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(r.ServiceType))
		f.SetCellValue(sheetName, "F"+rowStr, sanitizeExcelCell(r.QuoteRef))
		f.SetCellValue(sheetName, "G"+rowStr, sanitizeExcelCell(r.MonthlyPrice))
		f.SetCellValue(sheetName, "H"+rowStr, sanitizeExcelCell(r.Message))
		f.SetCellValue(sheetName, "I"+rowStr, sanitizeExcelCell(r.CreatedDate))

		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, rowStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
