package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates an Excel workbook from a rendered budget
// document and returns the file contents as a byte slice. Every bucket
// becomes one table section on a single sheet, followed by the grand
// total.
func GenerateExcel(doc RenderedDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are capped at 31 chars by the format.
	sheetName := doc.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Budget"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	maxCols := 1
	for _, b := range doc.Buckets {
		if len(b.Columns) > maxCols {
			maxCols = len(b.Columns)
		}
	}
	lastCol := colName(maxCols)

	// Column widths: widest declaration per position across buckets.
	for i := 0; i < maxCols; i++ {
		declared := 0
		for _, b := range doc.Buckets {
			if i < len(b.Columns) && b.Columns[i].Width > declared {
				declared = b.Columns[i].Width
			}
		}
		name := colName(i + 1)
		if err := f.SetColWidth(sheetName, name, name, excelColWidth(declared)); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", name, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	bucketStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return nil, fmt.Errorf("create bucket style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
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

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if maxCols > 1 {
		if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
			return nil, fmt.Errorf("merge title: %w", err)
		}
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(doc.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if doc.Date != "" {
		if maxCols > 1 {
			if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
				return nil, fmt.Errorf("merge date: %w", err)
			}
		}
		f.SetCellValue(sheetName, "A2", "Date: "+doc.Date)
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	// ── Bucket sections ─────────────────────────────────────────────────

	rowNum := 4
	for _, b := range doc.Buckets {
		rowStr := fmt.Sprintf("%d", rowNum)
		if maxCols > 1 {
			if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
				return nil, fmt.Errorf("merge bucket title: %w", err)
			}
		}
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(b.Name))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, bucketStyle)
		rowNum++

		if b.Subtitle != "" {
			rowStr = fmt.Sprintf("%d", rowNum)
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(b.Subtitle))
			f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, subtitleStyle)
			rowNum++
		}

		n := len(b.Columns)
		if n > 0 {
			rowStr = fmt.Sprintf("%d", rowNum)
			for i, c := range b.Columns {
				f.SetCellValue(sheetName, colName(i+1)+rowStr, c.Label)
			}
			f.SetCellStyle(sheetName, "A"+rowStr, colName(n)+rowStr, headerStyle)
			rowNum++

			for _, cells := range b.Cells {
				rowStr = fmt.Sprintf("%d", rowNum)
				for i, v := range cells {
					f.SetCellValue(sheetName, colName(i+1)+rowStr, sanitizeExcelCell(v))
				}
				f.SetCellStyle(sheetName, "A"+rowStr, colName(n)+rowStr, cellStyle)
				rowNum++
			}
		}

		rowNum = addExcelSummaryLine(f, sheetName, rowNum, n, "Subtotal:", b.Subtotal, summaryLabelStyle, summaryValueStyle)
		rowNum = addExcelSummaryLine(f, sheetName, rowNum, n, "Equivalent:", b.SubtotalSecondary, summaryLabelStyle, summaryValueStyle)
		rowNum++
	}

	// ── Grand total ─────────────────────────────────────────────────────

	rowNum = addExcelSummaryLine(f, sheetName, rowNum, maxCols, "Grand Total:", doc.GrandTotal, summaryLabelStyle, summaryValueStyle)
	addExcelSummaryLine(f, sheetName, rowNum, maxCols, "Equivalent:", doc.GrandSecondary, summaryLabelStyle, summaryValueStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// addExcelSummaryLine writes a label/value pair into the last two
// columns of an n-column section and returns the next row number. Blank
// values are skipped.
func addExcelSummaryLine(f *excelize.File, sheet string, rowNum, n int, label, value string, labelStyle, valueStyle int) int {
	if value == "" {
		return rowNum
	}

	labelCol := 1
	valueCol := 2
	if n >= 2 {
		labelCol = n - 1
		valueCol = n
	}

	rowStr := fmt.Sprintf("%d", rowNum)
	f.SetCellValue(sheet, colName(labelCol)+rowStr, label)
	f.SetCellStyle(sheet, colName(labelCol)+rowStr, colName(labelCol)+rowStr, labelStyle)
	f.SetCellValue(sheet, colName(valueCol)+rowStr, sanitizeExcelCell(value))
	f.SetCellStyle(sheet, colName(valueCol)+rowStr, colName(valueCol)+rowStr, valueStyle)
	return rowNum + 1
}

// colName converts a 1-based column number to its Excel name.
func colName(n int) string {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return "A"
	}
	return name
}

// excelColWidth converts a declared column width (grid units) to an
// Excel character width.
func excelColWidth(declared int) float64 {
	if declared <= 0 {
		return 14
	}
	w := float64(declared) * 5
	if w < 8 {
		w = 8
	}
	if w > 50 {
		w = 50
	}
	return w
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous
// leading characters with a single quote. Excel interprets cells
// starting with =, +, -, @, \t or \r as formulas, which can be abused
// for code execution or data theft.
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

// thinBorders returns thin borders for all four sides.
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
