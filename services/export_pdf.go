package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF creates the printable PDF for a rendered budget document
// using maroto/v2. It returns the raw PDF bytes or an error. Page
// splitting is left entirely to the library.
func GeneratePDF(doc RenderedDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addDocumentHeader(m, doc)

	for _, b := range doc.Buckets {
		addBucketTitle(m, b)
		addBucketHeader(m, b)
		for _, cells := range b.Cells {
			addBucketRow(m, b, cells)
		}
		addBucketSubtotal(m, b)
		m.AddRows(row.New(4))
	}

	addGrandTotal(m, doc)

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return pdf.GetBytes(), nil
}

// addDocumentHeader adds the document title plus the currency and date
// line.
func addDocumentHeader(m core.Maroto, doc RenderedDocument) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(doc.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	currencyNote := ""
	if doc.Meta.PrimaryCurrency != "" {
		currencyNote = fmt.Sprintf("Amounts in %s", doc.Meta.PrimaryCurrency)
		if doc.Meta.SecondaryCurrency != "" {
			currencyNote += fmt.Sprintf(", %s equivalents shown where available", doc.Meta.SecondaryCurrency)
		}
	}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(currencyNote, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(doc.Date, props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addBucketTitle adds the bucket name and optional subtitle above its
// table.
func addBucketTitle(m core.Maroto, b RenderedBucket) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(b.Name, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
	if b.Subtitle != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(b.Subtitle, props.Text{
						Size:  8,
						Align: align.Left,
						Color: &props.Color{Red: 100, Green: 100, Blue: 100},
					}),
				),
			),
		)
	}
}

// addBucketHeader adds the column header row for one bucket table.
func addBucketHeader(m core.Maroto, b RenderedBucket) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := props.Cell{BackgroundColor: headerBg}

	widths := gridWidths(b.Columns)
	cols := make([]core.Col, 0, len(b.Columns))
	for i, c := range b.Columns {
		headerText := props.Text{
			Size:  8,
			Style: fontstyle.Bold,
			Align: textAlign(c.Align),
			Color: &props.Color{Red: 255, Green: 255, Blue: 255},
		}
		cols = append(cols,
			col.New(widths[i]).Add(text.New(c.Label, headerText)).WithStyle(&headerCell),
		)
	}
	m.AddRows(row.New(8).Add(cols...))
}

// addBucketRow adds one computed data row to a bucket table.
func addBucketRow(m core.Maroto, b RenderedBucket, cells []string) {
	widths := gridWidths(b.Columns)
	cols := make([]core.Col, 0, len(b.Columns))
	for i, c := range b.Columns {
		cellText := props.Text{
			Size:  8,
			Align: textAlign(c.Align),
		}
		cols = append(cols, col.New(widths[i]).Add(text.New(cells[i], cellText)))
	}
	m.AddRows(row.New(7).Add(cols...))
}

// addBucketSubtotal adds the subtotal lines for one bucket, skipping
// blank figures.
func addBucketSubtotal(m core.Maroto, b RenderedBucket) {
	addSummaryLine(m, "Subtotal", b.Subtotal)
	addSummaryLine(m, "Equivalent", b.SubtotalSecondary)
}

// addGrandTotal adds the document summary section.
func addGrandTotal(m core.Maroto, doc RenderedDocument) {
	m.AddRows(row.New(6))
	addSummaryLine(m, "Grand Total", doc.GrandTotal)
	addSummaryLine(m, "Equivalent", doc.GrandSecondary)
}

// addSummaryLine adds a shaded label/value row. Blank values are
// skipped so empty conversions never print a dangling label.
func addSummaryLine(m core.Maroto, label, value string) {
	if value == "" {
		return
	}

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	summaryText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New(label, summaryText)).WithStyle(summaryCell),
			col.New(4).Add(text.New(value, summaryText)).WithStyle(summaryCell),
		),
	)
}

// textAlign maps a column alignment onto maroto's alignment constants.
// Unknown values fall back to left.
func textAlign(a string) align.Type {
	switch a {
	case "right":
		return align.Right
	case "center":
		return align.Center
	}
	return align.Left
}

// gridWidths maps the declared column widths onto maroto's 12-unit
// grid. Columns without a declared width share space evenly, every
// column gets at least one unit and the units sum to exactly 12.
func gridWidths(columns []Column) []int {
	n := len(columns)
	if n == 0 {
		return nil
	}

	weights := make([]float64, n)
	var total float64
	for i, c := range columns {
		w := float64(c.Width)
		if w <= 0 {
			w = 1
		}
		weights[i] = w
		total += w
	}

	units := make([]int, n)
	assigned := 0
	widest := 0
	for i, w := range weights {
		u := int(w * 12 / total)
		if u < 1 {
			u = 1
		}
		units[i] = u
		assigned += u
		if w > weights[widest] {
			widest = i
		}
	}

	for assigned < 12 {
		units[widest]++
		assigned++
	}
	for assigned > 12 {
		trimmed := false
		for i := range units {
			if assigned > 12 && units[i] > 1 {
				units[i]--
				assigned--
				trimmed = true
			}
		}
		if !trimmed {
			break
		}
	}
	return units
}
