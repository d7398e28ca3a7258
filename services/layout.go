package services

// RenderedBucket is one bucket laid out as plain text: header labels
// via Columns, a row-major cell grid with every derived value already
// resolved, and the formatted subtotal lines.
type RenderedBucket struct {
	Name              string
	Subtitle          string
	Columns           []Column
	Cells             [][]string
	Subtotal          string
	SubtotalSecondary string
}

// RenderedDocument is the engine's output boundary: everything the
// print surfaces need, as plain strings, with no styling decisions
// beyond each column's declared width and alignment.
type RenderedDocument struct {
	Title          string
	Date           string
	Meta           DocumentMeta
	Buckets        []RenderedBucket
	GrandTotal     string
	GrandSecondary string
}

// RenderDocument computes every cell, subtotal and the grand total of
// a document and lays them out in row and column order for the print
// surfaces. The input document is not modified.
func RenderDocument(doc Document) RenderedDocument {
	out := RenderedDocument{
		Title: doc.Title,
		Date:  doc.Date,
		Meta:  doc.Meta,
	}

	totals := CalcDocumentTotals(doc)
	for i, b := range doc.Buckets {
		rb := RenderedBucket{
			Name:     b.Name,
			Subtitle: b.Subtitle,
			Columns:  b.Columns,
		}
		for _, row := range b.Rows {
			cells := make([]string, 0, len(b.Columns))
			for _, col := range b.Columns {
				cells = append(cells, ComputeCell(col, row, b.Columns, doc.Meta))
			}
			rb.Cells = append(rb.Cells, cells)
		}
		rb.Subtotal = formatMoney(totals.Buckets[i].Subtotal, doc.Meta.PrimaryLabel())
		rb.SubtotalSecondary = formatMoney(totals.Buckets[i].Secondary, doc.Meta.SecondaryLabel())
		out.Buckets = append(out.Buckets, rb)
	}

	out.GrandTotal = formatMoney(totals.GrandTotal, doc.Meta.PrimaryLabel())
	out.GrandSecondary = formatMoney(totals.GrandSecondary, doc.Meta.SecondaryLabel())
	return out
}

// formatMoney prefixes a formatted amount with a currency label.
// Non-positive totals stay blank, the same guard every computed cell
// applies.
func formatMoney(v float64, label string) string {
	if v <= 0 {
		return ""
	}
	s := FormatAmount(v)
	if label == "" {
		return s
	}
	return label + " " + s
}
