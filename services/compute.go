package services

import (
	"strconv"
	"strings"
)

// Computed columns reference the quantity and unit-price columns by
// position in the column list rather than by key. The scans live here
// so the convention has exactly one implementation per column kind.

// findQuantityColumn returns the first non-computed number column.
func findQuantityColumn(columns []Column) (Column, bool) {
	for _, c := range columns {
		if c.Type == ColumnNumber && c.Compute == "" {
			return c, true
		}
	}
	return Column{}, false
}

// findPriceColumn returns the first non-computed currency column.
func findPriceColumn(columns []Column) (Column, bool) {
	for _, c := range columns {
		if c.Type == ColumnCurrency && c.Compute == "" {
			return c, true
		}
	}
	return Column{}, false
}

// lastCurrencyColumn returns the last non-computed currency column.
func lastCurrencyColumn(columns []Column) (Column, bool) {
	var last Column
	found := false
	for _, c := range columns {
		if c.Type == ColumnCurrency && c.Compute == "" {
			last = c
			found = true
		}
	}
	return last, found
}

// findApprovedColumn returns the first non-computed currency column
// whose key contains "approv", case-insensitively.
func findApprovedColumn(columns []Column) (Column, bool) {
	for _, c := range columns {
		if c.Type == ColumnCurrency && c.Compute == "" &&
			strings.Contains(strings.ToLower(c.Key), "approv") {
			return c, true
		}
	}
	return Column{}, false
}

// ComputeCell returns the display string for one cell. Non-computed
// columns pass authored row data through verbatim; computed columns
// derive their value from the quantity and unit-price columns plus the
// document metadata. Missing reference columns, unparsable numbers and
// non-positive results all resolve to the empty string rather than an
// error: a partially filled budget must still render.
func ComputeCell(column Column, row Row, columns []Column, meta DocumentMeta) string {
	switch column.Compute {
	case "":
		return row.Field(column.Key)

	case ComputeQtyTotal:
		qc, ok := findQuantityColumn(columns)
		if !ok {
			return ""
		}
		qty := ParseNumber(row.Field(qc.Key))
		m := QtyMultiplier(meta)
		if m > 0 && qty > 0 {
			// The one computed column that stays unformatted: existing
			// documents depend on the raw numeric string here. Flagged
			// for product review, kept as-is meanwhile.
			return strconv.FormatFloat(qty*m, 'f', -1, 64)
		}
		return ""

	case ComputeRowTotal:
		total, ok := rowTotal(row, columns, meta)
		if ok && total > 0 {
			return FormatAmount(total)
		}
		return ""

	case ComputeUSDEquiv, ComputeUSDApproved:
		return secondaryCell(column, row, columns, meta)
	}

	return row.Field(column.Key)
}

// rowTotal computes quantity times unit price for one row, with the
// document multiplier applied to the quantity when active. ok is false
// when either reference column is missing, so callers never mistake a
// missing column for a genuine zero.
func rowTotal(row Row, columns []Column, meta DocumentMeta) (float64, bool) {
	qc, qok := findQuantityColumn(columns)
	pc, pok := findPriceColumn(columns)
	if !qok || !pok {
		return 0, false
	}

	qty := ParseNumber(row.Field(qc.Key))
	if m := QtyMultiplier(meta); m > 0 {
		qty *= m
	}
	return qty * ParseNumber(row.Field(pc.Key)), true
}

// secondaryCell converts a row amount into the secondary currency. The
// source amount is resolved through a three-tier fallback chain, in
// priority order: an "approv"-keyed currency column (usd_approved
// only), then the computed row total, then the raw value of the last
// currency column. Conversion only happens when both the FX rate and
// the source amount are strictly positive.
func secondaryCell(column Column, row Row, columns []Column, meta DocumentMeta) string {
	fx := FXRate(meta)

	if column.Compute == ComputeUSDApproved {
		if ac, ok := findApprovedColumn(columns); ok {
			v := ParseNumber(row.Field(ac.Key))
			if fx > 0 && v > 0 {
				return FormatAmount(v / fx)
			}
			return ""
		}
	}

	if total, ok := rowTotal(row, columns, meta); ok {
		if fx > 0 && total > 0 {
			return FormatAmount(total / fx)
		}
		return ""
	}

	if lc, ok := lastCurrencyColumn(columns); ok {
		v := ParseNumber(row.Field(lc.Key))
		if fx > 0 && v > 0 {
			return FormatAmount(v / fx)
		}
	}
	return ""
}
