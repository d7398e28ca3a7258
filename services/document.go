// Package services implements the budget document engine: per-cell
// computation of derived columns, bucket aggregation with currency
// conversion, and layout of the result as a printable document.
package services

// Column types understood by the engine. Any other value is treated
// like text.
const (
	ColumnText     = "text"
	ColumnNumber   = "number"
	ColumnCurrency = "currency"
)

// Compute kinds for derived columns. A column with an empty Compute is
// authored data and passes through verbatim.
const (
	ComputeQtyTotal    = "qty_total"
	ComputeRowTotal    = "row_total"
	ComputeUSDEquiv    = "usd_equiv"
	ComputeUSDApproved = "usd_approved"
)

// DocumentMeta is the per-document configuration: the FX rate between
// the two display currencies, the document-wide quantity multiplier and
// the currency labels. Numeric fields are stored as authored strings
// and parsed leniently on use.
type DocumentMeta struct {
	FXRate            string `json:"fxRate"`
	MultiplierValue   string `json:"multiplierValue"`
	PrimarySymbol     string `json:"primarySymbol"`
	PrimaryCurrency   string `json:"primaryCurrency"`
	SecondarySymbol   string `json:"secondarySymbol"`
	SecondaryCurrency string `json:"secondaryCurrency"`
}

// PrimaryLabel returns the primary currency symbol, falling back to the
// currency code when no symbol is configured.
func (m DocumentMeta) PrimaryLabel() string {
	if m.PrimarySymbol != "" {
		return m.PrimarySymbol
	}
	return m.PrimaryCurrency
}

// SecondaryLabel returns the secondary currency symbol, falling back to
// the currency code when no symbol is configured.
func (m DocumentMeta) SecondaryLabel() string {
	if m.SecondarySymbol != "" {
		return m.SecondarySymbol
	}
	return m.SecondaryCurrency
}

// Column describes one column of a bucket table. Key indexes into each
// row's field map; Width and Align are passed through to the print
// surfaces untouched.
type Column struct {
	Key     string `json:"key"`
	Type    string `json:"type"`
	Compute string `json:"compute,omitempty"`
	Label   string `json:"label"`
	Width   int    `json:"width"`
	Align   string `json:"align"`
}

// Row is a single budget line item: an identity plus a flat map of
// authored field values keyed by column key. Rows are never mutated by
// computation.
type Row struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

// Field returns the authored value for a column key, or the empty
// string when the row has no value for it.
func (r Row) Field(key string) string {
	return r.Fields[key]
}

// Bucket is a named group of line items sharing one column schema,
// rendered as one table with its own subtotal. ApprovedKey and TotalKey
// optionally name the column that holds the authoritative total for
// subtotal purposes.
type Bucket struct {
	Name        string   `json:"name"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Columns     []Column `json:"columns"`
	Rows        []Row    `json:"rows"`
	ApprovedKey string   `json:"approvedKey,omitempty"`
	TotalKey    string   `json:"totalKey,omitempty"`
}

// Document is one render request: metadata plus ordered buckets. It is
// built upstream, consumed top to bottom and discarded after output.
type Document struct {
	Title   string       `json:"title"`
	Date    string       `json:"date,omitempty"`
	Meta    DocumentMeta `json:"meta"`
	Buckets []Bucket     `json:"buckets"`
}
