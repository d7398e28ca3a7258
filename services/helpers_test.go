package services

import "bytes"

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// chairsDocument is the shared single-bucket fixture used by the layout
// and export tests.
func chairsDocument() Document {
	return Document{
		Title: "Community Center Budget",
		Date:  "15 Jan 2025",
		Meta: DocumentMeta{
			FXRate:            "2",
			PrimarySymbol:     "₦",
			PrimaryCurrency:   "NGN",
			SecondaryCurrency: "USD",
		},
		Buckets: []Bucket{
			{
				Name: "Furniture",
				Columns: []Column{
					{Key: "item", Type: ColumnText, Label: "Item", Width: 4, Align: "left"},
					{Key: "qty", Type: ColumnNumber, Label: "Qty", Width: 1, Align: "right"},
					{Key: "unitPrice", Type: ColumnCurrency, Label: "Unit Price", Width: 2, Align: "right"},
					{Key: "total", Type: ColumnCurrency, Compute: ComputeRowTotal, Label: "Total", Width: 2, Align: "right"},
					{Key: "usd", Type: ColumnCurrency, Compute: ComputeUSDEquiv, Label: "USD", Width: 3, Align: "right"},
				},
				Rows: []Row{
					{ID: "r1", Fields: map[string]string{"item": "Chairs", "qty": "5", "unitPrice": "10"}},
				},
			},
		},
	}
}
