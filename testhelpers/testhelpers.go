// Package testhelpers provides shared budget document fixtures for
// handler and integration tests.
package testhelpers

import "budgetdoc/services"

// SampleDocument returns a realistic two-bucket budget document: a
// program bucket with computed total and conversion columns, and an
// administrative bucket keyed off approved amounts.
func SampleDocument() services.Document {
	return services.Document{
		Title: "Annual Program Budget 2025",
		Date:  "01 Feb 2025",
		Meta: services.DocumentMeta{
			FXRate:            "1500",
			PrimarySymbol:     "₦",
			PrimaryCurrency:   "NGN",
			SecondarySymbol:   "$",
			SecondaryCurrency: "USD",
		},
		Buckets: []services.Bucket{
			{
				Name:     "Program Activities",
				Subtitle: "Direct community programming",
				Columns: []services.Column{
					{Key: "item", Type: services.ColumnText, Label: "Line Item", Width: 4, Align: "left"},
					{Key: "qty", Type: services.ColumnNumber, Label: "Qty", Width: 1, Align: "right"},
					{Key: "unitPrice", Type: services.ColumnCurrency, Label: "Unit Price", Width: 2, Align: "right"},
					{Key: "total", Type: services.ColumnCurrency, Compute: services.ComputeRowTotal, Label: "Total", Width: 2, Align: "right"},
					{Key: "usd", Type: services.ColumnCurrency, Compute: services.ComputeUSDEquiv, Label: "USD", Width: 3, Align: "right"},
				},
				Rows: []services.Row{
					{ID: "p1", Fields: map[string]string{"item": "Workshop materials", "qty": "10", "unitPrice": "1500"}},
					{ID: "p2", Fields: map[string]string{"item": "Venue hire", "qty": "4", "unitPrice": "25000"}},
				},
			},
			{
				Name: "Administrative Costs",
				Columns: []services.Column{
					{Key: "item", Type: services.ColumnText, Label: "Line Item", Width: 6, Align: "left"},
					{Key: "approvedAmount", Type: services.ColumnCurrency, Label: "Approved", Width: 3, Align: "right"},
					{Key: "usdApproved", Type: services.ColumnCurrency, Compute: services.ComputeUSDApproved, Label: "USD", Width: 3, Align: "right"},
				},
				Rows: []services.Row{
					{ID: "a1", Fields: map[string]string{"item": "Office rent", "approvedAmount": "200000"}},
					{ID: "a2", Fields: map[string]string{"item": "Staff salaries", "approvedAmount": "150000"}},
				},
			},
		},
	}
}
