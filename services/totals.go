package services

// BucketSubtotal returns the aggregated currency total for one bucket.
// An explicit ApprovedKey or TotalKey (checked in that priority) is
// authoritative; otherwise the last non-computed currency column is
// summed. Buckets with no currency column at all total to zero.
func BucketSubtotal(bucket Bucket, meta DocumentMeta) float64 {
	key := bucket.ApprovedKey
	if key == "" {
		key = bucket.TotalKey
	}
	if key == "" {
		lc, ok := lastCurrencyColumn(bucket.Columns)
		if !ok {
			return 0
		}
		key = lc.Key
	}

	var sum float64
	for _, row := range bucket.Rows {
		sum += ParseNumber(row.Field(key))
	}
	return sum
}

// SecondaryAmount converts a primary-currency value using the document
// FX rate. 0 when no rate is available.
func SecondaryAmount(v float64, meta DocumentMeta) float64 {
	fx := FXRate(meta)
	if fx > 0 {
		return v / fx
	}
	return 0
}

// BucketTotal pairs a bucket with its computed subtotal in both
// currencies.
type BucketTotal struct {
	Name      string  `json:"name"`
	Subtotal  float64 `json:"subtotal"`
	Secondary float64 `json:"secondary"`
}

// DocumentTotals holds the aggregate figures for a whole document.
type DocumentTotals struct {
	Buckets        []BucketTotal `json:"buckets"`
	GrandTotal     float64       `json:"grandTotal"`
	GrandSecondary float64       `json:"grandSecondary"`
}

// CalcDocumentTotals rolls every bucket subtotal up into the grand
// total and derives the secondary-currency figures from the same FX
// rate.
func CalcDocumentTotals(doc Document) DocumentTotals {
	var totals DocumentTotals
	for _, b := range doc.Buckets {
		sub := BucketSubtotal(b, doc.Meta)
		totals.Buckets = append(totals.Buckets, BucketTotal{
			Name:      b.Name,
			Subtotal:  sub,
			Secondary: SecondaryAmount(sub, doc.Meta),
		})
		totals.GrandTotal += sub
	}
	totals.GrandSecondary = SecondaryAmount(totals.GrandTotal, doc.Meta)
	return totals
}
