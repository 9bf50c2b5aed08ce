package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Aging bucket labels, in reporting order
const (
	AgeRangeCurrent  = "Current"
	AgeRange1To30    = "1-30 days overdue"
	AgeRange31To60   = "31-60 days overdue"
	AgeRange61To90   = "61-90 days overdue"
	AgeRangeOver90   = "90+ days overdue"
	agingBucketCount = 5
)

// AgingBucket is one band of the receivables aging report
type AgingBucket struct {
	AgeRange    string          `json:"age_range"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

var agingOrder = [agingBucketCount]string{
	AgeRangeCurrent,
	AgeRange1To30,
	AgeRange31To60,
	AgeRange61To90,
	AgeRangeOver90,
}

// DaysOverdue returns whole days past due as of now; zero or negative
// means the invoice is not yet overdue.
func DaysOverdue(dueDate, now time.Time) int {
	return int(math.Floor(now.Sub(dueDate).Hours() / 24))
}

// ageRangeFor classifies a day count into its bucket label. Day 30
// still falls in the 1-30 band; day 31 opens the next one.
func ageRangeFor(daysOverdue int) string {
	switch {
	case daysOverdue <= 0:
		return AgeRangeCurrent
	case daysOverdue <= 30:
		return AgeRange1To30
	case daysOverdue <= 60:
		return AgeRange31To60
	case daysOverdue <= 90:
		return AgeRange61To90
	default:
		return AgeRangeOver90
	}
}

// BucketOutstanding classifies outstanding invoices into aging bands
// relative to now. Every input lands in exactly one bucket; empty
// buckets are omitted from the result, which preserves the fixed band
// order. Empty input yields an empty result.
func BucketOutstanding(invoices []OutstandingInvoice, now time.Time) []AgingBucket {
	byRange := make(map[string]*AgingBucket, agingBucketCount)
	for _, inv := range invoices {
		label := ageRangeFor(DaysOverdue(inv.DueDate, now))
		bucket, ok := byRange[label]
		if !ok {
			bucket = &AgingBucket{AgeRange: label, TotalAmount: decimal.Zero}
			byRange[label] = bucket
		}
		bucket.Count++
		bucket.TotalAmount = bucket.TotalAmount.Add(inv.TotalAmount)
	}

	result := make([]AgingBucket, 0, len(byRange))
	for _, label := range agingOrder {
		if bucket, ok := byRange[label]; ok {
			bucket.TotalAmount = bucket.TotalAmount.Round(2)
			result = append(result, *bucket)
		}
	}
	return result
}
