package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort direction to asc or desc.
// Anything other than asc falls back to desc.
func ValidateSortOrder(orderDir string) string {
	if strings.ToLower(strings.TrimSpace(orderDir)) == "asc" {
		return "asc"
	}
	return "desc"
}

// ValidateSortField validates the sort column against a whitelist of
// allowed fields. Returns the defaultField if the input is empty or
// not in the whitelist, so caller-supplied values never reach the
// ORDER BY clause unchecked.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// ClientSortFields contains allowed sort fields for clients
var ClientSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"email":      true,
	"phone":      true,
}

// InvoiceSortFields contains allowed sort fields for invoices
var InvoiceSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"reference":    true,
	"status":       true,
	"invoice_date": true,
	"due_date":     true,
	"total_amount": true,
	"client_id":    true,
}
