package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
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

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// PartnerSortFields contains allowed sort fields for customers, suppliers,
// purchasers and employees
var PartnerSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"code":         true,
	"name":         true,
	"contact_name": true,
	"phone":        true,
	"email":        true,
	"status":       true,
}

// EmployeeSortFields contains allowed sort fields for employees
var EmployeeSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"code":        true,
	"name":        true,
	"department":  true,
	"designation": true,
	"salary":      true,
	"joined_at":   true,
	"status":      true,
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"sku":           true,
	"name":          true,
	"category":      true,
	"unit":          true,
	"supplier_name": true,
	"buying_price":  true,
	"selling_price": true,
	"stock":         true,
	"status":        true,
}

// GeneralSortFields contains allowed sort fields for generals
var GeneralSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"group_name": true,
	"value":      true,
	"sort_order": true,
}

// CurrencySortFields contains allowed sort fields for currencies
var CurrencySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"is_default": true,
}

// LocationSortFields contains allowed sort fields for warehouses, cabinets
// and stores
var LocationSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

// InvoiceSortFields contains allowed sort fields for invoices
var InvoiceSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"invoice_number": true,
	"customer_name":  true,
	"issued_at":      true,
	"status":         true,
	"total_amount":   true,
	"paid_amount":    true,
	"due_amount":     true,
}

// QuoteSortFields contains allowed sort fields for quotes
var QuoteSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"quote_number":  true,
	"customer_name": true,
	"issued_at":     true,
	"valid_until":   true,
	"status":        true,
	"total_amount":  true,
}
