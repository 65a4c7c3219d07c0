package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase asc", "asc", "ASC"},
		{"uppercase asc", "ASC", "ASC"},
		{"mixed case asc", "Asc", "ASC"},
		{"asc with whitespace", "  asc  ", "ASC"},
		{"lowercase desc", "desc", "DESC"},
		{"uppercase desc", "DESC", "DESC"},
		{"empty defaults to desc", "", "DESC"},
		{"garbage defaults to desc", "sideways", "DESC"},
		{"injection attempt defaults to desc", "asc; DROP TABLE invoices", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		allowed  map[string]bool
		expected string
	}{
		{"allowed field passes through", "name", PartnerSortFields, "name"},
		{"common field passes through", "updated_at", CommonSortFields, "updated_at"},
		{"empty falls back to default", "", PartnerSortFields, "created_at"},
		{"whitespace only falls back", "   ", PartnerSortFields, "created_at"},
		{"unknown field falls back", "password", PartnerSortFields, "created_at"},
		{"injection attempt falls back", "name; DELETE FROM customers", PartnerSortFields, "created_at"},
		{"field from another whitelist falls back", "selling_price", PartnerSortFields, "created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortField(tt.input, tt.allowed, "created_at"))
		})
	}
}

func TestSortFieldWhitelists(t *testing.T) {
	// Every whitelist carries the common audit columns so any list
	// endpoint can sort by creation time.
	lists := map[string]map[string]bool{
		"partner":  PartnerSortFields,
		"employee": EmployeeSortFields,
		"product":  ProductSortFields,
		"general":  GeneralSortFields,
		"currency": CurrencySortFields,
		"location": LocationSortFields,
		"invoice":  InvoiceSortFields,
		"quote":    QuoteSortFields,
	}

	for name, fields := range lists {
		t.Run(name, func(t *testing.T) {
			assert.True(t, fields["id"])
			assert.True(t, fields["created_at"])
			assert.True(t, fields["updated_at"])
		})
	}
}
