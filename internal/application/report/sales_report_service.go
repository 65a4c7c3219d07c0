package report

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/billing"
	"github.com/openbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const topProductLimit = 10

// SalesReportService aggregates invoice data into sales reports
type SalesReportService struct {
	invoiceRepo billing.InvoiceRepository
}

// NewSalesReportService creates a new SalesReportService
func NewSalesReportService(invoiceRepo billing.InvoiceRepository) *SalesReportService {
	return &SalesReportService{
		invoiceRepo: invoiceRepo,
	}
}

// Generate builds the sales report for an inclusive date window. Void
// invoices never contribute.
func (s *SalesReportService) Generate(ctx context.Context, tenantID uuid.UUID, filter SalesReportFilter) (*SalesReportResponse, error) {
	from, err := time.Parse("2006-01-02", filter.From)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "from date must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", filter.To)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "to date must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return nil, shared.NewDomainError("INVALID_DATE_RANGE", "to date must not precede from date")
	}

	// extend to the end of the "to" day so the window is inclusive
	windowEnd := to.Add(24*time.Hour - time.Nanosecond)

	invoices, err := s.invoiceRepo.FindIssuedBetween(ctx, tenantID, from, windowEnd)
	if err != nil {
		return nil, err
	}

	report := &SalesReportResponse{
		From:        from,
		To:          to,
		Subtotal:    decimal.Zero,
		TaxAmount:   decimal.Zero,
		Discount:    decimal.Zero,
		Total:       decimal.Zero,
		Paid:        decimal.Zero,
		Due:         decimal.Zero,
		Daily:       []DailySales{},
		TopProducts: []TopProduct{},
	}

	dailyIndex := make(map[string]int)
	productIndex := make(map[string]int)
	products := make([]TopProduct, 0)

	for _, inv := range invoices {
		if inv.Status == billing.InvoiceStatusVoid {
			continue
		}

		report.InvoiceCount++
		report.Subtotal = report.Subtotal.Add(inv.Subtotal)
		report.TaxAmount = report.TaxAmount.Add(inv.TaxAmount)
		report.Discount = report.Discount.Add(inv.DiscountAmount)
		report.Total = report.Total.Add(inv.TotalAmount)
		report.Paid = report.Paid.Add(inv.PaidAmount)
		report.Due = report.Due.Add(inv.DueAmount)

		day := inv.IssuedAt.Format("2006-01-02")
		di, ok := dailyIndex[day]
		if !ok {
			di = len(report.Daily)
			dailyIndex[day] = di
			report.Daily = append(report.Daily, DailySales{
				Date:      day,
				Subtotal:  decimal.Zero,
				TaxAmount: decimal.Zero,
				Discount:  decimal.Zero,
				Total:     decimal.Zero,
				Paid:      decimal.Zero,
				Due:       decimal.Zero,
			})
		}
		report.Daily[di].InvoiceCount++
		report.Daily[di].Subtotal = report.Daily[di].Subtotal.Add(inv.Subtotal)
		report.Daily[di].TaxAmount = report.Daily[di].TaxAmount.Add(inv.TaxAmount)
		report.Daily[di].Discount = report.Daily[di].Discount.Add(inv.DiscountAmount)
		report.Daily[di].Total = report.Daily[di].Total.Add(inv.TotalAmount)
		report.Daily[di].Paid = report.Daily[di].Paid.Add(inv.PaidAmount)
		report.Daily[di].Due = report.Daily[di].Due.Add(inv.DueAmount)

		for idx := range inv.Items {
			item := inv.Items[idx]
			key := item.SKU
			if key == "" {
				key = item.Name
			}
			pi, ok := productIndex[key]
			if !ok {
				pi = len(products)
				productIndex[key] = pi
				products = append(products, TopProduct{
					SKU:      item.SKU,
					Name:     item.Name,
					Quantity: decimal.Zero,
					Revenue:  decimal.Zero,
				})
			}
			products[pi].Quantity = products[pi].Quantity.Add(item.Quantity)
			products[pi].Revenue = products[pi].Revenue.Add(item.Amount)
		}
	}

	sort.Slice(report.Daily, func(i, j int) bool {
		return report.Daily[i].Date < report.Daily[j].Date
	})
	sort.Slice(products, func(i, j int) bool {
		return products[i].Revenue.GreaterThan(products[j].Revenue)
	})
	if len(products) > topProductLimit {
		products = products[:topProductLimit]
	}
	report.TopProducts = products

	return report, nil
}
