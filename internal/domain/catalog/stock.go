package catalog

// StockSummary is one aggregated row of a product list view. Unit rows
// sharing a SKU collapse into a single summary with their stock summed.
type StockSummary struct {
	Product
	TotalStock int
	RowCount   int
}

// AggregateStock folds unit rows by SKU preserving first-seen order.
// The first row seen for a SKU contributes every descriptive field;
// later rows only add their stock. Negative stock counts as zero.
func AggregateStock(rows []*Product) []StockSummary {
	summaries := make([]StockSummary, 0, len(rows))
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		if row == nil {
			continue
		}
		stock := row.Stock
		if stock < 0 {
			stock = 0
		}
		if i, ok := index[row.SKU]; ok {
			summaries[i].TotalStock += stock
			summaries[i].RowCount++
			continue
		}
		index[row.SKU] = len(summaries)
		summaries = append(summaries, StockSummary{
			Product:    *row,
			TotalStock: stock,
			RowCount:   1,
		})
	}

	return summaries
}
