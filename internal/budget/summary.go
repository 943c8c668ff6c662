// Package budget computes derived cost views over a project's budget lines.
//
// All arithmetic runs on decimals; the original float64 multiply-and-sum
// accumulates rounding drift on currency values.
package budget

import (
	"github.com/chantier-dev/chantier/internal/models"
	"github.com/shopspring/decimal"
)

type Summary struct {
	Total  decimal.Decimal
	ByType map[string]decimal.Decimal
}

// Summarize totals quantity*unitCost across lines and per budget type.
// Types with no lines are absent from ByType. Computed fresh on every call;
// nothing is cached.
func Summarize(lines []models.BudgetLine) Summary {
	summary := Summary{
		Total:  decimal.Zero,
		ByType: make(map[string]decimal.Decimal),
	}

	for _, line := range lines {
		amount := line.Amount()
		summary.Total = summary.Total.Add(amount)

		if existing, ok := summary.ByType[line.Type]; ok {
			summary.ByType[line.Type] = existing.Add(amount)
		} else {
			summary.ByType[line.Type] = amount
		}
	}

	return summary
}

// ByTypeFloats converts the per-type subtotals for the JSON boundary, where
// amounts are exposed as plain numbers.
func (s Summary) ByTypeFloats() map[string]float64 {
	out := make(map[string]float64, len(s.ByType))
	for t, amount := range s.ByType {
		out[t] = amount.InexactFloat64()
	}
	return out
}
