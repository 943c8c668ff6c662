package budget

import (
	"testing"

	"github.com/chantier-dev/chantier/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(lineType string, quantity, unitCost string) models.BudgetLine {
	return models.BudgetLine{
		Type:     lineType,
		Quantity: decimal.RequireFromString(quantity),
		UnitCost: decimal.RequireFromString(unitCost),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.True(t, s.Total.IsZero())
	assert.Empty(t, s.ByType)
}

func TestSummarizeTotalsAndGrouping(t *testing.T) {
	s := Summarize([]models.BudgetLine{
		line(models.BudgetMaterial, "2", "50"),
		line(models.BudgetLabor, "3", "20"),
	})

	assert.True(t, s.Total.Equal(decimal.RequireFromString("160")), "total = %s", s.Total)

	require.Len(t, s.ByType, 2)
	assert.True(t, s.ByType[models.BudgetMaterial].Equal(decimal.RequireFromString("100")))
	assert.True(t, s.ByType[models.BudgetLabor].Equal(decimal.RequireFromString("60")))
}

func TestSummarizeOmitsEmptyTypes(t *testing.T) {
	s := Summarize([]models.BudgetLine{
		line(models.BudgetOther, "1", "9.99"),
	})

	require.Len(t, s.ByType, 1)
	assert.NotContains(t, s.ByType, models.BudgetMaterial)
	assert.NotContains(t, s.ByType, models.BudgetEquipment)
}

func TestSummarizeMergesSameType(t *testing.T) {
	s := Summarize([]models.BudgetLine{
		line(models.BudgetMaterial, "1", "10"),
		line(models.BudgetMaterial, "2", "2.50"),
	})

	require.Len(t, s.ByType, 1)
	assert.True(t, s.ByType[models.BudgetMaterial].Equal(decimal.RequireFromString("15")))
}

// Ten lines of 0.1 sum to exactly 1 under decimal arithmetic; the same loop
// on float64 lands on 0.9999999999999999.
func TestSummarizeNoFloatDrift(t *testing.T) {
	var lines []models.BudgetLine
	for i := 0; i < 10; i++ {
		lines = append(lines, line(models.BudgetMaterial, "1", "0.1"))
	}

	s := Summarize(lines)

	assert.True(t, s.Total.Equal(decimal.RequireFromString("1")), "total = %s", s.Total)
	assert.Equal(t, float64(1), s.Total.InexactFloat64())
}

func TestByTypeFloats(t *testing.T) {
	s := Summarize([]models.BudgetLine{
		line(models.BudgetMaterial, "10", "5"),
	})

	assert.Equal(t, map[string]float64{models.BudgetMaterial: 50}, s.ByTypeFloats())
}
