package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetMaterial  = "MATERIAL"
	BudgetLabor     = "LABOR"
	BudgetEquipment = "EQUIPMENT"
	BudgetOther     = "OTHER"
)

type BudgetLine struct {
	gorm.Model

	ProjectID uint            `gorm:"not null;index"`
	Label     string          `gorm:"not null"`
	Type      string          `gorm:"not null;default:OTHER"`
	Quantity  decimal.Decimal `gorm:"type:decimal(14,4);not null;default:1"`
	UnitCost  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Note      string

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// Amount is the derived line cost, never stored.
func (l BudgetLine) Amount() decimal.Decimal {
	return l.Quantity.Mul(l.UnitCost)
}
