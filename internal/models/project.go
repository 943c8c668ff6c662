package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ProjectDraft     = "DRAFT"
	ProjectActive    = "ACTIVE"
	ProjectOnHold    = "ON_HOLD"
	ProjectDone      = "DONE"
	ProjectCancelled = "CANCELLED"
)

type Project struct {
	gorm.Model

	ManagerID   uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Code        string
	Description string
	Status      string `gorm:"not null;default:DRAFT"`
	StartDate   *time.Time
	EndDate     *time.Time

	// Relationships
	Manager     User         `gorm:"foreignKey:ManagerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Sites       []Site       `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks       []Task       `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	BudgetLines []BudgetLine `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
