package models

import (
	"time"

	"gorm.io/gorm"
)

type Site struct {
	gorm.Model

	ProjectID uint   `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Address   string
	StartDate *time.Time
	EndDate   *time.Time

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks   []Task  `gorm:"foreignKey:SiteID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
