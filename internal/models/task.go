package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TaskTodo       = "TODO"
	TaskInProgress = "IN_PROGRESS"
	TaskBlocked    = "BLOCKED"
	TaskDone       = "DONE"
)

const (
	PriorityLow      = "LOW"
	PriorityMedium   = "MEDIUM"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

type Task struct {
	gorm.Model

	ProjectID   uint   `gorm:"not null;index"`
	SiteID      *uint  `gorm:"index"`
	AssigneeID  *uint  `gorm:"index"`
	Title       string `gorm:"not null"`
	Description string
	Status      string `gorm:"not null;default:TODO"`
	Priority    string `gorm:"not null;default:MEDIUM"`
	DueDate     *time.Time

	// Relationships
	Project  Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Site     *Site   `gorm:"foreignKey:SiteID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	Assignee *User   `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
