package models

import "gorm.io/gorm"

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleWorker  = "WORKER"
)

type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:WORKER"`

	// Relationships
	ManagedProjects []Project `gorm:"foreignKey:ManagerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	AssignedTasks   []Task    `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
