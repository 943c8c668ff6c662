package types

import (
	"time"

	"github.com/chantier-dev/chantier/internal/models"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProjectResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	ManagerID   uint       `json:"managerId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type SiteResponse struct {
	ID        uint       `json:"id"`
	ProjectID uint       `json:"projectId"`
	Name      string     `json:"name"`
	Address   string     `json:"address,omitempty"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	CreatedAt time.Time  `json:"createdAt"`
}

type TaskResponse struct {
	ID          uint       `json:"id"`
	ProjectID   uint       `json:"projectId"`
	SiteID      *uint      `json:"siteId"`
	AssigneeID  *uint      `json:"assigneeId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type BudgetLineResponse struct {
	ID        uint      `json:"id"`
	ProjectID uint      `json:"projectId"`
	Label     string    `json:"label"`
	Type      string    `json:"type"`
	Quantity  float64   `json:"quantity"`
	UnitCost  float64   `json:"unitCost"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func NewProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		ManagerID:   p.ManagerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewSiteResponse(s models.Site) SiteResponse {
	return SiteResponse{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		Name:      s.Name,
		Address:   s.Address,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		CreatedAt: s.CreatedAt,
	}
}

func NewTaskResponse(t models.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		SiteID:      t.SiteID,
		AssigneeID:  t.AssigneeID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
}

func NewBudgetLineResponse(l models.BudgetLine) BudgetLineResponse {
	return BudgetLineResponse{
		ID:        l.ID,
		ProjectID: l.ProjectID,
		Label:     l.Label,
		Type:      l.Type,
		Quantity:  l.Quantity.InexactFloat64(),
		UnitCost:  l.UnitCost.InexactFloat64(),
		Note:      l.Note,
		CreatedAt: l.CreatedAt,
	}
}
