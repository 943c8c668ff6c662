package handlers

import (
	"errors"
	"net/http"

	"github.com/chantier-dev/chantier/db"
	"github.com/chantier-dev/chantier/internal/models"
	"github.com/chantier-dev/chantier/internal/types"
	"github.com/chantier-dev/chantier/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=2"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS BLOCKED DONE"`
	Priority    string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	DueDate     string `json:"dueDate"`
	SiteID      *uint  `json:"siteId"`
	AssigneeID  *uint  `json:"assigneeId"`
}

func ListTasks(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid_id")
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid_token")
		return
	}

	if _, err := findOwnedProject(db.DB, projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "project_not_found")
		} else {
			utils.Internal(ctx, err)
		}
		return
	}

	var tasks []models.Task

	if err := db.DB.Where("project_id = ?", projectID).Order("created_at DESC").Find(&tasks).Error; err != nil {
		utils.Internal(ctx, err)
		return
	}

	items := make([]types.TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		items = append(items, types.NewTaskResponse(task))
	}

	utils.OK(ctx, http.StatusOK, gin.H{"items": items})
}

func CreateTask(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid_id")
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid_token")
		return
	}

	var req CreateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		return
	}

	dueDate, err := utils.ParseDate(req.DueDate)
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		return
	}

	status := req.Status
	if status == "" {
		status = models.TaskTodo
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	task := models.Task{
		ProjectID:   projectID,
		SiteID:      req.SiteID,
		AssigneeID:  req.AssigneeID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
	}

	badRef := errors.New("bad reference")

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := findOwnedProject(tx, projectID, userID); err != nil {
			return err
		}

		// A referenced site must sit in the same project.
		if req.SiteID != nil {
			var site models.Site
			if err := tx.Where("id = ? AND project_id = ?", *req.SiteID, projectID).First(&site).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return badRef
				}
				return err
			}
		}

		if req.AssigneeID != nil {
			var assignee models.User
			if err := tx.First(&assignee, *req.AssigneeID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return badRef
				}
				return err
			}
		}

		return tx.Create(&task).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.Fail(ctx, http.StatusNotFound, "project_not_found")
		case errors.Is(err, badRef):
			utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		default:
			utils.Internal(ctx, err)
		}
		return
	}

	utils.OK(ctx, http.StatusCreated, gin.H{"task": types.NewTaskResponse(task)})
}
