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

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Code        string `json:"code" binding:"omitempty,min=2"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=DRAFT ACTIVE ON_HOLD DONE CANCELLED"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2"`
	Code        *string `json:"code" binding:"omitempty,min=2"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=DRAFT ACTIVE ON_HOLD DONE CANCELLED"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

// findOwnedProject resolves a project only when the caller manages it. A
// project that exists but belongs to someone else is indistinguishable from
// one that does not exist.
func findOwnedProject(tx *gorm.DB, projectID, userID uint) (models.Project, error) {
	var project models.Project
	err := tx.Where("id = ? AND manager_id = ?", projectID, userID).First(&project).Error
	return project, err
}

func CreateProject(ctx *gin.Context) {
	var req CreateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid_token")
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		return
	}

	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		return
	}

	status := req.Status
	if status == "" {
		status = models.ProjectDraft
	}

	project := models.Project{
		ManagerID:   userID,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Status:      status,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		utils.Internal(ctx, err)
		return
	}

	utils.OK(ctx, http.StatusCreated, gin.H{"project": types.NewProjectResponse(project)})
}

func ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid_token")
		return
	}

	var projects []models.Project

	if err := db.DB.Where("manager_id = ?", userID).Order("created_at DESC").Find(&projects).Error; err != nil {
		utils.Internal(ctx, err)
		return
	}

	items := make([]types.ProjectResponse, 0, len(projects))

	for _, project := range projects {
		items = append(items, types.NewProjectResponse(project))
	}

	utils.OK(ctx, http.StatusOK, gin.H{"items": items})
}

func GetProject(ctx *gin.Context) {
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

	project, err := findOwnedProject(db.DB, projectID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "not_found")
		} else {
			utils.Internal(ctx, err)
		}
		return
	}

	utils.OK(ctx, http.StatusOK, gin.H{"project": types.NewProjectResponse(project)})
}

func UpdateProject(ctx *gin.Context) {
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

	var req UpdateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		return
	}

	project, err := findOwnedProject(db.DB, projectID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "not_found")
		} else {
			utils.Internal(ctx, err)
		}
		return
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.Code != nil {
		updates["code"] = *req.Code
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if req.StartDate != nil {
		startDate, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			utils.Fail(ctx, http.StatusBadRequest, "bad_request")
			return
		}
		updates["start_date"] = startDate
	}

	if req.EndDate != nil {
		endDate, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			utils.Fail(ctx, http.StatusBadRequest, "bad_request")
			return
		}
		updates["end_date"] = endDate
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&project).Updates(updates).Error; err != nil {
			utils.Internal(ctx, err)
			return
		}

		if err := db.DB.First(&project, project.ID).Error; err != nil {
			utils.Internal(ctx, err)
			return
		}
	}

	utils.OK(ctx, http.StatusOK, gin.H{"project": types.NewProjectResponse(project)})
}

func DeleteProject(ctx *gin.Context) {
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

	project, err := findOwnedProject(db.DB, projectID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "not_found")
		} else {
			utils.Internal(ctx, err)
		}
		return
	}

	// Sites, tasks and budget lines go with the project via the cascade
	// constraints declared on the models.
	if err := db.DB.Unscoped().Delete(&project).Error; err != nil {
		utils.Internal(ctx, err)
		return
	}

	utils.OK(ctx, http.StatusOK, nil)
}
