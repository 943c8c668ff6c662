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

type CreateSiteRequest struct {
	Name      string `json:"name" binding:"required,min=2"`
	Address   string `json:"address"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func ListSites(ctx *gin.Context) {
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

	var sites []models.Site

	if err := db.DB.Where("project_id = ?", projectID).Order("created_at DESC").Find(&sites).Error; err != nil {
		utils.Internal(ctx, err)
		return
	}

	items := make([]types.SiteResponse, 0, len(sites))

	for _, site := range sites {
		items = append(items, types.NewSiteResponse(site))
	}

	utils.OK(ctx, http.StatusOK, gin.H{"items": items})
}

func CreateSite(ctx *gin.Context) {
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

	var req CreateSiteRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
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

	site := models.Site{
		ProjectID: projectID,
		Name:      req.Name,
		Address:   req.Address,
		StartDate: startDate,
		EndDate:   endDate,
	}

	// Ownership check and insert share a transaction so a concurrent project
	// delete cannot strand the new site.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := findOwnedProject(tx, projectID, userID); err != nil {
			return err
		}
		return tx.Create(&site).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "project_not_found")
		} else {
			utils.Internal(ctx, err)
		}
		return
	}

	utils.OK(ctx, http.StatusCreated, gin.H{"site": types.NewSiteResponse(site)})
}
