package handlers

import (
	"errors"
	"net/http"

	"github.com/chantier-dev/chantier/db"
	"github.com/chantier-dev/chantier/internal/budget"
	"github.com/chantier-dev/chantier/internal/models"
	"github.com/chantier-dev/chantier/internal/types"
	"github.com/chantier-dev/chantier/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateBudgetLineRequest struct {
	Label    string           `json:"label" binding:"required,min=2"`
	Type     string           `json:"type" binding:"omitempty,oneof=MATERIAL LABOR EQUIPMENT OTHER"`
	Quantity *decimal.Decimal `json:"quantity"`
	UnitCost *decimal.Decimal `json:"unitCost"`
	Note     string           `json:"note"`
}

func ListBudgetLines(ctx *gin.Context) {
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

	var lines []models.BudgetLine

	if err := db.DB.Where("project_id = ?", projectID).Order("created_at DESC").Find(&lines).Error; err != nil {
		utils.Internal(ctx, err)
		return
	}

	items := make([]types.BudgetLineResponse, 0, len(lines))

	for _, line := range lines {
		items = append(items, types.NewBudgetLineResponse(line))
	}

	utils.OK(ctx, http.StatusOK, gin.H{"items": items})
}

func CreateBudgetLine(ctx *gin.Context) {
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

	var req CreateBudgetLineRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		return
	}

	quantity := decimal.NewFromInt(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	unitCost := decimal.Zero
	if req.UnitCost != nil {
		unitCost = *req.UnitCost
	}

	if !quantity.IsPositive() {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		return
	}

	if unitCost.IsNegative() {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		return
	}

	lineType := req.Type
	if lineType == "" {
		lineType = models.BudgetOther
	}

	line := models.BudgetLine{
		ProjectID: projectID,
		Label:     req.Label,
		Type:      lineType,
		Quantity:  quantity,
		UnitCost:  unitCost,
		Note:      req.Note,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := findOwnedProject(tx, projectID, userID); err != nil {
			return err
		}
		return tx.Create(&line).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "project_not_found")
		} else {
			utils.Internal(ctx, err)
		}
		return
	}

	utils.OK(ctx, http.StatusCreated, gin.H{"line": types.NewBudgetLineResponse(line)})
}

func GetBudgetSummary(ctx *gin.Context) {
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

	var lines []models.BudgetLine

	if err := db.DB.Where("project_id = ?", projectID).Find(&lines).Error; err != nil {
		utils.Internal(ctx, err)
		return
	}

	summary := budget.Summarize(lines)

	utils.OK(ctx, http.StatusOK, gin.H{
		"total":  summary.Total.InexactFloat64(),
		"byType": summary.ByTypeFloats(),
	})
}
