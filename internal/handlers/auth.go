package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/chantier-dev/chantier/db"
	"github.com/chantier-dev/chantier/internal/auth"
	"github.com/chantier-dev/chantier/internal/models"
	"github.com/chantier-dev/chantier/internal/types"
	"github.com/chantier-dev/chantier/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN MANAGER WORKER"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User

	err := db.DB.Where("email = ?", req.Email).First(&existing).Error

	if err == nil {
		utils.Fail(ctx, http.StatusConflict, "email_exists")
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Internal(ctx, err)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		utils.Internal(ctx, err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleWorker
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         role,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		utils.Internal(ctx, err)
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Role)

	if err != nil {
		utils.Internal(ctx, err)
		return
	}

	utils.OK(ctx, http.StatusCreated, gin.H{
		"user":  types.NewUserResponse(user),
		"token": token,
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "bad_request")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User

	err := db.DB.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown email and wrong password answer identically.
			utils.Fail(ctx, http.StatusUnauthorized, "invalid_credentials")
			return
		}
		utils.Internal(ctx, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Role)

	if err != nil {
		utils.Internal(ctx, err)
		return
	}

	utils.OK(ctx, http.StatusOK, gin.H{
		"user":  types.NewUserResponse(user),
		"token": token,
	})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid_token")
		return
	}

	var user models.User

	if err := db.DB.First(&user, currentUser.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "user_not_found")
			return
		}
		log.Printf("failed to fetch user %d: %v", currentUser.ID, err)
		utils.Internal(ctx, err)
		return
	}

	utils.OK(ctx, http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}
