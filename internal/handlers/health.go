package handlers

import (
	"net/http"

	"github.com/chantier-dev/chantier/db"
	"github.com/chantier-dev/chantier/internal/utils"
	"github.com/gin-gonic/gin"
)

// HealthCheck probes storage connectivity.
func HealthCheck(ctx *gin.Context) {
	if err := db.Ping(); err != nil {
		utils.Internal(ctx, err)
		return
	}

	utils.OK(ctx, http.StatusOK, nil)
}

func Ping(ctx *gin.Context) {
	utils.OK(ctx, http.StatusOK, gin.H{"pong": true})
}
