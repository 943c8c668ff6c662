package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var ErrInvalidID = errors.New("invalid id")

// GetProjectID parses the project_id path parameter. Non-numeric input is
// rejected outright rather than coerced.
func GetProjectID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "project_id")
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return 0, ErrInvalidID
	}

	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil {
		return 0, ErrInvalidID
	}

	return uint(id), nil
}
