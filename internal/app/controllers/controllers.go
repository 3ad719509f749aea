package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/middleware"
)

// parseIDParam reads a positive integer path parameter and writes the
// 400 response itself on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithField(name).
			WithDetails("Must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// includeInactive reports whether a list should expose inactive entries.
// Only staff and above may ask for them; the public always gets the
// active-only view regardless of query parameters.
func includeInactive(ctx *gin.Context) bool {
	if ctx.Query("includeInactive") != "true" {
		return false
	}
	role, ok := middleware.CallerRole(ctx)
	return ok && role.HasAtLeast(models.RoleStaff)
}

func respondBindingError(ctx *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data").
		WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
