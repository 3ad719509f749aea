package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/app/services"
	"github.com/kerem/hostelhub/internal/middleware"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
)

// FacilityController handles shared facilities and damage reports
type FacilityController struct {
	facilityService *services.FacilityService
}

// NewFacilityController creates a new FacilityController
func NewFacilityController(facilityService *services.FacilityService) *FacilityController {
	return &FacilityController{facilityService: facilityService}
}

func (c *FacilityController) CreateFacility(ctx *gin.Context) {
	var req dto.CreateFacilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	facility, err := c.facilityService.CreateFacility(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(facility, "Facility created"))
}

func (c *FacilityController) GetFacility(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	facility, err := c.facilityService.GetFacility(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(facility, ""))
}

func (c *FacilityController) ListFacilities(ctx *gin.Context) {
	facilities, err := c.facilityService.ListFacilities(ctx, includeInactive(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(facilities, ""))
}

func (c *FacilityController) UpdateFacility(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateFacilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	facility, err := c.facilityService.UpdateFacility(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(facility, "Facility updated"))
}

func (c *FacilityController) DeleteFacility(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.facilityService.DeleteFacility(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Facility deleted"))
}

// ReportDamage lets an authenticated resident flag a broken facility
func (c *FacilityController) ReportDamage(ctx *gin.Context) {
	facilityID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	reporterID, ok := middleware.CallerID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}
	var req dto.CreateDamageReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	report, err := c.facilityService.ReportDamage(ctx, facilityID, reporterID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(report, "Damage report filed"))
}

func (c *FacilityController) ListDamageReports(ctx *gin.Context) {
	facilityID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	reports, err := c.facilityService.ListDamageReports(ctx, facilityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reports, ""))
}

func (c *FacilityController) UpdateRepairStatus(ctx *gin.Context) {
	reportID, ok := parseIDParam(ctx, "reportId")
	if !ok {
		return
	}
	var req dto.UpdateRepairStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	if err := c.facilityService.UpdateRepairStatus(ctx, reportID, models.RepairStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Repair status updated"))
}
