package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/app/services"
	"github.com/kerem/hostelhub/internal/middleware"
	"github.com/kerem/hostelhub/internal/pkg/helpers"
)

// IntakeController handles the public intake forms (complaints and
// membership applications) plus their admin review surface.
type IntakeController struct {
	intakeService *services.IntakeService
}

// NewIntakeController creates a new IntakeController
func NewIntakeController(intakeService *services.IntakeService) *IntakeController {
	return &IntakeController{intakeService: intakeService}
}

// FileComplaint is the public, unauthenticated complaint form
func (c *IntakeController) FileComplaint(ctx *gin.Context) {
	var req dto.CreateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	complaint, err := c.intakeService.FileComplaint(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(complaint, "Complaint received"))
}

func (c *IntakeController) GetComplaint(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	complaint, err := c.intakeService.GetComplaint(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complaint, ""))
}

func (c *IntakeController) ListComplaints(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)
	complaints, pagination, err := c.intakeService.ListComplaints(ctx, ctx.Query("status"), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PagedData{
		Items:      complaints,
		Pagination: pagination,
	}, ""))
}

func (c *IntakeController) UpdateComplaintStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateComplaintStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	complaint, err := c.intakeService.UpdateComplaintStatus(ctx, id, models.ComplaintStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complaint, "Complaint status updated"))
}

func (c *IntakeController) DeleteComplaint(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.intakeService.DeleteComplaint(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Complaint deleted"))
}

// SubmitApplication is the public, unauthenticated membership form
func (c *IntakeController) SubmitApplication(ctx *gin.Context) {
	var req dto.CreateJoinApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	application, err := c.intakeService.SubmitApplication(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(application, "Application received"))
}

func (c *IntakeController) GetApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	application, err := c.intakeService.GetApplication(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(application, ""))
}

func (c *IntakeController) ListApplications(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)
	applications, pagination, err := c.intakeService.ListApplications(ctx, ctx.Query("status"), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PagedData{
		Items:      applications,
		Pagination: pagination,
	}, ""))
}

func (c *IntakeController) ResolveApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	application, err := c.intakeService.ResolveApplication(ctx, id, models.ApplicationStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(application, "Application resolved"))
}

func (c *IntakeController) DeleteApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.intakeService.DeleteApplication(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Application deleted"))
}
