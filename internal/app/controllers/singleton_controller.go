package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/app/services"
	"github.com/kerem/hostelhub/internal/middleware"
)

// SingletonController handles the site-wide one-row documents
// (company overview, contact details, membership level, logos).
type SingletonController struct {
	singletonService *services.SingletonService
}

// NewSingletonController creates a new SingletonController
func NewSingletonController(singletonService *services.SingletonService) *SingletonController {
	return &SingletonController{singletonService: singletonService}
}

func (c *SingletonController) GetCompanyOverview(ctx *gin.Context) {
	doc, err := c.singletonService.GetCompanyOverview(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(doc, ""))
}

func (c *SingletonController) UpsertCompanyOverview(ctx *gin.Context) {
	var req dto.UpsertCompanyOverviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	doc, err := c.singletonService.UpsertCompanyOverview(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(doc, "Company overview saved"))
}

func (c *SingletonController) GetContactDetails(ctx *gin.Context) {
	doc, err := c.singletonService.GetContactDetails(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(doc, ""))
}

func (c *SingletonController) UpsertContactDetails(ctx *gin.Context) {
	var req dto.UpsertContactDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	doc, err := c.singletonService.UpsertContactDetails(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(doc, "Contact details saved"))
}

func (c *SingletonController) GetMembershipLevel(ctx *gin.Context) {
	doc, err := c.singletonService.GetMembershipLevel(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(doc, ""))
}

func (c *SingletonController) UpsertMembershipLevel(ctx *gin.Context) {
	var req dto.UpsertMembershipLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	doc, err := c.singletonService.UpsertMembershipLevel(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(doc, "Membership level saved"))
}

func (c *SingletonController) GetLogo(ctx *gin.Context) {
	doc, err := c.singletonService.GetLogo(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(doc, ""))
}

func (c *SingletonController) UpsertLogo(ctx *gin.Context) {
	var req dto.UpsertLogoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	doc, err := c.singletonService.UpsertLogo(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(doc, "Logos saved"))
}
