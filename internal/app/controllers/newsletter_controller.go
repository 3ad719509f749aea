package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/app/services"
	"github.com/kerem/hostelhub/internal/middleware"
)

// NewsletterController handles subscriber signup and campaign management
type NewsletterController struct {
	newsletterService *services.NewsletterService
}

// NewNewsletterController creates a new NewsletterController
func NewNewsletterController(newsletterService *services.NewsletterService) *NewsletterController {
	return &NewsletterController{newsletterService: newsletterService}
}

// Subscribe is the public signup endpoint. Re-subscribing an
// unsubscribed address reactivates it.
func (c *NewsletterController) Subscribe(ctx *gin.Context) {
	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	subscriber, err := c.newsletterService.Subscribe(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(subscriber, "Subscribed"))
}

func (c *NewsletterController) Unsubscribe(ctx *gin.Context) {
	var req dto.UnsubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	if err := c.newsletterService.Unsubscribe(ctx, req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Unsubscribed"))
}

func (c *NewsletterController) CreateCampaign(ctx *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	campaign, err := c.newsletterService.CreateCampaign(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(campaign, "Campaign created"))
}

func (c *NewsletterController) GetCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	campaign, err := c.newsletterService.GetCampaign(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(campaign, ""))
}

func (c *NewsletterController) ListCampaigns(ctx *gin.Context) {
	campaigns, err := c.newsletterService.ListCampaigns(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(campaigns, ""))
}

func (c *NewsletterController) UpdateCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	campaign, err := c.newsletterService.UpdateCampaign(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(campaign, "Campaign updated"))
}

func (c *NewsletterController) DeleteCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.newsletterService.DeleteCampaign(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Campaign deleted"))
}

// SendCampaign dispatches a draft campaign to every active subscriber.
// A campaign can only be sent once.
func (c *NewsletterController) SendCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	result, err := c.newsletterService.SendCampaign(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Campaign sent"))
}
