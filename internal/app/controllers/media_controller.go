package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/app/services"
	"github.com/kerem/hostelhub/internal/middleware"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
)

// MediaController handles file uploads for site imagery
type MediaController struct {
	mediaService *services.MediaService
}

// NewMediaController creates a new MediaController
func NewMediaController(mediaService *services.MediaService) *MediaController {
	return &MediaController{mediaService: mediaService}
}

// Upload accepts a multipart form with a "file" part and an optional
// "folder" field used to group assets (hero, team, logos, ...).
func (c *MediaController) Upload(ctx *gin.Context) {
	uploadedBy, ok := middleware.CallerID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("A multipart 'file' part is required"))
		return
	}
	folder := ctx.PostForm("folder")
	if folder == "" {
		folder = "general"
	}
	asset, err := c.mediaService.Upload(ctx, fileHeader, folder, uploadedBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(asset, "File uploaded"))
}

func (c *MediaController) GetAsset(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	asset, err := c.mediaService.GetAsset(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(asset, ""))
}

func (c *MediaController) ListAssets(ctx *gin.Context) {
	assets, err := c.mediaService.ListAssets(ctx, ctx.Query("folder"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assets, ""))
}

func (c *MediaController) DeleteAsset(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.mediaService.DeleteAsset(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "File deleted"))
}
