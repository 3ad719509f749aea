package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/app/services"
	"github.com/kerem/hostelhub/internal/middleware"
)

// ContentController handles the public marketing content collections
type ContentController struct {
	contentService *services.ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService *services.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// --- Hero slides ---

func (c *ContentController) CreateHeroSlide(ctx *gin.Context) {
	var req dto.CreateHeroSlideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	slide, err := c.contentService.CreateHeroSlide(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(slide, "Hero slide created"))
}

func (c *ContentController) GetHeroSlide(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	slide, err := c.contentService.GetHeroSlide(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slide, ""))
}

func (c *ContentController) ListHeroSlides(ctx *gin.Context) {
	slides, err := c.contentService.ListHeroSlides(ctx, includeInactive(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slides, ""))
}

func (c *ContentController) UpdateHeroSlide(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateHeroSlideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	slide, err := c.contentService.UpdateHeroSlide(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slide, "Hero slide updated"))
}

func (c *ContentController) DeleteHeroSlide(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.contentService.DeleteHeroSlide(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Hero slide deleted"))
}

// --- Testimonials ---

func (c *ContentController) CreateTestimonial(ctx *gin.Context) {
	var req dto.CreateTestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	t, err := c.contentService.CreateTestimonial(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(t, "Testimonial created"))
}

func (c *ContentController) GetTestimonial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	t, err := c.contentService.GetTestimonial(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(t, ""))
}

func (c *ContentController) ListTestimonials(ctx *gin.Context) {
	items, err := c.contentService.ListTestimonials(ctx, includeInactive(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
}

func (c *ContentController) UpdateTestimonial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateTestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	t, err := c.contentService.UpdateTestimonial(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(t, "Testimonial updated"))
}

func (c *ContentController) DeleteTestimonial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.contentService.DeleteTestimonial(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Testimonial deleted"))
}

// --- Team members ---

func (c *ContentController) CreateTeamMember(ctx *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	m, err := c.contentService.CreateTeamMember(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(m, "Team member created"))
}

func (c *ContentController) GetTeamMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	m, err := c.contentService.GetTeamMember(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(m, ""))
}

func (c *ContentController) ListTeamMembers(ctx *gin.Context) {
	items, err := c.contentService.ListTeamMembers(ctx, includeInactive(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
}

func (c *ContentController) UpdateTeamMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	m, err := c.contentService.UpdateTeamMember(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(m, "Team member updated"))
}

func (c *ContentController) DeleteTeamMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.contentService.DeleteTeamMember(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Team member deleted"))
}

// --- Welcome sections ---

func (c *ContentController) CreateWelcomeSection(ctx *gin.Context) {
	var req dto.CreateWelcomeSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	w, err := c.contentService.CreateWelcomeSection(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(w, "Welcome section created"))
}

func (c *ContentController) GetWelcomeSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	w, err := c.contentService.GetWelcomeSection(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(w, ""))
}

func (c *ContentController) ListWelcomeSections(ctx *gin.Context) {
	items, err := c.contentService.ListWelcomeSections(ctx, includeInactive(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
}

func (c *ContentController) UpdateWelcomeSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateWelcomeSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	w, err := c.contentService.UpdateWelcomeSection(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(w, "Welcome section updated"))
}

func (c *ContentController) DeleteWelcomeSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.contentService.DeleteWelcomeSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Welcome section deleted"))
}

// --- Why-choose-us features ---

func (c *ContentController) CreateFeature(ctx *gin.Context) {
	var req dto.CreateFeatureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	f, err := c.contentService.CreateFeature(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(f, "Feature created"))
}

func (c *ContentController) GetFeature(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	f, err := c.contentService.GetFeature(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(f, ""))
}

func (c *ContentController) ListFeatures(ctx *gin.Context) {
	items, err := c.contentService.ListFeatures(ctx, includeInactive(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
}

func (c *ContentController) UpdateFeature(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateFeatureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	f, err := c.contentService.UpdateFeature(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(f, "Feature updated"))
}

func (c *ContentController) DeleteFeature(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.contentService.DeleteFeature(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Feature deleted"))
}

// --- Message tickers ---

func (c *ContentController) CreateTicker(ctx *gin.Context) {
	var req dto.CreateTickerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	t, err := c.contentService.CreateTicker(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(t, "Message ticker created"))
}

func (c *ContentController) GetTicker(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	t, err := c.contentService.GetTicker(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(t, ""))
}

func (c *ContentController) ListTickers(ctx *gin.Context) {
	items, err := c.contentService.ListTickers(ctx, includeInactive(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
}

func (c *ContentController) UpdateTicker(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateTickerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	t, err := c.contentService.UpdateTicker(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(t, "Message ticker updated"))
}

func (c *ContentController) DeleteTicker(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.contentService.DeleteTicker(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Message ticker deleted"))
}

// --- Leadership members ---

func (c *ContentController) CreateLeadershipMember(ctx *gin.Context) {
	var req dto.CreateLeadershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	m, err := c.contentService.CreateLeadershipMember(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(m, "Leadership member created"))
}

func (c *ContentController) GetLeadershipMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	m, err := c.contentService.GetLeadershipMember(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(m, ""))
}

func (c *ContentController) ListLeadershipMembers(ctx *gin.Context) {
	items, err := c.contentService.ListLeadershipMembers(ctx, includeInactive(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
}

func (c *ContentController) UpdateLeadershipMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateLeadershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	m, err := c.contentService.UpdateLeadershipMember(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(m, "Leadership member updated"))
}

func (c *ContentController) DeleteLeadershipMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.contentService.DeleteLeadershipMember(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Leadership member deleted"))
}

// --- Departments ---

func (c *ContentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	d, err := c.contentService.CreateDepartment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(d, "Department created"))
}

func (c *ContentController) GetDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	d, err := c.contentService.GetDepartment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(d, ""))
}

func (c *ContentController) ListDepartments(ctx *gin.Context) {
	items, err := c.contentService.ListDepartments(ctx, includeInactive(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
}

func (c *ContentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	d, err := c.contentService.UpdateDepartment(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(d, "Department updated"))
}

func (c *ContentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.contentService.DeleteDepartment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Department deleted"))
}
