package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/app/services"
	"github.com/kerem/hostelhub/internal/middleware"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
)

// HostelController handles hostels, rooms, room requests and the
// dashboard aggregates
type HostelController struct {
	hostelService *services.HostelService
}

// NewHostelController creates a new HostelController
func NewHostelController(hostelService *services.HostelService) *HostelController {
	return &HostelController{hostelService: hostelService}
}

// CreateHostel creates a hostel
func (c *HostelController) CreateHostel(ctx *gin.Context) {
	var req dto.CreateHostelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	hostel, err := c.hostelService.CreateHostel(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(hostel, "Hostel created"))
}

// GetHostel retrieves a hostel with its rooms
func (c *HostelController) GetHostel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	hostel, err := c.hostelService.GetHostel(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hostel, ""))
}

// ListHostels retrieves hostels, optionally filtered by campus
func (c *HostelController) ListHostels(ctx *gin.Context) {
	hostels, err := c.hostelService.ListHostels(ctx, ctx.Query("campus"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hostels, ""))
}

// UpdateHostel applies a partial update to a hostel
func (c *HostelController) UpdateHostel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateHostelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	hostel, err := c.hostelService.UpdateHostel(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hostel, "Hostel updated"))
}

// DeleteHostel removes a hostel with no rooms
func (c *HostelController) DeleteHostel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.hostelService.DeleteHostel(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Hostel deleted"))
}

// CreateRoom adds a room to a hostel
func (c *HostelController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	room, err := c.hostelService.CreateRoom(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(room, "Room created"))
}

// GetRoom retrieves a room with its occupants
func (c *HostelController) GetRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	room, err := c.hostelService.GetRoom(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(room, ""))
}

// UpdateRoom applies a partial update to a room
func (c *HostelController) UpdateRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	room, err := c.hostelService.UpdateRoom(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(room, "Room updated"))
}

// DeleteRoom removes an empty room
func (c *HostelController) DeleteRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.hostelService.DeleteRoom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Room deleted"))
}

// VacateRoom removes an occupant from a room
func (c *HostelController) VacateRoom(ctx *gin.Context) {
	roomID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.hostelService.VacateRoom(ctx, roomID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Room vacated"))
}

// RequestRoom files a room request for the authenticated student
func (c *HostelController) RequestRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	requesterID, ok := middleware.CallerID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	request, err := c.hostelService.RequestRoom(ctx, requesterID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(request, "Room request filed"))
}

// GetRoomRequest retrieves a room request
func (c *HostelController) GetRoomRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.hostelService.GetRoomRequest(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(request, ""))
}

// ListRoomRequests retrieves room requests, optionally filtered by status
func (c *HostelController) ListRoomRequests(ctx *gin.Context) {
	requests, err := c.hostelService.ListRoomRequests(ctx, ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests, ""))
}

// ApproveRoomRequest grants a pending room request
func (c *HostelController) ApproveRoomRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resolverID, ok := middleware.CallerID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	request, err := c.hostelService.ApproveRoomRequest(ctx, id, resolverID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(request, "Room request approved"))
}

// DeclineRoomRequest rejects a pending room request
func (c *HostelController) DeclineRoomRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resolverID, ok := middleware.CallerID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	request, err := c.hostelService.DeclineRoomRequest(ctx, id, resolverID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(request, "Room request declined"))
}

// GetBedStats summarizes bed availability
func (c *HostelController) GetBedStats(ctx *gin.Context) {
	stats, err := c.hostelService.GetBedStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}

// GetDashboardStats assembles the admin dashboard numbers
func (c *HostelController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.hostelService.GetDashboardStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
