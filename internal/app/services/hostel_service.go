package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/geocode"
	"github.com/kerem/hostelhub/internal/pkg/helpers"
	"github.com/kerem/hostelhub/internal/pkg/logger"
)

// IHostelRepository is the hostel/room/request persistence surface
type IHostelRepository interface {
	CreateHostel(ctx context.Context, hostel *models.Hostel) error
	GetHostelByID(ctx context.Context, id int64) (*models.Hostel, error)
	ListHostels(ctx context.Context, campus string) ([]*models.Hostel, error)
	UpdateHostel(ctx context.Context, hostel *models.Hostel) error
	DeleteHostel(ctx context.Context, id int64) error

	CreateRoom(ctx context.Context, room *models.Room) error
	GetRoomByID(ctx context.Context, id int64) (*models.Room, error)
	ListRoomsByHostel(ctx context.Context, hostelID int64) ([]*models.Room, error)
	UpdateRoomNumber(ctx context.Context, roomID int64, number string) error
	UpdateRoomCapacity(ctx context.Context, roomID int64, capacity int) error
	DeleteRoom(ctx context.Context, id int64) error
	ListOccupants(ctx context.Context, roomID int64) ([]*models.User, error)

	CreateRoomRequest(ctx context.Context, req *models.RoomRequest) error
	GetRoomRequestByID(ctx context.Context, id int64) (*models.RoomRequest, error)
	ListRoomRequests(ctx context.Context, status models.RoomRequestStatus) ([]*models.RoomRequest, error)
	ApproveRoomRequest(ctx context.Context, requestID, resolverID int64) error
	DeclineRoomRequest(ctx context.Context, requestID, resolverID int64) error
	VacateRoom(ctx context.Context, roomID, userID int64) error

	GetBedStats(ctx context.Context) (*dto.BedStats, error)
	CountHostels(ctx context.Context) (hostels, campuses int, err error)
	CountRooms(ctx context.Context) (int, error)
	CountPendingRequests(ctx context.Context) (int64, error)
	CountUsersByRole(ctx context.Context) (map[string]int64, error)
	CountOccupantsByGender(ctx context.Context) (map[string]int64, error)
}

// IIntakeCounter is the slice of the intake repository the dashboard needs
type IIntakeCounter interface {
	CountOpenComplaints(ctx context.Context) (int64, error)
}

// HostelService handles hostels, rooms, room requests and the dashboard
type HostelService struct {
	hostelRepo IHostelRepository
	intakeRepo IIntakeCounter
	geocoder   geocode.Geocoder
}

// NewHostelService creates a new HostelService
func NewHostelService(hostelRepo IHostelRepository, intakeRepo IIntakeCounter, geocoder geocode.Geocoder) *HostelService {
	return &HostelService{
		hostelRepo: hostelRepo,
		intakeRepo: intakeRepo,
		geocoder:   geocoder,
	}
}

// CreateHostel creates a hostel and geocodes its address. Geocoding is
// best effort: an unreachable geocoder leaves the coordinates empty
// rather than failing the create.
func (s *HostelService) CreateHostel(ctx context.Context, req *dto.CreateHostelRequest) (*models.Hostel, error) {
	hostel := &models.Hostel{
		Name:    req.Name,
		Campus:  req.Campus,
		Address: req.Address,
		Gender:  req.Gender,
	}

	s.resolveCoordinates(ctx, hostel)

	if err := s.hostelRepo.CreateHostel(ctx, hostel); err != nil {
		return nil, err
	}

	return hostel, nil
}

// GetHostel retrieves a hostel with its rooms
func (s *HostelService) GetHostel(ctx context.Context, id int64) (*models.Hostel, error) {
	hostel, err := s.hostelRepo.GetHostelByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rooms, err := s.hostelRepo.ListRoomsByHostel(ctx, id)
	if err != nil {
		return nil, err
	}
	hostel.Rooms = rooms

	return hostel, nil
}

// ListHostels retrieves hostels, optionally filtered by campus
func (s *HostelService) ListHostels(ctx context.Context, campus string) ([]*models.Hostel, error) {
	return s.hostelRepo.ListHostels(ctx, campus)
}

// UpdateHostel applies a partial update. A changed address triggers a
// fresh geocode.
func (s *HostelService) UpdateHostel(ctx context.Context, id int64, req *dto.UpdateHostelRequest) (*models.Hostel, error) {
	hostel, err := s.hostelRepo.GetHostelByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hostel.Name = helpers.CoalesceString(req.Name, hostel.Name)
	hostel.Campus = helpers.CoalesceString(req.Campus, hostel.Campus)
	hostel.Gender = helpers.CoalesceStringPtr(req.Gender, hostel.Gender)

	if req.Address != nil && *req.Address != hostel.Address {
		hostel.Address = *req.Address
		hostel.Latitude = nil
		hostel.Longitude = nil
		s.resolveCoordinates(ctx, hostel)
	}

	if err := s.hostelRepo.UpdateHostel(ctx, hostel); err != nil {
		return nil, err
	}

	return hostel, nil
}

// DeleteHostel removes a hostel with no remaining rooms
func (s *HostelService) DeleteHostel(ctx context.Context, id int64) error {
	return s.hostelRepo.DeleteHostel(ctx, id)
}

func (s *HostelService) resolveCoordinates(ctx context.Context, hostel *models.Hostel) {
	if s.geocoder == nil || hostel.Address == "" {
		return
	}

	coords, err := s.geocoder.Forward(ctx, hostel.Address)
	if err != nil {
		logger.Warn().Err(err).Str("address", hostel.Address).Msg("Geocoding failed")
		return
	}
	if coords == nil {
		return
	}
	hostel.Latitude = &coords.Latitude
	hostel.Longitude = &coords.Longitude
}

// CreateRoom adds a room to a hostel
func (s *HostelService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*models.Room, error) {
	room := &models.Room{
		HostelID: req.HostelID,
		Number:   req.Number,
		Capacity: req.Capacity,
	}

	if err := s.hostelRepo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// GetRoom retrieves a room with its occupants
func (s *HostelService) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	room, err := s.hostelRepo.GetRoomByID(ctx, id)
	if err != nil {
		return nil, err
	}

	occupants, err := s.hostelRepo.ListOccupants(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Occupants = occupants

	return room, nil
}

// UpdateRoom applies a partial update to a room. Shrinking capacity
// below the current occupancy is rejected with ErrCapacityBelowUse.
func (s *HostelService) UpdateRoom(ctx context.Context, id int64, req *dto.UpdateRoomRequest) (*models.Room, error) {
	if req.Number != nil {
		if err := s.hostelRepo.UpdateRoomNumber(ctx, id, *req.Number); err != nil {
			return nil, err
		}
	}
	if req.Capacity != nil {
		if err := s.hostelRepo.UpdateRoomCapacity(ctx, id, *req.Capacity); err != nil {
			return nil, err
		}
	}

	return s.hostelRepo.GetRoomByID(ctx, id)
}

// DeleteRoom removes an empty room
func (s *HostelService) DeleteRoom(ctx context.Context, id int64) error {
	return s.hostelRepo.DeleteRoom(ctx, id)
}

// RequestRoom files a pending room request for a student. Requesting a
// room that is already full fails upfront, though a bed freed later can
// still be granted at approval time.
func (s *HostelService) RequestRoom(ctx context.Context, requesterID int64, req *dto.CreateRoomRequestRequest) (*models.RoomRequest, error) {
	room, err := s.hostelRepo.GetRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room.AvailableBeds() <= 0 {
		return nil, apperrors.ErrRoomFull
	}

	request := &models.RoomRequest{
		RequesterID: requesterID,
		RoomID:      req.RoomID,
		Note:        req.Note,
	}

	if err := s.hostelRepo.CreateRoomRequest(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// GetRoomRequest retrieves a room request by ID
func (s *HostelService) GetRoomRequest(ctx context.Context, id int64) (*models.RoomRequest, error) {
	return s.hostelRepo.GetRoomRequestByID(ctx, id)
}

// ListRoomRequests retrieves requests, optionally filtered by status
func (s *HostelService) ListRoomRequests(ctx context.Context, status string) ([]*models.RoomRequest, error) {
	return s.hostelRepo.ListRoomRequests(ctx, models.RoomRequestStatus(status))
}

// ApproveRoomRequest grants a pending request. The bed reservation, the
// occupant row and the status flip land in one transaction; a full room
// surfaces as ErrRoomFull and an already handled request as
// ErrAlreadyResolved.
func (s *HostelService) ApproveRoomRequest(ctx context.Context, requestID, resolverID int64) (*models.RoomRequest, error) {
	if err := s.hostelRepo.ApproveRoomRequest(ctx, requestID, resolverID); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("request_id", requestID).
		Int64("resolver_id", resolverID).
		Msg("Room request approved")

	return s.hostelRepo.GetRoomRequestByID(ctx, requestID)
}

// DeclineRoomRequest rejects a pending request without touching occupancy
func (s *HostelService) DeclineRoomRequest(ctx context.Context, requestID, resolverID int64) (*models.RoomRequest, error) {
	if err := s.hostelRepo.DeclineRoomRequest(ctx, requestID, resolverID); err != nil {
		return nil, err
	}

	return s.hostelRepo.GetRoomRequestByID(ctx, requestID)
}

// VacateRoom removes an occupant from a room and frees their bed
func (s *HostelService) VacateRoom(ctx context.Context, roomID, userID int64) error {
	return s.hostelRepo.VacateRoom(ctx, roomID, userID)
}

// GetBedStats summarizes bed availability across all rooms
func (s *HostelService) GetBedStats(ctx context.Context) (*dto.BedStats, error) {
	return s.hostelRepo.GetBedStats(ctx)
}

// GetDashboardStats assembles the admin dashboard numbers. The
// independent aggregates run concurrently; any failing read fails the
// whole dashboard with ErrAggregation.
func (s *HostelService) GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	var stats dto.DashboardStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hostels, campuses, err := s.hostelRepo.CountHostels(gctx)
		if err != nil {
			return err
		}
		stats.Hostels = hostels
		stats.Campuses = campuses
		return nil
	})
	g.Go(func() error {
		rooms, err := s.hostelRepo.CountRooms(gctx)
		if err != nil {
			return err
		}
		stats.Rooms = rooms
		return nil
	})
	g.Go(func() error {
		beds, err := s.hostelRepo.GetBedStats(gctx)
		if err != nil {
			return err
		}
		stats.Beds = *beds
		return nil
	})
	g.Go(func() error {
		byRole, err := s.hostelRepo.CountUsersByRole(gctx)
		if err != nil {
			return err
		}
		stats.UsersByRole = byRole
		return nil
	})
	g.Go(func() error {
		byGender, err := s.hostelRepo.CountOccupantsByGender(gctx)
		if err != nil {
			return err
		}
		stats.StudentsByGender = byGender
		return nil
	})
	g.Go(func() error {
		pending, err := s.hostelRepo.CountPendingRequests(gctx)
		if err != nil {
			return err
		}
		stats.PendingRequests = pending
		return nil
	})
	g.Go(func() error {
		open, err := s.intakeRepo.CountOpenComplaints(gctx)
		if err != nil {
			return err
		}
		stats.OpenComplaints = open
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("Dashboard aggregation failed")
		return nil, apperrors.NewCustomError(apperrors.ErrAggregation, "Failed to assemble dashboard statistics")
	}

	return &stats, nil
}
