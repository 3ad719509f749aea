package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/geocode"
)

// fakeHostelRepo is an in-memory IHostelRepository mirroring the real
// repository's error contract.
type fakeHostelRepo struct {
	hostels  map[int64]*models.Hostel
	rooms    map[int64]*models.Room
	requests map[int64]*models.RoomRequest
	occupant map[int64][]int64 // roomID -> userIDs
	nextID   int64
}

func newFakeHostelRepo() *fakeHostelRepo {
	return &fakeHostelRepo{
		hostels:  map[int64]*models.Hostel{},
		rooms:    map[int64]*models.Room{},
		requests: map[int64]*models.RoomRequest{},
		occupant: map[int64][]int64{},
		nextID:   1,
	}
}

func (f *fakeHostelRepo) id() int64 {
	v := f.nextID
	f.nextID++
	return v
}

func (f *fakeHostelRepo) CreateHostel(_ context.Context, h *models.Hostel) error {
	h.ID = f.id()
	f.hostels[h.ID] = h
	return nil
}

func (f *fakeHostelRepo) GetHostelByID(_ context.Context, id int64) (*models.Hostel, error) {
	h, ok := f.hostels[id]
	if !ok {
		return nil, apperrors.ErrHostelNotFound
	}
	return h, nil
}

func (f *fakeHostelRepo) ListHostels(_ context.Context, campus string) ([]*models.Hostel, error) {
	var out []*models.Hostel
	for _, h := range f.hostels {
		if campus == "" || h.Campus == campus {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHostelRepo) UpdateHostel(_ context.Context, h *models.Hostel) error {
	if _, ok := f.hostels[h.ID]; !ok {
		return apperrors.ErrHostelNotFound
	}
	f.hostels[h.ID] = h
	return nil
}

func (f *fakeHostelRepo) DeleteHostel(_ context.Context, id int64) error {
	for _, r := range f.rooms {
		if r.HostelID == id {
			return apperrors.ErrHostelHasRooms
		}
	}
	if _, ok := f.hostels[id]; !ok {
		return apperrors.ErrHostelNotFound
	}
	delete(f.hostels, id)
	return nil
}

func (f *fakeHostelRepo) CreateRoom(_ context.Context, r *models.Room) error {
	r.ID = f.id()
	f.rooms[r.ID] = r
	return nil
}

func (f *fakeHostelRepo) GetRoomByID(_ context.Context, id int64) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return r, nil
}

func (f *fakeHostelRepo) ListRoomsByHostel(_ context.Context, hostelID int64) ([]*models.Room, error) {
	var out []*models.Room
	for _, r := range f.rooms {
		if r.HostelID == hostelID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeHostelRepo) UpdateRoomNumber(_ context.Context, roomID int64, number string) error {
	r, ok := f.rooms[roomID]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	r.Number = number
	return nil
}

func (f *fakeHostelRepo) UpdateRoomCapacity(_ context.Context, roomID int64, capacity int) error {
	r, ok := f.rooms[roomID]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	if r.Occupancy > capacity {
		return apperrors.ErrCapacityBelowUse
	}
	r.Capacity = capacity
	return nil
}

func (f *fakeHostelRepo) DeleteRoom(_ context.Context, id int64) error {
	r, ok := f.rooms[id]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	if r.Occupancy > 0 {
		return apperrors.NewConflictError("Room still has occupants")
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeHostelRepo) ListOccupants(_ context.Context, roomID int64) ([]*models.User, error) {
	var out []*models.User
	for _, uid := range f.occupant[roomID] {
		out = append(out, &models.User{ID: uid})
	}
	return out, nil
}

func (f *fakeHostelRepo) CreateRoomRequest(_ context.Context, req *models.RoomRequest) error {
	req.ID = f.id()
	req.Status = models.RoomRequestPending
	f.requests[req.ID] = req
	return nil
}

func (f *fakeHostelRepo) GetRoomRequestByID(_ context.Context, id int64) (*models.RoomRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrRoomRequestNotFound
	}
	return req, nil
}

func (f *fakeHostelRepo) ListRoomRequests(_ context.Context, status models.RoomRequestStatus) ([]*models.RoomRequest, error) {
	var out []*models.RoomRequest
	for _, req := range f.requests {
		if status == "" || req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeHostelRepo) ApproveRoomRequest(_ context.Context, requestID, resolverID int64) error {
	req, ok := f.requests[requestID]
	if !ok {
		return apperrors.ErrRoomRequestNotFound
	}
	if req.Status.Resolved() {
		return apperrors.ErrAlreadyResolved
	}
	room, ok := f.rooms[req.RoomID]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	if room.Occupancy >= room.Capacity {
		return apperrors.ErrRoomFull
	}
	room.Occupancy++
	f.occupant[room.ID] = append(f.occupant[room.ID], req.RequesterID)
	req.Status = models.RoomRequestApproved
	req.ResolvedBy = &resolverID
	return nil
}

func (f *fakeHostelRepo) DeclineRoomRequest(_ context.Context, requestID, resolverID int64) error {
	req, ok := f.requests[requestID]
	if !ok {
		return apperrors.ErrRoomRequestNotFound
	}
	if req.Status.Resolved() {
		return apperrors.ErrAlreadyResolved
	}
	req.Status = models.RoomRequestDeclined
	req.ResolvedBy = &resolverID
	return nil
}

func (f *fakeHostelRepo) VacateRoom(_ context.Context, roomID, userID int64) error {
	room, ok := f.rooms[roomID]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	ids := f.occupant[roomID]
	for i, uid := range ids {
		if uid == userID {
			f.occupant[roomID] = append(ids[:i], ids[i+1:]...)
			room.Occupancy--
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (f *fakeHostelRepo) GetBedStats(_ context.Context) (*dto.BedStats, error) {
	stats := &dto.BedStats{}
	for _, r := range f.rooms {
		stats.TotalBeds += r.Capacity
		stats.OccupiedBeds += r.Occupancy
	}
	stats.AvailableBeds = stats.TotalBeds - stats.OccupiedBeds
	return stats, nil
}

func (f *fakeHostelRepo) CountHostels(_ context.Context) (int, int, error) {
	campuses := map[string]struct{}{}
	for _, h := range f.hostels {
		campuses[h.Campus] = struct{}{}
	}
	return len(f.hostels), len(campuses), nil
}

func (f *fakeHostelRepo) CountRooms(_ context.Context) (int, error) {
	return len(f.rooms), nil
}

func (f *fakeHostelRepo) CountPendingRequests(_ context.Context) (int64, error) {
	var n int64
	for _, req := range f.requests {
		if req.Status == models.RoomRequestPending {
			n++
		}
	}
	return n, nil
}

func (f *fakeHostelRepo) CountUsersByRole(_ context.Context) (map[string]int64, error) {
	return map[string]int64{"STUDENT": 2}, nil
}

func (f *fakeHostelRepo) CountOccupantsByGender(_ context.Context) (map[string]int64, error) {
	return map[string]int64{"UNSPECIFIED": 1}, nil
}

type fakeIntakeCounter struct {
	open int64
	err  error
}

func (f *fakeIntakeCounter) CountOpenComplaints(context.Context) (int64, error) {
	return f.open, f.err
}

// stubGeocoder returns fixed coordinates for any address
type stubGeocoder struct {
	coords *geocode.Coordinates
	calls  int
}

func (s *stubGeocoder) Forward(_ context.Context, _ string) (*geocode.Coordinates, error) {
	s.calls++
	return s.coords, nil
}

func newHostelFixture(t *testing.T) (*HostelService, *fakeHostelRepo) {
	t.Helper()
	repo := newFakeHostelRepo()
	return NewHostelService(repo, &fakeIntakeCounter{open: 3}, nil), repo
}

func seedRoom(t *testing.T, repo *fakeHostelRepo, capacity, occupancy int) *models.Room {
	t.Helper()
	hostel := &models.Hostel{Name: "North House", Campus: "Main", Address: "1 College Rd"}
	require.NoError(t, repo.CreateHostel(context.Background(), hostel))
	room := &models.Room{HostelID: hostel.ID, Number: "101", Capacity: capacity, Occupancy: occupancy}
	require.NoError(t, repo.CreateRoom(context.Background(), room))
	return room
}

func TestCreateHostelGeocodesAddress(t *testing.T) {
	repo := newFakeHostelRepo()
	geo := &stubGeocoder{coords: &geocode.Coordinates{Latitude: 51.5, Longitude: -0.1}}
	svc := NewHostelService(repo, &fakeIntakeCounter{}, geo)

	hostel, err := svc.CreateHostel(context.Background(), &dto.CreateHostelRequest{
		Name:    "North House",
		Campus:  "Main",
		Address: "1 College Rd",
	})
	require.NoError(t, err)
	require.NotNil(t, hostel.Latitude)
	assert.Equal(t, 51.5, *hostel.Latitude)
	assert.Equal(t, 1, geo.calls)
}

func TestUpdateHostelRegeocodesOnAddressChange(t *testing.T) {
	repo := newFakeHostelRepo()
	geo := &stubGeocoder{coords: &geocode.Coordinates{Latitude: 48.8, Longitude: 2.3}}
	svc := NewHostelService(repo, &fakeIntakeCounter{}, geo)

	hostel, err := svc.CreateHostel(context.Background(), &dto.CreateHostelRequest{
		Name: "North House", Campus: "Main", Address: "1 College Rd",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, geo.calls)

	// Name-only update must not trigger a geocode
	name := "North Annex"
	_, err = svc.UpdateHostel(context.Background(), hostel.ID, &dto.UpdateHostelRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, 1, geo.calls)

	addr := "2 College Rd"
	updated, err := svc.UpdateHostel(context.Background(), hostel.ID, &dto.UpdateHostelRequest{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, 2, geo.calls)
	assert.Equal(t, "North Annex", updated.Name)
	assert.Equal(t, "2 College Rd", updated.Address)
}

func TestRequestRoomRejectsFullRoom(t *testing.T) {
	svc, repo := newHostelFixture(t)
	room := seedRoom(t, repo, 2, 2)

	_, err := svc.RequestRoom(context.Background(), 7, &dto.CreateRoomRequestRequest{RoomID: room.ID})
	assert.ErrorIs(t, err, apperrors.ErrRoomFull)
}

func TestRequestRoomFilesPendingRequest(t *testing.T) {
	svc, repo := newHostelFixture(t)
	room := seedRoom(t, repo, 2, 1)

	req, err := svc.RequestRoom(context.Background(), 7, &dto.CreateRoomRequestRequest{RoomID: room.ID})
	require.NoError(t, err)
	assert.Equal(t, models.RoomRequestPending, req.Status)
	assert.Equal(t, int64(7), req.RequesterID)
}

func TestApproveRoomRequestTakesBed(t *testing.T) {
	svc, repo := newHostelFixture(t)
	room := seedRoom(t, repo, 2, 1)

	req, err := svc.RequestRoom(context.Background(), 7, &dto.CreateRoomRequestRequest{RoomID: room.ID})
	require.NoError(t, err)

	approved, err := svc.ApproveRoomRequest(context.Background(), req.ID, 99)
	require.NoError(t, err)
	assert.Equal(t, models.RoomRequestApproved, approved.Status)
	require.NotNil(t, approved.ResolvedBy)
	assert.Equal(t, int64(99), *approved.ResolvedBy)

	updated, err := svc.GetRoom(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Occupancy)
	assert.Equal(t, 0, updated.AvailableBeds())
}

func TestApproveRoomRequestFailsWhenLastBedTaken(t *testing.T) {
	svc, repo := newHostelFixture(t)
	room := seedRoom(t, repo, 2, 1)

	first, err := svc.RequestRoom(context.Background(), 7, &dto.CreateRoomRequestRequest{RoomID: room.ID})
	require.NoError(t, err)
	second, err := svc.RequestRoom(context.Background(), 8, &dto.CreateRoomRequestRequest{RoomID: room.ID})
	require.NoError(t, err)

	_, err = svc.ApproveRoomRequest(context.Background(), first.ID, 99)
	require.NoError(t, err)

	// The room filled up between filing and approval
	_, err = svc.ApproveRoomRequest(context.Background(), second.ID, 99)
	assert.ErrorIs(t, err, apperrors.ErrRoomFull)
}

func TestApproveRoomRequestTwiceFails(t *testing.T) {
	svc, repo := newHostelFixture(t)
	room := seedRoom(t, repo, 4, 0)

	req, err := svc.RequestRoom(context.Background(), 7, &dto.CreateRoomRequestRequest{RoomID: room.ID})
	require.NoError(t, err)

	_, err = svc.ApproveRoomRequest(context.Background(), req.ID, 99)
	require.NoError(t, err)

	_, err = svc.ApproveRoomRequest(context.Background(), req.ID, 99)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyResolved)
}

func TestDeclineRoomRequestLeavesOccupancy(t *testing.T) {
	svc, repo := newHostelFixture(t)
	room := seedRoom(t, repo, 2, 1)

	req, err := svc.RequestRoom(context.Background(), 7, &dto.CreateRoomRequestRequest{RoomID: room.ID})
	require.NoError(t, err)

	declined, err := svc.DeclineRoomRequest(context.Background(), req.ID, 99)
	require.NoError(t, err)
	assert.Equal(t, models.RoomRequestDeclined, declined.Status)

	updated, err := svc.GetRoom(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Occupancy)
}

func TestVacateRoomFreesBed(t *testing.T) {
	svc, repo := newHostelFixture(t)
	room := seedRoom(t, repo, 2, 0)

	req, err := svc.RequestRoom(context.Background(), 7, &dto.CreateRoomRequestRequest{RoomID: room.ID})
	require.NoError(t, err)
	_, err = svc.ApproveRoomRequest(context.Background(), req.ID, 99)
	require.NoError(t, err)

	require.NoError(t, svc.VacateRoom(context.Background(), room.ID, 7))

	updated, err := svc.GetRoom(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Occupancy)
	assert.Empty(t, updated.Occupants)
}

func TestUpdateRoomRejectsCapacityBelowOccupancy(t *testing.T) {
	svc, repo := newHostelFixture(t)
	room := seedRoom(t, repo, 4, 3)

	capacity := 2
	_, err := svc.UpdateRoom(context.Background(), room.ID, &dto.UpdateRoomRequest{Capacity: &capacity})
	assert.ErrorIs(t, err, apperrors.ErrCapacityBelowUse)

	capacity = 3
	updated, err := svc.UpdateRoom(context.Background(), room.ID, &dto.UpdateRoomRequest{Capacity: &capacity})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Capacity)
}

func TestGetDashboardStatsAggregates(t *testing.T) {
	svc, repo := newHostelFixture(t)
	seedRoom(t, repo, 4, 1)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Hostels)
	assert.Equal(t, 1, stats.Campuses)
	assert.Equal(t, 1, stats.Rooms)
	assert.Equal(t, 4, stats.Beds.TotalBeds)
	assert.Equal(t, 3, stats.Beds.AvailableBeds)
	assert.Equal(t, int64(3), stats.OpenComplaints)
	assert.Equal(t, int64(2), stats.UsersByRole["STUDENT"])
}

func TestGetDashboardStatsFailsOnBrokenSource(t *testing.T) {
	repo := newFakeHostelRepo()
	svc := NewHostelService(repo, &fakeIntakeCounter{err: errors.New("connection reset")}, nil)

	_, err := svc.GetDashboardStats(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrAggregation)
}
