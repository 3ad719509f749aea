package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/db"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/dberrors"
)

// HostelRepository handles database operations for hostels, rooms and
// room requests
type HostelRepository struct {
	db *pgxpool.Pool
}

// NewHostelRepository creates a new HostelRepository
func NewHostelRepository(db *pgxpool.Pool) *HostelRepository {
	return &HostelRepository{db: db}
}

// CreateHostel inserts a new hostel and sets the generated ID
func (r *HostelRepository) CreateHostel(ctx context.Context, hostel *models.Hostel) error {
	query := `
		INSERT INTO hostels (name, campus, address, gender, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		hostel.Name,
		hostel.Campus,
		hostel.Address,
		hostel.Gender,
		hostel.Latitude,
		hostel.Longitude,
	).Scan(&hostel.ID, &hostel.CreatedAt, &hostel.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("A hostel with this name already exists on this campus")
		}
		return fmt.Errorf("error creating hostel: %w", err)
	}

	return nil
}

// GetHostelByID retrieves a hostel by ID
func (r *HostelRepository) GetHostelByID(ctx context.Context, id int64) (*models.Hostel, error) {
	query := `
		SELECT id, name, campus, address, gender, latitude, longitude, created_at, updated_at
		FROM hostels
		WHERE id = $1
	`

	var h models.Hostel
	err := r.db.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.Campus, &h.Address, &h.Gender,
		&h.Latitude, &h.Longitude, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrHostelNotFound
		}
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}

	return &h, nil
}

// ListHostels retrieves all hostels, optionally filtered by campus
func (r *HostelRepository) ListHostels(ctx context.Context, campus string) ([]*models.Hostel, error) {
	query := `
		SELECT id, name, campus, address, gender, latitude, longitude, created_at, updated_at
		FROM hostels
	`
	args := []any{}
	if campus != "" {
		query += ` WHERE campus = $1`
		args = append(args, campus)
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing hostels: %w", err)
	}
	defer rows.Close()

	var hostels []*models.Hostel
	for rows.Next() {
		var h models.Hostel
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Campus, &h.Address, &h.Gender,
			&h.Latitude, &h.Longitude, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, err
		}
		hostels = append(hostels, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hostels, nil
}

// UpdateHostel persists the mutable fields of a hostel
func (r *HostelRepository) UpdateHostel(ctx context.Context, hostel *models.Hostel) error {
	query := `
		UPDATE hostels
		SET name = $2, campus = $3, address = $4, gender = $5,
		    latitude = $6, longitude = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		hostel.ID,
		hostel.Name,
		hostel.Campus,
		hostel.Address,
		hostel.Gender,
		hostel.Latitude,
		hostel.Longitude,
	)
	if err != nil {
		return fmt.Errorf("error updating hostel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrHostelNotFound
	}

	return nil
}

// DeleteHostel removes a hostel that has no rooms left
func (r *HostelRepository) DeleteHostel(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM hostels WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrHostelHasRooms
		}
		return fmt.Errorf("error deleting hostel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrHostelNotFound
	}
	return nil
}

// CreateRoom inserts a new room for a hostel
func (r *HostelRepository) CreateRoom(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (hostel_id, number, capacity)
		VALUES ($1, $2, $3)
		RETURNING id, occupancy, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, room.HostelID, room.Number, room.Capacity).
		Scan(&room.ID, &room.Occupancy, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrHostelNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("A room with this number already exists in this hostel")
		}
		return fmt.Errorf("error creating room: %w", err)
	}

	return nil
}

// GetRoomByID retrieves a room by ID
func (r *HostelRepository) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	query := `
		SELECT id, hostel_id, number, capacity, occupancy, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room models.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID, &room.HostelID, &room.Number, &room.Capacity,
		&room.Occupancy, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return &room, nil
}

// ListRoomsByHostel retrieves all rooms in a hostel ordered by number
func (r *HostelRepository) ListRoomsByHostel(ctx context.Context, hostelID int64) ([]*models.Room, error) {
	query := `
		SELECT id, hostel_id, number, capacity, occupancy, created_at, updated_at
		FROM rooms
		WHERE hostel_id = $1
		ORDER BY number
	`

	rows, err := r.db.Query(ctx, query, hostelID)
	if err != nil {
		return nil, fmt.Errorf("error listing rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(
			&room.ID, &room.HostelID, &room.Number, &room.Capacity,
			&room.Occupancy, &room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rooms = append(rooms, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// UpdateRoomNumber renames a room within its hostel
func (r *HostelRepository) UpdateRoomNumber(ctx context.Context, roomID int64, number string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms SET number = $2, updated_at = NOW() WHERE id = $1`, roomID, number,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("A room with this number already exists in this hostel")
		}
		return fmt.Errorf("error renaming room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}

// UpdateRoomCapacity changes a room's capacity. The WHERE clause refuses
// any capacity below the current occupancy, so existing occupants can
// never be stranded over the limit.
func (r *HostelRepository) UpdateRoomCapacity(ctx context.Context, roomID int64, capacity int) error {
	query := `
		UPDATE rooms
		SET capacity = $2, updated_at = NOW()
		WHERE id = $1 AND occupancy <= $2
	`

	tag, err := r.db.Exec(ctx, query, roomID, capacity)
	if err != nil {
		return fmt.Errorf("error updating room capacity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing room from a rejected shrink
		if _, err := r.GetRoomByID(ctx, roomID); err != nil {
			return err
		}
		return apperrors.ErrCapacityBelowUse
	}

	return nil
}

// DeleteRoom removes an empty room
func (r *HostelRepository) DeleteRoom(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1 AND occupancy = 0`, id)
	if err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetRoomByID(ctx, id); err != nil {
			return err
		}
		return apperrors.NewConflictError("Room still has occupants")
	}
	return nil
}

// ListOccupants retrieves the users currently assigned to a room
func (r *HostelRepository) ListOccupants(ctx context.Context, roomID int64) ([]*models.User, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.phone, u.gender, u.role_type
		FROM room_occupants ro
		JOIN users u ON u.id = ro.user_id
		WHERE ro.room_id = $1
		ORDER BY u.last_name, u.first_name
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("error listing occupants: %w", err)
	}
	defer rows.Close()

	var occupants []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.FirstName, &u.LastName,
			&u.Phone, &u.Gender, &u.RoleType,
		); err != nil {
			return nil, err
		}
		occupants = append(occupants, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return occupants, nil
}

// CreateRoomRequest inserts a pending room request
func (r *HostelRepository) CreateRoomRequest(ctx context.Context, req *models.RoomRequest) error {
	query := `
		INSERT INTO room_requests (requester_id, room_id, status, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	req.Status = models.RoomRequestPending
	err := r.db.QueryRow(ctx, query, req.RequesterID, req.RoomID, req.Status, req.Note).
		Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRoomNotFound
		}
		return fmt.Errorf("error creating room request: %w", err)
	}

	return nil
}

// GetRoomRequestByID retrieves a room request by ID
func (r *HostelRepository) GetRoomRequestByID(ctx context.Context, id int64) (*models.RoomRequest, error) {
	query := `
		SELECT id, requester_id, room_id, status, note, resolved_by, resolved_at, created_at
		FROM room_requests
		WHERE id = $1
	`

	var req models.RoomRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.RequesterID, &req.RoomID, &req.Status,
		&req.Note, &req.ResolvedBy, &req.ResolvedAt, &req.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrRoomRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving room request: %w", err)
	}

	return &req, nil
}

// ListRoomRequests retrieves room requests, optionally filtered by status
func (r *HostelRepository) ListRoomRequests(ctx context.Context, status models.RoomRequestStatus) ([]*models.RoomRequest, error) {
	query := `
		SELECT id, requester_id, room_id, status, note, resolved_by, resolved_at, created_at
		FROM room_requests
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing room requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.RoomRequest
	for rows.Next() {
		var req models.RoomRequest
		if err := rows.Scan(
			&req.ID, &req.RequesterID, &req.RoomID, &req.Status,
			&req.Note, &req.ResolvedBy, &req.ResolvedAt, &req.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// ApproveRoomRequest atomically reserves a bed and flips the request to
// APPROVED. The whole decision runs in one transaction:
//
//  1. the request row is locked and must still be PENDING,
//  2. the room's occupancy is bumped only while it is below capacity,
//  3. the occupant row and the status flip commit together.
//
// Two admins approving the last bed concurrently serialize on the
// conditional UPDATE; the loser's RowsAffected is 0 and the whole
// transaction rolls back with ErrRoomFull.
func (r *HostelRepository) ApproveRoomRequest(ctx context.Context, requestID, resolverID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var roomID int64
		var status models.RoomRequestStatus
		err := tx.QueryRow(ctx,
			`SELECT room_id, status FROM room_requests WHERE id = $1 FOR UPDATE`,
			requestID,
		).Scan(&roomID, &status)
		if err != nil {
			if dberrors.IsNoRows(err) {
				return apperrors.ErrRoomRequestNotFound
			}
			return fmt.Errorf("error locking room request: %w", err)
		}
		if status.Resolved() {
			return apperrors.ErrAlreadyResolved
		}

		tag, err := tx.Exec(ctx,
			`UPDATE rooms SET occupancy = occupancy + 1, updated_at = NOW()
			 WHERE id = $1 AND occupancy < capacity`,
			roomID,
		)
		if err != nil {
			return fmt.Errorf("error reserving bed: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrRoomFull
		}

		var requesterID int64
		if err := tx.QueryRow(ctx,
			`SELECT requester_id FROM room_requests WHERE id = $1`, requestID,
		).Scan(&requesterID); err != nil {
			return fmt.Errorf("error reading requester: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO room_occupants (room_id, user_id) VALUES ($1, $2)`,
			roomID, requesterID,
		); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("Requester already occupies this room")
			}
			return fmt.Errorf("error inserting occupant: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE room_requests
			 SET status = $2, resolved_by = $3, resolved_at = NOW()
			 WHERE id = $1`,
			requestID, models.RoomRequestApproved, resolverID,
		)
		if err != nil {
			return fmt.Errorf("error resolving room request: %w", err)
		}

		return nil
	})
}

// DeclineRoomRequest flips a pending request to DECLINED
func (r *HostelRepository) DeclineRoomRequest(ctx context.Context, requestID, resolverID int64) error {
	query := `
		UPDATE room_requests
		SET status = $2, resolved_by = $3, resolved_at = NOW()
		WHERE id = $1 AND status = $4
	`

	tag, err := r.db.Exec(ctx, query,
		requestID, models.RoomRequestDeclined, resolverID, models.RoomRequestPending,
	)
	if err != nil {
		return fmt.Errorf("error declining room request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetRoomRequestByID(ctx, requestID); err != nil {
			return err
		}
		return apperrors.ErrAlreadyResolved
	}

	return nil
}

// VacateRoom removes an occupant and frees their bed in one transaction
func (r *HostelRepository) VacateRoom(ctx context.Context, roomID, userID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM room_occupants WHERE room_id = $1 AND user_id = $2`,
			roomID, userID,
		)
		if err != nil {
			return fmt.Errorf("error removing occupant: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewResourceNotFoundError("User does not occupy this room")
		}

		_, err = tx.Exec(ctx,
			`UPDATE rooms SET occupancy = occupancy - 1, updated_at = NOW()
			 WHERE id = $1 AND occupancy > 0`,
			roomID,
		)
		if err != nil {
			return fmt.Errorf("error freeing bed: %w", err)
		}

		return nil
	})
}

// GetBedStats aggregates capacity and occupancy across all rooms
func (r *HostelRepository) GetBedStats(ctx context.Context) (*dto.BedStats, error) {
	query := `
		SELECT COALESCE(SUM(capacity), 0), COALESCE(SUM(occupancy), 0)
		FROM rooms
	`

	var stats dto.BedStats
	if err := r.db.QueryRow(ctx, query).Scan(&stats.TotalBeds, &stats.OccupiedBeds); err != nil {
		return nil, fmt.Errorf("error aggregating bed stats: %w", err)
	}
	stats.AvailableBeds = stats.TotalBeds - stats.OccupiedBeds

	return &stats, nil
}

// CountHostels returns the number of hostels and distinct campuses
func (r *HostelRepository) CountHostels(ctx context.Context) (hostels, campuses int, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT campus) FROM hostels`,
	).Scan(&hostels, &campuses)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting hostels: %w", err)
	}
	return hostels, campuses, nil
}

// CountRooms returns the number of rooms
func (r *HostelRepository) CountRooms(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting rooms: %w", err)
	}
	return count, nil
}

// CountPendingRequests returns the number of unresolved room requests
func (r *HostelRepository) CountPendingRequests(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM room_requests WHERE status = $1`, models.RoomRequestPending,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending requests: %w", err)
	}
	return count, nil
}

// CountUsersByRole groups active users by role
func (r *HostelRepository) CountUsersByRole(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT role_type, COUNT(*) FROM users WHERE is_active = TRUE GROUP BY role_type`,
	)
	if err != nil {
		return nil, fmt.Errorf("error counting users by role: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var role string
		var count int64
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		counts[role] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// CountOccupantsByGender groups current room occupants by gender
func (r *HostelRepository) CountOccupantsByGender(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT COALESCE(u.gender, 'UNSPECIFIED'), COUNT(*)
		FROM room_occupants ro
		JOIN users u ON u.id = ro.user_id
		GROUP BY COALESCE(u.gender, 'UNSPECIFIED')
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error counting occupants by gender: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var gender string
		var count int64
		if err := rows.Scan(&gender, &count); err != nil {
			return nil, err
		}
		counts[gender] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
