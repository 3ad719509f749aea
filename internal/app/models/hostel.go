package models

import "time"

// Hostel defines the hostel model based on the 'hostels' table
type Hostel struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Campus    string    `json:"campus" db:"campus"`
	Address   string    `json:"address" db:"address"`
	Gender    *string   `json:"gender,omitempty" db:"gender"`
	Latitude  *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64  `json:"longitude,omitempty" db:"longitude"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Rooms []*Room `json:"rooms,omitempty"` // Relation, no db tag
}

// Room defines the room model based on the 'rooms' table.
// Occupancy always equals the number of room_occupants rows; both are
// mutated in the same transaction so the counter never drifts.
type Room struct {
	ID        int64     `json:"id" db:"id"`
	HostelID  int64     `json:"hostelId" db:"hostel_id"`
	Number    string    `json:"number" db:"number"`
	Capacity  int       `json:"capacity" db:"capacity"`
	Occupancy int       `json:"occupancy" db:"occupancy"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Hostel    *Hostel `json:"hostel,omitempty"`    // Relation, no db tag
	Occupants []*User `json:"occupants,omitempty"` // Relation, no db tag
}

// AvailableBeds returns the number of free beds in the room.
func (r *Room) AvailableBeds() int {
	return r.Capacity - r.Occupancy
}

// RoomRequestStatus represents the lifecycle state of a room request
type RoomRequestStatus string

const (
	RoomRequestPending  RoomRequestStatus = "PENDING"
	RoomRequestApproved RoomRequestStatus = "APPROVED"
	RoomRequestDeclined RoomRequestStatus = "DECLINED"
)

// Resolved reports whether the request reached a terminal state.
func (s RoomRequestStatus) Resolved() bool {
	return s == RoomRequestApproved || s == RoomRequestDeclined
}

// RoomRequest defines a student's ask for a room based on the 'room_requests' table
type RoomRequest struct {
	ID          int64             `json:"id" db:"id"`
	RequesterID int64             `json:"requesterId" db:"requester_id"`
	RoomID      int64             `json:"roomId" db:"room_id"`
	Status      RoomRequestStatus `json:"status" db:"status"`
	Note        *string           `json:"note,omitempty" db:"note"`
	ResolvedBy  *int64            `json:"resolvedBy,omitempty" db:"resolved_by"`
	ResolvedAt  *time.Time        `json:"resolvedAt,omitempty" db:"resolved_at"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`

	Requester *User `json:"requester,omitempty"` // Relation, no db tag
	Room      *Room `json:"room,omitempty"`      // Relation, no db tag
}
