package dto

// CreateHostelRequest is the payload for creating a hostel
type CreateHostelRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=200"`
	Campus  string  `json:"campus" binding:"required,min=2,max=100"`
	Address string  `json:"address" binding:"required,min=5"`
	Gender  *string `json:"gender,omitempty" binding:"omitempty,oneof=MALE FEMALE MIXED"`
}

// UpdateHostelRequest is the partial-update payload for a hostel
type UpdateHostelRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=2,max=200"`
	Campus  *string `json:"campus,omitempty" binding:"omitempty,min=2,max=100"`
	Address *string `json:"address,omitempty" binding:"omitempty,min=5"`
	Gender  *string `json:"gender,omitempty" binding:"omitempty,oneof=MALE FEMALE MIXED"`
}

// CreateRoomRequest is the payload for creating a room in a hostel
type CreateRoomRequest struct {
	HostelID int64  `json:"hostelId" binding:"required,gt=0"`
	Number   string `json:"number" binding:"required,min=1,max=20"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

// UpdateRoomRequest is the partial-update payload for a room
type UpdateRoomRequest struct {
	Number   *string `json:"number,omitempty" binding:"omitempty,min=1,max=20"`
	Capacity *int    `json:"capacity,omitempty" binding:"omitempty,gt=0"`
}

// CreateRoomRequestRequest is the payload for a student asking for a room
type CreateRoomRequestRequest struct {
	RoomID int64   `json:"roomId" binding:"required,gt=0"`
	Note   *string `json:"note,omitempty" binding:"omitempty,max=500"`
}

// BedStats summarizes bed availability across the room collection
type BedStats struct {
	TotalBeds     int `json:"totalBeds"`
	OccupiedBeds  int `json:"occupiedBeds"`
	AvailableBeds int `json:"availableBeds"`
}

// DashboardStats aggregates the admin dashboard numbers
type DashboardStats struct {
	Hostels          int              `json:"hostels"`
	Campuses         int              `json:"campuses"`
	Rooms            int              `json:"rooms"`
	Beds             BedStats         `json:"beds"`
	UsersByRole      map[string]int64 `json:"usersByRole"`
	StudentsByGender map[string]int64 `json:"studentsByGender"`
	OpenComplaints   int64            `json:"openComplaints"`
	PendingRequests  int64            `json:"pendingRequests"`
}
