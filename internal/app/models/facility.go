package models

import "time"

// Facility defines the facility model based on the 'facilities' table
type Facility struct {
	ID           int64     `json:"id" db:"id"`
	HostelID     *int64    `json:"hostelId,omitempty" db:"hostel_id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	ImageURL     *string   `json:"imageUrl,omitempty" db:"image_url"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	DamageReports []*DamageReport `json:"damageReports,omitempty"` // Relation, no db tag
}

// RepairStatus represents the repair state of a damage report
type RepairStatus string

const (
	RepairPending    RepairStatus = "PENDING"
	RepairInProgress RepairStatus = "IN_PROGRESS"
	RepairResolved   RepairStatus = "RESOLVED"
)

// Valid reports whether s is a known repair status.
func (s RepairStatus) Valid() bool {
	switch s {
	case RepairPending, RepairInProgress, RepairResolved:
		return true
	}
	return false
}

// DamageReport defines a damage report based on the 'damage_reports' table.
// Reports reference their facility by id; they are appended, never removed,
// and only their repair status is mutated afterwards.
type DamageReport struct {
	ID          int64        `json:"id" db:"id"`
	FacilityID  int64        `json:"facilityId" db:"facility_id"`
	ReporterID  int64        `json:"reporterId" db:"reporter_id"`
	Description string       `json:"description" db:"description"`
	Status      RepairStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`

	Reporter *User `json:"reporter,omitempty"` // Relation, no db tag
}
