package models

import "time"

// ComplaintStatus represents the handling state of a complaint
type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "OPEN"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
)

// Valid reports whether s is a known complaint status.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved:
		return true
	}
	return false
}

// Complaint defines a complaint submitted through the public site,
// based on the 'complaints' table
type Complaint struct {
	ID        int64           `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	Email     string          `json:"email" db:"email"`
	Subject   string          `json:"subject" db:"subject"`
	Body      string          `json:"body" db:"body"`
	Status    ComplaintStatus `json:"status" db:"status"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// ApplicationStatus represents the state of a membership application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationDeclined ApplicationStatus = "DECLINED"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationDeclined:
		return true
	}
	return false
}

// JoinApplication defines a membership application based on the
// 'join_applications' table
type JoinApplication struct {
	ID        int64             `json:"id" db:"id"`
	FirstName string            `json:"firstName" db:"first_name"`
	LastName  string            `json:"lastName" db:"last_name"`
	Email     string            `json:"email" db:"email"`
	Phone     *string           `json:"phone,omitempty" db:"phone"`
	Campus    string            `json:"campus" db:"campus"`
	Message   *string           `json:"message,omitempty" db:"message"`
	Status    ApplicationStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`
}
