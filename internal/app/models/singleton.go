package models

import "time"

// The singleton content tables each hold at most one row, enforced by a
// unique 'singleton' column the write path always upserts against. This
// replaces the count-then-reject convention with a race-free storage rule.

// CompanyOverview defines the single company overview document
type CompanyOverview struct {
	ID        int64     `json:"id" db:"id"`
	Heading   string    `json:"heading" db:"heading"`
	Body      string    `json:"body" db:"body"`
	Mission   *string   `json:"mission,omitempty" db:"mission"`
	Vision    *string   `json:"vision,omitempty" db:"vision"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ContactDetails defines the single primary contact document
type ContactDetails struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	MapsURL   *string   `json:"mapsUrl,omitempty" db:"maps_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// MembershipLevel defines the single membership level document
type MembershipLevel struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	AnnualFee   *float64  `json:"annualFee,omitempty" db:"annual_fee"`
	Benefits    *string   `json:"benefits,omitempty" db:"benefits"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Logo defines the single active site logo document
type Logo struct {
	ID        int64     `json:"id" db:"id"`
	URL       string    `json:"url" db:"url"`
	AltText   *string   `json:"altText,omitempty" db:"alt_text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
