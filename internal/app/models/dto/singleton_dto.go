package dto

// The singleton content documents are always upserted against their
// single well-known row, so each has one write payload used by PUT.

// UpsertCompanyOverviewRequest is the payload for the company overview
type UpsertCompanyOverviewRequest struct {
	Heading  string  `json:"heading" binding:"required,min=2,max=200"`
	Body     string  `json:"body" binding:"required,min=5"`
	Mission  *string `json:"mission,omitempty"`
	Vision   *string `json:"vision,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
}

// UpsertContactDetailsRequest is the payload for the primary contact card
type UpsertContactDetailsRequest struct {
	Email   string  `json:"email" binding:"required,email"`
	Phone   string  `json:"phone" binding:"required,min=5,max=30"`
	Address string  `json:"address" binding:"required,min=5"`
	MapsURL *string `json:"mapsUrl,omitempty" binding:"omitempty,url"`
}

// UpsertMembershipLevelRequest is the payload for the membership level
type UpsertMembershipLevelRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Description string   `json:"description" binding:"required,min=5"`
	AnnualFee   *float64 `json:"annualFee,omitempty" binding:"omitempty,gte=0"`
	Benefits    *string  `json:"benefits,omitempty"`
}

// UpsertLogoRequest is the payload for the site logo
type UpsertLogoRequest struct {
	URL     string  `json:"url" binding:"required,url"`
	AltText *string `json:"altText,omitempty" binding:"omitempty,max=200"`
}
