package dto

// DisplayFields are the shared optional write fields of content entities.
type DisplayFields struct {
	IsActive     *bool `json:"isActive,omitempty"`
	DisplayOrder *int  `json:"displayOrder,omitempty"`
}

// --- Hero slides ---

type CreateHeroSlideRequest struct {
	Title    string  `json:"title" binding:"required,min=2,max=200"`
	Subtitle *string `json:"subtitle,omitempty" binding:"omitempty,max=300"`
	ImageURL string  `json:"imageUrl" binding:"required,url"`
	LinkURL  *string `json:"linkUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

type UpdateHeroSlideRequest struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,min=2,max=200"`
	Subtitle *string `json:"subtitle,omitempty" binding:"omitempty,max=300"`
	ImageURL *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
	LinkURL  *string `json:"linkUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

// --- Testimonials ---

type CreateTestimonialRequest struct {
	Author   string  `json:"author" binding:"required,min=2,max=100"`
	Role     *string `json:"role,omitempty" binding:"omitempty,max=100"`
	Quote    string  `json:"quote" binding:"required,min=5"`
	PhotoURL *string `json:"photoUrl,omitempty" binding:"omitempty,url"`
	Rating   *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	DisplayFields
}

type UpdateTestimonialRequest struct {
	Author   *string `json:"author,omitempty" binding:"omitempty,min=2,max=100"`
	Role     *string `json:"role,omitempty" binding:"omitempty,max=100"`
	Quote    *string `json:"quote,omitempty" binding:"omitempty,min=5"`
	PhotoURL *string `json:"photoUrl,omitempty" binding:"omitempty,url"`
	Rating   *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	DisplayFields
}

// --- Team members ---

type CreateTeamMemberRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Position string  `json:"position" binding:"required,min=2,max=100"`
	Bio      *string `json:"bio,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

type UpdateTeamMemberRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Position *string `json:"position,omitempty" binding:"omitempty,min=2,max=100"`
	Bio      *string `json:"bio,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

// --- Welcome sections ---

type CreateWelcomeSectionRequest struct {
	Heading  string  `json:"heading" binding:"required,min=2,max=200"`
	Body     string  `json:"body" binding:"required,min=5"`
	ImageURL *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

type UpdateWelcomeSectionRequest struct {
	Heading  *string `json:"heading,omitempty" binding:"omitempty,min=2,max=200"`
	Body     *string `json:"body,omitempty" binding:"omitempty,min=5"`
	ImageURL *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

// --- Why-choose-us features ---

type CreateFeatureRequest struct {
	Title       string  `json:"title" binding:"required,min=2,max=200"`
	Description string  `json:"description" binding:"required,min=5"`
	Icon        *string `json:"icon,omitempty" binding:"omitempty,max=100"`
	DisplayFields
}

type UpdateFeatureRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=5"`
	Icon        *string `json:"icon,omitempty" binding:"omitempty,max=100"`
	DisplayFields
}

// --- Message tickers ---

type CreateTickerRequest struct {
	Message string  `json:"message" binding:"required,min=2,max=500"`
	LinkURL *string `json:"linkUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

type UpdateTickerRequest struct {
	Message *string `json:"message,omitempty" binding:"omitempty,min=2,max=500"`
	LinkURL *string `json:"linkUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

// --- Leadership members ---

type CreateLeadershipRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Title    string  `json:"title" binding:"required,min=2,max=100"`
	Bio      *string `json:"bio,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

type UpdateLeadershipRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Title    *string `json:"title,omitempty" binding:"omitempty,min=2,max=100"`
	Bio      *string `json:"bio,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

// --- Departments ---

type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=150"`
	Description *string `json:"description,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	DisplayFields
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=150"`
	Description *string `json:"description,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	DisplayFields
}

// --- Facilities ---

type CreateFacilityRequest struct {
	HostelID    *int64  `json:"hostelId,omitempty" binding:"omitempty,gt=0"`
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Description string  `json:"description" binding:"required,min=5"`
	ImageURL    *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

type UpdateFacilityRequest struct {
	HostelID    *int64  `json:"hostelId,omitempty" binding:"omitempty,gt=0"`
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=5"`
	ImageURL    *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
	DisplayFields
}

// CreateDamageReportRequest is the payload for reporting facility damage
type CreateDamageReportRequest struct {
	Description string `json:"description" binding:"required,min=5,max=2000"`
}

// UpdateRepairStatusRequest is the payload for the admin PATCH on a report
type UpdateRepairStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING IN_PROGRESS RESOLVED"`
}
