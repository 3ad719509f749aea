package models

import "time"

// Display holds the fields every public content entity carries: an
// active flag controlling read filtering and an order used for sorting.
type Display struct {
	IsActive     bool      `json:"isActive" db:"is_active"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// HeroSlide defines a hero banner slide based on the 'hero_slides' table
type HeroSlide struct {
	ID       int64   `json:"id" db:"id"`
	Title    string  `json:"title" db:"title"`
	Subtitle *string `json:"subtitle,omitempty" db:"subtitle"`
	ImageURL string  `json:"imageUrl" db:"image_url"`
	LinkURL  *string `json:"linkUrl,omitempty" db:"link_url"`
	Display
}

// Testimonial defines a testimonial based on the 'testimonials' table
type Testimonial struct {
	ID       int64   `json:"id" db:"id"`
	Author   string  `json:"author" db:"author"`
	Role     *string `json:"role,omitempty" db:"role"`
	Quote    string  `json:"quote" db:"quote"`
	PhotoURL *string `json:"photoUrl,omitempty" db:"photo_url"`
	Rating   *int    `json:"rating,omitempty" db:"rating"`
	Display
}

// TeamMember defines a team bio based on the 'team_members' table
type TeamMember struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Position string  `json:"position" db:"position"`
	Bio      *string `json:"bio,omitempty" db:"bio"`
	PhotoURL *string `json:"photoUrl,omitempty" db:"photo_url"`
	Display
}

// WelcomeSection defines the welcome blurb based on the 'welcome_sections' table
type WelcomeSection struct {
	ID       int64   `json:"id" db:"id"`
	Heading  string  `json:"heading" db:"heading"`
	Body     string  `json:"body" db:"body"`
	ImageURL *string `json:"imageUrl,omitempty" db:"image_url"`
	Display
}

// WhyChooseUsFeature defines a marketing feature based on the
// 'why_choose_us_features' table
type WhyChooseUsFeature struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	Icon        *string `json:"icon,omitempty" db:"icon"`
	Display
}

// MessageTicker defines a scrolling announcement based on the
// 'message_tickers' table
type MessageTicker struct {
	ID      int64   `json:"id" db:"id"`
	Message string  `json:"message" db:"message"`
	LinkURL *string `json:"linkUrl,omitempty" db:"link_url"`
	Display
}

// LeadershipMember defines a leadership bio based on the
// 'leadership_members' table
type LeadershipMember struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Title    string  `json:"title" db:"title"`
	Bio      *string `json:"bio,omitempty" db:"bio"`
	PhotoURL *string `json:"photoUrl,omitempty" db:"photo_url"`
	Display
}

// Department defines an association department based on the 'departments' table
type Department struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	Email       *string `json:"email,omitempty" db:"email"`
	Display
}
