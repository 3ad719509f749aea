package models

import "time"

// NewsletterSubscriber defines a subscriber based on the
// 'newsletter_subscribers' table
type NewsletterSubscriber struct {
	ID             int64      `json:"id" db:"id"`
	Email          string     `json:"email" db:"email"`
	Name           *string    `json:"name,omitempty" db:"name"`
	IsActive       bool       `json:"isActive" db:"is_active"`
	SubscribedAt   time.Time  `json:"subscribedAt" db:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty" db:"unsubscribed_at"`
}

// CampaignStatus represents the sending state of a newsletter campaign
type CampaignStatus string

const (
	CampaignDraft   CampaignStatus = "DRAFT"
	CampaignSending CampaignStatus = "SENDING"
	CampaignSent    CampaignStatus = "SENT"
	CampaignFailed  CampaignStatus = "FAILED"
)

// NewsletterCampaign defines a campaign based on the 'newsletter_campaigns' table
type NewsletterCampaign struct {
	ID             int64          `json:"id" db:"id"`
	Subject        string         `json:"subject" db:"subject"`
	HTMLBody       string         `json:"htmlBody" db:"html_body"`
	TextBody       *string        `json:"textBody,omitempty" db:"text_body"`
	Status         CampaignStatus `json:"status" db:"status"`
	RecipientCount int            `json:"recipientCount" db:"recipient_count"`
	SentAt         *time.Time     `json:"sentAt,omitempty" db:"sent_at"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time      `json:"updatedAt" db:"updated_at"`
}
