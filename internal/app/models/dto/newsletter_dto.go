package dto

// SubscribeRequest is the public payload for newsletter subscription
type SubscribeRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
}

// UnsubscribeRequest is the public payload for leaving the newsletter
type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CreateCampaignRequest is the admin payload for drafting a campaign
type CreateCampaignRequest struct {
	Subject  string  `json:"subject" binding:"required,min=2,max=300"`
	HTMLBody string  `json:"htmlBody" binding:"required,min=5"`
	TextBody *string `json:"textBody,omitempty"`
}

// UpdateCampaignRequest is the partial-update payload for a draft campaign
type UpdateCampaignRequest struct {
	Subject  *string `json:"subject,omitempty" binding:"omitempty,min=2,max=300"`
	HTMLBody *string `json:"htmlBody,omitempty" binding:"omitempty,min=5"`
	TextBody *string `json:"textBody,omitempty"`
}

// CampaignSendResult reports the outcome of a campaign send
type CampaignSendResult struct {
	CampaignID int64 `json:"campaignId"`
	Recipients int   `json:"recipients"`
}
