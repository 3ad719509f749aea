package services

import (
	"context"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/helpers"
	"github.com/kerem/hostelhub/internal/pkg/logger"
	"github.com/kerem/hostelhub/internal/pkg/mailer"
)

// INewsletterRepository is the newsletter persistence surface
type INewsletterRepository interface {
	Subscribe(ctx context.Context, s *models.NewsletterSubscriber) error
	Unsubscribe(ctx context.Context, email string) error
	ListActiveSubscribers(ctx context.Context) ([]*models.NewsletterSubscriber, error)
	CountActiveSubscribers(ctx context.Context) (int64, error)

	CreateCampaign(ctx context.Context, c *models.NewsletterCampaign) error
	GetCampaignByID(ctx context.Context, id int64) (*models.NewsletterCampaign, error)
	ListCampaigns(ctx context.Context) ([]*models.NewsletterCampaign, error)
	UpdateCampaign(ctx context.Context, c *models.NewsletterCampaign) error
	DeleteCampaign(ctx context.Context, id int64) error
	MarkCampaignSending(ctx context.Context, id int64) error
	MarkCampaignSent(ctx context.Context, id int64, recipientCount int) error
	MarkCampaignFailed(ctx context.Context, id int64) error
}

// NewsletterService handles subscribers and campaign delivery
type NewsletterService struct {
	newsletterRepo INewsletterRepository
	mail           mailer.Mailer
}

// NewNewsletterService creates a new NewsletterService
func NewNewsletterService(newsletterRepo INewsletterRepository, mail mailer.Mailer) *NewsletterService {
	return &NewsletterService{
		newsletterRepo: newsletterRepo,
		mail:           mail,
	}
}

// Subscribe adds or reactivates a subscriber. The provider's contact
// list is synced best effort; a provider outage never loses the local
// subscription.
func (s *NewsletterService) Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*models.NewsletterSubscriber, error) {
	subscriber := &models.NewsletterSubscriber{
		Email: req.Email,
		Name:  req.Name,
	}

	if err := s.newsletterRepo.Subscribe(ctx, subscriber); err != nil {
		return nil, err
	}

	contact := mailer.Recipient{Email: subscriber.Email}
	if subscriber.Name != nil {
		contact.Name = *subscriber.Name
	}
	if err := s.mail.UpsertContact(ctx, contact); err != nil {
		logger.Warn().Err(err).Str("email", subscriber.Email).Msg("Contact list sync failed")
	}

	return subscriber, nil
}

// Unsubscribe deactivates a subscription and removes the provider contact
func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	if err := s.newsletterRepo.Unsubscribe(ctx, email); err != nil {
		return err
	}

	if err := s.mail.DeleteContact(ctx, email); err != nil {
		logger.Warn().Err(err).Str("email", email).Msg("Contact list removal failed")
	}

	return nil
}

// CreateCampaign drafts a campaign
func (s *NewsletterService) CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest) (*models.NewsletterCampaign, error) {
	campaign := &models.NewsletterCampaign{
		Subject:  req.Subject,
		HTMLBody: req.HTMLBody,
		TextBody: req.TextBody,
	}

	if err := s.newsletterRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// GetCampaign retrieves a campaign by ID
func (s *NewsletterService) GetCampaign(ctx context.Context, id int64) (*models.NewsletterCampaign, error) {
	return s.newsletterRepo.GetCampaignByID(ctx, id)
}

// ListCampaigns retrieves campaigns newest first
func (s *NewsletterService) ListCampaigns(ctx context.Context) ([]*models.NewsletterCampaign, error) {
	return s.newsletterRepo.ListCampaigns(ctx)
}

// UpdateCampaign applies a partial update to a draft campaign
func (s *NewsletterService) UpdateCampaign(ctx context.Context, id int64, req *dto.UpdateCampaignRequest) (*models.NewsletterCampaign, error) {
	campaign, err := s.newsletterRepo.GetCampaignByID(ctx, id)
	if err != nil {
		return nil, err
	}

	campaign.Subject = helpers.CoalesceString(req.Subject, campaign.Subject)
	campaign.HTMLBody = helpers.CoalesceString(req.HTMLBody, campaign.HTMLBody)
	campaign.TextBody = helpers.CoalesceStringPtr(req.TextBody, campaign.TextBody)

	if err := s.newsletterRepo.UpdateCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// DeleteCampaign removes a draft campaign
func (s *NewsletterService) DeleteCampaign(ctx context.Context, id int64) error {
	return s.newsletterRepo.DeleteCampaign(ctx, id)
}

// SendCampaign delivers a draft campaign to every active subscriber.
// The DRAFT to SENDING transition is the send guard: once a campaign
// leaves DRAFT it can never be sent again, so a concurrent second send
// fails with ErrCampaignAlreadySent instead of double-mailing the list.
// A campaign with nobody to mail is left as a draft and reported as
// ErrNoRecipients.
func (s *NewsletterService) SendCampaign(ctx context.Context, id int64) (*dto.CampaignSendResult, error) {
	campaign, err := s.newsletterRepo.GetCampaignByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign.Status != models.CampaignDraft {
		return nil, apperrors.ErrCampaignAlreadySent
	}

	subscribers, err := s.newsletterRepo.ListActiveSubscribers(ctx)
	if err != nil {
		return nil, err
	}
	if len(subscribers) == 0 {
		return nil, apperrors.ErrNoRecipients
	}

	if err := s.newsletterRepo.MarkCampaignSending(ctx, id); err != nil {
		return nil, err
	}

	recipients := make([]mailer.Recipient, 0, len(subscribers))
	for _, sub := range subscribers {
		r := mailer.Recipient{Email: sub.Email}
		if sub.Name != nil {
			r.Name = *sub.Name
		}
		recipients = append(recipients, r)
	}

	msg := mailer.Message{
		Subject:  campaign.Subject,
		HTMLBody: campaign.HTMLBody,
	}
	if campaign.TextBody != nil {
		msg.TextBody = *campaign.TextBody
	}

	sent, err := s.mail.SendBulk(ctx, msg, recipients)
	if err != nil {
		logger.Error().Err(err).Int64("campaign_id", id).Msg("Campaign delivery failed")
		if markErr := s.newsletterRepo.MarkCampaignFailed(ctx, id); markErr != nil {
			logger.Error().Err(markErr).Int64("campaign_id", id).Msg("Failed to record campaign failure")
		}
		return nil, apperrors.NewCustomError(apperrors.ErrUpstreamService, "Email provider rejected the campaign")
	}

	if err := s.newsletterRepo.MarkCampaignSent(ctx, id, sent); err != nil {
		return nil, err
	}

	logger.Info().Int64("campaign_id", id).Int("recipients", sent).Msg("Campaign sent")

	return &dto.CampaignSendResult{CampaignID: id, Recipients: sent}, nil
}
