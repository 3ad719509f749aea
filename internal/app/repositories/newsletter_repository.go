package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/dberrors"
)

// NewsletterRepository handles database operations for newsletter
// subscribers and campaigns
type NewsletterRepository struct {
	db *pgxpool.Pool
}

// NewNewsletterRepository creates a new NewsletterRepository
func NewNewsletterRepository(db *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Subscribe upserts a subscriber by email. Resubscribing a previously
// unsubscribed address reactivates it and clears the unsubscribe stamp.
func (r *NewsletterRepository) Subscribe(ctx context.Context, s *models.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (email, name, is_active)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (email) DO UPDATE
		SET name = COALESCE(EXCLUDED.name, newsletter_subscribers.name),
		    is_active = TRUE, unsubscribed_at = NULL
		RETURNING id, is_active, subscribed_at
	`

	err := r.db.QueryRow(ctx, query, s.Email, s.Name).Scan(&s.ID, &s.IsActive, &s.SubscribedAt)
	if err != nil {
		return fmt.Errorf("error subscribing: %w", err)
	}

	return nil
}

// Unsubscribe deactivates a subscriber by email
func (r *NewsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	query := `
		UPDATE newsletter_subscribers
		SET is_active = FALSE, unsubscribed_at = NOW()
		WHERE email = $1 AND is_active = TRUE
	`

	tag, err := r.db.Exec(ctx, query, email)
	if err != nil {
		return fmt.Errorf("error unsubscribing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("No active subscription for this email")
	}

	return nil
}

// ListActiveSubscribers retrieves every subscriber eligible for a send
func (r *NewsletterRepository) ListActiveSubscribers(ctx context.Context) ([]*models.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, name, is_active, subscribed_at, unsubscribed_at
		FROM newsletter_subscribers
		WHERE is_active = TRUE
		ORDER BY subscribed_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*models.NewsletterSubscriber
	for rows.Next() {
		var s models.NewsletterSubscriber
		if err := rows.Scan(
			&s.ID, &s.Email, &s.Name, &s.IsActive, &s.SubscribedAt, &s.UnsubscribedAt,
		); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subscribers, nil
}

// CountActiveSubscribers returns the number of active subscribers
func (r *NewsletterRepository) CountActiveSubscribers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM newsletter_subscribers WHERE is_active = TRUE`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting subscribers: %w", err)
	}
	return count, nil
}

// CreateCampaign inserts a draft campaign
func (r *NewsletterRepository) CreateCampaign(ctx context.Context, c *models.NewsletterCampaign) error {
	query := `
		INSERT INTO newsletter_campaigns (subject, html_body, text_body, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	c.Status = models.CampaignDraft
	err := r.db.QueryRow(ctx, query, c.Subject, c.HTMLBody, c.TextBody, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating campaign: %w", err)
	}

	return nil
}

// GetCampaignByID retrieves a campaign by ID
func (r *NewsletterRepository) GetCampaignByID(ctx context.Context, id int64) (*models.NewsletterCampaign, error) {
	query := `
		SELECT id, subject, html_body, text_body, status, recipient_count, sent_at, created_at, updated_at
		FROM newsletter_campaigns
		WHERE id = $1
	`

	var c models.NewsletterCampaign
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Subject, &c.HTMLBody, &c.TextBody, &c.Status,
		&c.RecipientCount, &c.SentAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("error retrieving campaign: %w", err)
	}

	return &c, nil
}

// ListCampaigns retrieves campaigns newest first
func (r *NewsletterRepository) ListCampaigns(ctx context.Context) ([]*models.NewsletterCampaign, error) {
	query := `
		SELECT id, subject, html_body, text_body, status, recipient_count, sent_at, created_at, updated_at
		FROM newsletter_campaigns
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*models.NewsletterCampaign
	for rows.Next() {
		var c models.NewsletterCampaign
		if err := rows.Scan(
			&c.ID, &c.Subject, &c.HTMLBody, &c.TextBody, &c.Status,
			&c.RecipientCount, &c.SentAt, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return campaigns, nil
}

// UpdateCampaign edits a campaign that is still a draft
func (r *NewsletterRepository) UpdateCampaign(ctx context.Context, c *models.NewsletterCampaign) error {
	query := `
		UPDATE newsletter_campaigns
		SET subject = $2, html_body = $3, text_body = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
	`

	tag, err := r.db.Exec(ctx, query, c.ID, c.Subject, c.HTMLBody, c.TextBody, models.CampaignDraft)
	if err != nil {
		return fmt.Errorf("error updating campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetCampaignByID(ctx, c.ID); err != nil {
			return err
		}
		return apperrors.ErrCampaignAlreadySent
	}

	return nil
}

// DeleteCampaign removes a draft campaign. Sent campaigns stay for the
// audit trail.
func (r *NewsletterRepository) DeleteCampaign(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM newsletter_campaigns WHERE id = $1 AND status = $2`,
		id, models.CampaignDraft,
	)
	if err != nil {
		return fmt.Errorf("error deleting campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetCampaignByID(ctx, id); err != nil {
			return err
		}
		return apperrors.ErrCampaignAlreadySent
	}

	return nil
}

// MarkCampaignSending claims a draft campaign for delivery. The
// conditional transition means only one caller can move a campaign out
// of DRAFT, so a double send loses here instead of at the mail provider.
func (r *NewsletterRepository) MarkCampaignSending(ctx context.Context, id int64) error {
	query := `
		UPDATE newsletter_campaigns
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	tag, err := r.db.Exec(ctx, query, id, models.CampaignSending, models.CampaignDraft)
	if err != nil {
		return fmt.Errorf("error claiming campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetCampaignByID(ctx, id); err != nil {
			return err
		}
		return apperrors.ErrCampaignAlreadySent
	}

	return nil
}

// MarkCampaignSent records a completed delivery
func (r *NewsletterRepository) MarkCampaignSent(ctx context.Context, id int64, recipientCount int) error {
	query := `
		UPDATE newsletter_campaigns
		SET status = $2, recipient_count = $3, sent_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query, id, models.CampaignSent, recipientCount)
	if err != nil {
		return fmt.Errorf("error marking campaign sent: %w", err)
	}
	return nil
}

// MarkCampaignFailed records a failed delivery so the campaign can be
// retried from the dashboard
func (r *NewsletterRepository) MarkCampaignFailed(ctx context.Context, id int64) error {
	query := `
		UPDATE newsletter_campaigns
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query, id, models.CampaignFailed)
	if err != nil {
		return fmt.Errorf("error marking campaign failed: %w", err)
	}
	return nil
}
