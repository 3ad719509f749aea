package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/dberrors"
)

// SingletonRepository handles the content tables that hold at most one
// row: company overview, contact details, membership level and logo.
// Each table carries a unique 'singleton' column pinned to TRUE, and
// every write is an upsert against it, so duplicates are impossible even
// under concurrent writes.
type SingletonRepository struct {
	db *pgxpool.Pool
}

// NewSingletonRepository creates a new SingletonRepository
func NewSingletonRepository(db *pgxpool.Pool) *SingletonRepository {
	return &SingletonRepository{db: db}
}

// GetCompanyOverview retrieves the company overview
func (r *SingletonRepository) GetCompanyOverview(ctx context.Context) (*models.CompanyOverview, error) {
	query := `
		SELECT id, heading, body, mission, vision, image_url, created_at, updated_at
		FROM company_overview
		WHERE singleton = TRUE
	`

	var o models.CompanyOverview
	err := r.db.QueryRow(ctx, query).Scan(
		&o.ID, &o.Heading, &o.Body, &o.Mission, &o.Vision,
		&o.ImageURL, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewResourceNotFoundError("Company overview has not been set")
		}
		return nil, fmt.Errorf("error retrieving company overview: %w", err)
	}

	return &o, nil
}

// UpsertCompanyOverview creates or replaces the company overview in place
func (r *SingletonRepository) UpsertCompanyOverview(ctx context.Context, o *models.CompanyOverview) error {
	query := `
		INSERT INTO company_overview (singleton, heading, body, mission, vision, image_url)
		VALUES (TRUE, $1, $2, $3, $4, $5)
		ON CONFLICT (singleton) DO UPDATE
		SET heading = EXCLUDED.heading, body = EXCLUDED.body, mission = EXCLUDED.mission,
		    vision = EXCLUDED.vision, image_url = EXCLUDED.image_url, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, o.Heading, o.Body, o.Mission, o.Vision, o.ImageURL).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting company overview: %w", err)
	}

	return nil
}

// GetContactDetails retrieves the primary contact details
func (r *SingletonRepository) GetContactDetails(ctx context.Context) (*models.ContactDetails, error) {
	query := `
		SELECT id, email, phone, address, maps_url, created_at, updated_at
		FROM contact_details
		WHERE singleton = TRUE
	`

	var c models.ContactDetails
	err := r.db.QueryRow(ctx, query).Scan(
		&c.ID, &c.Email, &c.Phone, &c.Address, &c.MapsURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewResourceNotFoundError("Contact details have not been set")
		}
		return nil, fmt.Errorf("error retrieving contact details: %w", err)
	}

	return &c, nil
}

// UpsertContactDetails creates or replaces the contact details in place
func (r *SingletonRepository) UpsertContactDetails(ctx context.Context, c *models.ContactDetails) error {
	query := `
		INSERT INTO contact_details (singleton, email, phone, address, maps_url)
		VALUES (TRUE, $1, $2, $3, $4)
		ON CONFLICT (singleton) DO UPDATE
		SET email = EXCLUDED.email, phone = EXCLUDED.phone, address = EXCLUDED.address,
		    maps_url = EXCLUDED.maps_url, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, c.Email, c.Phone, c.Address, c.MapsURL).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting contact details: %w", err)
	}

	return nil
}

// GetMembershipLevel retrieves the membership level
func (r *SingletonRepository) GetMembershipLevel(ctx context.Context) (*models.MembershipLevel, error) {
	query := `
		SELECT id, name, description, annual_fee, benefits, created_at, updated_at
		FROM membership_level
		WHERE singleton = TRUE
	`

	var m models.MembershipLevel
	err := r.db.QueryRow(ctx, query).Scan(
		&m.ID, &m.Name, &m.Description, &m.AnnualFee, &m.Benefits, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewResourceNotFoundError("Membership level has not been set")
		}
		return nil, fmt.Errorf("error retrieving membership level: %w", err)
	}

	return &m, nil
}

// UpsertMembershipLevel creates or replaces the membership level in place
func (r *SingletonRepository) UpsertMembershipLevel(ctx context.Context, m *models.MembershipLevel) error {
	query := `
		INSERT INTO membership_level (singleton, name, description, annual_fee, benefits)
		VALUES (TRUE, $1, $2, $3, $4)
		ON CONFLICT (singleton) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description,
		    annual_fee = EXCLUDED.annual_fee, benefits = EXCLUDED.benefits, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, m.Name, m.Description, m.AnnualFee, m.Benefits).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting membership level: %w", err)
	}

	return nil
}

// GetLogo retrieves the active site logo
func (r *SingletonRepository) GetLogo(ctx context.Context) (*models.Logo, error) {
	query := `
		SELECT id, url, alt_text, created_at, updated_at
		FROM logos
		WHERE singleton = TRUE
	`

	var l models.Logo
	err := r.db.QueryRow(ctx, query).Scan(&l.ID, &l.URL, &l.AltText, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewResourceNotFoundError("Logo has not been set")
		}
		return nil, fmt.Errorf("error retrieving logo: %w", err)
	}

	return &l, nil
}

// UpsertLogo creates or replaces the site logo in place
func (r *SingletonRepository) UpsertLogo(ctx context.Context, l *models.Logo) error {
	query := `
		INSERT INTO logos (singleton, url, alt_text)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (singleton) DO UPDATE
		SET url = EXCLUDED.url, alt_text = EXCLUDED.alt_text, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, l.URL, l.AltText).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting logo: %w", err)
	}

	return nil
}
