package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/dberrors"
)

// ContentRepository handles database operations for the public content
// collections: hero slides, testimonials, team members, welcome
// sections, why-choose-us features, message tickers, leadership members
// and departments. All of them share the active flag and display order
// columns, so reads go through the same two helpers.
type ContentRepository struct {
	db *pgxpool.Pool
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db}
}

func listContent[T any](ctx context.Context, db *pgxpool.Pool, table, columns string, activeOnly bool) ([]*T, error) {
	query := `SELECT ` + columns + ` FROM ` + table
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, created_at DESC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", table, err)
	}
	return items, nil
}

func getContent[T any](ctx context.Context, db *pgxpool.Pool, table, columns string, id int64) (*T, error) {
	query := `SELECT ` + columns + ` FROM ` + table + ` WHERE id = $1`

	rows, err := db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving from %s: %w", table, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error scanning from %s: %w", table, err)
	}
	return item, nil
}

func deleteContent(ctx context.Context, db *pgxpool.Pool, table string, id int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

const displayColumns = `is_active, display_order, created_at, updated_at`

// --- Hero slides ---

const heroSlideColumns = `id, title, subtitle, image_url, link_url, ` + displayColumns

// CreateHeroSlide inserts a hero slide
func (r *ContentRepository) CreateHeroSlide(ctx context.Context, s *models.HeroSlide) error {
	query := `
		INSERT INTO hero_slides (title, subtitle, image_url, link_url, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		s.Title, s.Subtitle, s.ImageURL, s.LinkURL, s.IsActive, s.DisplayOrder,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating hero slide: %w", err)
	}
	return nil
}

// GetHeroSlideByID retrieves a hero slide by ID
func (r *ContentRepository) GetHeroSlideByID(ctx context.Context, id int64) (*models.HeroSlide, error) {
	return getContent[models.HeroSlide](ctx, r.db, "hero_slides", heroSlideColumns, id)
}

// ListHeroSlides retrieves hero slides ordered for display
func (r *ContentRepository) ListHeroSlides(ctx context.Context, activeOnly bool) ([]*models.HeroSlide, error) {
	return listContent[models.HeroSlide](ctx, r.db, "hero_slides", heroSlideColumns, activeOnly)
}

// UpdateHeroSlide persists the full state of a hero slide
func (r *ContentRepository) UpdateHeroSlide(ctx context.Context, s *models.HeroSlide) error {
	query := `
		UPDATE hero_slides
		SET title = $2, subtitle = $3, image_url = $4, link_url = $5,
		    is_active = $6, display_order = $7, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		s.ID, s.Title, s.Subtitle, s.ImageURL, s.LinkURL, s.IsActive, s.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("error updating hero slide: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// DeleteHeroSlide removes a hero slide
func (r *ContentRepository) DeleteHeroSlide(ctx context.Context, id int64) error {
	return deleteContent(ctx, r.db, "hero_slides", id)
}

// --- Testimonials ---

const testimonialColumns = `id, author, role, quote, photo_url, rating, ` + displayColumns

// CreateTestimonial inserts a testimonial
func (r *ContentRepository) CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	query := `
		INSERT INTO testimonials (author, role, quote, photo_url, rating, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		t.Author, t.Role, t.Quote, t.PhotoURL, t.Rating, t.IsActive, t.DisplayOrder,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating testimonial: %w", err)
	}
	return nil
}

// GetTestimonialByID retrieves a testimonial by ID
func (r *ContentRepository) GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	return getContent[models.Testimonial](ctx, r.db, "testimonials", testimonialColumns, id)
}

// ListTestimonials retrieves testimonials ordered for display
func (r *ContentRepository) ListTestimonials(ctx context.Context, activeOnly bool) ([]*models.Testimonial, error) {
	return listContent[models.Testimonial](ctx, r.db, "testimonials", testimonialColumns, activeOnly)
}

// UpdateTestimonial persists the full state of a testimonial
func (r *ContentRepository) UpdateTestimonial(ctx context.Context, t *models.Testimonial) error {
	query := `
		UPDATE testimonials
		SET author = $2, role = $3, quote = $4, photo_url = $5, rating = $6,
		    is_active = $7, display_order = $8, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		t.ID, t.Author, t.Role, t.Quote, t.PhotoURL, t.Rating, t.IsActive, t.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("error updating testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// DeleteTestimonial removes a testimonial
func (r *ContentRepository) DeleteTestimonial(ctx context.Context, id int64) error {
	return deleteContent(ctx, r.db, "testimonials", id)
}

// --- Team members ---

const teamMemberColumns = `id, name, position, bio, photo_url, ` + displayColumns

// CreateTeamMember inserts a team member
func (r *ContentRepository) CreateTeamMember(ctx context.Context, m *models.TeamMember) error {
	query := `
		INSERT INTO team_members (name, position, bio, photo_url, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		m.Name, m.Position, m.Bio, m.PhotoURL, m.IsActive, m.DisplayOrder,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating team member: %w", err)
	}
	return nil
}

// GetTeamMemberByID retrieves a team member by ID
func (r *ContentRepository) GetTeamMemberByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	return getContent[models.TeamMember](ctx, r.db, "team_members", teamMemberColumns, id)
}

// ListTeamMembers retrieves team members ordered for display
func (r *ContentRepository) ListTeamMembers(ctx context.Context, activeOnly bool) ([]*models.TeamMember, error) {
	return listContent[models.TeamMember](ctx, r.db, "team_members", teamMemberColumns, activeOnly)
}

// UpdateTeamMember persists the full state of a team member
func (r *ContentRepository) UpdateTeamMember(ctx context.Context, m *models.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $2, position = $3, bio = $4, photo_url = $5,
		    is_active = $6, display_order = $7, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		m.ID, m.Name, m.Position, m.Bio, m.PhotoURL, m.IsActive, m.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("error updating team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// DeleteTeamMember removes a team member
func (r *ContentRepository) DeleteTeamMember(ctx context.Context, id int64) error {
	return deleteContent(ctx, r.db, "team_members", id)
}

// --- Welcome sections ---

const welcomeSectionColumns = `id, heading, body, image_url, ` + displayColumns

// CreateWelcomeSection inserts a welcome section
func (r *ContentRepository) CreateWelcomeSection(ctx context.Context, w *models.WelcomeSection) error {
	query := `
		INSERT INTO welcome_sections (heading, body, image_url, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		w.Heading, w.Body, w.ImageURL, w.IsActive, w.DisplayOrder,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating welcome section: %w", err)
	}
	return nil
}

// GetWelcomeSectionByID retrieves a welcome section by ID
func (r *ContentRepository) GetWelcomeSectionByID(ctx context.Context, id int64) (*models.WelcomeSection, error) {
	return getContent[models.WelcomeSection](ctx, r.db, "welcome_sections", welcomeSectionColumns, id)
}

// ListWelcomeSections retrieves welcome sections ordered for display
func (r *ContentRepository) ListWelcomeSections(ctx context.Context, activeOnly bool) ([]*models.WelcomeSection, error) {
	return listContent[models.WelcomeSection](ctx, r.db, "welcome_sections", welcomeSectionColumns, activeOnly)
}

// UpdateWelcomeSection persists the full state of a welcome section
func (r *ContentRepository) UpdateWelcomeSection(ctx context.Context, w *models.WelcomeSection) error {
	query := `
		UPDATE welcome_sections
		SET heading = $2, body = $3, image_url = $4,
		    is_active = $5, display_order = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		w.ID, w.Heading, w.Body, w.ImageURL, w.IsActive, w.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("error updating welcome section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// DeleteWelcomeSection removes a welcome section
func (r *ContentRepository) DeleteWelcomeSection(ctx context.Context, id int64) error {
	return deleteContent(ctx, r.db, "welcome_sections", id)
}

// --- Why-choose-us features ---

const featureColumns = `id, title, description, icon, ` + displayColumns

// CreateFeature inserts a why-choose-us feature
func (r *ContentRepository) CreateFeature(ctx context.Context, f *models.WhyChooseUsFeature) error {
	query := `
		INSERT INTO why_choose_us_features (title, description, icon, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		f.Title, f.Description, f.Icon, f.IsActive, f.DisplayOrder,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating feature: %w", err)
	}
	return nil
}

// GetFeatureByID retrieves a feature by ID
func (r *ContentRepository) GetFeatureByID(ctx context.Context, id int64) (*models.WhyChooseUsFeature, error) {
	return getContent[models.WhyChooseUsFeature](ctx, r.db, "why_choose_us_features", featureColumns, id)
}

// ListFeatures retrieves features ordered for display
func (r *ContentRepository) ListFeatures(ctx context.Context, activeOnly bool) ([]*models.WhyChooseUsFeature, error) {
	return listContent[models.WhyChooseUsFeature](ctx, r.db, "why_choose_us_features", featureColumns, activeOnly)
}

// UpdateFeature persists the full state of a feature
func (r *ContentRepository) UpdateFeature(ctx context.Context, f *models.WhyChooseUsFeature) error {
	query := `
		UPDATE why_choose_us_features
		SET title = $2, description = $3, icon = $4,
		    is_active = $5, display_order = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		f.ID, f.Title, f.Description, f.Icon, f.IsActive, f.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("error updating feature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// DeleteFeature removes a feature
func (r *ContentRepository) DeleteFeature(ctx context.Context, id int64) error {
	return deleteContent(ctx, r.db, "why_choose_us_features", id)
}

// --- Message tickers ---

const tickerColumns = `id, message, link_url, ` + displayColumns

// CreateTicker inserts a message ticker
func (r *ContentRepository) CreateTicker(ctx context.Context, t *models.MessageTicker) error {
	query := `
		INSERT INTO message_tickers (message, link_url, is_active, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		t.Message, t.LinkURL, t.IsActive, t.DisplayOrder,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating message ticker: %w", err)
	}
	return nil
}

// GetTickerByID retrieves a message ticker by ID
func (r *ContentRepository) GetTickerByID(ctx context.Context, id int64) (*models.MessageTicker, error) {
	return getContent[models.MessageTicker](ctx, r.db, "message_tickers", tickerColumns, id)
}

// ListTickers retrieves message tickers ordered for display
func (r *ContentRepository) ListTickers(ctx context.Context, activeOnly bool) ([]*models.MessageTicker, error) {
	return listContent[models.MessageTicker](ctx, r.db, "message_tickers", tickerColumns, activeOnly)
}

// UpdateTicker persists the full state of a message ticker
func (r *ContentRepository) UpdateTicker(ctx context.Context, t *models.MessageTicker) error {
	query := `
		UPDATE message_tickers
		SET message = $2, link_url = $3, is_active = $4, display_order = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		t.ID, t.Message, t.LinkURL, t.IsActive, t.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("error updating message ticker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// DeleteTicker removes a message ticker
func (r *ContentRepository) DeleteTicker(ctx context.Context, id int64) error {
	return deleteContent(ctx, r.db, "message_tickers", id)
}

// --- Leadership members ---

const leadershipColumns = `id, name, title, bio, photo_url, ` + displayColumns

// CreateLeadershipMember inserts a leadership member
func (r *ContentRepository) CreateLeadershipMember(ctx context.Context, m *models.LeadershipMember) error {
	query := `
		INSERT INTO leadership_members (name, title, bio, photo_url, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		m.Name, m.Title, m.Bio, m.PhotoURL, m.IsActive, m.DisplayOrder,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating leadership member: %w", err)
	}
	return nil
}

// GetLeadershipMemberByID retrieves a leadership member by ID
func (r *ContentRepository) GetLeadershipMemberByID(ctx context.Context, id int64) (*models.LeadershipMember, error) {
	return getContent[models.LeadershipMember](ctx, r.db, "leadership_members", leadershipColumns, id)
}

// ListLeadershipMembers retrieves leadership members ordered for display
func (r *ContentRepository) ListLeadershipMembers(ctx context.Context, activeOnly bool) ([]*models.LeadershipMember, error) {
	return listContent[models.LeadershipMember](ctx, r.db, "leadership_members", leadershipColumns, activeOnly)
}

// UpdateLeadershipMember persists the full state of a leadership member
func (r *ContentRepository) UpdateLeadershipMember(ctx context.Context, m *models.LeadershipMember) error {
	query := `
		UPDATE leadership_members
		SET name = $2, title = $3, bio = $4, photo_url = $5,
		    is_active = $6, display_order = $7, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		m.ID, m.Name, m.Title, m.Bio, m.PhotoURL, m.IsActive, m.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("error updating leadership member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// DeleteLeadershipMember removes a leadership member
func (r *ContentRepository) DeleteLeadershipMember(ctx context.Context, id int64) error {
	return deleteContent(ctx, r.db, "leadership_members", id)
}

// --- Departments ---

const departmentColumns = `id, name, description, email, ` + displayColumns

// CreateDepartment inserts a department
func (r *ContentRepository) CreateDepartment(ctx context.Context, d *models.Department) error {
	query := `
		INSERT INTO departments (name, description, email, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		d.Name, d.Description, d.Email, d.IsActive, d.DisplayOrder,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("A department with this name already exists")
		}
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// GetDepartmentByID retrieves a department by ID
func (r *ContentRepository) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	return getContent[models.Department](ctx, r.db, "departments", departmentColumns, id)
}

// ListDepartments retrieves departments ordered for display
func (r *ContentRepository) ListDepartments(ctx context.Context, activeOnly bool) ([]*models.Department, error) {
	return listContent[models.Department](ctx, r.db, "departments", departmentColumns, activeOnly)
}

// UpdateDepartment persists the full state of a department
func (r *ContentRepository) UpdateDepartment(ctx context.Context, d *models.Department) error {
	query := `
		UPDATE departments
		SET name = $2, description = $3, email = $4,
		    is_active = $5, display_order = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		d.ID, d.Name, d.Description, d.Email, d.IsActive, d.DisplayOrder,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("A department with this name already exists")
		}
		return fmt.Errorf("error updating department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// DeleteDepartment removes a department
func (r *ContentRepository) DeleteDepartment(ctx context.Context, id int64) error {
	return deleteContent(ctx, r.db, "departments", id)
}
