package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/dberrors"
	"github.com/kerem/hostelhub/internal/pkg/helpers"
)

// IntakeRepository handles database operations for the public intake
// forms: complaints and membership applications
type IntakeRepository struct {
	db *pgxpool.Pool
}

// NewIntakeRepository creates a new IntakeRepository
func NewIntakeRepository(db *pgxpool.Pool) *IntakeRepository {
	return &IntakeRepository{db: db}
}

// CreateComplaint inserts a complaint submitted from the public site
func (r *IntakeRepository) CreateComplaint(ctx context.Context, c *models.Complaint) error {
	query := `
		INSERT INTO complaints (name, email, subject, body, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	c.Status = models.ComplaintOpen
	err := r.db.QueryRow(ctx, query, c.Name, c.Email, c.Subject, c.Body, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating complaint: %w", err)
	}

	return nil
}

// GetComplaintByID retrieves a complaint by ID
func (r *IntakeRepository) GetComplaintByID(ctx context.Context, id int64) (*models.Complaint, error) {
	query := `
		SELECT id, name, email, subject, body, status, created_at, updated_at
		FROM complaints
		WHERE id = $1
	`

	var c models.Complaint
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Subject, &c.Body, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewResourceNotFoundError("Complaint not found")
		}
		return nil, fmt.Errorf("error retrieving complaint: %w", err)
	}

	return &c, nil
}

// ListComplaints retrieves complaints newest first, optionally filtered
// by status, with pagination
func (r *IntakeRepository) ListComplaints(ctx context.Context, status models.ComplaintStatus, page, pageSize int) ([]*models.Complaint, int64, error) {
	countQuery := `SELECT COUNT(*) FROM complaints`
	listQuery := `
		SELECT id, name, email, subject, body, status, created_at, updated_at
		FROM complaints
	`
	args := []any{}
	if status != "" {
		countQuery += ` WHERE status = $1`
		listQuery += ` WHERE status = $1`
		args = append(args, status)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting complaints: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	listQuery += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing complaints: %w", err)
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		var c models.Complaint
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Subject, &c.Body, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		complaints = append(complaints, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return complaints, total, nil
}

// UpdateComplaintStatus moves a complaint to a new handling state
func (r *IntakeRepository) UpdateComplaintStatus(ctx context.Context, id int64, status models.ComplaintStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE complaints SET status = $2, updated_at = NOW() WHERE id = $1`, id, status,
	)
	if err != nil {
		return fmt.Errorf("error updating complaint status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Complaint not found")
	}
	return nil
}

// DeleteComplaint removes a complaint
func (r *IntakeRepository) DeleteComplaint(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM complaints WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting complaint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Complaint not found")
	}
	return nil
}

// CountOpenComplaints returns the number of complaints not yet resolved
func (r *IntakeRepository) CountOpenComplaints(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM complaints WHERE status <> $1`, models.ComplaintResolved,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting open complaints: %w", err)
	}
	return count, nil
}

// CreateApplication inserts a membership application
func (r *IntakeRepository) CreateApplication(ctx context.Context, a *models.JoinApplication) error {
	query := `
		INSERT INTO join_applications (first_name, last_name, email, phone, campus, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	a.Status = models.ApplicationPending
	err := r.db.QueryRow(ctx, query,
		a.FirstName, a.LastName, a.Email, a.Phone, a.Campus, a.Message, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetApplicationByID retrieves a membership application by ID
func (r *IntakeRepository) GetApplicationByID(ctx context.Context, id int64) (*models.JoinApplication, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, campus, message, status, created_at, updated_at
		FROM join_applications
		WHERE id = $1
	`

	var a models.JoinApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
		&a.Campus, &a.Message, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewResourceNotFoundError("Application not found")
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &a, nil
}

// ListApplications retrieves applications newest first, optionally
// filtered by status, with pagination
func (r *IntakeRepository) ListApplications(ctx context.Context, status models.ApplicationStatus, page, pageSize int) ([]*models.JoinApplication, int64, error) {
	countQuery := `SELECT COUNT(*) FROM join_applications`
	listQuery := `
		SELECT id, first_name, last_name, email, phone, campus, message, status, created_at, updated_at
		FROM join_applications
	`
	args := []any{}
	if status != "" {
		countQuery += ` WHERE status = $1`
		listQuery += ` WHERE status = $1`
		args = append(args, status)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting applications: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	listQuery += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.JoinApplication
	for rows.Next() {
		var a models.JoinApplication
		if err := rows.Scan(
			&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
			&a.Campus, &a.Message, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		applications = append(applications, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// UpdateApplicationStatus resolves a pending application. Applications
// that already reached a terminal state cannot be flipped again.
func (r *IntakeRepository) UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	query := `
		UPDATE join_applications
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	tag, err := r.db.Exec(ctx, query, id, status, models.ApplicationPending)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetApplicationByID(ctx, id); err != nil {
			return err
		}
		return apperrors.ErrAlreadyResolved
	}

	return nil
}

// DeleteApplication removes a membership application
func (r *IntakeRepository) DeleteApplication(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM join_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Application not found")
	}
	return nil
}

// CountPendingApplications returns the number of unresolved applications
func (r *IntakeRepository) CountPendingApplications(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM join_applications WHERE status = $1`, models.ApplicationPending,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending applications: %w", err)
	}
	return count, nil
}
