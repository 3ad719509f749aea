package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/dberrors"
)

// FacilityRepository handles database operations for facilities and
// their damage reports
type FacilityRepository struct {
	db *pgxpool.Pool
}

// NewFacilityRepository creates a new FacilityRepository
func NewFacilityRepository(db *pgxpool.Pool) *FacilityRepository {
	return &FacilityRepository{db: db}
}

// Create inserts a new facility
func (r *FacilityRepository) Create(ctx context.Context, facility *models.Facility) error {
	query := `
		INSERT INTO facilities (hostel_id, name, description, image_url, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		facility.HostelID,
		facility.Name,
		facility.Description,
		facility.ImageURL,
		facility.IsActive,
		facility.DisplayOrder,
	).Scan(&facility.ID, &facility.CreatedAt, &facility.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrHostelNotFound
		}
		return fmt.Errorf("error creating facility: %w", err)
	}

	return nil
}

// GetByID retrieves a facility by ID
func (r *FacilityRepository) GetByID(ctx context.Context, id int64) (*models.Facility, error) {
	query := `
		SELECT id, hostel_id, name, description, image_url, is_active, display_order, created_at, updated_at
		FROM facilities
		WHERE id = $1
	`

	var f models.Facility
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.HostelID, &f.Name, &f.Description, &f.ImageURL,
		&f.IsActive, &f.DisplayOrder, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewResourceNotFoundError("Facility not found")
		}
		return nil, fmt.Errorf("error retrieving facility: %w", err)
	}

	return &f, nil
}

// List retrieves facilities ordered by display order. When activeOnly is
// set, inactive entries are filtered out.
func (r *FacilityRepository) List(ctx context.Context, activeOnly bool) ([]*models.Facility, error) {
	query := `
		SELECT id, hostel_id, name, description, image_url, is_active, display_order, created_at, updated_at
		FROM facilities
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing facilities: %w", err)
	}
	defer rows.Close()

	var facilities []*models.Facility
	for rows.Next() {
		var f models.Facility
		if err := rows.Scan(
			&f.ID, &f.HostelID, &f.Name, &f.Description, &f.ImageURL,
			&f.IsActive, &f.DisplayOrder, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		facilities = append(facilities, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return facilities, nil
}

// Update persists the mutable fields of a facility
func (r *FacilityRepository) Update(ctx context.Context, facility *models.Facility) error {
	query := `
		UPDATE facilities
		SET hostel_id = $2, name = $3, description = $4, image_url = $5,
		    is_active = $6, display_order = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		facility.ID,
		facility.HostelID,
		facility.Name,
		facility.Description,
		facility.ImageURL,
		facility.IsActive,
		facility.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("error updating facility: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Facility not found")
	}

	return nil
}

// Delete removes a facility and its damage reports
func (r *FacilityRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM facilities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting facility: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Facility not found")
	}
	return nil
}

// CreateDamageReport appends a damage report to a facility
func (r *FacilityRepository) CreateDamageReport(ctx context.Context, report *models.DamageReport) error {
	query := `
		INSERT INTO damage_reports (facility_id, reporter_id, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	report.Status = models.RepairPending
	err := r.db.QueryRow(ctx, query,
		report.FacilityID,
		report.ReporterID,
		report.Description,
		report.Status,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("Facility not found")
		}
		return fmt.Errorf("error creating damage report: %w", err)
	}

	return nil
}

// ListDamageReports retrieves reports for a facility, newest first
func (r *FacilityRepository) ListDamageReports(ctx context.Context, facilityID int64) ([]*models.DamageReport, error) {
	query := `
		SELECT id, facility_id, reporter_id, description, status, created_at, updated_at
		FROM damage_reports
		WHERE facility_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, facilityID)
	if err != nil {
		return nil, fmt.Errorf("error listing damage reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.DamageReport
	for rows.Next() {
		var report models.DamageReport
		if err := rows.Scan(
			&report.ID, &report.FacilityID, &report.ReporterID,
			&report.Description, &report.Status, &report.CreatedAt, &report.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// UpdateRepairStatus moves a damage report to a new repair state
func (r *FacilityRepository) UpdateRepairStatus(ctx context.Context, reportID int64, status models.RepairStatus) error {
	query := `
		UPDATE damage_reports
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, reportID, status)
	if err != nil {
		return fmt.Errorf("error updating repair status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Damage report not found")
	}

	return nil
}
