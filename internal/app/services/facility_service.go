package services

import (
	"context"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/helpers"
	"github.com/kerem/hostelhub/internal/pkg/logger"
)

// IFacilityRepository is the facility and damage report persistence surface
type IFacilityRepository interface {
	Create(ctx context.Context, facility *models.Facility) error
	GetByID(ctx context.Context, id int64) (*models.Facility, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Facility, error)
	Update(ctx context.Context, facility *models.Facility) error
	Delete(ctx context.Context, id int64) error
	CreateDamageReport(ctx context.Context, report *models.DamageReport) error
	ListDamageReports(ctx context.Context, facilityID int64) ([]*models.DamageReport, error)
	UpdateRepairStatus(ctx context.Context, reportID int64, status models.RepairStatus) error
}

// FacilityService handles facilities and their damage reports
type FacilityService struct {
	facilityRepo IFacilityRepository
}

// NewFacilityService creates a new FacilityService
func NewFacilityService(facilityRepo IFacilityRepository) *FacilityService {
	return &FacilityService{facilityRepo: facilityRepo}
}

// CreateFacility creates a facility
func (s *FacilityService) CreateFacility(ctx context.Context, req *dto.CreateFacilityRequest) (*models.Facility, error) {
	facility := &models.Facility{
		HostelID:    req.HostelID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		facility.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		facility.DisplayOrder = *req.DisplayOrder
	}

	if err := s.facilityRepo.Create(ctx, facility); err != nil {
		return nil, err
	}
	return facility, nil
}

// GetFacility retrieves a facility with its damage reports
func (s *FacilityService) GetFacility(ctx context.Context, id int64) (*models.Facility, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reports, err := s.facilityRepo.ListDamageReports(ctx, id)
	if err != nil {
		return nil, err
	}
	facility.DamageReports = reports

	return facility, nil
}

// ListFacilities retrieves facilities; public callers see active ones only
func (s *FacilityService) ListFacilities(ctx context.Context, includeInactive bool) ([]*models.Facility, error) {
	return s.facilityRepo.List(ctx, !includeInactive)
}

// UpdateFacility applies a partial update to a facility
func (s *FacilityService) UpdateFacility(ctx context.Context, id int64, req *dto.UpdateFacilityRequest) (*models.Facility, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.HostelID != nil {
		facility.HostelID = req.HostelID
	}
	facility.Name = helpers.CoalesceString(req.Name, facility.Name)
	facility.Description = helpers.CoalesceString(req.Description, facility.Description)
	facility.ImageURL = helpers.CoalesceStringPtr(req.ImageURL, facility.ImageURL)
	facility.IsActive = helpers.CoalesceBool(req.IsActive, facility.IsActive)
	facility.DisplayOrder = helpers.CoalesceInt(req.DisplayOrder, facility.DisplayOrder)

	if err := s.facilityRepo.Update(ctx, facility); err != nil {
		return nil, err
	}
	return facility, nil
}

// DeleteFacility removes a facility together with its reports
func (s *FacilityService) DeleteFacility(ctx context.Context, id int64) error {
	return s.facilityRepo.Delete(ctx, id)
}

// ReportDamage appends a damage report to a facility
func (s *FacilityService) ReportDamage(ctx context.Context, facilityID, reporterID int64, req *dto.CreateDamageReportRequest) (*models.DamageReport, error) {
	// Reject reports against unknown facilities with a clean 404
	if _, err := s.facilityRepo.GetByID(ctx, facilityID); err != nil {
		return nil, err
	}

	report := &models.DamageReport{
		FacilityID:  facilityID,
		ReporterID:  reporterID,
		Description: req.Description,
	}

	if err := s.facilityRepo.CreateDamageReport(ctx, report); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("facility_id", facilityID).
		Int64("report_id", report.ID).
		Msg("Damage report filed")

	return report, nil
}

// ListDamageReports retrieves the reports of a facility, newest first
func (s *FacilityService) ListDamageReports(ctx context.Context, facilityID int64) ([]*models.DamageReport, error) {
	if _, err := s.facilityRepo.GetByID(ctx, facilityID); err != nil {
		return nil, err
	}
	return s.facilityRepo.ListDamageReports(ctx, facilityID)
}

// UpdateRepairStatus moves a damage report to a new repair state
func (s *FacilityService) UpdateRepairStatus(ctx context.Context, reportID int64, status models.RepairStatus) error {
	return s.facilityRepo.UpdateRepairStatus(ctx, reportID, status)
}
