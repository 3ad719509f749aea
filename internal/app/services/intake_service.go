package services

import (
	"context"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/helpers"
	"github.com/kerem/hostelhub/internal/pkg/logger"
)

// IIntakeRepository is the persistence surface for the public intake forms
type IIntakeRepository interface {
	CreateComplaint(ctx context.Context, c *models.Complaint) error
	GetComplaintByID(ctx context.Context, id int64) (*models.Complaint, error)
	ListComplaints(ctx context.Context, status models.ComplaintStatus, page, pageSize int) ([]*models.Complaint, int64, error)
	UpdateComplaintStatus(ctx context.Context, id int64, status models.ComplaintStatus) error
	DeleteComplaint(ctx context.Context, id int64) error
	CountOpenComplaints(ctx context.Context) (int64, error)

	CreateApplication(ctx context.Context, a *models.JoinApplication) error
	GetApplicationByID(ctx context.Context, id int64) (*models.JoinApplication, error)
	ListApplications(ctx context.Context, status models.ApplicationStatus, page, pageSize int) ([]*models.JoinApplication, int64, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
	DeleteApplication(ctx context.Context, id int64) error
	CountPendingApplications(ctx context.Context) (int64, error)
}

// IntakeService handles complaints and membership applications filed
// through the public site
type IntakeService struct {
	intakeRepo IIntakeRepository
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(intakeRepo IIntakeRepository) *IntakeService {
	return &IntakeService{intakeRepo: intakeRepo}
}

// FileComplaint records a complaint from the public form
func (s *IntakeService) FileComplaint(ctx context.Context, req *dto.CreateComplaintRequest) (*models.Complaint, error) {
	complaint := &models.Complaint{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}

	if err := s.intakeRepo.CreateComplaint(ctx, complaint); err != nil {
		return nil, err
	}

	logger.Info().Int64("complaint_id", complaint.ID).Msg("Complaint filed")

	return complaint, nil
}

// GetComplaint retrieves a complaint by ID
func (s *IntakeService) GetComplaint(ctx context.Context, id int64) (*models.Complaint, error) {
	return s.intakeRepo.GetComplaintByID(ctx, id)
}

// ListComplaints retrieves a page of complaints, optionally by status
func (s *IntakeService) ListComplaints(ctx context.Context, status string, page, pageSize int) ([]*models.Complaint, dto.PaginationInfo, error) {
	complaints, total, err := s.intakeRepo.ListComplaints(ctx, models.ComplaintStatus(status), page, pageSize)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return complaints, helpers.NewPaginationInfo(total, page, pageSize), nil
}

// UpdateComplaintStatus moves a complaint to a new handling state
func (s *IntakeService) UpdateComplaintStatus(ctx context.Context, id int64, status models.ComplaintStatus) (*models.Complaint, error) {
	if err := s.intakeRepo.UpdateComplaintStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.intakeRepo.GetComplaintByID(ctx, id)
}

// DeleteComplaint removes a complaint
func (s *IntakeService) DeleteComplaint(ctx context.Context, id int64) error {
	return s.intakeRepo.DeleteComplaint(ctx, id)
}

// SubmitApplication records a membership application from the public form
func (s *IntakeService) SubmitApplication(ctx context.Context, req *dto.CreateJoinApplicationRequest) (*models.JoinApplication, error) {
	application := &models.JoinApplication{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Campus:    req.Campus,
		Message:   req.Message,
	}

	if err := s.intakeRepo.CreateApplication(ctx, application); err != nil {
		return nil, err
	}

	logger.Info().Int64("application_id", application.ID).Msg("Membership application submitted")

	return application, nil
}

// GetApplication retrieves a membership application by ID
func (s *IntakeService) GetApplication(ctx context.Context, id int64) (*models.JoinApplication, error) {
	return s.intakeRepo.GetApplicationByID(ctx, id)
}

// ListApplications retrieves a page of applications, optionally by status
func (s *IntakeService) ListApplications(ctx context.Context, status string, page, pageSize int) ([]*models.JoinApplication, dto.PaginationInfo, error) {
	applications, total, err := s.intakeRepo.ListApplications(ctx, models.ApplicationStatus(status), page, pageSize)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return applications, helpers.NewPaginationInfo(total, page, pageSize), nil
}

// ResolveApplication approves or declines a pending application. A
// request already resolved comes back as ErrAlreadyResolved.
func (s *IntakeService) ResolveApplication(ctx context.Context, id int64, status models.ApplicationStatus) (*models.JoinApplication, error) {
	if err := s.intakeRepo.UpdateApplicationStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.intakeRepo.GetApplicationByID(ctx, id)
}

// DeleteApplication removes a membership application
func (s *IntakeService) DeleteApplication(ctx context.Context, id int64) error {
	return s.intakeRepo.DeleteApplication(ctx, id)
}
