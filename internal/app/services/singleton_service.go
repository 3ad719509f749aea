package services

import (
	"context"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
)

// ISingletonRepository is the persistence surface for the single-row
// content documents
type ISingletonRepository interface {
	GetCompanyOverview(ctx context.Context) (*models.CompanyOverview, error)
	UpsertCompanyOverview(ctx context.Context, o *models.CompanyOverview) error
	GetContactDetails(ctx context.Context) (*models.ContactDetails, error)
	UpsertContactDetails(ctx context.Context, c *models.ContactDetails) error
	GetMembershipLevel(ctx context.Context) (*models.MembershipLevel, error)
	UpsertMembershipLevel(ctx context.Context, m *models.MembershipLevel) error
	GetLogo(ctx context.Context) (*models.Logo, error)
	UpsertLogo(ctx context.Context, l *models.Logo) error
}

// SingletonService handles the single-row content documents. Writes
// always replace the one row in place, so there is never a second copy
// to clean up.
type SingletonService struct {
	singletonRepo ISingletonRepository
}

// NewSingletonService creates a new SingletonService
func NewSingletonService(singletonRepo ISingletonRepository) *SingletonService {
	return &SingletonService{singletonRepo: singletonRepo}
}

// GetCompanyOverview retrieves the company overview
func (s *SingletonService) GetCompanyOverview(ctx context.Context) (*models.CompanyOverview, error) {
	return s.singletonRepo.GetCompanyOverview(ctx)
}

// UpsertCompanyOverview creates or replaces the company overview
func (s *SingletonService) UpsertCompanyOverview(ctx context.Context, req *dto.UpsertCompanyOverviewRequest) (*models.CompanyOverview, error) {
	overview := &models.CompanyOverview{
		Heading:  req.Heading,
		Body:     req.Body,
		Mission:  req.Mission,
		Vision:   req.Vision,
		ImageURL: req.ImageURL,
	}
	if err := s.singletonRepo.UpsertCompanyOverview(ctx, overview); err != nil {
		return nil, err
	}
	return overview, nil
}

// GetContactDetails retrieves the primary contact details
func (s *SingletonService) GetContactDetails(ctx context.Context) (*models.ContactDetails, error) {
	return s.singletonRepo.GetContactDetails(ctx)
}

// UpsertContactDetails creates or replaces the contact details
func (s *SingletonService) UpsertContactDetails(ctx context.Context, req *dto.UpsertContactDetailsRequest) (*models.ContactDetails, error) {
	contact := &models.ContactDetails{
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		MapsURL: req.MapsURL,
	}
	if err := s.singletonRepo.UpsertContactDetails(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// GetMembershipLevel retrieves the membership level
func (s *SingletonService) GetMembershipLevel(ctx context.Context) (*models.MembershipLevel, error) {
	return s.singletonRepo.GetMembershipLevel(ctx)
}

// UpsertMembershipLevel creates or replaces the membership level
func (s *SingletonService) UpsertMembershipLevel(ctx context.Context, req *dto.UpsertMembershipLevelRequest) (*models.MembershipLevel, error) {
	level := &models.MembershipLevel{
		Name:        req.Name,
		Description: req.Description,
		AnnualFee:   req.AnnualFee,
		Benefits:    req.Benefits,
	}
	if err := s.singletonRepo.UpsertMembershipLevel(ctx, level); err != nil {
		return nil, err
	}
	return level, nil
}

// GetLogo retrieves the active site logo
func (s *SingletonService) GetLogo(ctx context.Context) (*models.Logo, error) {
	return s.singletonRepo.GetLogo(ctx)
}

// UpsertLogo creates or replaces the site logo
func (s *SingletonService) UpsertLogo(ctx context.Context, req *dto.UpsertLogoRequest) (*models.Logo, error) {
	logo := &models.Logo{
		URL:     req.URL,
		AltText: req.AltText,
	}
	if err := s.singletonRepo.UpsertLogo(ctx, logo); err != nil {
		return nil, err
	}
	return logo, nil
}
