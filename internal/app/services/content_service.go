package services

import (
	"context"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/helpers"
)

// IContentRepository is the persistence surface for the public content
// collections
type IContentRepository interface {
	CreateHeroSlide(ctx context.Context, s *models.HeroSlide) error
	GetHeroSlideByID(ctx context.Context, id int64) (*models.HeroSlide, error)
	ListHeroSlides(ctx context.Context, activeOnly bool) ([]*models.HeroSlide, error)
	UpdateHeroSlide(ctx context.Context, s *models.HeroSlide) error
	DeleteHeroSlide(ctx context.Context, id int64) error

	CreateTestimonial(ctx context.Context, t *models.Testimonial) error
	GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error)
	ListTestimonials(ctx context.Context, activeOnly bool) ([]*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, t *models.Testimonial) error
	DeleteTestimonial(ctx context.Context, id int64) error

	CreateTeamMember(ctx context.Context, m *models.TeamMember) error
	GetTeamMemberByID(ctx context.Context, id int64) (*models.TeamMember, error)
	ListTeamMembers(ctx context.Context, activeOnly bool) ([]*models.TeamMember, error)
	UpdateTeamMember(ctx context.Context, m *models.TeamMember) error
	DeleteTeamMember(ctx context.Context, id int64) error

	CreateWelcomeSection(ctx context.Context, w *models.WelcomeSection) error
	GetWelcomeSectionByID(ctx context.Context, id int64) (*models.WelcomeSection, error)
	ListWelcomeSections(ctx context.Context, activeOnly bool) ([]*models.WelcomeSection, error)
	UpdateWelcomeSection(ctx context.Context, w *models.WelcomeSection) error
	DeleteWelcomeSection(ctx context.Context, id int64) error

	CreateFeature(ctx context.Context, f *models.WhyChooseUsFeature) error
	GetFeatureByID(ctx context.Context, id int64) (*models.WhyChooseUsFeature, error)
	ListFeatures(ctx context.Context, activeOnly bool) ([]*models.WhyChooseUsFeature, error)
	UpdateFeature(ctx context.Context, f *models.WhyChooseUsFeature) error
	DeleteFeature(ctx context.Context, id int64) error

	CreateTicker(ctx context.Context, t *models.MessageTicker) error
	GetTickerByID(ctx context.Context, id int64) (*models.MessageTicker, error)
	ListTickers(ctx context.Context, activeOnly bool) ([]*models.MessageTicker, error)
	UpdateTicker(ctx context.Context, t *models.MessageTicker) error
	DeleteTicker(ctx context.Context, id int64) error

	CreateLeadershipMember(ctx context.Context, m *models.LeadershipMember) error
	GetLeadershipMemberByID(ctx context.Context, id int64) (*models.LeadershipMember, error)
	ListLeadershipMembers(ctx context.Context, activeOnly bool) ([]*models.LeadershipMember, error)
	UpdateLeadershipMember(ctx context.Context, m *models.LeadershipMember) error
	DeleteLeadershipMember(ctx context.Context, id int64) error

	CreateDepartment(ctx context.Context, d *models.Department) error
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	ListDepartments(ctx context.Context, activeOnly bool) ([]*models.Department, error)
	UpdateDepartment(ctx context.Context, d *models.Department) error
	DeleteDepartment(ctx context.Context, id int64) error
}

// IMediaCleanup removes a hosted media object by its public URL when the
// entity referencing it goes away. Cleanup is best-effort.
type IMediaCleanup interface {
	CleanupByURL(ctx context.Context, url string)
}

// ContentService handles the public marketing content collections.
// Public reads see only active entries; admin reads see everything.
// Updates merge: a field absent from the payload keeps its stored value.
type ContentService struct {
	contentRepo IContentRepository
	media       IMediaCleanup
}

// NewContentService creates a new ContentService
func NewContentService(contentRepo IContentRepository, media IMediaCleanup) *ContentService {
	return &ContentService{contentRepo: contentRepo, media: media}
}

func (s *ContentService) cleanupMedia(ctx context.Context, url *string) {
	if url == nil {
		return
	}
	s.media.CleanupByURL(ctx, *url)
}

func newDisplay(f dto.DisplayFields) models.Display {
	d := models.Display{IsActive: true}
	if f.IsActive != nil {
		d.IsActive = *f.IsActive
	}
	if f.DisplayOrder != nil {
		d.DisplayOrder = *f.DisplayOrder
	}
	return d
}

func mergeDisplay(d *models.Display, f dto.DisplayFields) {
	d.IsActive = helpers.CoalesceBool(f.IsActive, d.IsActive)
	d.DisplayOrder = helpers.CoalesceInt(f.DisplayOrder, d.DisplayOrder)
}

// --- Hero slides ---

func (s *ContentService) CreateHeroSlide(ctx context.Context, req *dto.CreateHeroSlideRequest) (*models.HeroSlide, error) {
	slide := &models.HeroSlide{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Display:  newDisplay(req.DisplayFields),
	}
	if err := s.contentRepo.CreateHeroSlide(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *ContentService) GetHeroSlide(ctx context.Context, id int64) (*models.HeroSlide, error) {
	return s.contentRepo.GetHeroSlideByID(ctx, id)
}

func (s *ContentService) ListHeroSlides(ctx context.Context, includeInactive bool) ([]*models.HeroSlide, error) {
	return s.contentRepo.ListHeroSlides(ctx, !includeInactive)
}

func (s *ContentService) UpdateHeroSlide(ctx context.Context, id int64, req *dto.UpdateHeroSlideRequest) (*models.HeroSlide, error) {
	slide, err := s.contentRepo.GetHeroSlideByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slide.Title = helpers.CoalesceString(req.Title, slide.Title)
	slide.Subtitle = helpers.CoalesceStringPtr(req.Subtitle, slide.Subtitle)
	slide.ImageURL = helpers.CoalesceString(req.ImageURL, slide.ImageURL)
	slide.LinkURL = helpers.CoalesceStringPtr(req.LinkURL, slide.LinkURL)
	mergeDisplay(&slide.Display, req.DisplayFields)

	if err := s.contentRepo.UpdateHeroSlide(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *ContentService) DeleteHeroSlide(ctx context.Context, id int64) error {
	slide, err := s.contentRepo.GetHeroSlideByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.contentRepo.DeleteHeroSlide(ctx, id); err != nil {
		return err
	}
	s.media.CleanupByURL(ctx, slide.ImageURL)
	return nil
}

// --- Testimonials ---

func (s *ContentService) CreateTestimonial(ctx context.Context, req *dto.CreateTestimonialRequest) (*models.Testimonial, error) {
	t := &models.Testimonial{
		Author:   req.Author,
		Role:     req.Role,
		Quote:    req.Quote,
		PhotoURL: req.PhotoURL,
		Rating:   req.Rating,
		Display:  newDisplay(req.DisplayFields),
	}
	if err := s.contentRepo.CreateTestimonial(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ContentService) GetTestimonial(ctx context.Context, id int64) (*models.Testimonial, error) {
	return s.contentRepo.GetTestimonialByID(ctx, id)
}

func (s *ContentService) ListTestimonials(ctx context.Context, includeInactive bool) ([]*models.Testimonial, error) {
	return s.contentRepo.ListTestimonials(ctx, !includeInactive)
}

func (s *ContentService) UpdateTestimonial(ctx context.Context, id int64, req *dto.UpdateTestimonialRequest) (*models.Testimonial, error) {
	t, err := s.contentRepo.GetTestimonialByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Author = helpers.CoalesceString(req.Author, t.Author)
	t.Role = helpers.CoalesceStringPtr(req.Role, t.Role)
	t.Quote = helpers.CoalesceString(req.Quote, t.Quote)
	t.PhotoURL = helpers.CoalesceStringPtr(req.PhotoURL, t.PhotoURL)
	if req.Rating != nil {
		t.Rating = req.Rating
	}
	mergeDisplay(&t.Display, req.DisplayFields)

	if err := s.contentRepo.UpdateTestimonial(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, id int64) error {
	t, err := s.contentRepo.GetTestimonialByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.contentRepo.DeleteTestimonial(ctx, id); err != nil {
		return err
	}
	s.cleanupMedia(ctx, t.PhotoURL)
	return nil
}

// --- Team members ---

func (s *ContentService) CreateTeamMember(ctx context.Context, req *dto.CreateTeamMemberRequest) (*models.TeamMember, error) {
	m := &models.TeamMember{
		Name:     req.Name,
		Position: req.Position,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
		Display:  newDisplay(req.DisplayFields),
	}
	if err := s.contentRepo.CreateTeamMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ContentService) GetTeamMember(ctx context.Context, id int64) (*models.TeamMember, error) {
	return s.contentRepo.GetTeamMemberByID(ctx, id)
}

func (s *ContentService) ListTeamMembers(ctx context.Context, includeInactive bool) ([]*models.TeamMember, error) {
	return s.contentRepo.ListTeamMembers(ctx, !includeInactive)
}

func (s *ContentService) UpdateTeamMember(ctx context.Context, id int64, req *dto.UpdateTeamMemberRequest) (*models.TeamMember, error) {
	m, err := s.contentRepo.GetTeamMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Name = helpers.CoalesceString(req.Name, m.Name)
	m.Position = helpers.CoalesceString(req.Position, m.Position)
	m.Bio = helpers.CoalesceStringPtr(req.Bio, m.Bio)
	m.PhotoURL = helpers.CoalesceStringPtr(req.PhotoURL, m.PhotoURL)
	mergeDisplay(&m.Display, req.DisplayFields)

	if err := s.contentRepo.UpdateTeamMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ContentService) DeleteTeamMember(ctx context.Context, id int64) error {
	m, err := s.contentRepo.GetTeamMemberByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.contentRepo.DeleteTeamMember(ctx, id); err != nil {
		return err
	}
	s.cleanupMedia(ctx, m.PhotoURL)
	return nil
}

// --- Welcome sections ---

func (s *ContentService) CreateWelcomeSection(ctx context.Context, req *dto.CreateWelcomeSectionRequest) (*models.WelcomeSection, error) {
	w := &models.WelcomeSection{
		Heading:  req.Heading,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		Display:  newDisplay(req.DisplayFields),
	}
	if err := s.contentRepo.CreateWelcomeSection(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *ContentService) GetWelcomeSection(ctx context.Context, id int64) (*models.WelcomeSection, error) {
	return s.contentRepo.GetWelcomeSectionByID(ctx, id)
}

func (s *ContentService) ListWelcomeSections(ctx context.Context, includeInactive bool) ([]*models.WelcomeSection, error) {
	return s.contentRepo.ListWelcomeSections(ctx, !includeInactive)
}

func (s *ContentService) UpdateWelcomeSection(ctx context.Context, id int64, req *dto.UpdateWelcomeSectionRequest) (*models.WelcomeSection, error) {
	w, err := s.contentRepo.GetWelcomeSectionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	w.Heading = helpers.CoalesceString(req.Heading, w.Heading)
	w.Body = helpers.CoalesceString(req.Body, w.Body)
	w.ImageURL = helpers.CoalesceStringPtr(req.ImageURL, w.ImageURL)
	mergeDisplay(&w.Display, req.DisplayFields)

	if err := s.contentRepo.UpdateWelcomeSection(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *ContentService) DeleteWelcomeSection(ctx context.Context, id int64) error {
	w, err := s.contentRepo.GetWelcomeSectionByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.contentRepo.DeleteWelcomeSection(ctx, id); err != nil {
		return err
	}
	s.cleanupMedia(ctx, w.ImageURL)
	return nil
}

// --- Why-choose-us features ---

func (s *ContentService) CreateFeature(ctx context.Context, req *dto.CreateFeatureRequest) (*models.WhyChooseUsFeature, error) {
	f := &models.WhyChooseUsFeature{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Display:     newDisplay(req.DisplayFields),
	}
	if err := s.contentRepo.CreateFeature(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *ContentService) GetFeature(ctx context.Context, id int64) (*models.WhyChooseUsFeature, error) {
	return s.contentRepo.GetFeatureByID(ctx, id)
}

func (s *ContentService) ListFeatures(ctx context.Context, includeInactive bool) ([]*models.WhyChooseUsFeature, error) {
	return s.contentRepo.ListFeatures(ctx, !includeInactive)
}

func (s *ContentService) UpdateFeature(ctx context.Context, id int64, req *dto.UpdateFeatureRequest) (*models.WhyChooseUsFeature, error) {
	f, err := s.contentRepo.GetFeatureByID(ctx, id)
	if err != nil {
		return nil, err
	}

	f.Title = helpers.CoalesceString(req.Title, f.Title)
	f.Description = helpers.CoalesceString(req.Description, f.Description)
	f.Icon = helpers.CoalesceStringPtr(req.Icon, f.Icon)
	mergeDisplay(&f.Display, req.DisplayFields)

	if err := s.contentRepo.UpdateFeature(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *ContentService) DeleteFeature(ctx context.Context, id int64) error {
	return s.contentRepo.DeleteFeature(ctx, id)
}

// --- Message tickers ---

func (s *ContentService) CreateTicker(ctx context.Context, req *dto.CreateTickerRequest) (*models.MessageTicker, error) {
	t := &models.MessageTicker{
		Message: req.Message,
		LinkURL: req.LinkURL,
		Display: newDisplay(req.DisplayFields),
	}
	if err := s.contentRepo.CreateTicker(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ContentService) GetTicker(ctx context.Context, id int64) (*models.MessageTicker, error) {
	return s.contentRepo.GetTickerByID(ctx, id)
}

func (s *ContentService) ListTickers(ctx context.Context, includeInactive bool) ([]*models.MessageTicker, error) {
	return s.contentRepo.ListTickers(ctx, !includeInactive)
}

func (s *ContentService) UpdateTicker(ctx context.Context, id int64, req *dto.UpdateTickerRequest) (*models.MessageTicker, error) {
	t, err := s.contentRepo.GetTickerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Message = helpers.CoalesceString(req.Message, t.Message)
	t.LinkURL = helpers.CoalesceStringPtr(req.LinkURL, t.LinkURL)
	mergeDisplay(&t.Display, req.DisplayFields)

	if err := s.contentRepo.UpdateTicker(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ContentService) DeleteTicker(ctx context.Context, id int64) error {
	return s.contentRepo.DeleteTicker(ctx, id)
}

// --- Leadership members ---

func (s *ContentService) CreateLeadershipMember(ctx context.Context, req *dto.CreateLeadershipRequest) (*models.LeadershipMember, error) {
	m := &models.LeadershipMember{
		Name:     req.Name,
		Title:    req.Title,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
		Display:  newDisplay(req.DisplayFields),
	}
	if err := s.contentRepo.CreateLeadershipMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ContentService) GetLeadershipMember(ctx context.Context, id int64) (*models.LeadershipMember, error) {
	return s.contentRepo.GetLeadershipMemberByID(ctx, id)
}

func (s *ContentService) ListLeadershipMembers(ctx context.Context, includeInactive bool) ([]*models.LeadershipMember, error) {
	return s.contentRepo.ListLeadershipMembers(ctx, !includeInactive)
}

func (s *ContentService) UpdateLeadershipMember(ctx context.Context, id int64, req *dto.UpdateLeadershipRequest) (*models.LeadershipMember, error) {
	m, err := s.contentRepo.GetLeadershipMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Name = helpers.CoalesceString(req.Name, m.Name)
	m.Title = helpers.CoalesceString(req.Title, m.Title)
	m.Bio = helpers.CoalesceStringPtr(req.Bio, m.Bio)
	m.PhotoURL = helpers.CoalesceStringPtr(req.PhotoURL, m.PhotoURL)
	mergeDisplay(&m.Display, req.DisplayFields)

	if err := s.contentRepo.UpdateLeadershipMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ContentService) DeleteLeadershipMember(ctx context.Context, id int64) error {
	m, err := s.contentRepo.GetLeadershipMemberByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.contentRepo.DeleteLeadershipMember(ctx, id); err != nil {
		return err
	}
	s.cleanupMedia(ctx, m.PhotoURL)
	return nil
}

// --- Departments ---

func (s *ContentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	d := &models.Department{
		Name:        req.Name,
		Description: req.Description,
		Email:       req.Email,
		Display:     newDisplay(req.DisplayFields),
	}
	if err := s.contentRepo.CreateDepartment(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *ContentService) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	return s.contentRepo.GetDepartmentByID(ctx, id)
}

func (s *ContentService) ListDepartments(ctx context.Context, includeInactive bool) ([]*models.Department, error) {
	return s.contentRepo.ListDepartments(ctx, !includeInactive)
}

func (s *ContentService) UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	d, err := s.contentRepo.GetDepartmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.Name = helpers.CoalesceString(req.Name, d.Name)
	d.Description = helpers.CoalesceStringPtr(req.Description, d.Description)
	d.Email = helpers.CoalesceStringPtr(req.Email, d.Email)
	mergeDisplay(&d.Display, req.DisplayFields)

	if err := s.contentRepo.UpdateDepartment(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *ContentService) DeleteDepartment(ctx context.Context, id int64) error {
	return s.contentRepo.DeleteDepartment(ctx, id)
}
