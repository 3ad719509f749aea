package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
)

// fakeContentRepo backs the hero slide and testimonial families with
// in-memory maps; the other families are not exercised here.
type fakeContentRepo struct {
	slides       map[int64]*models.HeroSlide
	testimonials map[int64]*models.Testimonial
	nextID       int64
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		slides:       map[int64]*models.HeroSlide{},
		testimonials: map[int64]*models.Testimonial{},
		nextID:       1,
	}
}

func (f *fakeContentRepo) CreateHeroSlide(_ context.Context, s *models.HeroSlide) error {
	s.ID = f.nextID
	f.nextID++
	f.slides[s.ID] = s
	return nil
}

func (f *fakeContentRepo) GetHeroSlideByID(_ context.Context, id int64) (*models.HeroSlide, error) {
	s, ok := f.slides[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeContentRepo) ListHeroSlides(_ context.Context, activeOnly bool) ([]*models.HeroSlide, error) {
	var out []*models.HeroSlide
	for _, s := range f.slides {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeContentRepo) UpdateHeroSlide(_ context.Context, s *models.HeroSlide) error {
	if _, ok := f.slides[s.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	f.slides[s.ID] = s
	return nil
}

func (f *fakeContentRepo) DeleteHeroSlide(_ context.Context, id int64) error {
	if _, ok := f.slides[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.slides, id)
	return nil
}

func (f *fakeContentRepo) CreateTestimonial(_ context.Context, t *models.Testimonial) error {
	t.ID = f.nextID
	f.nextID++
	f.testimonials[t.ID] = t
	return nil
}

func (f *fakeContentRepo) GetTestimonialByID(_ context.Context, id int64) (*models.Testimonial, error) {
	t, ok := f.testimonials[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeContentRepo) ListTestimonials(_ context.Context, activeOnly bool) ([]*models.Testimonial, error) {
	var out []*models.Testimonial
	for _, t := range f.testimonials {
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeContentRepo) UpdateTestimonial(_ context.Context, t *models.Testimonial) error {
	if _, ok := f.testimonials[t.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	f.testimonials[t.ID] = t
	return nil
}

func (f *fakeContentRepo) DeleteTestimonial(_ context.Context, id int64) error {
	if _, ok := f.testimonials[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.testimonials, id)
	return nil
}

func (f *fakeContentRepo) CreateTeamMember(context.Context, *models.TeamMember) error { return nil }
func (f *fakeContentRepo) GetTeamMemberByID(context.Context, int64) (*models.TeamMember, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (f *fakeContentRepo) ListTeamMembers(context.Context, bool) ([]*models.TeamMember, error) {
	return nil, nil
}
func (f *fakeContentRepo) UpdateTeamMember(context.Context, *models.TeamMember) error { return nil }
func (f *fakeContentRepo) DeleteTeamMember(context.Context, int64) error              { return nil }

func (f *fakeContentRepo) CreateWelcomeSection(context.Context, *models.WelcomeSection) error {
	return nil
}
func (f *fakeContentRepo) GetWelcomeSectionByID(context.Context, int64) (*models.WelcomeSection, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (f *fakeContentRepo) ListWelcomeSections(context.Context, bool) ([]*models.WelcomeSection, error) {
	return nil, nil
}
func (f *fakeContentRepo) UpdateWelcomeSection(context.Context, *models.WelcomeSection) error {
	return nil
}
func (f *fakeContentRepo) DeleteWelcomeSection(context.Context, int64) error { return nil }

func (f *fakeContentRepo) CreateFeature(context.Context, *models.WhyChooseUsFeature) error {
	return nil
}
func (f *fakeContentRepo) GetFeatureByID(context.Context, int64) (*models.WhyChooseUsFeature, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (f *fakeContentRepo) ListFeatures(context.Context, bool) ([]*models.WhyChooseUsFeature, error) {
	return nil, nil
}
func (f *fakeContentRepo) UpdateFeature(context.Context, *models.WhyChooseUsFeature) error {
	return nil
}
func (f *fakeContentRepo) DeleteFeature(context.Context, int64) error { return nil }

func (f *fakeContentRepo) CreateTicker(context.Context, *models.MessageTicker) error { return nil }
func (f *fakeContentRepo) GetTickerByID(context.Context, int64) (*models.MessageTicker, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (f *fakeContentRepo) ListTickers(context.Context, bool) ([]*models.MessageTicker, error) {
	return nil, nil
}
func (f *fakeContentRepo) UpdateTicker(context.Context, *models.MessageTicker) error { return nil }
func (f *fakeContentRepo) DeleteTicker(context.Context, int64) error                 { return nil }

func (f *fakeContentRepo) CreateLeadershipMember(context.Context, *models.LeadershipMember) error {
	return nil
}
func (f *fakeContentRepo) GetLeadershipMemberByID(context.Context, int64) (*models.LeadershipMember, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (f *fakeContentRepo) ListLeadershipMembers(context.Context, bool) ([]*models.LeadershipMember, error) {
	return nil, nil
}
func (f *fakeContentRepo) UpdateLeadershipMember(context.Context, *models.LeadershipMember) error {
	return nil
}
func (f *fakeContentRepo) DeleteLeadershipMember(context.Context, int64) error { return nil }

func (f *fakeContentRepo) CreateDepartment(context.Context, *models.Department) error { return nil }
func (f *fakeContentRepo) GetDepartmentByID(context.Context, int64) (*models.Department, error) {
	return nil, apperrors.ErrResourceNotFound
}
func (f *fakeContentRepo) ListDepartments(context.Context, bool) ([]*models.Department, error) {
	return nil, nil
}
func (f *fakeContentRepo) UpdateDepartment(context.Context, *models.Department) error { return nil }
func (f *fakeContentRepo) DeleteDepartment(context.Context, int64) error              { return nil }

type fakeMediaCleanup struct {
	cleaned []string
}

func (f *fakeMediaCleanup) CleanupByURL(_ context.Context, url string) {
	f.cleaned = append(f.cleaned, url)
}

func newContentFixture() (*ContentService, *fakeContentRepo, *fakeMediaCleanup) {
	repo := newFakeContentRepo()
	media := &fakeMediaCleanup{}
	return NewContentService(repo, media), repo, media
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestCreateHeroSlideDefaultsToActive(t *testing.T) {
	svc, _, _ := newContentFixture()

	slide, err := svc.CreateHeroSlide(context.Background(), &dto.CreateHeroSlideRequest{
		Title:    "Open day",
		ImageURL: "https://cdn.example.com/open-day.jpg",
	})
	require.NoError(t, err)
	assert.True(t, slide.IsActive)
	assert.Equal(t, 0, slide.DisplayOrder)
	assert.NotZero(t, slide.ID)
}

func TestUpdateHeroSlidePreservesOmittedFields(t *testing.T) {
	repo := newFakeContentRepo()
	svc := NewContentService(repo, &fakeMediaCleanup{})

	slide, err := svc.CreateHeroSlide(context.Background(), &dto.CreateHeroSlideRequest{
		Title:    "Open day",
		Subtitle: strPtr("Doors at noon"),
		ImageURL: "https://cdn.example.com/open-day.jpg",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateHeroSlide(context.Background(), slide.ID, &dto.UpdateHeroSlideRequest{
		Title:         strPtr("Open week"),
		DisplayFields: dto.DisplayFields{DisplayOrder: intPtr(3)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Open week", updated.Title)
	require.NotNil(t, updated.Subtitle)
	assert.Equal(t, "Doors at noon", *updated.Subtitle)
	assert.Equal(t, "https://cdn.example.com/open-day.jpg", updated.ImageURL)
	assert.Equal(t, 3, updated.DisplayOrder)
	assert.True(t, updated.IsActive)
}

func TestUpdateHeroSlideUnknownIDFails(t *testing.T) {
	svc, _, _ := newContentFixture()

	_, err := svc.UpdateHeroSlide(context.Background(), 99, &dto.UpdateHeroSlideRequest{
		Title: strPtr("Nope"),
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestListHeroSlidesFiltersInactiveByDefault(t *testing.T) {
	repo := newFakeContentRepo()
	svc := NewContentService(repo, &fakeMediaCleanup{})

	_, err := svc.CreateHeroSlide(context.Background(), &dto.CreateHeroSlideRequest{
		Title:    "Visible",
		ImageURL: "https://cdn.example.com/a.jpg",
	})
	require.NoError(t, err)
	_, err = svc.CreateHeroSlide(context.Background(), &dto.CreateHeroSlideRequest{
		Title:         "Hidden",
		ImageURL:      "https://cdn.example.com/b.jpg",
		DisplayFields: dto.DisplayFields{IsActive: boolPtr(false)},
	})
	require.NoError(t, err)

	active, err := svc.ListHeroSlides(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := svc.ListHeroSlides(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateTestimonialKeepsRatingWhenOmitted(t *testing.T) {
	repo := newFakeContentRepo()
	svc := NewContentService(repo, &fakeMediaCleanup{})

	created, err := svc.CreateTestimonial(context.Background(), &dto.CreateTestimonialRequest{
		Author: "Ada",
		Quote:  "Best hostel on campus",
		Rating: intPtr(5),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTestimonial(context.Background(), created.ID, &dto.UpdateTestimonialRequest{
		Quote: strPtr("Still the best hostel on campus"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 5, *updated.Rating)
	assert.Equal(t, "Ada", updated.Author)
}

func TestDeleteHeroSlideCleansUpImage(t *testing.T) {
	svc, _, media := newContentFixture()

	slide, err := svc.CreateHeroSlide(context.Background(), &dto.CreateHeroSlideRequest{
		Title:    "Open day",
		ImageURL: "https://cdn.example.com/open-day.jpg",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHeroSlide(context.Background(), slide.ID))
	assert.Equal(t, []string{"https://cdn.example.com/open-day.jpg"}, media.cleaned)
}

func TestDeleteTestimonialUnknownIDFails(t *testing.T) {
	svc, _, _ := newContentFixture()
	assert.ErrorIs(t, svc.DeleteTestimonial(context.Background(), 404), apperrors.ErrResourceNotFound)
}
