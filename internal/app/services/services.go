package services

import (
	"github.com/kerem/hostelhub/internal/app/repositories"
	"github.com/kerem/hostelhub/internal/pkg/auth"
	"github.com/kerem/hostelhub/internal/pkg/geocode"
	"github.com/kerem/hostelhub/internal/pkg/mailer"
	"github.com/kerem/hostelhub/internal/pkg/mediastore"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	UserService       *UserService
	HostelService     *HostelService
	ContentService    *ContentService
	SingletonService  *SingletonService
	FacilityService   *FacilityService
	IntakeService     *IntakeService
	NewsletterService *NewsletterService
	MediaService      *MediaService
}

// NewServices wires every service to its repositories and providers
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	mail mailer.Mailer,
	store mediastore.MediaStore,
	geocoder geocode.Geocoder,
) *Services {
	mediaService := NewMediaService(repos.MediaRepository, store)

	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		UserService:       NewUserService(repos.UserRepository, repos.TokenRepository),
		HostelService:     NewHostelService(repos.HostelRepository, repos.IntakeRepository, geocoder),
		ContentService:    NewContentService(repos.ContentRepository, mediaService),
		SingletonService:  NewSingletonService(repos.SingletonRepository),
		FacilityService:   NewFacilityService(repos.FacilityRepository),
		IntakeService:     NewIntakeService(repos.IntakeRepository),
		NewsletterService: NewNewsletterService(repos.NewsletterRepository, mail),
		MediaService:      mediaService,
	}
}
