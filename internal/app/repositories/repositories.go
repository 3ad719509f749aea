package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	HostelRepository     *HostelRepository
	FacilityRepository   *FacilityRepository
	ContentRepository    *ContentRepository
	SingletonRepository  *SingletonRepository
	IntakeRepository     *IntakeRepository
	NewsletterRepository *NewsletterRepository
	MediaRepository      *MediaRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		HostelRepository:     NewHostelRepository(db),
		FacilityRepository:   NewFacilityRepository(db),
		ContentRepository:    NewContentRepository(db),
		SingletonRepository:  NewSingletonRepository(db),
		IntakeRepository:     NewIntakeRepository(db),
		NewsletterRepository: NewNewsletterRepository(db),
		MediaRepository:      NewMediaRepository(db),
	}
}
