package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kerem/hostelhub/internal/app/models"
	appRepos "github.com/kerem/hostelhub/internal/app/repositories"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/auth"
)

// CreateDefaultData seeds the super admin account and the baseline
// site content so a fresh deployment serves a working public page.
// Errors are collected rather than aborting so one bad seed does not
// block the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	singletonRepo := appRepos.NewSingletonRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default super admin --- //
	const adminEmail = "admin@hostelhub.org"
	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if super admin exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default super admin user...")

		hashedPassword, err := auth.HashPassword("Admin123!")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing super admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:     adminEmail,
				Password:  hashedPassword,
				FirstName: "System",
				LastName:  "Administrator",
				RoleType:  appModels.RoleSuperAdmin,
				IsActive:  true,
			}
			if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating super admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Warn().Str("email", adminEmail).Msg("Default super admin created, change the password immediately")
			}
		}
	}

	// --- Baseline site content --- //
	// Only written when missing so operator edits survive restarts.
	if _, err := singletonRepo.GetCompanyOverview(ctx); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			overview := &appModels.CompanyOverview{
				Heading: "Welcome to the Hostel Association",
				Body:    "We connect students with safe, affordable accommodation across every campus.",
			}
			if err := singletonRepo.UpsertCompanyOverview(ctx, overview); err != nil {
				lgr.Error().Err(err).Msg("Error seeding company overview")
				finalErr = errors.Join(finalErr, err)
			}
		} else {
			lgr.Error().Err(err).Msg("Error checking company overview")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if _, err := singletonRepo.GetContactDetails(ctx); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			contact := &appModels.ContactDetails{
				Email:   "info@hostelhub.org",
				Phone:   "+00 000 000 0000",
				Address: "Association Office, Main Campus",
			}
			if err := singletonRepo.UpsertContactDetails(ctx, contact); err != nil {
				lgr.Error().Err(err).Msg("Error seeding contact details")
				finalErr = errors.Join(finalErr, err)
			}
		} else {
			lgr.Error().Err(err).Msg("Error checking contact details")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check complete")
	return finalErr
}
