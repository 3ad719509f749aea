package services

import (
	"context"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/auth"
	"github.com/kerem/hostelhub/internal/pkg/helpers"
	"github.com/kerem/hostelhub/internal/pkg/logger"
)

// UserService handles the admin-facing user management operations
type UserService struct {
	userRepo  IUserRepository
	tokenRepo ITokenRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo IUserRepository, tokenRepo ITokenRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// CreateUser creates an account with an assigned role. An actor may only
// hand out roles strictly below their own, so an ADMIN cannot mint
// another ADMIN.
func (s *UserService) CreateUser(ctx context.Context, actorRole models.RoleType, req *dto.CreateUserRequest) (*models.User, error) {
	role := models.RoleType(req.RoleType)
	if !role.Valid() {
		return nil, apperrors.NewValidationError("Unknown role")
	}
	if role.Level() >= actorRole.Level() {
		return nil, apperrors.NewForbiddenError("Cannot assign a role at or above your own")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Gender:    req.Gender,
		RoleType:  role,
		IsActive:  true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("user_id", user.ID).
		Str("role", string(role)).
		Msg("User created by admin")

	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves a page of users
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) ([]*models.User, dto.PaginationInfo, error) {
	users, total, err := s.userRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return users, helpers.NewPaginationInfo(total, page, pageSize), nil
}

// UpdateUser applies a partial update. Fields absent from the request
// keep their stored value. Role changes obey the same ceiling as
// CreateUser, and an actor can never edit someone ranked at or above
// themselves.
func (s *UserService) UpdateUser(ctx context.Context, actorID int64, actorRole models.RoleType, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actorID != id && user.RoleType.Level() >= actorRole.Level() {
		return nil, apperrors.NewForbiddenError("Cannot modify a user at or above your own role")
	}

	if req.RoleType != nil {
		newRole := models.RoleType(*req.RoleType)
		if !newRole.Valid() {
			return nil, apperrors.NewValidationError("Unknown role")
		}
		if newRole.Level() >= actorRole.Level() {
			return nil, apperrors.NewForbiddenError("Cannot assign a role at or above your own")
		}
		user.RoleType = newRole
	}

	user.FirstName = helpers.CoalesceString(req.FirstName, user.FirstName)
	user.LastName = helpers.CoalesceString(req.LastName, user.LastName)
	user.Phone = helpers.CoalesceStringPtr(req.Phone, user.Phone)
	user.Gender = helpers.CoalesceStringPtr(req.Gender, user.Gender)

	wasActive := user.IsActive
	user.IsActive = helpers.CoalesceBool(req.IsActive, user.IsActive)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	// Disabling an account kills its sessions immediately
	if wasActive && !user.IsActive {
		if err := s.tokenRepo.RevokeAllForUser(ctx, user.ID); err != nil {
			logger.Warn().Err(err).Int64("user_id", user.ID).Msg("Failed to revoke tokens for disabled user")
		}
	}

	return user, nil
}

// DeleteUser removes a user account
func (s *UserService) DeleteUser(ctx context.Context, actorRole models.RoleType, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.RoleType.Level() >= actorRole.Level() {
		return apperrors.NewForbiddenError("Cannot delete a user at or above your own role")
	}

	return s.userRepo.Delete(ctx, id)
}
