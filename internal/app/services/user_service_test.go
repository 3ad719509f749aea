package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
)

func newUserFixture() (*UserService, *fakeUserRepo, *fakeTokenRepo) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	return NewUserService(users, tokens), users, tokens
}

func seedUser(t *testing.T, repo *fakeUserRepo, email string, role models.RoleType) *models.User {
	t.Helper()
	user := &models.User{
		Email:     email,
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
		RoleType:  role,
		IsActive:  true,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestCreateUserAssignsLowerRole(t *testing.T) {
	svc, _, _ := newUserFixture()

	user, err := svc.CreateUser(context.Background(), models.RoleAdmin, &dto.CreateUserRequest{
		Email:     "staff@example.com",
		Password:  "s3cretpass",
		FirstName: "Grace",
		LastName:  "Hopper",
		RoleType:  "STAFF",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, user.RoleType)
	assert.True(t, user.IsActive)
}

func TestCreateUserRejectsPeerRole(t *testing.T) {
	svc, _, _ := newUserFixture()

	_, err := svc.CreateUser(context.Background(), models.RoleAdmin, &dto.CreateUserRequest{
		Email:     "other@example.com",
		Password:  "s3cretpass",
		FirstName: "Grace",
		LastName:  "Hopper",
		RoleType:  "ADMIN",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newUserFixture()

	_, err := svc.CreateUser(context.Background(), models.RoleSuperAdmin, &dto.CreateUserRequest{
		Email:     "other@example.com",
		Password:  "s3cretpass",
		FirstName: "Grace",
		LastName:  "Hopper",
		RoleType:  "OVERLORD",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateUserMergesPartialFields(t *testing.T) {
	svc, users, _ := newUserFixture()
	target := seedUser(t, users, "student@example.com", models.RoleStudent)
	admin := seedUser(t, users, "admin@example.com", models.RoleAdmin)

	newName := "Renamed"
	updated, err := svc.UpdateUser(context.Background(), admin.ID, models.RoleAdmin, target.ID, &dto.UpdateUserRequest{
		FirstName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FirstName)
	assert.Equal(t, "User", updated.LastName)
	assert.Equal(t, models.RoleStudent, updated.RoleType)
}

func TestUpdateUserCannotEditPeer(t *testing.T) {
	svc, users, _ := newUserFixture()
	target := seedUser(t, users, "admin1@example.com", models.RoleAdmin)
	actor := seedUser(t, users, "admin2@example.com", models.RoleAdmin)

	name := "Nope"
	_, err := svc.UpdateUser(context.Background(), actor.ID, models.RoleAdmin, target.ID, &dto.UpdateUserRequest{
		FirstName: &name,
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateUserCanEditSelf(t *testing.T) {
	svc, users, _ := newUserFixture()
	actor := seedUser(t, users, "admin@example.com", models.RoleAdmin)

	name := "Myself"
	updated, err := svc.UpdateUser(context.Background(), actor.ID, models.RoleAdmin, actor.ID, &dto.UpdateUserRequest{
		FirstName: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Myself", updated.FirstName)
}

func TestUpdateUserCannotPromoteToOwnLevel(t *testing.T) {
	svc, users, _ := newUserFixture()
	target := seedUser(t, users, "staff@example.com", models.RoleStaff)
	actor := seedUser(t, users, "admin@example.com", models.RoleAdmin)

	role := "ADMIN"
	_, err := svc.UpdateUser(context.Background(), actor.ID, models.RoleAdmin, target.ID, &dto.UpdateUserRequest{
		RoleType: &role,
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDeactivatingUserRevokesSessions(t *testing.T) {
	svc, users, tokens := newUserFixture()
	target := seedUser(t, users, "student@example.com", models.RoleStudent)
	actor := seedUser(t, users, "admin@example.com", models.RoleAdmin)

	require.NoError(t, tokens.Store(context.Background(), target.ID, "live-token", time.Now().Add(time.Hour)))

	inactive := false
	updated, err := svc.UpdateUser(context.Background(), actor.ID, models.RoleAdmin, target.ID, &dto.UpdateUserRequest{
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	stored, err := tokens.Get(context.Background(), "live-token")
	require.NoError(t, err)
	assert.True(t, stored.Revoked)
}

func TestDeleteUserRespectsRoleCeiling(t *testing.T) {
	svc, users, _ := newUserFixture()
	peer := seedUser(t, users, "admin1@example.com", models.RoleAdmin)
	student := seedUser(t, users, "student@example.com", models.RoleStudent)

	err := svc.DeleteUser(context.Background(), models.RoleAdmin, peer.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteUser(context.Background(), models.RoleAdmin, student.ID))
	_, err = users.GetByID(context.Background(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
