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
	"github.com/kerem/hostelhub/internal/pkg/auth"
)

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) List(_ context.Context, page, pageSize int) ([]*models.User, int64, error) {
	var out []*models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID int64, hash string) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = hash
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeTokenRepo) Store(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	f.tokens[token] = &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (f *fakeTokenRepo) Get(_ context.Context, token string) (*models.RefreshToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	return t, nil
}

func (f *fakeTokenRepo) Revoke(_ context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	t.Revoked = true
	return nil
}

func (f *fakeTokenRepo) RevokeAllForUser(_ context.Context, userID int64) error {
	for _, t := range f.tokens {
		if t.UserID == userID {
			t.Revoked = true
		}
	}
	return nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "hostelhub.test",
	})
}

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeTokenRepo) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	return NewAuthService(users, tokens, testJWTService()), users, tokens
}

func registerTestUser(t *testing.T, svc *AuthService) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "ada@example.com",
		Password:  "s3cretpass",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterCreatesActiveStudent(t *testing.T) {
	svc, _, _ := newAuthFixture()

	user := registerTestUser(t, svc)
	assert.Equal(t, models.RoleStudent, user.RoleType)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cretpass", user.Password)
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	svc, _, _ := newAuthFixture()
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "ada@example.com",
		Password:  "otherpass1",
		FirstName: "Ada",
		LastName:  "Byron",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, users, _ := newAuthFixture()
	user := registerTestUser(t, svc)

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestLoginWrongPasswordFails(t *testing.T) {
	svc, _, _ := newAuthFixture()
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailHidesExistence(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginDisabledAccountFails(t *testing.T) {
	svc, users, _ := newAuthFixture()
	user := registerTestUser(t, svc)
	user.IsActive = false
	require.NoError(t, users.Update(context.Background(), user))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "s3cretpass",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _, tokens := newAuthFixture()
	registerTestUser(t, svc)

	pair, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	fresh, err := svc.RefreshTokens(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, fresh.RefreshToken)

	// The used refresh token is burned
	used, err := tokens.Get(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.True(t, used.Revoked)

	_, err = svc.RefreshTokens(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshExpiredTokenFails(t *testing.T) {
	svc, _, tokens := newAuthFixture()
	user := registerTestUser(t, svc)

	require.NoError(t, tokens.Store(context.Background(), user.ID, "stale-token", time.Now().Add(-time.Minute)))

	_, err := svc.RefreshTokens(context.Background(), "stale-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, _ := newAuthFixture()
	registerTestUser(t, svc)

	pair, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), pair.RefreshToken))

	_, err = svc.RefreshTokens(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}
