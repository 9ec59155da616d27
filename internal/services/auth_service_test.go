package services

import (
	"context"
	"testing"
	"time"

	"admin_backend/internal/auth"
	"admin_backend/internal/models"
	"admin_backend/internal/repositories"
	"admin_backend/internal/services/dto"
	"admin_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminID    = "63000000-0000-0000-0000-000000000063"
	adminEmail = "admin@saas.example.com"
)

// fakeUserRepo keeps users in a map; enough to drive the admin gate.
type fakeUserRepo struct {
	users map[string]*models.User // keyed by id
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindWithFilter(ctx context.Context, criteria repositories.UserFilter) ([]models.User, int64, error) {
	return nil, 0, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newUser(id, email, passwordHash string, google bool) *models.User {
	u := &models.User{
		FullName:     "Some User",
		Email:        email,
		PasswordHash: passwordHash,
		IsGoogleUser: google,
	}
	u.ID = id
	return u
}

func newGate(users ...*models.User) AuthService {
	auth.Init("test-secret", 24*time.Hour)
	return NewAuthService(newFakeUserRepo(users...), AdminPolicy{
		UserID: adminID,
		Email:  adminEmail,
	})
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected *AppError, got %v", err)
	return appErr.HTTPCode
}

func TestLogin_UnknownEmail(t *testing.T) {
	gate := newGate()

	_, err := gate.Login(context.Background(), &dto.LoginRequest{Email: "nobody@x.com", Password: "pw"})
	assert.Equal(t, 401, httpCode(t, err))
}

func TestLogin_NonAdminNeverAuthorized(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	// Valid account, valid password; not the pinned (id, email) pair.
	other := newUser("99999999-0000-0000-0000-000000000099", "user@saas.example.com", hash, false)
	gate := newGate(other)

	_, err = gate.Login(context.Background(), &dto.LoginRequest{Email: other.Email, Password: "correct-password"})
	assert.Equal(t, 403, httpCode(t, err))
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, "Access denied. Admin privileges required.", appErr.Message)
}

func TestLogin_EmailMatchesButIDDoesNot(t *testing.T) {
	// Same email as the policy, different id: still forbidden. The pin is
	// a two-factor identity match.
	impostor := newUser("deadbeef-0000-0000-0000-000000000000", adminEmail, "", true)
	gate := newGate(impostor)

	_, err := gate.Login(context.Background(), &dto.LoginRequest{Email: adminEmail, Password: "anything"})
	assert.Equal(t, 403, httpCode(t, err))
}

func TestLogin_GoogleAdmin_SkipsPassword(t *testing.T) {
	admin := newUser(adminID, adminEmail, "", true)
	gate := newGate(admin)

	// Documented trust shortcut: the google flag alone is sufficient,
	// whatever the password says.
	for _, password := range []string{"wrong", ""} {
		resp, err := gate.Login(context.Background(), &dto.LoginRequest{Email: adminEmail, Password: password})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "admin", resp.User.Role)
	}
}

func TestLogin_PasswordAdmin(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	admin := newUser(adminID, adminEmail, hash, false)
	gate := newGate(admin)

	resp, err := gate.Login(context.Background(), &dto.LoginRequest{Email: adminEmail, Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, adminID, resp.User.ID)

	_, err = gate.Login(context.Background(), &dto.LoginRequest{Email: adminEmail, Password: "wrong"})
	assert.Equal(t, 401, httpCode(t, err))
}

func TestLogin_AdminWithoutPasswordOrSocialFlag(t *testing.T) {
	admin := newUser(adminID, adminEmail, "", false)
	gate := newGate(admin)

	_, err := gate.Login(context.Background(), &dto.LoginRequest{Email: adminEmail, Password: "whatever"})
	assert.Equal(t, 401, httpCode(t, err))
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, "Password required for this account", appErr.Message)
}

func TestVerifyToken_RoundTripAndDeletedUser(t *testing.T) {
	admin := newUser(adminID, adminEmail, "", true)
	repo := newFakeUserRepo(admin)
	auth.Init("test-secret", 24*time.Hour)
	gate := NewAuthService(repo, AdminPolicy{UserID: adminID, Email: adminEmail})

	resp, err := gate.Login(context.Background(), &dto.LoginRequest{Email: adminEmail, Password: "x"})
	require.NoError(t, err)

	info, err := gate.VerifyToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, adminID, info.ID)
	assert.Equal(t, adminEmail, info.Email)

	// Deleting the account invalidates the still-unexpired token.
	require.NoError(t, repo.Delete(context.Background(), adminID))
	_, err = gate.VerifyToken(context.Background(), resp.Token)
	assert.Equal(t, 401, httpCode(t, err))
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, "User no longer exists", appErr.Message)
}

func TestVerifyToken_Garbage(t *testing.T) {
	gate := newGate()

	_, err := gate.VerifyToken(context.Background(), "garbage")
	assert.Equal(t, 401, httpCode(t, err))
}
