package services

import (
	"context"

	"admin_backend/internal/auth"
	"admin_backend/internal/models"
	"admin_backend/internal/repositories"
	"admin_backend/internal/services/dto"
	"admin_backend/pkg/apperrors"
)

// AdminPolicy pins the single account allowed into the console. Both the id
// and the email must match; this is deliberately not a role column, so no
// database edit can mint a second admin.
type AdminPolicy struct {
	UserID string
	Email  string
}

func (p AdminPolicy) IsAdmin(user *models.User) bool {
	return user.ID == p.UserID && user.Email == p.Email
}

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyToken(ctx context.Context, tokenStr string) (*dto.UserInfo, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	policy   AdminPolicy
}

func NewAuthService(userRepo repositories.UserRepository, policy AdminPolicy) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		policy:   policy,
	}
}

// Login is the admin gate. Stateless: no lockout, no attempt counter, every
// call is decided independently.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	// The admin pin comes before any credential check: a non-admin with a
	// perfectly valid password still gets 403.
	if !s.policy.IsAdmin(user) {
		return nil, apperrors.ErrAdminRequired
	}

	switch {
	case user.IsGoogleUser:
		// Social accounts carry no password; the flag alone is trusted.
		// Known shortcut: no cross-check against the provider at login.
	case user.PasswordHash != "":
		if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
			return nil, apperrors.ErrInvalidCredentials
		}
	default:
		return nil, apperrors.ErrPasswordRequired
	}

	token, err := auth.GenerateJWT(user, auth.RoleAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User: dto.UserInfo{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.FullName,
			ProfilePic: user.ProfilePic,
			Role:       auth.RoleAdmin,
		},
	}, nil
}

// VerifyToken checks signature and expiry, then re-confirms the subject row
// still exists. The existence re-check is what makes deleting an account an
// instant de-provisioning, despite tokens being self-contained.
func (s *AuthServiceImpl) VerifyToken(ctx context.Context, tokenStr string) (*dto.UserInfo, error) {
	claims, err := auth.ParseToken(tokenStr)
	if err != nil {
		if apperrors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserGone
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserInfo{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.FullName,
		ProfilePic: user.ProfilePic,
		Role:       claims.Role,
	}, nil
}
