package services

import (
	"context"

	"admin_backend/internal/models"
	"admin_backend/internal/repositories"
	"admin_backend/internal/services/dto"
	"admin_backend/pkg/apperrors"
)

type UserService interface {
	List(ctx context.Context, query *dto.UserListQuery) (*dto.UserListResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) List(ctx context.Context, query *dto.UserListQuery) (*dto.UserListResponse, error) {
	query.Normalize()

	users, total, err := s.userRepo.FindWithFilter(ctx, repositories.UserFilter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.Limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	if users == nil {
		users = []models.User{}
	}

	return &dto.UserListResponse{
		Users: users,
		Pagination: dto.Pagination{
			CurrentPage: query.Page,
			TotalPages:  totalPages,
			TotalUsers:  total,
			HasNext:     query.Page < totalPages,
			HasPrev:     query.Page > 1,
		},
	}, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	// Deleting an account also invalidates its outstanding tokens via the
	// verify-time existence re-check.
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
