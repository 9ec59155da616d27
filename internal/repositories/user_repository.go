package repositories

import (
	"context"
	"errors"
	"strings"

	"admin_backend/internal/models"
	"admin_backend/pkg/contextkeys"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindWithFilter(ctx context.Context, criteria UserFilter) ([]models.User, int64, error)
	Create(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// UserFilter describes the list query: optional case-insensitive substring
// search over name and email, plus pagination.
type UserFilter struct {
	Search   string
	Page     int
	PageSize int
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// dbFor returns the transaction injected into the context (tests) or the
// shared pool.
func (r *UserRepositoryImpl) dbFor(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(contextkeys.DBContextKey).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.dbFor(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.dbFor(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindWithFilter(ctx context.Context, criteria UserFilter) ([]models.User, int64, error) {
	var users []models.User
	query := r.dbFor(ctx).Model(&models.User{})

	// Empty search means no filter at all; no LIKE '%%' clause is emitted.
	if criteria.Search != "" {
		search := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	return r.dbFor(ctx).Create(user).Error
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.dbFor(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
