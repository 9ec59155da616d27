package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"admin_backend/internal/models"
	"admin_backend/pkg/contextkeys"

	"gorm.io/gorm"
)

var ErrFAQNotFound = errors.New("faq not found")

type FAQRepository interface {
	FindByID(ctx context.Context, id string) (*models.FAQ, error)
	FindWithFilter(ctx context.Context, criteria FAQFilter) ([]models.FAQ, error)
	Create(ctx context.Context, faq *models.FAQ) error
	Update(ctx context.Context, faq *models.FAQ) error
	Delete(ctx context.Context, id string) error
}

// FAQFilter: exact category match ANDed with a case-insensitive substring
// search over question and answer. FAQs are a small bounded set, so the
// result is never paginated.
type FAQFilter struct {
	Category string
	Search   string
}

type FAQRepositoryImpl struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &FAQRepositoryImpl{db: db}
}

func (r *FAQRepositoryImpl) dbFor(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(contextkeys.DBContextKey).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *FAQRepositoryImpl) FindByID(ctx context.Context, id string) (*models.FAQ, error) {
	var faq models.FAQ
	err := r.dbFor(ctx).First(&faq, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFAQNotFound
		}
		return nil, err
	}
	return &faq, nil
}

func (r *FAQRepositoryImpl) FindWithFilter(ctx context.Context, criteria FAQFilter) ([]models.FAQ, error) {
	faqs := []models.FAQ{}
	query := r.dbFor(ctx).Model(&models.FAQ{})

	// An unknown category simply yields an empty set, not an error.
	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.Search != "" {
		search := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where("LOWER(question) LIKE ? OR LOWER(answer) LIKE ?", search, search)
	}

	err := query.Order("display_order ASC").Order("created_at DESC").Find(&faqs).Error
	return faqs, err
}

func (r *FAQRepositoryImpl) Create(ctx context.Context, faq *models.FAQ) error {
	return r.dbFor(ctx).Create(faq).Error
}

// Update persists all editable fields verbatim, zero values included.
func (r *FAQRepositoryImpl) Update(ctx context.Context, faq *models.FAQ) error {
	result := r.dbFor(ctx).Model(&models.FAQ{}).Where("id = ?", faq.ID).Updates(map[string]interface{}{
		"question":      faq.Question,
		"answer":        faq.Answer,
		"category":      faq.Category,
		"need_for":      faq.NeedFor,
		"display_order": faq.DisplayOrder,
		"is_active":     faq.IsActive,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFAQNotFound
	}
	return nil
}

func (r *FAQRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.dbFor(ctx).Delete(&models.FAQ{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFAQNotFound
	}
	return nil
}
