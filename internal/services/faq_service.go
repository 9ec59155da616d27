package services

import (
	"context"

	"admin_backend/internal/models"
	"admin_backend/internal/repositories"
	"admin_backend/internal/services/dto"
	"admin_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type FAQService interface {
	List(ctx context.Context, query *dto.FAQListQuery) ([]models.FAQ, error)
	Create(ctx context.Context, req *dto.FAQRequest) (*models.FAQ, error)
	Update(ctx context.Context, id string, req *dto.FAQRequest) error
	Delete(ctx context.Context, id string) error
}

type FAQServiceImpl struct {
	faqRepo repositories.FAQRepository
}

func NewFAQService(faqRepo repositories.FAQRepository) FAQService {
	return &FAQServiceImpl{faqRepo: faqRepo}
}

func (s *FAQServiceImpl) List(ctx context.Context, query *dto.FAQListQuery) ([]models.FAQ, error) {
	faqs, err := s.faqRepo.FindWithFilter(ctx, repositories.FAQFilter{
		Category: query.Category,
		Search:   query.Search,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return faqs, nil
}

func (s *FAQServiceImpl) Create(ctx context.Context, req *dto.FAQRequest) (*models.FAQ, error) {
	faq := &models.FAQ{
		Question:     req.Question,
		Answer:       req.Answer,
		Category:     req.Category,
		NeedFor:      req.NeedFor,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.Active(),
	}
	if err := s.faqRepo.Create(ctx, faq); err != nil {
		return nil, mapStorageError(err, "FAQ")
	}
	return faq, nil
}

func (s *FAQServiceImpl) Update(ctx context.Context, id string, req *dto.FAQRequest) error {
	faq := &models.FAQ{
		Question:     req.Question,
		Answer:       req.Answer,
		Category:     req.Category,
		NeedFor:      req.NeedFor,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.Active(),
	}
	faq.ID = id

	if err := s.faqRepo.Update(ctx, faq); err != nil {
		if apperrors.Is(err, repositories.ErrFAQNotFound) {
			return apperrors.ErrNotFound(err, "FAQ not found")
		}
		return mapStorageError(err, "FAQ")
	}
	return nil
}

func (s *FAQServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.faqRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, repositories.ErrFAQNotFound) {
			return apperrors.ErrNotFound(err, "FAQ not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// mapStorageError keeps raw storage error codes from leaking: constraint
// violations become 409, everything else 500.
func mapStorageError(err error, resource string) *apperrors.AppError {
	if apperrors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrConflict(err, resource+" already exists")
	}
	if apperrors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.ErrConflict(err, "This operation would violate database constraints")
	}
	return apperrors.InternalError(err)
}
