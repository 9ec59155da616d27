package services

import (
	"context"

	"admin_backend/internal/models"
	"admin_backend/internal/repositories"
	"admin_backend/internal/services/dto"
	"admin_backend/pkg/apperrors"
)

type PlanService interface {
	List(ctx context.Context) ([]dto.PlanResponse, error)
	Create(ctx context.Context, req *dto.PlanRequest) (*models.Plan, error)
	Update(ctx context.Context, id string, req *dto.PlanRequest) error
	Delete(ctx context.Context, id string) error
}

type PlanServiceImpl struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) PlanService {
	return &PlanServiceImpl{planRepo: planRepo}
}

func (s *PlanServiceImpl) List(ctx context.Context) ([]dto.PlanResponse, error) {
	plans, err := s.planRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Decode the stored features column into the ordered list clients use.
	responses := make([]dto.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, dto.NewPlanResponse(plan))
	}
	return responses, nil
}

func (s *PlanServiceImpl) Create(ctx context.Context, req *dto.PlanRequest) (*models.Plan, error) {
	plan := planFromRequest(req)
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, mapStorageError(err, "Pricing plan")
	}
	return plan, nil
}

func (s *PlanServiceImpl) Update(ctx context.Context, id string, req *dto.PlanRequest) error {
	plan := planFromRequest(req)
	plan.ID = id

	if err := s.planRepo.Update(ctx, plan); err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return apperrors.ErrNotFound(err, "Pricing plan not found")
		}
		return mapStorageError(err, "Pricing plan")
	}
	return nil
}

func (s *PlanServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return apperrors.ErrNotFound(err, "Pricing plan not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func planFromRequest(req *dto.PlanRequest) *models.Plan {
	plan := &models.Plan{
		Name:                   req.Name,
		Price:                  *req.Price,
		PriceID:                req.PriceID,
		YearlyPrice:            req.YearlyPrice,
		YearlyPriceID:          req.YearlyPriceID,
		MonthlyMinutes:         *req.MonthlyMinutes,
		Description:            req.Description,
		ButtonText:             req.ButtonText,
		IsHighlighted:          req.IsHighlighted,
		IsPopular:              req.IsPopular,
		ExtraMinuteCost:        req.ExtraMinuteCost,
		RequiresRecharge:       req.RequiresRecharge,
		PerFileMinutesLimit:    req.PerFileMinutesLimit,
		PerMeetingMinutesLimit: req.PerMeetingMinutesLimit,
		TotalLifetimeMinutes:   req.TotalLifetimeMinutes,
	}
	plan.SetFeatures(req.Features)
	return plan
}
