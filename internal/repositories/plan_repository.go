package repositories

import (
	"context"
	"errors"
	"time"

	"admin_backend/internal/models"
	"admin_backend/pkg/contextkeys"

	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanRepository interface {
	FindByID(ctx context.Context, id string) (*models.Plan, error)
	FindAll(ctx context.Context) ([]models.Plan, error)
	Create(ctx context.Context, plan *models.Plan) error
	Update(ctx context.Context, plan *models.Plan) error
	Delete(ctx context.Context, id string) error
}

type PlanRepositoryImpl struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &PlanRepositoryImpl{db: db}
}

func (r *PlanRepositoryImpl) dbFor(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(contextkeys.DBContextKey).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *PlanRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Plan, error) {
	var plan models.Plan
	err := r.dbFor(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepositoryImpl) FindAll(ctx context.Context) ([]models.Plan, error) {
	plans := []models.Plan{}
	err := r.dbFor(ctx).Order("price ASC").Find(&plans).Error
	return plans, err
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *models.Plan) error {
	return r.dbFor(ctx).Create(plan).Error
}

// Update persists all editable fields verbatim, zero values included.
// Features arrives already JSON-encoded (models.Plan.SetFeatures).
func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *models.Plan) error {
	result := r.dbFor(ctx).Model(&models.Plan{}).Where("id = ?", plan.ID).Updates(map[string]interface{}{
		"name":                      plan.Name,
		"price":                     plan.Price,
		"price_id":                  plan.PriceID,
		"yearly_price":              plan.YearlyPrice,
		"yearly_price_id":           plan.YearlyPriceID,
		"monthly_minutes":           plan.MonthlyMinutes,
		"description":               plan.Description,
		"features":                  plan.Features,
		"button_text":               plan.ButtonText,
		"is_highlighted":            plan.IsHighlighted,
		"is_popular":                plan.IsPopular,
		"extra_minute_cost":         plan.ExtraMinuteCost,
		"requires_recharge":         plan.RequiresRecharge,
		"per_file_minutes_limit":    plan.PerFileMinutesLimit,
		"per_meeting_minutes_limit": plan.PerMeetingMinutesLimit,
		"total_lifetime_minutes":    plan.TotalLifetimeMinutes,
		"updated_at":                time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.dbFor(ctx).Delete(&models.Plan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
