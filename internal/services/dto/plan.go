package dto

import "admin_backend/internal/models"

// PlanRequest is shared by create and update. Price and MonthlyMinutes are
// pointers so 0 (a free tier) still satisfies "required". Beyond presence
// there are no bounds checks; negative prices are accepted as submitted.
type PlanRequest struct {
	Name                   string   `json:"name" validate:"required"`
	Price                  *float64 `json:"price" validate:"required"`
	PriceID                string   `json:"priceID"`
	YearlyPrice            float64  `json:"yearly_price"`
	YearlyPriceID          string   `json:"yearly_priceID"`
	MonthlyMinutes         *int     `json:"monthly_minutes" validate:"required"`
	Description            string   `json:"description"`
	Features               []string `json:"features"`
	ButtonText             string   `json:"button_text"`
	IsHighlighted          bool     `json:"is_highlighted"`
	IsPopular              bool     `json:"is_popular"`
	ExtraMinuteCost        float64  `json:"extra_minute_cost"`
	RequiresRecharge       bool     `json:"requires_recharge"`
	PerFileMinutesLimit    int      `json:"per_file_minutes_limit"`
	PerMeetingMinutesLimit int      `json:"per_meeting_minutes_limit"`
	TotalLifetimeMinutes   int      `json:"total_lifetime_minutes"`
}

// PlanResponse is a Plan with the features column decoded back into the
// ordered list the clients work with.
type PlanResponse struct {
	models.Plan
	Features []string `json:"features"`
}

func NewPlanResponse(plan models.Plan) PlanResponse {
	return PlanResponse{
		Plan:     plan,
		Features: plan.GetFeatures(),
	}
}
