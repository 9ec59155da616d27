package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Plan is a pricing tier. Features is persisted as a JSON-encoded column
// value; the API exchanges it as an ordered array of strings, and that order
// is meaningful (display order), so the encode/decode round trip must be
// exact.
type Plan struct {
	BaseModel
	Name                   string         `gorm:"not null" json:"name"`
	Price                  float64        `gorm:"not null" json:"price"`
	PriceID                string         `json:"priceID"` // billing provider reference
	YearlyPrice            float64        `json:"yearly_price"`
	YearlyPriceID          string         `json:"yearly_priceID"`
	MonthlyMinutes         int            `gorm:"not null" json:"monthly_minutes"`
	Description            string         `json:"description"`
	Features               datatypes.JSON `json:"-"`
	ButtonText             string         `json:"button_text"`
	IsHighlighted          bool           `gorm:"default:false" json:"is_highlighted"`
	IsPopular              bool           `gorm:"default:false" json:"is_popular"`
	ExtraMinuteCost        float64        `json:"extra_minute_cost"`
	RequiresRecharge       bool           `gorm:"default:false" json:"requires_recharge"`
	PerFileMinutesLimit    int            `json:"per_file_minutes_limit"`
	PerMeetingMinutesLimit int            `json:"per_meeting_minutes_limit"`
	TotalLifetimeMinutes   int            `json:"total_lifetime_minutes"`
}

// GetFeatures decodes the stored feature list, preserving order.
func (p *Plan) GetFeatures() []string {
	var features []string
	if len(p.Features) > 0 {
		_ = json.Unmarshal(p.Features, &features)
	}
	return features
}

// SetFeatures encodes the feature list for storage.
func (p *Plan) SetFeatures(features []string) {
	if features == nil {
		features = []string{}
	}
	data, _ := json.Marshal(features)
	p.Features = datatypes.JSON(data)
}
