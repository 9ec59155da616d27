package models

// FAQ entry shown on the product site. display_order is the primary sort
// key; ties fall back to newest-first.
type FAQ struct {
	BaseModel
	Question     string `gorm:"not null" json:"question"`
	Answer       string `gorm:"not null" json:"answer"`
	Category     string `gorm:"not null;index" json:"category"`
	NeedFor      string `json:"need_for"` // audience tag ("individual", "team", ...)
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
	// No column default: false must survive an insert. Omitted is_active
	// defaults to true at the request layer instead.
	IsActive bool `json:"is_active"`
}
