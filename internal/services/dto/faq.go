package dto

type FAQListQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// FAQRequest is shared by create and update; question, answer and category
// are the only required fields.
type FAQRequest struct {
	Question     string `json:"question" validate:"required"`
	Answer       string `json:"answer" validate:"required"`
	Category     string `json:"category" validate:"required"`
	NeedFor      string `json:"need_for"`
	DisplayOrder int    `json:"display_order"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"is_active"`
}

func (r *FAQRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}
