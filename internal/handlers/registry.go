package handlers

import (
	"admin_backend/internal/services"
	"admin_backend/internal/validator"
)

// AppHandlers groups all HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler *AuthHandler
	UserHandler *UserHandler
	FAQHandler  *FAQHandler
	PlanHandler *PlanHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler: NewAuthHandler(base, container.AuthService),
		UserHandler: NewUserHandler(base, container.UserService),
		FAQHandler:  NewFAQHandler(base, container.FAQService),
		PlanHandler: NewPlanHandler(base, container.PlanService),
	}
}
