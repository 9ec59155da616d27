package services

// ServiceContainer groups every service the handlers need, wired once at
// startup.
type ServiceContainer struct {
	AuthService AuthService
	UserService UserService
	FAQService  FAQService
	PlanService PlanService
}
