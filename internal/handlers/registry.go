package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	GymHandler        *GymHandler
	MemberHandler     *MemberHandler
	PlanHandler       *PlanHandler
	MembershipHandler *MembershipHandler
	PaymentHandler    *PaymentHandler
	AnalyticsHandler  *AnalyticsHandler
}
