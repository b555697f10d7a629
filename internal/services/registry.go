package services

import (
	"github.com/jonboulle/clockwork"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/lifecycle"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/repositories"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	GymService        GymService
	MemberService     MemberService
	PlanService       PlanService
	MembershipService MembershipService
	PaymentService    PaymentService
	AnalyticsService  AnalyticsService
}

// NewServiceContainer builds all services over stateless repositories.
func NewServiceContainer(policy lifecycle.Policy, clock clockwork.Clock) *ServiceContainer {
	gymRepo := repositories.NewGymRepository()
	memberRepo := repositories.NewMemberRepository()
	planRepo := repositories.NewPlanRepository()
	membershipRepo := repositories.NewMembershipRepository()
	paymentRepo := repositories.NewPaymentRepository()

	return &ServiceContainer{
		GymService:        NewGymService(gymRepo, clock),
		MemberService:     NewMemberService(gymRepo, memberRepo, membershipRepo, clock),
		PlanService:       NewPlanService(gymRepo, planRepo, clock),
		MembershipService: NewMembershipService(gymRepo, memberRepo, planRepo, membershipRepo, paymentRepo, policy, clock),
		PaymentService:    NewPaymentService(gymRepo, memberRepo, planRepo, membershipRepo, paymentRepo, policy, clock),
		AnalyticsService:  NewAnalyticsService(gymRepo, memberRepo, membershipRepo, paymentRepo),
	}
}
