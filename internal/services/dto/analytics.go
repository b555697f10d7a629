package dto

type PlanRevenueItem struct {
	PlanID   string `json:"plan_id"`
	PlanName string `json:"plan_name"`
	Revenue  string `json:"revenue"`
}

type MembershipStatsResponse struct {
	TotalMembers         int64             `json:"total_members"`
	ActiveMemberships    int64             `json:"active_memberships"`
	TotalRevenue         string            `json:"total_revenue"`
	PendingAmount        string            `json:"pending_amount"`
	StatusDistribution   map[string]int64  `json:"status_distribution"`
	RevenueByPlan        []PlanRevenueItem `json:"revenue_by_plan"`
	DurationDistribution map[int]int64     `json:"duration_distribution"`
}
