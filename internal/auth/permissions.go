package auth

import "errors"

// Staff roles inside a gym.
const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

const (
	PermMembersWrite     = "members:write"
	PermPlansWrite       = "plans:write"
	PermMembershipsWrite = "memberships:write"
	PermPaymentsWrite    = "payments:write"
	PermAnalyticsRead    = "analytics:read"
)

var Permissions = map[string][]string{
	RoleOwner: {
		PermMembersWrite,
		PermPlansWrite,
		PermMembershipsWrite,
		PermPaymentsWrite,
		PermAnalyticsRead,
	},
	RoleStaff: {
		PermMembersWrite,
		PermMembershipsWrite,
		PermPaymentsWrite,
	},
}

func HasPermission(role, permission string) bool {
	for _, p := range Permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

func CanPerformAction(claims *Claims, permission string) bool {
	return claims != nil && HasPermission(claims.Role, permission)
}

func ValidateRole(role string) error {
	switch role {
	case RoleOwner, RoleStaff:
		return nil
	default:
		return errors.New("invalid role")
	}
}
