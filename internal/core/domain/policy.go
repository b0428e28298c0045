package domain

import "strings"

// Administrative roles recognised by the RunPro backend.
const (
	RoleSuperAdmin      = "super_admin"
	RoleAdminHead       = "admin_head"
	RoleCustomerService = "admin_customer_service"
	RoleAgentService    = "admin_agent_service"
)

// Policy is an immutable allow-list of roles.
type Policy struct {
	name  string
	roles map[string]struct{}
}

// NewPolicy builds a named policy from discrete role identifiers.
func NewPolicy(name string, roles ...string) Policy {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return Policy{name: name, roles: allowed}
}

// Name returns the policy's identifier, used in audit records and metrics.
func (p Policy) Name() string { return p.name }

// Allows reports whether the role is in the allow-list.
func (p Policy) Allows(role string) bool {
	_, ok := p.roles[role]
	return ok
}

// Roles returns the allow-list as a sorted-insensitive joined string for
// logging.
func (p Policy) Roles() string {
	out := make([]string, 0, len(p.roles))
	for r := range p.roles {
		out = append(out, r)
	}
	return strings.Join(out, ",")
}

// LoginPolicy gates login: only super_admin and admin_head may open a
// session. Deliberately narrower than DashboardPolicy — the backend team has
// been asked to confirm whether customer-service and agent-service admins
// should be able to log in; until then the observed behavior stands.
var LoginPolicy = NewPolicy("login", RoleSuperAdmin, RoleAdminHead)

// DashboardPolicy gates every protected route once a session exists.
var DashboardPolicy = NewPolicy("dashboard",
	RoleSuperAdmin,
	RoleAdminHead,
	RoleCustomerService,
	RoleAgentService,
)
