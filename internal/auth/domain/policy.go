package domain

import (
	"slices"

	employeeDomain "github.com/xenosis/employees/internal/employee/domain"
)

// Requirement is the role condition guarding one operation. An empty Roles
// list admits any authenticated principal holding at least one role.
type Requirement struct {
	Roles []employeeDomain.Role
	Match Match
}

// Policy maps each operation to its requirement. Operations missing from the
// table are denied.
type Policy map[Operation]Requirement

// DefaultPolicy returns the role table of the employee management API.
func DefaultPolicy() Policy {
	adminOnly := Requirement{Roles: []employeeDomain.Role{employeeDomain.RoleAdmin}, Match: MatchAny}

	return Policy{
		CreateEmployee: {},
		RetrieveAll: {
			Roles: []employeeDomain.Role{employeeDomain.RoleAdmin, employeeDomain.RoleUser},
			Match: MatchAny,
		},
		RetrieveByID: {
			Roles: []employeeDomain.Role{employeeDomain.RoleAdmin, employeeDomain.RoleUser},
			Match: MatchAny,
		},
		UpdateByID:          adminOnly,
		DeleteByID:          adminOnly,
		AttendanceReport:    adminOnly,
		SalaryReport:        adminOnly,
		DepartmentHeadcount: adminOnly,
	}
}

// Authorize reports whether a principal holding roles may perform op.
func (p Policy) Authorize(roles []employeeDomain.Role, op Operation) bool {
	req, ok := p[op]
	if !ok || len(roles) == 0 {
		return false
	}

	if len(req.Roles) == 0 {
		return true
	}

	switch req.Match {
	case MatchAll:
		for _, r := range req.Roles {
			if !slices.Contains(roles, r) {
				return false
			}
		}
		return true
	default:
		for _, r := range req.Roles {
			if slices.Contains(roles, r) {
				return true
			}
		}
		return false
	}
}
