// Package domain defines the authorization gate: the operation identifiers,
// the role policy table that guards them and the authenticated principal carried
// through request contexts.
package domain

// Operation identifies a guarded core operation.
type Operation string

const (
	CreateEmployee      Operation = "CreateEmployee"
	RetrieveAll         Operation = "RetrieveAll"
	RetrieveByID        Operation = "RetrieveById"
	UpdateByID          Operation = "UpdateById"
	DeleteByID          Operation = "DeleteById"
	AttendanceReport    Operation = "AttendanceReport"
	SalaryReport        Operation = "SalaryReport"
	DepartmentHeadcount Operation = "DepartmentHeadcount"
)

// AllOperations lists every guarded operation.
var AllOperations = []Operation{
	CreateEmployee,
	RetrieveAll,
	RetrieveByID,
	UpdateByID,
	DeleteByID,
	AttendanceReport,
	SalaryReport,
	DepartmentHeadcount,
}

// Match tells a Requirement how to combine its roles.
type Match int

const (
	// MatchAny is satisfied by holding at least one of the roles.
	MatchAny Match = iota
	// MatchAll is satisfied only by holding every role.
	MatchAll
)
