package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "STUDENT"
	RoleStaff      RoleType = "STAFF"
	RoleAdmin      RoleType = "ADMIN"
	RoleSuperAdmin RoleType = "SUPER_ADMIN"
)

// roleLevels orders roles from least to most privileged. Authorization
// decisions compare levels instead of matching role strings in handlers.
var roleLevels = map[RoleType]int{
	RoleStudent:    0,
	RoleStaff:      1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// Valid reports whether r is a known role.
func (r RoleType) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// Level returns the privilege level of the role. Unknown roles rank below
// every valid role.
func (r RoleType) Level() int {
	if lvl, ok := roleLevels[r]; ok {
		return lvl
	}
	return -1
}

// HasAtLeast reports whether the role grants at least the privileges of
// the required role.
func (r RoleType) HasAtLeast(required RoleType) bool {
	return r.Valid() && r.Level() >= required.Level()
}
