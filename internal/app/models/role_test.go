package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleSuperAdmin.Valid())
	assert.False(t, RoleType("JANITOR").Valid())
	assert.False(t, RoleType("").Valid())
}

func TestRoleLevelOrdering(t *testing.T) {
	assert.Less(t, RoleStudent.Level(), RoleStaff.Level())
	assert.Less(t, RoleStaff.Level(), RoleAdmin.Level())
	assert.Less(t, RoleAdmin.Level(), RoleSuperAdmin.Level())
	assert.Equal(t, -1, RoleType("JANITOR").Level())
}

func TestHasAtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.HasAtLeast(RoleStaff))
	assert.True(t, RoleStaff.HasAtLeast(RoleStaff))
	assert.False(t, RoleStudent.HasAtLeast(RoleStaff))
	assert.False(t, RoleType("JANITOR").HasAtLeast(RoleStudent))
}
