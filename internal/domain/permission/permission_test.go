package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed_PorRol(t *testing.T) {
	cases := []struct {
		role string
		perm Permission
		want bool
	}{
		{RoleAdmin, UsersManage, true},
		{RoleAdmin, ItemsWrite, true},
		{RoleSupervisor, ItemsWrite, true},
		{RoleSupervisor, UsersManage, false},
		{RoleSupervisor, ReportsRead, true},
		{RoleTechnician, ItemsRead, true},
		{RoleTechnician, ConsumptionsCreate, true},
		{RoleTechnician, ItemsWrite, false},
		{RoleTechnician, ReportsRead, false},
		{RoleTechnician, UsersManage, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Allowed(tc.role, tc.perm),
			"rol %s permiso %s", tc.role, tc.perm)
	}
}

func TestAllowed_RolDesconocido(t *testing.T) {
	assert.False(t, Allowed("", ItemsRead))
	assert.False(t, Allowed("intruso", ItemsRead))
}

func TestPermissionsFor_DevuelveCopia(t *testing.T) {
	perms := PermissionsFor(RoleTechnician)
	assert.Len(t, perms, 2)
	perms[0] = UsersManage // mutar la copia no debe tocar el mapeo
	assert.False(t, Allowed(RoleTechnician, UsersManage))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleSupervisor))
	assert.True(t, ValidRole(RoleTechnician))
	assert.False(t, ValidRole("bodeguero"))
}
