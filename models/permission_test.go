package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniquePermissions(t *testing.T) {
	view := Permission{ID: 1, Name: "applications_view_all"}
	decide := Permission{ID: 2, Name: "applications_decide"}
	export := Permission{ID: 3, Name: "evaluations_view"}

	user := User{
		Roles: []Role{
			{ID: 1, Name: "operator", Permissions: []Permission{view, decide}},
			{ID: 2, Name: "auditor", Permissions: []Permission{view, export}},
		},
	}

	permissions := user.UniquePermissions()
	assert.Len(t, permissions, 3)

	names := make([]string, 0, len(permissions))
	for _, p := range permissions {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"applications_view_all", "applications_decide", "evaluations_view"}, names)
}

func TestUniquePermissionsNoRoles(t *testing.T) {
	user := User{}
	assert.Empty(t, user.UniquePermissions())
}
