package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoleSetNormalizes(t *testing.T) {
	set := NewRoleSet(RoleUser, RoleAdmin, RoleUser)

	assert.Equal(t, RoleSet{RoleAdmin, RoleUser}, set)
	assert.True(t, set.Has(RoleAdmin))
	assert.True(t, set.Has(RoleUser))
}

func TestParseRoleSetRejectsUnknownTags(t *testing.T) {
	_, err := ParseRoleSet([]string{"user", "superuser"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "superuser")
}

func TestRolesStorageRoundTrip(t *testing.T) {
	raw, err := MarshalRoles(NewRoleSet(RoleUser, RoleAdmin))
	require.NoError(t, err)
	assert.JSONEq(t, `["admin","user"]`, raw)

	set, err := UnmarshalRoles(`["user","admin"]`)
	require.NoError(t, err)
	assert.Equal(t, NewRoleSet(RoleAdmin, RoleUser), set)
}

func TestUnmarshalRolesRejectsGarbage(t *testing.T) {
	_, err := UnmarshalRoles(`user`)
	assert.Error(t, err)

	_, err = UnmarshalRoles(`["owner"]`)
	assert.Error(t, err)
}
