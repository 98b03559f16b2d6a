package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountNumber(t *testing.T) {
	assert.Equal(t, "CU-1101", AccountNumber(RoleCustomer, 1101))
	assert.Equal(t, "UE-7", AccountNumber(RoleEmployee, 7))
	assert.Equal(t, "UM-2", AccountNumber(RoleManager, 2))
	assert.Equal(t, "UA-1", AccountNumber(RoleAdmin, 1))
	assert.Equal(t, "", AccountNumber(Role("GUEST"), 1))
}

func TestParseAccountNumber(t *testing.T) {
	role, seq, err := ParseAccountNumber(" cu-1101 ")
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, role)
	assert.Equal(t, 1101, seq)

	role, _, err = ParseAccountNumber("UA-3")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	for _, bad := range []string{"", "CU", "CU-", "XX-12", "CU-abc", "CU-12-3"} {
		_, _, err := ParseAccountNumber(bad)
		assert.ErrorIs(t, err, ErrInvalidAccountNumber, bad)
	}
}

func TestRoleStaff(t *testing.T) {
	assert.False(t, RoleCustomer.Staff())
	assert.True(t, RoleEmployee.Staff())
	assert.True(t, RoleManager.Staff())
	assert.True(t, RoleAdmin.Staff())
}
