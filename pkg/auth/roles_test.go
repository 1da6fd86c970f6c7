package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleParticipant))
	assert.True(t, ValidRole(RoleCoordinator))
	assert.True(t, ValidRole(RoleAuditor))
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		role       string
		permission string
		want       bool
	}{
		{RoleParticipant, PermMessageWrite, true},
		{RoleParticipant, PermThreadRead, true},
		{RoleParticipant, PermThreadManage, false},
		{RoleParticipant, PermAuditRead, false},
		{RoleCoordinator, PermThreadManage, true},
		{RoleCoordinator, PermAuditRead, true},
		{RoleAuditor, PermMessageRead, true},
		{RoleAuditor, PermMessageWrite, false},
		{RoleAuditor, PermSessionHeartbeat, true},
		{"unknown", PermThreadRead, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Allowed(tc.role, tc.permission),
			"role=%s permission=%s", tc.role, tc.permission)
	}
}
