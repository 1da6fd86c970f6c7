package auth

// Roles.
const (
	RoleParticipant = "participant"
	RoleCoordinator = "coordinator"
	RoleAuditor     = "auditor"
)

// Permissions.
const (
	PermThreadRead       = "thread:read"
	PermThreadManage     = "thread:manage"
	PermMessageRead      = "message:read"
	PermMessageWrite     = "message:write"
	PermSessionHeartbeat = "session:heartbeat"
	PermAuditRead        = "audit:read"
)

var rolePermissions = map[string]map[string]bool{
	RoleParticipant: {
		PermThreadRead:       true,
		PermMessageRead:      true,
		PermMessageWrite:     true,
		PermSessionHeartbeat: true,
	},
	RoleCoordinator: {
		PermThreadRead:       true,
		PermThreadManage:     true,
		PermMessageRead:      true,
		PermMessageWrite:     true,
		PermSessionHeartbeat: true,
		PermAuditRead:        true,
	},
	RoleAuditor: {
		PermThreadRead:       true,
		PermMessageRead:      true,
		PermSessionHeartbeat: true,
		PermAuditRead:        true,
	},
}

// ValidRole reports whether the role is one the bridge knows.
func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

// Allowed reports whether the role carries the permission.
func Allowed(role, permission string) bool {
	return rolePermissions[role][permission]
}
