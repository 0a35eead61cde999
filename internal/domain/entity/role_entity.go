package entity

// Role classifies a user within the farming platform.
// Every user holds exactly one role.
type Role string

const (
	RoleFarmer           Role = "farmer"
	RoleExtensionOfficer Role = "extension-officer"
	RoleAgent            Role = "agent"
	RoleAdmin            Role = "admin"
	RoleSuperAdmin       Role = "super-admin"
)

// DefaultRole is assigned when registration does not supply a role.
const DefaultRole = RoleFarmer

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleExtensionOfficer, RoleAgent, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
