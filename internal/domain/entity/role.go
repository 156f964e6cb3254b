package entity

// Role represents the type of role an account can have on the platform.
type Role string

const (
	// RoleFarmer indicates an account that tokenizes yields.
	RoleFarmer Role = "farmer"
	// RoleInvestor indicates an account that buys asset tokens.
	RoleInvestor Role = "investor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleInvestor:
		return true
	default:
		return false
	}
}
