package entity

// Role is the closed set of account roles. Keeping it typed makes the
// switching guard exhaustive; free-form strings never reach the state
// machine.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleOwner  Role = "owner"
)

func (r Role) Valid() bool {
	return r == RoleFarmer || r == RoleOwner
}

func (r Role) String() string {
	return string(r)
}
