package enum

// Role is the access level of a user. Super admins see every franchise;
// franchise admins are restricted to their own.
type Role string

const (
	RoleSuperAdmin     Role = "SUPER_ADMIN"
	RoleFranchiseAdmin Role = "FRANCHISE_ADMIN"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleSuperAdmin || r == RoleFranchiseAdmin
}

func (r Role) String() string {
	return string(r)
}
