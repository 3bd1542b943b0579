package enums

import "fmt"

// Role represents a marketplace account role.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleVendor   Role = "vendor"
	RoleCustomer Role = "customer"
)

var validRoles = []Role{
	RoleAdmin,
	RoleVendor,
	RoleCustomer,
}

// Roles a user may pick for themselves at registration. Admin is only ever
// granted through the set-role operation.
var registrationRoles = []Role{
	RoleVendor,
	RoleCustomer,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// IsRegistrable reports whether the role may be self-assigned at registration.
func (r Role) IsRegistrable() bool {
	for _, candidate := range registrationRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
