package user

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleHotelEmployee Role = "hotel_employee"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHotelEmployee:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may access the back-office API.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleHotelEmployee
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
