package util

const (
	CampManagerRole      = "camp_manager"
	WarehouseManagerRole = "warehouse_manager"
	AdminRole            = "admin"
)

// IsSupportedRole returns true if the role is supported
func IsSupportedRole(role string) bool {
	switch role {
	case CampManagerRole, WarehouseManagerRole, AdminRole:
		return true
	}
	return false
}

// HasRole checks if the user's role matches any of the allowed roles
func HasRole(userRole string, allowedRoles ...string) bool {
	for _, role := range allowedRoles {
		if userRole == role {
			return true
		}
	}
	return false
}
