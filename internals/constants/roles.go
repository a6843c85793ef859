package constants

// Role global aplikasi
const (
	RoleOwner  = "owner"  // pengelola sistem
	RoleAdmin  = "admin"  // majelis/admin gereja (kelola konten & warta)
	RoleMember = "member" // jemaat terdaftar
)

var AllowedRoles = []string{RoleOwner, RoleAdmin, RoleMember}

func IsAllowedRole(r string) bool {
	for _, x := range AllowedRoles {
		if x == r {
			return true
		}
	}
	return false
}
