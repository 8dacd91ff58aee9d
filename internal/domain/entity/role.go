package entity

// Roles que viajan en el token de acceso.
const (
	RoleOwner      = "owner"
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleSuperAdmin = "superadmin" // consola de super-admin, sin tenant propio
)
