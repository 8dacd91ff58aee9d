package entity

import "time"

// Estados de un tenant.
const (
	TenantActive    = "active"
	TenantSuspended = "suspended"
	TenantInactive  = "inactive"
)

// Tenant despliegue aislado de un cliente (su sitio/tienda y su dashboard).
type Tenant struct {
	ID        string
	Name      string
	Slug      string // subdominio / identificador público, único
	Status    string // active, suspended, inactive
	Settings  []byte // blob JSON de configuración (jsonb); incluye theme_category
	CreatedAt time.Time
	UpdatedAt time.Time
}
