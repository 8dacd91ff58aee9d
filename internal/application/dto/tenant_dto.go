package dto

import (
	"encoding/json"
	"time"
)

// CreateTenantRequest entrada para crear un tenant desde la consola de super-admin.
type CreateTenantRequest struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	ThemeCategory string `json:"theme_category"` // opcional; se normaliza con la tabla de alias
}

// TenantResponse salida de un tenant.
type TenantResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Status        string          `json:"status"`
	ThemeCategory string          `json:"theme_category,omitempty"`
	Settings      json.RawMessage `json:"settings,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TenantListResponse lista paginada de tenants.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
