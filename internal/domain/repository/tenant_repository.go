package repository

import (
	"context"

	"github.com/jhoicas/sitebuilder-api/internal/domain/entity"
)

// TenantRepository puerto de persistencia para Tenant (DIP).
// Get* devuelve (nil, nil) cuando el tenant no existe.
type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error)
	Count(ctx context.Context) (int, error)
	// UpdateThemeCategory escribe settings.theme_category conservando el resto del blob.
	// Devuelve domain.ErrNotFound si el tenant no existe.
	UpdateThemeCategory(ctx context.Context, id, category string) error
}
