package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/sitebuilder-api/internal/domain"
	"github.com/jhoicas/sitebuilder-api/internal/domain/entity"
	"github.com/jhoicas/sitebuilder-api/internal/domain/repository"
)

// Asegura que TenantRepo implementa repository.TenantRepository.
var _ repository.TenantRepository = (*TenantRepo)(nil)

// querier lo cumplen *pgxpool.Pool y pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TenantRepo implementación de TenantRepository sobre la tabla tenants.
type TenantRepo struct {
	db querier
}

// NewTenantRepository construye el adaptador de persistencia para tenants.
func NewTenantRepository(db querier) *TenantRepo {
	return &TenantRepo{db: db}
}

const tenantColumns = `id, name, slug, status, settings, created_at, updated_at`

// Create persiste un tenant nuevo.
func (r *TenantRepo) Create(ctx context.Context, t *entity.Tenant) error {
	settings := t.Settings
	if len(settings) == 0 {
		settings = []byte(`{}`)
	}
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.Name, t.Slug, t.Status, string(settings), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID. (nil, nil) si no existe.
func (r *TenantRepo) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	t, err := scanTenant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return t, nil
}

// GetBySlug obtiene un tenant por slug. (nil, nil) si no existe.
func (r *TenantRepo) GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE slug = $1`
	t, err := scanTenant(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant by slug: %w", err)
	}
	return t, nil
}

// List devuelve tenants con paginación, más recientes primero.
func (r *TenantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error) {
	query := `
		SELECT ` + tenantColumns + `
		FROM tenants ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Count total de tenants.
func (r *TenantRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM tenants`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tenants: %w", err)
	}
	return n, nil
}

// UpdateThemeCategory escribe settings.theme_category con jsonb_set; el resto del blob no se toca.
// Un settings nulo o que no sea objeto se reemplaza por un objeto nuevo.
func (r *TenantRepo) UpdateThemeCategory(ctx context.Context, id, category string) error {
	const query = `
		UPDATE tenants
		   SET settings = jsonb_set(
		         CASE WHEN jsonb_typeof(settings) = 'object' THEN settings ELSE '{}'::jsonb END,
		         '{theme_category}', to_jsonb($2::text), true),
		       updated_at = now()
		 WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id, category)
	if err != nil {
		return fmt.Errorf("update theme_category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTenant(row pgx.Row) (*entity.Tenant, error) {
	var t entity.Tenant
	var settings []byte
	if err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Status, &settings, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Settings = settings
	return &t, nil
}
