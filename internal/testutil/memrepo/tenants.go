// Package memrepo implementaciones en memoria de los puertos de persistencia, para tests.
package memrepo

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/jhoicas/sitebuilder-api/internal/domain"
	"github.com/jhoicas/sitebuilder-api/internal/domain/entity"
	"github.com/jhoicas/sitebuilder-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*Tenants)(nil)

// Tenants TenantRepository en memoria. Err, si no es nil, se devuelve en toda operación.
type Tenants struct {
	mu    sync.Mutex
	items map[string]entity.Tenant
	Err   error
}

// NewTenants crea el repositorio con los tenants dados.
func NewTenants(seed ...*entity.Tenant) *Tenants {
	r := &Tenants{items: make(map[string]entity.Tenant)}
	for _, t := range seed {
		r.items[t.ID] = clone(t)
	}
	return r
}

func (r *Tenants) Create(_ context.Context, t *entity.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, existing := range r.items {
		if existing.Slug == t.Slug {
			return domain.ErrDuplicate
		}
	}
	r.items[t.ID] = clone(t)
	return nil
}

func (r *Tenants) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	out := clone(&t)
	return &out, nil
}

func (r *Tenants) GetBySlug(_ context.Context, slug string) (*entity.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, t := range r.items {
		if t.Slug == slug {
			out := clone(&t)
			return &out, nil
		}
	}
	return nil, nil
}

// List ordena por fecha de creación descendente, como la implementación PostgreSQL.
func (r *Tenants) List(_ context.Context, limit, offset int) ([]*entity.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	all := make([]entity.Tenant, 0, len(r.items))
	for _, t := range r.items {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	var out []*entity.Tenant
	for i := offset; i < len(all) && len(out) < limit; i++ {
		t := clone(&all[i])
		out = append(out, &t)
	}
	return out, nil
}

func (r *Tenants) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return len(r.items), nil
}

// UpdateThemeCategory reescribe solo theme_category; el resto del blob se conserva.
func (r *Tenants) UpdateThemeCategory(_ context.Context, id, category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	t, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	blob := map[string]any{}
	if len(t.Settings) > 0 {
		if err := json.Unmarshal(t.Settings, &blob); err != nil {
			blob = map[string]any{}
		}
	}
	blob["theme_category"] = category
	raw, err := json.Marshal(blob)
	if err != nil {
		return err
	}
	t.Settings = raw
	r.items[id] = t
	return nil
}

func clone(t *entity.Tenant) entity.Tenant {
	out := *t
	if t.Settings != nil {
		out.Settings = append([]byte(nil), t.Settings...)
	}
	return out
}
