package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sitebuilder-api/internal/application/dto"
	"github.com/jhoicas/sitebuilder-api/internal/application/usecase"
	"github.com/jhoicas/sitebuilder-api/internal/domain"
	"github.com/jhoicas/sitebuilder-api/internal/domain/entity"
	"github.com/jhoicas/sitebuilder-api/internal/domain/template"
	"github.com/jhoicas/sitebuilder-api/internal/testutil/memrepo"
	"github.com/jhoicas/sitebuilder-api/pkg/settings"
)

const (
	tenantRestaurant = "11111111-1111-1111-1111-111111111111"
	tenantLegacy     = "22222222-2222-2222-2222-222222222222"
	tenantStale      = "33333333-3333-3333-3333-333333333333"
	tenantEmpty      = "44444444-4444-4444-4444-444444444444"
	tenantMissing    = "99999999-9999-9999-9999-999999999999"
)

// countingObserver cuenta resoluciones y decisiones de módulo.
type countingObserver struct {
	mu          sync.Mutex
	resolutions map[string]int
	checks      map[string]int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{resolutions: map[string]int{}, checks: map[string]int{}}
}

func (o *countingObserver) ObserveResolution(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resolutions[outcome]++
}

func (o *countingObserver) ObserveModuleCheck(module string, allowed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if allowed {
		o.checks[module+":true"]++
	} else {
		o.checks[module+":false"]++
	}
}

func seedTenants() *memrepo.Tenants {
	now := time.Now()
	return memrepo.NewTenants(
		&entity.Tenant{ID: tenantRestaurant, Name: "Pizzería", Slug: "pizzeria", Status: entity.TenantActive,
			Settings: []byte(`{"theme_category":"Restaurant","primary_color":"#c00"}`), CreatedAt: now},
		&entity.Tenant{ID: tenantLegacy, Name: "Viajes", Slug: "viajes", Status: entity.TenantActive,
			Settings: []byte(`{"theme_category":"Travel"}`), CreatedAt: now.Add(time.Minute)},
		&entity.Tenant{ID: tenantStale, Name: "Vieja", Slug: "vieja", Status: entity.TenantActive,
			Settings: []byte(`{"theme_category":"Retail"}`), CreatedAt: now.Add(2 * time.Minute)},
		&entity.Tenant{ID: tenantEmpty, Name: "Nueva", Slug: "nueva", Status: entity.TenantActive,
			Settings: nil, CreatedAt: now.Add(3 * time.Minute)},
	)
}

func newTemplateUC(repo *memrepo.Tenants, obs usecase.ResolutionObserver) *usecase.TemplateUseCase {
	return usecase.NewTemplateUseCase(template.DefaultResolver(), repo, obs, nil)
}

func TestTemplateUseCase_List(t *testing.T) {
	uc := newTemplateUC(seedTenants(), newCountingObserver())
	out := uc.List()

	require.Len(t, out.Items, 6)
	assert.Equal(t, "General", out.DefaultCategory)
	assert.Equal(t, "ecommerce", out.Items[0].Slug)
	assert.Equal(t, "retail", out.Items[0].Industry)
	assert.Equal(t, "overview", out.Items[0].EnabledModules[0], "módulos en orden maestro")
	assert.NotContains(t, out.Items[0].EnabledModules, "pos")
}

func TestTemplateUseCase_GetBySlug(t *testing.T) {
	uc := newTemplateUC(seedTenants(), nil)

	got, err := uc.GetBySlug("education")
	require.NoError(t, err)
	assert.Equal(t, "Education", got.Category)
	assert.Contains(t, got.EnabledModules, "courses")

	_, err = uc.GetBySlug("Education")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTemplateUseCase_Resolve(t *testing.T) {
	obs := newCountingObserver()
	uc := newTemplateUC(seedTenants(), obs)

	got := uc.Resolve("Hospitality")
	assert.Equal(t, "Service", got.Category)
	assert.Equal(t, "alias", got.Outcome)
	assert.Equal(t, "Hospitality", got.Label)

	got = uc.Resolve("NonexistentCategoryXYZ")
	assert.Equal(t, "general", got.Config.Slug)
	assert.Equal(t, "default", got.Outcome)

	assert.Equal(t, 1, obs.resolutions["alias"])
	assert.Equal(t, 1, obs.resolutions["default"])
}

func TestTemplateUseCase_ResolveTenant(t *testing.T) {
	uc := newTemplateUC(seedTenants(), newCountingObserver())
	ctx := context.Background()

	cases := []struct {
		tenant  string
		slug    string
		outcome template.Outcome
	}{
		{tenantRestaurant, "restaurant", template.OutcomeDirect},
		{tenantLegacy, "service", template.OutcomeAlias},
		{tenantStale, "general", template.OutcomeDefault},
		{tenantEmpty, "general", template.OutcomeDefault},
	}
	for _, tc := range cases {
		res, err := uc.ResolveTenant(ctx, tc.tenant)
		require.NoError(t, err, tc.tenant)
		assert.Equal(t, tc.slug, res.Config.Slug, tc.tenant)
		assert.Equal(t, tc.outcome, res.Outcome, tc.tenant)
	}

	_, err := uc.ResolveTenant(ctx, tenantMissing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTemplateUseCase_ResolveTenant_ErrorDeInfraestructura(t *testing.T) {
	repo := seedTenants()
	repo.Err = errors.New("conexión rechazada")
	uc := newTemplateUC(repo, nil)

	_, err := uc.ResolveTenant(context.Background(), tenantRestaurant)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestTemplateUseCase_Apply(t *testing.T) {
	repo := seedTenants()
	uc := newTemplateUC(repo, nil)
	ctx := context.Background()

	out, err := uc.Apply(ctx, tenantRestaurant, "SaaS")
	require.NoError(t, err)
	assert.Equal(t, "Agency", out.Category)
	assert.Equal(t, "alias", out.Outcome)
	assert.Equal(t, "SaaS", out.Label)

	stored, err := repo.GetByID(ctx, tenantRestaurant)
	require.NoError(t, err)
	category, ok := settings.ThemeCategory(stored.Settings)
	require.True(t, ok)
	assert.Equal(t, "Agency", category, "se guarda la clave canónica")
	assert.Contains(t, string(stored.Settings), "primary_color", "el resto del blob se conserva")
}

func TestTemplateUseCase_Apply_EtiquetaDesconocida(t *testing.T) {
	uc := newTemplateUC(seedTenants(), nil)
	ctx := context.Background()

	for _, label := range []string{"", "Retail", "restaurant"} {
		_, err := uc.Apply(ctx, tenantRestaurant, label)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "etiqueta %q", label)
	}

	_, err := uc.Apply(ctx, tenantMissing, "Restaurant")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNavigationUseCase_Build(t *testing.T) {
	nav := usecase.NewNavigationUseCase(newTemplateUC(seedTenants(), nil))
	out := nav.Build(template.ResolveTemplateConfig("Restaurant"))

	assert.Equal(t, "restaurant", out.Slug)
	require.NotEmpty(t, out.Items)
	assert.Equal(t, dto.NavigationItem{Module: "overview", Label: "Overview", Path: "/dashboard"}, out.Items[0])

	var modules []string
	for _, it := range out.Items {
		modules = append(modules, it.Module)
	}
	assert.Contains(t, modules, "kitchen")
	assert.NotContains(t, modules, "courses")
	assert.Equal(t, "support", modules[len(modules)-1])

	// Orden maestro: pos antes que kitchen, team antes que settings.
	idx := func(m string) int {
		for i, v := range modules {
			if v == m {
				return i
			}
		}
		return -1
	}
	assert.Less(t, idx("pos"), idx("kitchen"))
	assert.Less(t, idx("team"), idx("settings"))
}

func TestNavigationUseCase_ForTenant(t *testing.T) {
	nav := usecase.NewNavigationUseCase(newTemplateUC(seedTenants(), nil))

	out, err := nav.ForTenant(context.Background(), tenantLegacy)
	require.NoError(t, err)
	assert.Equal(t, "service", out.Slug)

	_, err = nav.ForTenant(context.Background(), tenantMissing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestModulePath(t *testing.T) {
	assert.Equal(t, "/dashboard", usecase.ModulePath(template.ModuleOverview))
	assert.Equal(t, "/dashboard/pos", usecase.ModulePath(template.ModulePOS))
	assert.Equal(t, "Point of Sale", usecase.ModuleLabel(template.ModulePOS))
	assert.Equal(t, "x", usecase.ModuleLabel(template.ModuleKey("x")))
}

func TestModuleService_HasActiveModule(t *testing.T) {
	obs := newCountingObserver()
	svc := usecase.NewModuleService(newTemplateUC(seedTenants(), nil), obs)
	ctx := context.Background()

	ok, err := svc.HasActiveModule(ctx, tenantRestaurant, "kitchen")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasActiveModule(ctx, tenantRestaurant, "courses")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.HasActiveModule(ctx, tenantLegacy, "appointments")
	require.NoError(t, err)
	assert.True(t, ok, "Travel resuelve a Service")

	ok, err = svc.HasActiveModule(ctx, tenantStale, "pos")
	require.NoError(t, err)
	assert.False(t, ok, "General no habilita pos")

	ok, err = svc.HasActiveModule(ctx, tenantRestaurant, "warp-drive")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.HasActiveModule(ctx, tenantMissing, "overview")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.HasActiveModule(ctx, "", "overview")
	assert.Error(t, err)

	assert.Equal(t, 1, obs.checks["kitchen:true"])
	assert.Equal(t, 1, obs.checks["courses:false"])
	assert.Equal(t, 1, obs.checks["unknown:false"])
}

func TestModuleService_ErrorDeInfraestructura(t *testing.T) {
	repo := seedTenants()
	repo.Err = errors.New("timeout")
	svc := usecase.NewModuleService(newTemplateUC(repo, nil), nil)

	_, err := svc.HasActiveModule(context.Background(), tenantRestaurant, "kitchen")
	assert.Error(t, err)
}

func TestTenantUseCase_Create(t *testing.T) {
	repo := memrepo.NewTenants()
	uc := usecase.NewTenantUseCase(repo, template.DefaultResolver())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateTenantRequest{Name: " Café Sol ", Slug: "Cafe-Sol", ThemeCategory: "Hospitality"})
	require.NoError(t, err)
	assert.Equal(t, "Café Sol", out.Name)
	assert.Equal(t, "cafe-sol", out.Slug)
	assert.Equal(t, entity.TenantActive, out.Status)
	assert.Equal(t, "Service", out.ThemeCategory)
	assert.NotEmpty(t, out.ID)

	_, err = uc.Create(ctx, dto.CreateTenantRequest{Name: "Otro", Slug: "cafe-sol"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	sinCategoria, err := uc.Create(ctx, dto.CreateTenantRequest{Name: "Sin categoría", Slug: "sin-categoria"})
	require.NoError(t, err)
	assert.Empty(t, sinCategoria.ThemeCategory)
	assert.JSONEq(t, `{}`, string(sinCategoria.Settings))
}

func TestTenantUseCase_Create_Validaciones(t *testing.T) {
	uc := usecase.NewTenantUseCase(memrepo.NewTenants(), template.DefaultResolver())
	ctx := context.Background()

	for _, in := range []dto.CreateTenantRequest{
		{Name: "", Slug: "a"},
		{Name: "a", Slug: ""},
		{Name: "a", Slug: "con espacios"},
		{Name: "a", Slug: "-guion"},
		{Name: "a", Slug: "ok", ThemeCategory: "Retail"},
	} {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestTenantUseCase_List(t *testing.T) {
	uc := usecase.NewTenantUseCase(seedTenants(), template.DefaultResolver())

	out, err := uc.List(context.Background(), dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 4, out.Page.Total)
	assert.Equal(t, "nueva", out.Items[0].Slug, "más reciente primero")

	out, err = uc.List(context.Background(), dto.PageRequest{Limit: 500, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, 100, out.Page.Limit)
	assert.Equal(t, 0, out.Page.Offset)
	assert.Len(t, out.Items, 4)
}

func TestTenantUseCase_GetByID(t *testing.T) {
	uc := usecase.NewTenantUseCase(seedTenants(), template.DefaultResolver())

	out, err := uc.GetByID(context.Background(), tenantLegacy)
	require.NoError(t, err)
	assert.Equal(t, "Travel", out.ThemeCategory, "se muestra el valor guardado, sin resolver")

	out, err = uc.GetByID(context.Background(), tenantMissing)
	require.NoError(t, err)
	assert.Nil(t, out)
}
