package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/sitebuilder-api/internal/application/dto"
	"github.com/jhoicas/sitebuilder-api/internal/domain"
	"github.com/jhoicas/sitebuilder-api/internal/domain/repository"
	"github.com/jhoicas/sitebuilder-api/internal/domain/template"
	"github.com/jhoicas/sitebuilder-api/pkg/logger"
	"github.com/jhoicas/sitebuilder-api/pkg/settings"
)

// TemplateUseCase expone el registro de plantillas y resuelve la plantilla de cada tenant.
type TemplateUseCase struct {
	resolver *template.Resolver
	tenants  repository.TenantRepository
	observer ResolutionObserver
	log      *logger.Logger
}

// NewTemplateUseCase construye el caso de uso. observer y log pueden ser nil.
func NewTemplateUseCase(
	resolver *template.Resolver,
	tenants repository.TenantRepository,
	observer ResolutionObserver,
	log *logger.Logger,
) *TemplateUseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TemplateUseCase{resolver: resolver, tenants: tenants, observer: observer, log: log}
}

// List devuelve todas las plantillas publicadas.
func (uc *TemplateUseCase) List() dto.TemplateListResponse {
	reg := uc.resolver.Registry()
	items := make([]dto.TemplateConfigResponse, 0, reg.Len())
	for _, cfg := range reg.All() {
		items = append(items, toTemplateConfigResponse(cfg))
	}
	return dto.TemplateListResponse{
		Items:           items,
		DefaultCategory: string(reg.Default().Category),
	}
}

// GetBySlug busca una plantilla por slug. domain.ErrNotFound si no existe.
func (uc *TemplateUseCase) GetBySlug(slug string) (*dto.TemplateConfigResponse, error) {
	cfg, ok := uc.resolver.Registry().BySlug(slug)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toTemplateConfigResponse(cfg)
	return &out, nil
}

// Resolve previsualiza la resolución de una etiqueta. Nunca falla.
func (uc *TemplateUseCase) Resolve(label string) dto.ResolutionResponse {
	return toResolutionResponse(uc.resolve("", label))
}

// ResolveTenant lee theme_category del tenant y lo resuelve.
// Un tenant sin categoría, o con una categoría desconocida, obtiene la plantilla por defecto.
// Devuelve domain.ErrNotFound si el tenant no existe.
func (uc *TemplateUseCase) ResolveTenant(ctx context.Context, tenantID string) (template.Resolution, error) {
	tenant, err := uc.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return template.Resolution{}, fmt.Errorf("template: leer tenant: %w", err)
	}
	if tenant == nil {
		return template.Resolution{}, domain.ErrNotFound
	}
	label, _ := settings.ThemeCategory(tenant.Settings)
	return uc.resolve(tenantID, label), nil
}

// ForTenant plantilla resuelta del tenant en forma de DTO.
func (uc *TemplateUseCase) ForTenant(ctx context.Context, tenantID string) (*dto.ResolutionResponse, error) {
	res, err := uc.ResolveTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := toResolutionResponse(res)
	return &out, nil
}

// Apply guarda la categoría de la plantilla aplicada por el tenant.
// A diferencia de la resolución, la escritura es estricta: la etiqueta debe ser una clave
// canónica o un alias conocido (se guarda la clave canónica); cualquier otra devuelve
// domain.ErrInvalidInput.
func (uc *TemplateUseCase) Apply(ctx context.Context, tenantID, label string) (*dto.ResolutionResponse, error) {
	category, outcome := uc.resolver.Normalize(label)
	if outcome == template.OutcomeDefault {
		return nil, fmt.Errorf("%w: categoría %q desconocida", domain.ErrInvalidInput, label)
	}
	if err := uc.tenants.UpdateThemeCategory(ctx, tenantID, string(category)); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("tenant_id", tenantID).
		Str("label", label).
		Str("category", string(category)).
		Msg("plantilla aplicada")

	out := toResolutionResponse(uc.resolver.Resolve(string(category)))
	out.Label = label
	out.Outcome = string(outcome)
	return &out, nil
}

func (uc *TemplateUseCase) resolve(tenantID, label string) template.Resolution {
	res := uc.resolver.Resolve(label)
	uc.observer.ObserveResolution(string(res.Outcome))

	switch {
	case res.Outcome == template.OutcomeDefault && label != "":
		// Categoría guardada que ya no existe en el registro o dato corrupto.
		uc.log.Warn().
			Str("tenant_id", tenantID).
			Str("label", label).
			Str("category", string(res.Category)).
			Msg("categoría no reconocida, se usa la plantilla por defecto")
	default:
		uc.log.Debug().
			Str("tenant_id", tenantID).
			Str("label", label).
			Str("category", string(res.Category)).
			Str("outcome", string(res.Outcome)).
			Msg("categoría resuelta")
	}
	return res
}

func toTemplateConfigResponse(cfg template.TemplateConfig) dto.TemplateConfigResponse {
	keys := cfg.Modules.Keys()
	mods := make([]string, 0, len(keys))
	for _, k := range keys {
		mods = append(mods, string(k))
	}
	return dto.TemplateConfigResponse{
		Category:       string(cfg.Category),
		Slug:           cfg.Slug,
		DisplayName:    cfg.DisplayName,
		Industry:       string(cfg.Industry),
		EnabledModules: mods,
	}
}

func toResolutionResponse(res template.Resolution) dto.ResolutionResponse {
	return dto.ResolutionResponse{
		Label:    res.Label,
		Category: string(res.Category),
		Outcome:  string(res.Outcome),
		Config:   toTemplateConfigResponse(res.Config),
	}
}
