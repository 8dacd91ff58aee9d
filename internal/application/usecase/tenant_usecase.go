package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/sitebuilder-api/internal/application/dto"
	"github.com/jhoicas/sitebuilder-api/internal/domain"
	"github.com/jhoicas/sitebuilder-api/internal/domain/entity"
	"github.com/jhoicas/sitebuilder-api/internal/domain/repository"
	"github.com/jhoicas/sitebuilder-api/internal/domain/template"
	"github.com/jhoicas/sitebuilder-api/pkg/settings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// TenantUseCase casos de uso de la consola de super-admin sobre tenants.
type TenantUseCase struct {
	repo     repository.TenantRepository
	resolver *template.Resolver
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(repo repository.TenantRepository, resolver *template.Resolver) *TenantUseCase {
	return &TenantUseCase{repo: repo, resolver: resolver}
}

// Create crea un tenant. Genera ID y estado inicial.
// domain.ErrInvalidInput si faltan campos, el slug es inválido o la categoría es desconocida;
// domain.ErrDuplicate si el slug ya existe.
func (uc *TenantUseCase) Create(ctx context.Context, in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	name := strings.TrimSpace(in.Name)
	slug := strings.ToLower(strings.TrimSpace(in.Slug))
	if name == "" || slug == "" {
		return nil, fmt.Errorf("%w: name y slug son requeridos", domain.ErrInvalidInput)
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("%w: slug %q inválido", domain.ErrInvalidInput, in.Slug)
	}

	blob := map[string]string{}
	if in.ThemeCategory != "" {
		category, outcome := uc.resolver.Normalize(in.ThemeCategory)
		if outcome == template.OutcomeDefault {
			return nil, fmt.Errorf("%w: categoría %q desconocida", domain.ErrInvalidInput, in.ThemeCategory)
		}
		blob[settings.ThemeCategoryKey] = string(category)
	}
	raw, err := json.Marshal(blob)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	tenant := &entity.Tenant{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug,
		Status:    entity.TenantActive,
		Settings:  raw,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// GetByID obtiene un tenant. Devuelve (nil, nil) si no existe.
func (uc *TenantUseCase) GetByID(ctx context.Context, id string) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, nil
	}
	return toTenantResponse(tenant), nil
}

// List lista tenants con paginación.
func (uc *TenantUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.TenantListResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTenantResponse(t))
	}
	return &dto.TenantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	category, _ := settings.ThemeCategory(t.Settings)
	out := &dto.TenantResponse{
		ID:            t.ID,
		Name:          t.Name,
		Slug:          t.Slug,
		Status:        t.Status,
		ThemeCategory: category,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if len(t.Settings) > 0 && json.Valid(t.Settings) {
		out.Settings = json.RawMessage(t.Settings)
	}
	return out
}
