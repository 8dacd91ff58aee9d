package usecase

import (
	"context"

	"github.com/jhoicas/sitebuilder-api/internal/application/dto"
	"github.com/jhoicas/sitebuilder-api/internal/domain/template"
)

const dashboardBasePath = "/dashboard"

var moduleLabels = map[template.ModuleKey]string{
	template.ModuleOverview:      "Overview",
	template.ModuleSites:         "Sites",
	template.ModuleBuilder:       "Website Builder",
	template.ModuleTemplates:     "Templates",
	template.ModuleProducts:      "Products",
	template.ModuleInventory:     "Inventory",
	template.ModuleOrders:        "Orders",
	template.ModulePOS:           "Point of Sale",
	template.ModuleMenu:          "Menu",
	template.ModuleTables:        "Tables",
	template.ModuleKitchen:       "Kitchen Display",
	template.ModuleAppointments:  "Appointments",
	template.ModuleServices:      "Services",
	template.ModuleCourses:       "Courses",
	template.ModuleStudents:      "Students",
	template.ModuleProjects:      "Projects",
	template.ModuleCMS:           "Content",
	template.ModuleCustomers:     "Customers",
	template.ModuleDiscounts:     "Discounts",
	template.ModuleMarketing:     "Marketing",
	template.ModuleAnalytics:     "Analytics",
	template.ModuleReports:       "Reports",
	template.ModuleLocations:     "Locations",
	template.ModuleNotifications: "Notifications",
	template.ModuleIntegrations:  "Integrations",
	template.ModuleTeam:          "Team",
	template.ModuleBilling:       "Billing",
	template.ModuleSettings:      "Settings",
	template.ModuleSupport:       "Support",
}

// tenantResolver lo implementa *TemplateUseCase.
type tenantResolver interface {
	ResolveTenant(ctx context.Context, tenantID string) (template.Resolution, error)
}

// NavigationUseCase arma el menú lateral del dashboard a partir de la plantilla.
type NavigationUseCase struct {
	templates tenantResolver
}

// NewNavigationUseCase construye el caso de uso.
func NewNavigationUseCase(templates tenantResolver) *NavigationUseCase {
	return &NavigationUseCase{templates: templates}
}

// Build recorre el orden maestro y agrega una entrada por cada módulo habilitado.
func (uc *NavigationUseCase) Build(cfg template.TemplateConfig) dto.NavigationResponse {
	items := make([]dto.NavigationItem, 0, cfg.Modules.Len())
	for _, k := range template.MasterOrder() {
		if !template.IsModuleEnabled(cfg, k) {
			continue
		}
		items = append(items, dto.NavigationItem{
			Module: string(k),
			Label:  ModuleLabel(k),
			Path:   ModulePath(k),
		})
	}
	return dto.NavigationResponse{
		Category: string(cfg.Category),
		Slug:     cfg.Slug,
		Items:    items,
	}
}

// ForTenant menú para la plantilla resuelta del tenant.
func (uc *NavigationUseCase) ForTenant(ctx context.Context, tenantID string) (*dto.NavigationResponse, error) {
	res, err := uc.templates.ResolveTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := uc.Build(res.Config)
	return &out, nil
}

// ModuleLabel etiqueta visible del módulo.
func ModuleLabel(k template.ModuleKey) string {
	if l, ok := moduleLabels[k]; ok {
		return l
	}
	return string(k)
}

// ModulePath ruta del dashboard para el módulo; overview es la raíz.
func ModulePath(k template.ModuleKey) string {
	if k == template.ModuleOverview {
		return dashboardBasePath
	}
	return dashboardBasePath + "/" + string(k)
}
