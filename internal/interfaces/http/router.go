package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sitebuilder-api/internal/application/usecase"
	"github.com/jhoicas/sitebuilder-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TemplateUC    *usecase.TemplateUseCase
	NavigationUC  *usecase.NavigationUseCase
	ModuleService *usecase.ModuleService
	TenantUC      *usecase.TenantUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de plantillas (público)
	templates := api.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Get("/", templateHandler.List)
	templates.Get("/resolve", templateHandler.Resolve)
	templates.Get("/:slug", templateHandler.GetBySlug)

	auth := AuthMiddleware(deps.JWTSecret)

	// Dashboard del tenant (requiere token con tenant_id)
	dashboard := api.Group("/dashboard", auth, RequireTenant())
	dashboardHandler := NewDashboardHandler(deps.TemplateUC, deps.NavigationUC)
	dashboard.Get("/template", dashboardHandler.GetTemplate)
	dashboard.Put("/template", RequireRole(entity.RoleOwner, entity.RoleAdmin), dashboardHandler.ApplyTemplate)
	dashboard.Get("/navigation", dashboardHandler.GetNavigation)
	dashboard.Get("/modules/:module", RequireModuleParam("module", deps.ModuleService), dashboardHandler.ModuleAccess)

	// Consola de super-admin
	admin := api.Group("/admin", auth, RequireRole(entity.RoleSuperAdmin))
	tenantHandler := NewTenantHandler(deps.TenantUC)
	admin.Get("/tenants", tenantHandler.List)
	admin.Post("/tenants", tenantHandler.Create)
	admin.Get("/tenants/:id", tenantHandler.GetByID)
}
