package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sitebuilder-api/internal/application/dto"
	"github.com/jhoicas/sitebuilder-api/internal/application/usecase"
)

// DashboardHandler endpoints que el shell del dashboard consulta al cargar.
type DashboardHandler struct {
	templates  *usecase.TemplateUseCase
	navigation *usecase.NavigationUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(templates *usecase.TemplateUseCase, navigation *usecase.NavigationUseCase) *DashboardHandler {
	return &DashboardHandler{templates: templates, navigation: navigation}
}

// GetTemplate godoc
// @Summary      Plantilla resuelta del tenant
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResolutionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/template [get]
func (h *DashboardHandler) GetTemplate(c *fiber.Ctx) error {
	out, err := h.templates.ForTenant(c.UserContext(), GetTenantID(c))
	if err != nil {
		return writeError(c, err, "tenant no encontrado")
	}
	return c.JSON(out)
}

// ApplyTemplate godoc
// @Summary      Aplicar plantilla
// @Description  Acepta una categoría canónica o un alias conocido; guarda la clave canónica.
// @Tags         dashboard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyTemplateRequest  true  "Categoría"
// @Success      200  {object}  dto.ResolutionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/template [put]
func (h *DashboardHandler) ApplyTemplate(c *fiber.Ctx) error {
	var in dto.ApplyTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if strings.TrimSpace(in.Category) == "" {
		return badRequest(c, "VALIDATION", "category es requerido")
	}
	out, err := h.templates.Apply(c.UserContext(), GetTenantID(c), in.Category)
	if err != nil {
		return writeError(c, err, "tenant no encontrado")
	}
	return c.JSON(out)
}

// GetNavigation godoc
// @Summary      Menú lateral del dashboard
// @Description  Una entrada por módulo habilitado, en el orden maestro de navegación.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NavigationResponse
// @Router       /api/dashboard/navigation [get]
func (h *DashboardHandler) GetNavigation(c *fiber.Ctx) error {
	out, err := h.navigation.ForTenant(c.UserContext(), GetTenantID(c))
	if err != nil {
		return writeError(c, err, "tenant no encontrado")
	}
	return c.JSON(out)
}

// ModuleAccess godoc
// @Summary      Verificar acceso a un módulo
// @Description  Protegido por RequireModule: responde 200 solo si la plantilla habilita el módulo.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        module  path  string  true  "Módulo (ej. pos, kitchen, courses)"
// @Success      200  {object}  dto.ModuleAccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/modules/{module} [get]
func (h *DashboardHandler) ModuleAccess(c *fiber.Ctx) error {
	return c.JSON(dto.ModuleAccessResponse{Module: c.Params("module"), Enabled: true})
}
