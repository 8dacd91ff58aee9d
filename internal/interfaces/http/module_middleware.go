package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sitebuilder-api/internal/application/dto"
)

// moduleChecker es el contrato mínimo que necesita el middleware para verificar módulos.
// Lo implementa *usecase.ModuleService.
type moduleChecker interface {
	HasActiveModule(ctx context.Context, tenantID, moduleName string) (bool, error)
}

// RequireModule verifica que la plantilla del tenant habilite el módulo.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalTenantID).
//   - 401 si no hay tenant_id en el contexto.
//   - 403 MODULE_DISABLED si la plantilla no habilita el módulo.
//   - 503 si falla la infraestructura al consultar el tenant.
func RequireModule(moduleName string, checker moduleChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return checkModule(c, moduleName, checker)
	}
}

// RequireModuleParam como RequireModule pero toma el módulo del parámetro de ruta.
func RequireModuleParam(param string, checker moduleChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return checkModule(c, c.Params(param), checker)
	}
}

func checkModule(c *fiber.Ctx, moduleName string, checker moduleChecker) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "tenant_id no encontrado en el token",
		})
	}
	if moduleName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "MISSING_MODULE",
			Message: "módulo requerido",
		})
	}

	active, err := checker.HasActiveModule(c.UserContext(), tenantID, moduleName)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:    "MODULE_CHECK_FAILED",
			Message: "no se pudo verificar el módulo, intente más tarde",
		})
	}
	if !active {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "MODULE_DISABLED",
			Message: "el módulo '" + moduleName + "' no está habilitado en la plantilla de este tenant",
		})
	}
	return c.Next()
}
