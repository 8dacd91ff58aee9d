package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/sitebuilder-api/internal/application/dto"
	"github.com/jhoicas/sitebuilder-api/internal/application/usecase"
)

// TenantHandler consola de super-admin sobre tenants.
type TenantHandler struct {
	uc *usecase.TenantUseCase
}

// NewTenantHandler construye el handler.
func NewTenantHandler(uc *usecase.TenantUseCase) *TenantHandler {
	return &TenantHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tenant
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTenantRequest  true  "Datos del tenant"
// @Success      201  {object}  dto.TenantResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/tenants [post]
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, "tenant no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tenant por ID
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tenant (UUID)"
// @Success      200  {object}  dto.TenantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/tenants/{id} [get]
func (h *TenantHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser un UUID")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, "tenant no encontrado")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tenant no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tenants
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.TenantListResponse
// @Router       /api/admin/tenants [get]
func (h *TenantHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}
