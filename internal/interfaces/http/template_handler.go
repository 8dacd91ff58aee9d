package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sitebuilder-api/internal/application/dto"
	"github.com/jhoicas/sitebuilder-api/internal/application/usecase"
)

// TemplateHandler catálogo público de plantillas.
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// List godoc
// @Summary      Listar plantillas
// @Tags         templates
// @Produce      json
// @Success      200  {object}  dto.TemplateListResponse
// @Router       /api/templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Resolve godoc
// @Summary      Previsualizar la resolución de una categoría
// @Description  Nunca falla: una etiqueta vacía o desconocida resuelve a la plantilla General.
// @Tags         templates
// @Produce      json
// @Param        category  query  string  false  "Etiqueta de categoría (canónica, alias o libre)"
// @Success      200  {object}  dto.ResolutionResponse
// @Router       /api/templates/resolve [get]
func (h *TemplateHandler) Resolve(c *fiber.Ctx) error {
	return c.JSON(h.uc.Resolve(c.Query("category")))
}

// GetBySlug godoc
// @Summary      Obtener plantilla por slug
// @Tags         templates
// @Produce      json
// @Param        slug  path  string  true  "Slug de la plantilla"
// @Success      200  {object}  dto.TemplateConfigResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/templates/{slug} [get]
func (h *TemplateHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Params("slug"))
	if err != nil {
		return writeError(c, err, "plantilla no encontrada")
	}
	return c.JSON(out)
}

// badRequest respuesta 400 con código propio.
func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
