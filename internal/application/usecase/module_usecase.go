package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/sitebuilder-api/internal/domain"
	"github.com/jhoicas/sitebuilder-api/internal/domain/template"
)

// ModuleService decide si un módulo del dashboard está habilitado para un tenant.
// La decisión sale de la plantilla aplicada (theme_category), no de una suscripción.
type ModuleService struct {
	templates tenantResolver
	observer  ModuleCheckObserver
}

// NewModuleService construye el servicio de módulos. observer puede ser nil.
func NewModuleService(templates tenantResolver, observer ModuleCheckObserver) *ModuleService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &ModuleService{templates: templates, observer: observer}
}

// HasActiveModule informa si la plantilla del tenant habilita el módulo.
// Devuelve false (sin error) si el módulo no existe o el tenant no existe.
// Devuelve error solo ante entrada vacía o fallos de infraestructura.
func (s *ModuleService) HasActiveModule(ctx context.Context, tenantID, moduleName string) (bool, error) {
	if tenantID == "" || moduleName == "" {
		return false, fmt.Errorf("module: tenantID y moduleName son obligatorios")
	}
	key, ok := template.ParseModuleKey(moduleName)
	if !ok {
		// Etiqueta fija para no crear una serie por cada nombre arbitrario.
		s.observer.ObserveModuleCheck("unknown", false)
		return false, nil
	}
	res, err := s.templates.ResolveTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.observer.ObserveModuleCheck(moduleName, false)
			return false, nil
		}
		return false, err
	}
	allowed := template.IsModuleEnabled(res.Config, key)
	s.observer.ObserveModuleCheck(moduleName, allowed)
	return allowed, nil
}
