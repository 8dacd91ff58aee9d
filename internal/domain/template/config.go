package template

import "sort"

// ModuleSet conjunto inmutable de módulos habilitados. El valor cero es el conjunto vacío.
type ModuleSet struct {
	m map[ModuleKey]struct{}
}

// NewModuleSet construye el conjunto; los duplicados se ignoran.
func NewModuleSet(keys ...ModuleKey) ModuleSet {
	m := make(map[ModuleKey]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return ModuleSet{m: m}
}

// Has prueba pertenencia. Una clave ausente es false.
func (s ModuleSet) Has(k ModuleKey) bool {
	_, ok := s.m[k]
	return ok
}

// Len cantidad de módulos habilitados.
func (s ModuleSet) Len() int { return len(s.m) }

// Keys devuelve los módulos en el orden maestro de navegación.
// Claves fuera del conjunto cerrado quedan al final, ordenadas alfabéticamente.
func (s ModuleSet) Keys() []ModuleKey {
	out := make([]ModuleKey, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, okI := moduleRank[out[i]]
		rj, okJ := moduleRank[out[j]]
		switch {
		case okI && okJ:
			return ri < rj
		case okI != okJ:
			return okI
		default:
			return out[i] < out[j]
		}
	})
	return out
}

// Equal compara por pertenencia.
func (s ModuleSet) Equal(o ModuleSet) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for k := range s.m {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

// TemplateConfig describe la forma del dashboard para una categoría de negocio.
// Es un valor inmutable: Modules no expone su mapa interno.
type TemplateConfig struct {
	Category    Category
	Slug        string
	DisplayName string
	Industry    IndustryKind
	Modules     ModuleSet
}

// Enabled informa si el módulo está habilitado para esta plantilla.
func (c TemplateConfig) Enabled(k ModuleKey) bool {
	return c.Modules.Has(k)
}

// Equal igualdad estructural.
func (c TemplateConfig) Equal(o TemplateConfig) bool {
	return c.Category == o.Category &&
		c.Slug == o.Slug &&
		c.DisplayName == o.DisplayName &&
		c.Industry == o.Industry &&
		c.Modules.Equal(o.Modules)
}

// IsModuleEnabled prueba de pertenencia sin efectos secundarios.
func IsModuleEnabled(cfg TemplateConfig, k ModuleKey) bool {
	return cfg.Modules.Has(k)
}

// MissingModules devuelve, en orden maestro, los módulos de want que la plantilla no habilita.
func MissingModules(cfg TemplateConfig, want ...ModuleKey) []ModuleKey {
	var missing []ModuleKey
	for _, k := range NewModuleSet(want...).Keys() {
		if !cfg.Modules.Has(k) {
			missing = append(missing, k)
		}
	}
	return missing
}

// MissingBaseline devuelve los módulos base ausentes en la plantilla (vacío si cumple).
func MissingBaseline(cfg TemplateConfig) []ModuleKey {
	return MissingModules(cfg, baselineModules...)
}
