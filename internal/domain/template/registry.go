package template

import (
	"errors"
	"fmt"
)

// ErrMissingDefault el registro no contiene la entrada General.
var ErrMissingDefault = errors.New("template: el registro no contiene la categoría por defecto")

// Registry catálogo inmutable categoría canónica → TemplateConfig.
// Se construye una sola vez y solo se lee; es seguro para uso concurrente.
type Registry struct {
	byCategory map[Category]TemplateConfig
	bySlug     map[string]Category
	order      []Category
	def        TemplateConfig
}

// NewRegistry valida y construye el registro. Falla si falta la categoría por defecto,
// si hay categorías o slugs repetidos, o si alguna entrada no es canónica.
func NewRegistry(configs ...TemplateConfig) (*Registry, error) {
	r := &Registry{
		byCategory: make(map[Category]TemplateConfig, len(configs)),
		bySlug:     make(map[string]Category, len(configs)),
	}
	for _, cfg := range configs {
		if !cfg.Category.Valid() {
			return nil, fmt.Errorf("template: categoría no canónica %q", cfg.Category)
		}
		if cfg.Slug == "" {
			return nil, fmt.Errorf("template: %s sin slug", cfg.Category)
		}
		if !cfg.Industry.Valid() {
			return nil, fmt.Errorf("template: %s con industria inválida %q", cfg.Category, cfg.Industry)
		}
		for _, k := range cfg.Modules.Keys() {
			if !k.Valid() {
				return nil, fmt.Errorf("template: %s habilita módulo desconocido %q", cfg.Category, k)
			}
		}
		if _, dup := r.byCategory[cfg.Category]; dup {
			return nil, fmt.Errorf("template: categoría duplicada %s", cfg.Category)
		}
		if other, dup := r.bySlug[cfg.Slug]; dup {
			return nil, fmt.Errorf("template: slug %q repetido en %s y %s", cfg.Slug, other, cfg.Category)
		}
		r.byCategory[cfg.Category] = cfg
		r.bySlug[cfg.Slug] = cfg.Category
		r.order = append(r.order, cfg.Category)
	}
	def, ok := r.byCategory[DefaultCategory]
	if !ok {
		return nil, ErrMissingDefault
	}
	r.def = def
	return r, nil
}

// MustNewRegistry como NewRegistry pero entra en pánico: un registro inválido es un
// error de programación y debe detener el arranque.
func MustNewRegistry(configs ...TemplateConfig) *Registry {
	r, err := NewRegistry(configs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Get busca por clave canónica exacta. No normaliza.
func (r *Registry) Get(key string) (TemplateConfig, bool) {
	cfg, ok := r.byCategory[Category(key)]
	return cfg, ok
}

// Lookup busca por categoría; una categoría sin entrada devuelve el default.
func (r *Registry) Lookup(c Category) TemplateConfig {
	if cfg, ok := r.byCategory[c]; ok {
		return cfg
	}
	return r.def
}

// BySlug busca por slug.
func (r *Registry) BySlug(slug string) (TemplateConfig, bool) {
	c, ok := r.bySlug[slug]
	if !ok {
		return TemplateConfig{}, false
	}
	return r.byCategory[c], true
}

// Default siempre devuelve la entrada General.
func (r *Registry) Default() TemplateConfig {
	return r.def
}

// All devuelve las entradas en el orden de registro.
func (r *Registry) All() []TemplateConfig {
	out := make([]TemplateConfig, 0, len(r.order))
	for _, c := range r.order {
		out = append(out, r.byCategory[c])
	}
	return out
}

// Len cantidad de entradas.
func (r *Registry) Len() int { return len(r.order) }
