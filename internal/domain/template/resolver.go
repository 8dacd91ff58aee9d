package template

// Outcome indica cómo se llegó a la categoría resuelta.
type Outcome string

const (
	OutcomeDirect  Outcome = "direct"  // la etiqueta es una clave canónica
	OutcomeAlias   Outcome = "alias"   // la etiqueta es un alias conocido
	OutcomeDefault Outcome = "default" // vacía o no reconocida
)

// aliases etiquetas heredadas o sinónimos → clave canónica.
// Ampliar esta tabla es una decisión de producto.
var aliases = map[string]Category{
	"Travel":      CategoryService,
	"Hospitality": CategoryService,
	"SaaS":        CategoryAgency,
	"Business":    CategoryGeneral,
}

// Aliases devuelve una copia de la tabla de alias.
func Aliases() map[string]Category {
	out := make(map[string]Category, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

// Resolution resultado de resolver una etiqueta.
type Resolution struct {
	Label    string
	Category Category
	Outcome  Outcome
	Config   TemplateConfig
}

// Resolver traduce etiquetas libres a una TemplateConfig. Es total: nunca falla.
type Resolver struct {
	registry *Registry
	aliases  map[string]Category
}

// NewResolver construye un resolver sobre el registro dado con la tabla de alias estándar.
func NewResolver(r *Registry) *Resolver {
	return &Resolver{registry: r, aliases: aliases}
}

// Registry devuelve el registro subyacente.
func (res *Resolver) Registry() *Registry { return res.registry }

// Normalize es la frontera de entrada libre: convierte cualquier etiqueta en una categoría
// presente en el registro. Vacía, desconocida o ausente del registro cae al default.
func (res *Resolver) Normalize(raw string) (Category, Outcome) {
	if raw == "" {
		return DefaultCategory, OutcomeDefault
	}
	candidate := Category(raw)
	outcome := OutcomeDirect
	if c, ok := res.aliases[raw]; ok {
		candidate = c
		outcome = OutcomeAlias
	}
	if _, ok := res.registry.Get(string(candidate)); ok {
		return candidate, outcome
	}
	return DefaultCategory, OutcomeDefault
}

// Resolve devuelve la configuración para la etiqueta, con el detalle de cómo se resolvió.
func (res *Resolver) Resolve(raw string) Resolution {
	c, outcome := res.Normalize(raw)
	cfg := res.registry.Lookup(c)
	return Resolution{
		Label:    raw,
		Category: cfg.Category,
		Outcome:  outcome,
		Config:   cfg,
	}
}

// ResolveConfig atajo de Resolve que devuelve solo la configuración.
func (res *Resolver) ResolveConfig(raw string) TemplateConfig {
	return res.Resolve(raw).Config
}
