package template

// Category es una de las seis claves canónicas del registro.
// La comparación es exacta y sensible a mayúsculas.
type Category string

const (
	CategoryEcommerce  Category = "E-commerce"
	CategoryRestaurant Category = "Restaurant"
	CategoryService    Category = "Service"
	CategoryEducation  Category = "Education"
	CategoryAgency     Category = "Agency"
	CategoryGeneral    Category = "General"
)

// DefaultCategory es la categoría a la que cae cualquier etiqueta no reconocida.
const DefaultCategory = CategoryGeneral

var categories = []Category{
	CategoryEcommerce,
	CategoryRestaurant,
	CategoryService,
	CategoryEducation,
	CategoryAgency,
	CategoryGeneral,
}

// Categories devuelve las categorías canónicas en orden estable.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid informa si c es una categoría canónica.
func (c Category) Valid() bool {
	for _, k := range categories {
		if k == c {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }
