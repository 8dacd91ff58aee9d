package template

// IndustryKind clasificación gruesa de una plantilla.
type IndustryKind string

const (
	IndustryRetail    IndustryKind = "retail"
	IndustryFood      IndustryKind = "food"
	IndustryService   IndustryKind = "service"
	IndustryEducation IndustryKind = "education"
	IndustryAgency    IndustryKind = "agency"
)

// Valid informa si la industria es una de las cinco conocidas.
func (k IndustryKind) Valid() bool {
	switch k {
	case IndustryRetail, IndustryFood, IndustryService, IndustryEducation, IndustryAgency:
		return true
	}
	return false
}
