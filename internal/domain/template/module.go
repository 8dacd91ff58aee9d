package template

// ModuleKey identifica un área funcional del dashboard del tenant.
// Conjunto cerrado: solo se extiende agregando constantes nuevas.
type ModuleKey string

const (
	ModuleOverview      ModuleKey = "overview"
	ModuleSites         ModuleKey = "sites"
	ModuleBuilder       ModuleKey = "builder"
	ModuleTemplates     ModuleKey = "templates"
	ModuleProducts      ModuleKey = "products"
	ModuleInventory     ModuleKey = "inventory"
	ModuleOrders        ModuleKey = "orders"
	ModulePOS           ModuleKey = "pos"
	ModuleMenu          ModuleKey = "menu"
	ModuleTables        ModuleKey = "tables"
	ModuleKitchen       ModuleKey = "kitchen"
	ModuleAppointments  ModuleKey = "appointments"
	ModuleServices      ModuleKey = "services"
	ModuleCourses       ModuleKey = "courses"
	ModuleStudents      ModuleKey = "students"
	ModuleProjects      ModuleKey = "projects"
	ModuleCMS           ModuleKey = "cms"
	ModuleCustomers     ModuleKey = "customers"
	ModuleDiscounts     ModuleKey = "discounts"
	ModuleMarketing     ModuleKey = "marketing"
	ModuleAnalytics     ModuleKey = "analytics"
	ModuleReports       ModuleKey = "reports"
	ModuleLocations     ModuleKey = "locations"
	ModuleNotifications ModuleKey = "notifications"
	ModuleIntegrations  ModuleKey = "integrations"
	ModuleTeam          ModuleKey = "team"
	ModuleBilling       ModuleKey = "billing"
	ModuleSettings      ModuleKey = "settings"
	ModuleSupport       ModuleKey = "support"
)

// masterOrder es el orden fijo en que el dashboard presenta los módulos.
// Cada ModuleKey aparece exactamente una vez.
var masterOrder = []ModuleKey{
	ModuleOverview,
	ModuleSites,
	ModuleBuilder,
	ModuleTemplates,
	ModuleProducts,
	ModuleInventory,
	ModuleOrders,
	ModulePOS,
	ModuleMenu,
	ModuleTables,
	ModuleKitchen,
	ModuleAppointments,
	ModuleServices,
	ModuleCourses,
	ModuleStudents,
	ModuleProjects,
	ModuleCMS,
	ModuleCustomers,
	ModuleDiscounts,
	ModuleMarketing,
	ModuleAnalytics,
	ModuleReports,
	ModuleLocations,
	ModuleNotifications,
	ModuleIntegrations,
	ModuleTeam,
	ModuleBilling,
	ModuleSettings,
	ModuleSupport,
}

var moduleRank = func() map[ModuleKey]int {
	m := make(map[ModuleKey]int, len(masterOrder))
	for i, k := range masterOrder {
		m[k] = i
	}
	return m
}()

// MasterOrder devuelve una copia del orden maestro de navegación.
func MasterOrder() []ModuleKey {
	out := make([]ModuleKey, len(masterOrder))
	copy(out, masterOrder)
	return out
}

// Valid informa si la clave pertenece al conjunto cerrado de módulos.
func (k ModuleKey) Valid() bool {
	_, ok := moduleRank[k]
	return ok
}

// ParseModuleKey convierte un texto en ModuleKey; false si no es un módulo conocido.
func ParseModuleKey(s string) (ModuleKey, bool) {
	k := ModuleKey(s)
	return k, k.Valid()
}

// baselineModules son los módulos esperados en todo dashboard, sin importar la categoría.
var baselineModules = []ModuleKey{
	ModuleOverview,
	ModuleSettings,
	ModuleSupport,
	ModuleBilling,
	ModuleTeam,
}

// BaselineModules devuelve una copia del conjunto base de módulos.
func BaselineModules() []ModuleKey {
	out := make([]ModuleKey, len(baselineModules))
	copy(out, baselineModules)
	return out
}
