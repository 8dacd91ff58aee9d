package template

// Configuraciones publicadas. Education y Agency no habilitan notifications ni locations;
// el test de cobertura base lo deja registrado.
var shippedConfigs = []TemplateConfig{
	{
		Category:    CategoryEcommerce,
		Slug:        "ecommerce",
		DisplayName: "E-commerce Store",
		Industry:    IndustryRetail,
		Modules: NewModuleSet(
			ModuleOverview, ModuleSites, ModuleBuilder, ModuleTemplates,
			ModuleProducts, ModuleInventory, ModuleOrders, ModuleCustomers, ModuleDiscounts,
			ModuleMarketing, ModuleAnalytics, ModuleReports,
			ModuleLocations, ModuleNotifications, ModuleIntegrations,
			ModuleTeam, ModuleBilling, ModuleSettings, ModuleSupport,
		),
	},
	{
		Category:    CategoryRestaurant,
		Slug:        "restaurant",
		DisplayName: "Restaurant & Cafe",
		Industry:    IndustryFood,
		Modules: NewModuleSet(
			ModuleOverview, ModuleSites, ModuleBuilder, ModuleTemplates,
			ModuleMenu, ModuleOrders, ModulePOS, ModuleTables, ModuleKitchen, ModuleInventory,
			ModuleCustomers, ModuleMarketing, ModuleAnalytics, ModuleReports,
			ModuleLocations, ModuleNotifications,
			ModuleTeam, ModuleBilling, ModuleSettings, ModuleSupport,
		),
	},
	{
		Category:    CategoryService,
		Slug:        "service",
		DisplayName: "Service Business",
		Industry:    IndustryService,
		Modules: NewModuleSet(
			ModuleOverview, ModuleSites, ModuleBuilder, ModuleTemplates,
			ModuleAppointments, ModuleServices, ModulePOS, ModuleOrders, ModuleCustomers,
			ModuleMarketing, ModuleAnalytics,
			ModuleLocations, ModuleNotifications,
			ModuleTeam, ModuleBilling, ModuleSettings, ModuleSupport,
		),
	},
	{
		Category:    CategoryEducation,
		Slug:        "education",
		DisplayName: "Education & Courses",
		Industry:    IndustryEducation,
		Modules: NewModuleSet(
			ModuleOverview, ModuleSites, ModuleBuilder, ModuleTemplates,
			ModuleCourses, ModuleStudents, ModuleCMS,
			ModuleMarketing, ModuleAnalytics,
			ModuleTeam, ModuleBilling, ModuleSettings, ModuleSupport,
		),
	},
	{
		Category:    CategoryAgency,
		Slug:        "agency",
		DisplayName: "Agency & Portfolio",
		Industry:    IndustryAgency,
		Modules: NewModuleSet(
			ModuleOverview, ModuleSites, ModuleBuilder, ModuleTemplates,
			ModuleProjects, ModuleCMS, ModuleCustomers,
			ModuleAnalytics, ModuleReports, ModuleIntegrations,
			ModuleTeam, ModuleBilling, ModuleSettings, ModuleSupport,
		),
	},
	{
		Category:    CategoryGeneral,
		Slug:        "general",
		DisplayName: "General Business",
		Industry:    IndustryRetail,
		Modules: NewModuleSet(
			ModuleOverview, ModuleSites, ModuleBuilder, ModuleTemplates,
			ModuleProducts, ModuleOrders, ModuleCustomers,
			ModuleMarketing, ModuleAnalytics,
			ModuleLocations, ModuleNotifications,
			ModuleTeam, ModuleBilling, ModuleSettings, ModuleSupport,
		),
	},
}

// El registro publicado se valida al cargar el paquete: si falta el default el proceso no arranca.
var (
	shipped         = MustNewRegistry(shippedConfigs...)
	shippedResolver = NewResolver(shipped)
)

// Shipped devuelve el registro publicado.
func Shipped() *Registry { return shipped }

// DefaultResolver devuelve el resolver sobre el registro publicado.
func DefaultResolver() *Resolver { return shippedResolver }

// DefaultConfig devuelve la configuración General.
func DefaultConfig() TemplateConfig { return shipped.Default() }

// ResolveTemplateConfig resuelve una etiqueta contra el registro publicado. Nunca falla.
func ResolveTemplateConfig(label string) TemplateConfig {
	return shippedResolver.ResolveConfig(label)
}

// ResolveTemplateConfigPtr variante para etiquetas que pueden venir nulas.
func ResolveTemplateConfigPtr(label *string) TemplateConfig {
	if label == nil {
		return shipped.Default()
	}
	return shippedResolver.ResolveConfig(*label)
}
