package dto

// TemplateConfigResponse forma pública de una TemplateConfig.
// EnabledModules va en el orden maestro de navegación.
type TemplateConfigResponse struct {
	Category       string   `json:"category"`
	Slug           string   `json:"slug"`
	DisplayName    string   `json:"display_name"`
	Industry       string   `json:"industry"`
	EnabledModules []string `json:"enabled_modules"`
}

// TemplateListResponse catálogo completo de plantillas.
type TemplateListResponse struct {
	Items           []TemplateConfigResponse `json:"items"`
	DefaultCategory string                   `json:"default_category"`
}

// ResolutionResponse resultado de resolver una etiqueta de categoría.
type ResolutionResponse struct {
	Label    string                 `json:"label"`
	Category string                 `json:"category"`
	Outcome  string                 `json:"outcome"` // direct | alias | default
	Config   TemplateConfigResponse `json:"config"`
}

// ApplyTemplateRequest entrada de PUT /api/dashboard/template.
type ApplyTemplateRequest struct {
	Category string `json:"category"`
}

// NavigationItem una entrada del menú lateral del dashboard.
type NavigationItem struct {
	Module string `json:"module"`
	Label  string `json:"label"`
	Path   string `json:"path"`
}

// NavigationResponse menú del dashboard para la plantilla del tenant.
type NavigationResponse struct {
	Category string           `json:"category"`
	Slug     string           `json:"slug"`
	Items    []NavigationItem `json:"items"`
}

// ModuleAccessResponse respuesta de una ruta protegida por módulo.
type ModuleAccessResponse struct {
	Module  string `json:"module"`
	Enabled bool   `json:"enabled"`
}
