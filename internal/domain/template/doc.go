// Package template resuelve qué módulos expone el dashboard de un tenant según la
// categoría de negocio de la plantilla aplicada.
//
// Registry contiene las seis configuraciones canónicas y se construye una vez al cargar el
// paquete. Resolver es la frontera de entrada libre: cualquier etiqueta (vacía, heredada o
// basura) termina en una TemplateConfig válida; una etiqueta no reconocida resuelve a General.
// Todo el paquete es puro y seguro para uso concurrente.
package template
