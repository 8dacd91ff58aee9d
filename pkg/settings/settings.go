// Package settings lee campos puntuales del blob JSON de configuración del tenant
// sin acoplarse a la forma del documento completo.
package settings

import (
	"github.com/tidwall/gjson"
)

// ThemeCategoryKey campo del blob donde se guarda la categoría de la plantilla aplicada.
const ThemeCategoryKey = "theme_category"

// ThemeCategory devuelve theme_category si existe y es un string.
// Un blob vacío, inválido, o con el campo ausente, nulo o de otro tipo devuelve ("", false).
func ThemeCategory(raw []byte) (string, bool) {
	return stringField(raw, ThemeCategoryKey)
}

func stringField(raw []byte, path string) (string, bool) {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return "", false
	}
	res := gjson.GetBytes(raw, path)
	if res.Type != gjson.String {
		return "", false
	}
	return res.String(), true
}
