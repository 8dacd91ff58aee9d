// seed_templates genera el script SQL que copia el registro de plantillas a la tabla
// template_catalog (consultas de soporte y reportes de la consola de super-admin).
//
// Uso: go run ./cmd/seed_templates [ruta/salida.sql]
// Por defecto escribe internal/infrastructure/postgres/migrations/002_template_catalog.sql
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/sitebuilder-api/internal/domain/template"
)

func main() {
	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_template_catalog.sql")
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	reg := template.Shipped()
	if err := writeCatalog(out, reg); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d plantillas\n", outPath, reg.Len())
}

func writeCatalog(w io.Writer, reg *template.Registry) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de plantillas (copia del registro en memoria)\n")
	b.WriteString("-- Generado por cmd/seed_templates; no editar a mano.\n\n")
	b.WriteString("INSERT INTO template_catalog (category, slug, display_name, industry, modules, is_default) VALUES\n")

	all := reg.All()
	def := reg.Default().Category
	for i, cfg := range all {
		mods := make([]string, 0, cfg.Modules.Len())
		for _, k := range cfg.Modules.Keys() {
			mods = append(mods, "'"+escapeSQL(string(k))+"'")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', ARRAY[%s], %t)",
			escapeSQL(string(cfg.Category)), escapeSQL(cfg.Slug), escapeSQL(cfg.DisplayName),
			escapeSQL(string(cfg.Industry)), strings.Join(mods, ", "), cfg.Category == def)
		if i < len(all)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (category) DO UPDATE SET\n")
	b.WriteString("  slug = EXCLUDED.slug,\n")
	b.WriteString("  display_name = EXCLUDED.display_name,\n")
	b.WriteString("  industry = EXCLUDED.industry,\n")
	b.WriteString("  modules = EXCLUDED.modules,\n")
	b.WriteString("  is_default = EXCLUDED.is_default;\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
