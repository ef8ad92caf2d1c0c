package http

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// loadTemplates parses the embedded checkout pages. Embedding keeps the
// binary self-contained and lets tests build a router from any directory.
func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}
