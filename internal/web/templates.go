package web

import (
	"embed"
	"html/template"
)

// Template names rendered by the handlers
const (
	StoreFormTemplate   = "store_form.html"
	StoreDetailTemplate = "store_detail.html"
	SignupTemplate      = "signup.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded HTML templates.
// Install with gin.Engine.SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
