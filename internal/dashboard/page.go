package dashboard

import (
	"embed"
	"html/template"

	"weather-dashboard/internal/config"
)

// PageTemplate is the name the dashboard page is registered under
const PageTemplate = "dashboard.html"

//go:embed templates/*.html
var templateFS embed.FS

// SourceOption is one entry of the data source selector
type SourceOption struct {
	Value    string
	Label    string
	Selected bool
}

// Page is everything the HTML template needs
type Page struct {
	View    View
	Presets []string
	Sources []SourceOption
	Custom  string
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

// NewPage wraps a view with the selector state for the HTML form
func NewPage(v View, presets []string) Page {
	custom := v.Request.City
	for _, p := range presets {
		if p == v.Request.City {
			custom = ""
			break
		}
	}

	source := v.Request.Source
	return Page{
		View:    v,
		Presets: presets,
		Custom:  custom,
		Sources: []SourceOption{
			{Value: config.SourceOpenMeteo, Label: "Open-Meteo (Recommended)", Selected: source != config.SourceWttr},
			{Value: config.SourceWttr, Label: "wttr.in", Selected: source == config.SourceWttr},
		},
	}
}
