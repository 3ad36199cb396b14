// Package web embeds the browser UI: server-rendered page templates and the
// static script and stylesheet they load.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// TimeLayout is how timestamps are shown on the pages.
const TimeLayout = "2006-01-02 15:04"

// Templates parses the page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Local().Format(TimeLayout)
		},
	}).ParseFS(templateFS, "templates/*.html")
}

// Static returns the files served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
