// Package web holds the embedded marketing site: the scrolling landing
// page template and its static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates static
var content embed.FS

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(content, "templates/*.html")
}

// StaticFS returns the embedded static assets rooted at static/
func StaticFS() (fs.FS, error) {
	return fs.Sub(content, "static")
}
