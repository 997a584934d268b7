package handlers

import (
	"embed"
	"html/template"
	"io/fs"
)

// Templates holds the HTML pages of the application under test
//
//go:embed templates/*.html
var Templates embed.FS

func parseTemplate(fsys fs.FS, name string) (*template.Template, error) {
	return template.ParseFS(fsys, "templates/"+name)
}
