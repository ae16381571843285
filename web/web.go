package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/index.html
var indexTemplate string

//go:embed static
var staticFiles embed.FS

var materials = []string{"gold", "silver", "platinum", "rose gold"}

type pageData struct {
	Categories []string
	Materials  []string
}

// Homepage renders the design form.
type Homepage struct {
	tmpl *template.Template
	data pageData
}

func NewHomepage(categories []string) (*Homepage, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse homepage template: %w", err)
	}
	return &Homepage{
		tmpl: tmpl,
		data: pageData{Categories: categories, Materials: materials},
	}, nil
}

func (h *Homepage) Render(w io.Writer) error {
	return h.tmpl.Execute(w, h.data)
}

// StaticHandler serves the embedded assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
