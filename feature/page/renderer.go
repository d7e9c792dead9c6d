package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"sync"

	"github.com/Masterminds/sprig"
)

// TemplateName is the only template the page renders.
const TemplateName = "index.html"

// Renderer parses and executes the page template.
type Renderer struct {
	fsys   fs.FS
	reload bool

	mu     sync.Mutex
	cached *template.Template
}

// NewRenderer creates a renderer over the templates in fsys. With reload set
// the template is parsed for every render.
func NewRenderer(fsys fs.FS, reload bool) *Renderer {
	return &Renderer{fsys: fsys, reload: reload}
}

func (r *Renderer) template() (*template.Template, error) {
	if r.reload {
		return r.parse()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cached != nil {
		return r.cached, nil
	}
	tmpl, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.cached = tmpl
	return tmpl, nil
}

func (r *Renderer) parse() (*template.Template, error) {
	tmpl, err := template.New(TemplateName).Funcs(sprig.HtmlFuncMap()).ParseFS(r.fsys, TemplateName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", TemplateName, err)
	}
	return tmpl, nil
}

// Render executes the page template with data.
func (r *Renderer) Render(data any) ([]byte, error) {
	tmpl, err := r.template()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, TemplateName, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", TemplateName, err)
	}
	return buf.Bytes(), nil
}
