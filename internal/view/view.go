// Package view loads and caches page templates from disk.
package view

import (
	"html/template"
	"io"
	"path/filepath"
	"sync"
	"time"
)

type Renderer struct {
	dir string

	mu    sync.RWMutex
	cache map[string]*template.Template
}

func New(dir string) *Renderer {
	return &Renderer{
		dir:   filepath.Clean(dir),
		cache: map[string]*template.Template{},
	}
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}
}

// Render executes the named page template inside layout.html.
func (r *Renderer) Render(w io.Writer, name string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}

	r.mu.RLock()
	t, ok := r.cache[name]
	r.mu.RUnlock()

	if !ok {
		parsed, err := template.New("layout.html").Funcs(funcs()).ParseFiles(
			filepath.Join(r.dir, "layout.html"),
			filepath.Join(r.dir, name),
		)
		if err != nil {
			return err
		}
		r.mu.Lock()
		r.cache[name] = parsed
		r.mu.Unlock()
		t = parsed
	}

	return t.Execute(w, data)
}
