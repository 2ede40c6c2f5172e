package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/leodahal4/portfolio/internal/content"
	"github.com/leodahal4/portfolio/internal/page"
	"github.com/leodahal4/portfolio/internal/reveal"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

var funcs = template.FuncMap{
	// delay formats the CSS delay of list item i, base and step in ms.
	"delay": func(i, base, step int) string {
		return reveal.Stagger(i, time.Duration(base)*time.Millisecond, time.Duration(step)*time.Millisecond).String()
	},
	"statusClass": func(s content.ProjectStatus) string {
		return strings.ReplaceAll(strings.ToLower(string(s)), " ", "-")
	},
	"asset": func(name string, static bool) string {
		if static {
			return "static/" + name
		}
		return "/static/" + name
	},
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return tmpl, nil
}

func assets() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Render writes the full page for v.
func Render(w io.Writer, v page.View) error {
	tmpl, err := parseTemplates()
	if err != nil {
		return err
	}
	return errors.Wrap(tmpl.ExecuteTemplate(w, "index.html", v), "render page")
}

// WriteSite renders the settled page of s into dir as index.html and copies
// the stylesheet and script next to it.
func WriteSite(dir string, s *page.Session) error {
	if err := os.MkdirAll(filepath.Join(dir, "static"), 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	s.RevealAll()
	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return errors.Wrap(err, "create index.html")
	}
	if err := Render(f, s.View().Settled()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close index.html")
	}

	return fs.WalkDir(assets(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets(), path)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, "static", path), data, 0o644)
	})
}
