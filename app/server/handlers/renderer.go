package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"html/template"
	"io"
	"path/filepath"
)

// TemplateRenderer 从目录加载全部模板，每个页面用 define 声明同名模板
type TemplateRenderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*TemplateRenderer)(nil)

func NewTemplateRenderer(dir string) (*TemplateRenderer, error) {
	tmpl, err := template.New("views").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates in %s: %w", dir, err)
	}

	return &TemplateRenderer{templates: tmpl}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
