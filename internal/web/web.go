// Package web holds the embedded HTML pages and front-end assets.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/goalplan/engine/internal/models"
)

//go:embed templates/*.html static/*
var assets embed.FS

// Pages renders the landing and listing pages.
type Pages struct {
	index *template.Template
	plans *template.Template
}

// PlansView is the data for the listing page.
type PlansView struct {
	Plans []models.PlanSummary
}

func NewPages() (*Pages, error) {
	funcs := template.FuncMap{
		"datetime": func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04:05") },
	}
	index, err := template.New("index.html").Funcs(funcs).ParseFS(assets, "templates/layout.html", "templates/index.html")
	if err != nil {
		return nil, err
	}
	plans, err := template.New("plans.html").Funcs(funcs).ParseFS(assets, "templates/layout.html", "templates/plans.html")
	if err != nil {
		return nil, err
	}
	return &Pages{index: index, plans: plans}, nil
}

func (p *Pages) RenderIndex(w io.Writer) error {
	return p.index.ExecuteTemplate(w, "layout", nil)
}

func (p *Pages) RenderPlans(w io.Writer, plans []models.PlanSummary) error {
	return p.plans.ExecuteTemplate(w, "layout", PlansView{Plans: plans})
}

// Static returns the front-end assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
