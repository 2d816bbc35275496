// Package web renders the dashboard view as a standalone HTML page with inline SVG charts.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"BrentDash/internal/domain/models"
	"BrentDash/internal/usecase"
)

const (
	chartWidth  = 900
	chartHeight = 320

	colorActual   = "#007aff"
	colorForecast = "#ff9800"
)

var funcMap = template.FuncMap{
	"priceChart":    priceChart,
	"forecastChart": forecastChart,
	"fmtNum": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"infoSource": func(e models.Event) string {
		if e.Source != "" {
			return e.Source
		}
		return e.Region
	},
}

// Renderer executes the page template. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	t, err := template.New("dashboard").Funcs(funcMap).Parse(tmplPage + tmplChart)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: t}, nil
}

// Render writes the full page for v.
func (r *Renderer) Render(w io.Writer, v *usecase.View) error {
	// render into a buffer so a template error never leaves a half-written page
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", v); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func priceChart(s *usecase.PriceSection) Chart {
	c := Chart{Width: chartWidth, Height: chartHeight}
	values := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		c.Labels = append(c.Labels, p.Date.String())
		values = append(values, p.Price)
	}
	c.Series = []Series{{Label: "Price", Color: colorActual, Values: values}}
	return c
}

func forecastChart(s *usecase.ForecastSection) Chart {
	c := Chart{Width: chartWidth, Height: chartHeight}
	actual := make([]float64, 0, len(s.Points))
	forecast := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		c.Labels = append(c.Labels, p.Date.String())
		actual = append(actual, p.Price)
		forecast = append(forecast, p.Forecast)
	}
	c.Series = []Series{
		{Label: "Actual", Color: colorActual, Values: actual},
		{Label: "Forecast", Color: colorForecast, Dashed: true, Values: forecast},
	}
	return c
}
