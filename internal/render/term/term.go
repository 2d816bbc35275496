// Package term renders the dashboard view for a terminal.
package term

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"BrentDash/internal/domain/models"
	"BrentDash/internal/usecase"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorAccent   = lipgloss.Color("#1e3a8a")
	colorActual   = lipgloss.Color("#007aff")
	colorForecast = lipgloss.Color("#ff9800")
	colorError    = lipgloss.Color("#b91c1c")
	colorMuted    = lipgloss.Color("#64748b")
	colorBorder   = lipgloss.Color("#363646")
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Renderer lays out every view section as a bordered box.
type Renderer struct {
	width   int
	title   lipgloss.Style
	box     lipgloss.Style
	heading lipgloss.Style
	errBox  lipgloss.Style
	muted   lipgloss.Style
}

func New(width int) *Renderer {
	if width < 40 {
		width = 40
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(width - 2)
	return &Renderer{
		width:   width,
		title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Width(width).Align(lipgloss.Center),
		box:     box,
		heading: lipgloss.NewStyle().Bold(true),
		errBox:  box.BorderForeground(colorError),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// Render returns the whole dashboard as one string.
func (r *Renderer) Render(v *usecase.View) string {
	blocks := []string{r.title.Render("Brent Oil Analysis Dashboard"), r.filterLine(v.Filter)}

	if len(v.Errors) > 0 {
		lines := make([]string, 0, len(v.Errors))
		for _, e := range v.Errors {
			lines = append(lines, fmt.Sprintf("%s: %s", e.Dataset, e.Message))
		}
		blocks = append(blocks, r.section(r.errBox, "Errors", lines))
	}
	if v.Prices != nil {
		values := make([]float64, 0, len(v.Prices.Points))
		for _, p := range v.Prices.Points {
			values = append(values, p.Price)
		}
		blocks = append(blocks, r.section(r.box, "Brent Price", r.seriesLines(pricesSpan(v.Prices.Points),
			seriesLine{"Price", colorActual, values})))
	}
	if v.Forecast != nil {
		actual := make([]float64, 0, len(v.Forecast.Points))
		forecast := make([]float64, 0, len(v.Forecast.Points))
		for _, p := range v.Forecast.Points {
			actual = append(actual, p.Price)
			forecast = append(forecast, p.Forecast)
		}
		blocks = append(blocks, r.section(r.box, "Forecast vs Actual", r.seriesLines(forecastSpan(v.Forecast.Points),
			seriesLine{"Actual", colorActual, actual},
			seriesLine{"Forecast", colorForecast, forecast})))
	}
	if v.Events != nil {
		blocks = append(blocks, r.section(r.box, "Event Impact on Prices", r.eventLines(v)))
	}
	if s := v.Summary; s != nil {
		blocks = append(blocks, r.section(r.box, "Summary", []string{
			"Volatility: " + fmtNum(s.Volatility),
			"Avg Daily Change: " + fmtNum(s.AvgDailyChange),
		}))
	}
	if m := v.Metrics; m != nil {
		lines := make([]string, 0, len(m.RMSE))
		for _, s := range m.RMSE {
			lines = append(lines, fmt.Sprintf("%s: RMSE = %s", s.Model, fmtNum(s.Value)))
		}
		blocks = append(blocks, r.section(r.box, "Model Metrics", lines))
	}
	if m := v.Macros; m != nil {
		blocks = append(blocks, r.section(r.box, "Macro Indicators", []string{
			"GDP Growth: " + fmtNum(m.GDPGrowth) + "%",
			"Inflation Rate: " + fmtNum(m.InflationRate) + "%",
			"Exchange Rate: " + fmtNum(m.ExchangeRate),
		}))
	}
	if s := v.Sentiment; s != nil {
		blocks = append(blocks, r.section(r.box, "Sentiment Analysis", []string{
			fmt.Sprintf("Positive: %d", s.Positive),
			fmt.Sprintf("Neutral: %d", s.Neutral),
			fmt.Sprintf("Negative: %d", s.Negative),
		}))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n"
}

func (r *Renderer) section(style lipgloss.Style, title string, lines []string) string {
	body := append([]string{r.heading.Render(title)}, lines...)
	return style.Render(strings.Join(body, "\n"))
}

func (r *Renderer) filterLine(f models.FilterState) string {
	start, end := f.Start, f.End
	if start == "" {
		start = "…"
	}
	if end == "" {
		end = "…"
	}
	return r.muted.Render(fmt.Sprintf("Dates %s → %s  Type %s  Source %s", start, end, f.Type, f.Source))
}

type seriesLine struct {
	label  string
	color  lipgloss.Color
	values []float64
}

func (r *Renderer) seriesLines(span string, series ...seriesLine) []string {
	if span == "" {
		return []string{r.muted.Render("No data in the selected range.")}
	}
	// leave room for the box border, padding and the label column
	width := r.width - 16
	lines := []string{r.muted.Render(span)}
	for _, s := range series {
		label := fmt.Sprintf("%-9s", s.label)
		lines = append(lines, label+lipgloss.NewStyle().Foreground(s.color).Render(Sparkline(s.values, width)))
	}
	return lines
}

func (r *Renderer) eventLines(v *usecase.View) []string {
	lines := []string{
		r.muted.Render("Types: " + strings.Join(v.Events.TypeOptions, ", ")),
		r.muted.Render("Sources: " + strings.Join(v.Events.SourceOptions, ", ")),
	}
	if len(v.Events.Items) == 0 {
		return append(lines, r.muted.Render("No events match the current filters."))
	}
	for _, e := range v.Events.Items {
		src := e.Source
		if src == "" {
			src = e.Region
		}
		lines = append(lines,
			"",
			r.heading.Render(e.Event)+" ("+e.Date.String()+")",
			fmt.Sprintf("Type: %s | Δ Price: %s", e.Type, e.ActualImpact),
			"Source of information: "+src,
		)
	}
	return lines
}

func pricesSpan(points []models.PricePoint) string {
	if len(points) == 0 {
		return ""
	}
	return points[0].Date.String() + " → " + points[len(points)-1].Date.String()
}

func forecastSpan(points []models.ForecastPoint) string {
	if len(points) == 0 {
		return ""
	}
	return points[0].Date.String() + " → " + points[len(points)-1].Date.String()
}

// Sparkline draws values as block characters, averaging buckets down to at most width cells.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		values = downsample(values, width)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	var b strings.Builder
	top := len(sparkBlocks) - 1
	for _, v := range values {
		idx := top / 2
		if hi > lo {
			idx = int(math.Round((v - lo) / (hi - lo) * float64(top)))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

func downsample(values []float64, width int) []float64 {
	out := make([]float64, width)
	n := len(values)
	for i := 0; i < width; i++ {
		from, to := i*n/width, (i+1)*n/width
		sum := 0.0
		for _, v := range values[from:to] {
			sum += v
		}
		out[i] = sum / float64(to-from)
	}
	return out
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
