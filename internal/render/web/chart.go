package web

import (
	"math"
	"strconv"
	"strings"
)

// Series is one line of a chart.
type Series struct {
	Label  string
	Color  string
	Dashed bool
	Values []float64
}

// Chart is a line chart over a shared category axis.
type Chart struct {
	Width  int
	Height int
	Labels []string
	Series []Series
}

// Polyline is a series projected into SVG user space.
type Polyline struct {
	Label  string
	Color  string
	Dashed bool
	Points string
}

const chartPad = 24.0

// Bounds returns the min and max over every series value.
func (c Chart) Bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	return lo, hi
}

// Empty reports whether there is nothing to plot.
func (c Chart) Empty() bool { return len(c.Labels) == 0 }

// Polylines projects every series into the chart box.
func (c Chart) Polylines() []Polyline {
	lo, hi := c.Bounds()
	out := make([]Polyline, 0, len(c.Series))
	for _, s := range c.Series {
		var b strings.Builder
		for i, v := range s.Values {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(fmtCoord(c.x(i, len(s.Values))))
			b.WriteByte(',')
			b.WriteString(fmtCoord(c.y(v, lo, hi)))
		}
		out = append(out, Polyline{Label: s.Label, Color: s.Color, Dashed: s.Dashed, Points: b.String()})
	}
	return out
}

// FirstLabel and LastLabel mark the ends of the category axis.
func (c Chart) FirstLabel() string {
	if len(c.Labels) == 0 {
		return ""
	}
	return c.Labels[0]
}

func (c Chart) LastLabel() string {
	if len(c.Labels) == 0 {
		return ""
	}
	return c.Labels[len(c.Labels)-1]
}

func (c Chart) x(i, n int) float64 {
	w := float64(c.Width) - 2*chartPad
	if n <= 1 {
		return chartPad + w/2
	}
	return chartPad + w*float64(i)/float64(n-1)
}

func (c Chart) y(v, lo, hi float64) float64 {
	h := float64(c.Height) - 2*chartPad
	if hi == lo {
		return chartPad + h/2
	}
	return chartPad + h*(hi-v)/(hi-lo)
}

func fmtCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
