package web

import (
	"bytes"
	"strings"
	"testing"

	"BrentDash/internal/domain/models"
	"BrentDash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSnapshot() *models.Snapshot {
	s := models.NewSnapshot()
	prices := models.PriceSeries{
		{Date: models.NewDate("2020-01-01"), Price: 10},
		{Date: models.NewDate("2020-02-01"), Price: 12},
	}
	forecast := models.ForecastSeries{
		{Date: models.NewDate("2020-01-01"), Price: 10, Forecast: 10.5},
		{Date: models.NewDate("2020-02-01"), Price: 12, Forecast: 11},
	}
	events := models.EventList{
		{Date: models.NewDate("2020-01-10"), Event: "Strike", Type: "War", Source: "Reuters", ActualImpact: models.ImpactOf(1.25)},
		{Date: models.NewDate("2020-01-20"), Event: "Quota <cut>", Type: "Policy", Region: "OPEC"},
	}
	s.Results[models.DatasetPrices] = &prices
	s.Results[models.DatasetForecast] = &forecast
	s.Results[models.DatasetEvents] = &events
	s.Results[models.DatasetSummary] = &models.Summary{Volatility: 1.2345, AvgDailyChange: -0.0123}
	s.Results[models.DatasetSentiment] = &models.Sentiment{Positive: 62, Neutral: 28, Negative: 10}
	s.Results[models.DatasetMetrics] = &models.ModelMetrics{RMSE: []models.ModelScore{{Model: "ARIMA", Value: 1.12}}}
	s.Errors[models.DatasetMacros] = "Status 500"
	return s
}

func render(t *testing.T, snap *models.Snapshot, f models.FilterState) string {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	v, err := usecase.BuildView(snap, f)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, v))
	return buf.String()
}

func TestRenderSectionsAndErrorPanel(t *testing.T) {
	out := render(t, fullSnapshot(), models.FilterState{})

	for _, id := range []string{"prices", "forecast", "events", "summary", "metrics", "sentiment", "errors"} {
		assert.Contains(t, out, `id="`+id+`"`)
	}
	assert.NotContains(t, out, `id="macros"`)
	assert.Equal(t, 1, strings.Count(out, "<li><strong>"))
	assert.Contains(t, out, "<li><strong>macros</strong>: Status 500</li>")

	assert.Contains(t, out, "Volatility: <strong>1.2345</strong>")
	assert.Contains(t, out, "ARIMA: RMSE = 1.12")
	assert.Contains(t, out, "Positive: 62")
	assert.Contains(t, out, `stroke-dasharray="5,5"`)
	assert.Contains(t, out, "Quota &lt;cut&gt;")
	assert.Contains(t, out, "Source of information: OPEC")
	assert.Contains(t, out, "n/a")
}

func TestRenderNoErrorPanelWhenClean(t *testing.T) {
	snap := fullSnapshot()
	delete(snap.Errors, models.DatasetMacros)
	snap.Results[models.DatasetMacros] = &models.Macros{GDPGrowth: 2.5, InflationRate: 5.7, ExchangeRate: 0.83}

	out := render(t, snap, models.FilterState{})
	assert.NotContains(t, out, `id="errors"`)
	assert.Contains(t, out, "GDP Growth: <strong>2.5%</strong>")
}

func TestRenderEventFilterSelection(t *testing.T) {
	out := render(t, fullSnapshot(), models.FilterState{Type: "War"})
	assert.Contains(t, out, `<option value="War" selected>War</option>`)
	assert.Contains(t, out, "Strike")
	assert.NotContains(t, out, "Quota")
}

func TestRenderEmptyRange(t *testing.T) {
	out := render(t, fullSnapshot(), models.FilterState{Start: "2030-01-01"})
	assert.Contains(t, out, "No data in the selected range.")
	assert.Contains(t, out, "No events match the current filters.")
}

func TestChartPolylines(t *testing.T) {
	c := Chart{Width: 148, Height: 148, Labels: []string{"a", "b", "c"}, Series: []Series{{Values: []float64{0, 5, 10}}}}
	lines := c.Polylines()
	require.Len(t, lines, 1)
	assert.Equal(t, "24.0,124.0 74.0,74.0 124.0,24.0", lines[0].Points)
	assert.Equal(t, "a", c.FirstLabel())
	assert.Equal(t, "c", c.LastLabel())

	flat := Chart{Width: 148, Height: 148, Labels: []string{"a"}, Series: []Series{{Values: []float64{3}}}}
	assert.Equal(t, "74.0,74.0", flat.Polylines()[0].Points)
}
