package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"BrentDash/internal/domain/models"
	webrender "BrentDash/internal/render/web"
	"BrentDash/internal/usecase"
	xlogger "BrentDash/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	snap := models.NewSnapshot()
	prices := models.PriceSeries{
		{Date: models.NewDate("2020-01-01"), Price: 10},
		{Date: models.NewDate("2020-02-01"), Price: 12},
	}
	events := models.EventList{
		{Date: models.NewDate("2020-01-10"), Event: "Strike", Type: "War", Source: "Reuters"},
		{Date: models.NewDate("2020-01-20"), Event: "Quota", Type: "Policy", Source: "OPEC"},
	}
	snap.Results[models.DatasetPrices] = &prices
	snap.Results[models.DatasetEvents] = &events
	snap.Errors[models.DatasetMacros] = "Status 500"

	r, err := webrender.New()
	require.NoError(t, err)
	e := echo.New()
	NewDashboardHandler(xlogger.Nop(), usecase.NewDashboard(snap), r).RegisterRoutes(e)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPageRenders(t *testing.T) {
	rec := get(newTestEcho(t), "/?start=2020-01-15&type=War")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `value="2020-01-15"`)
	assert.Contains(t, body, "<li><strong>macros</strong>: Status 500</li>")
	assert.NotContains(t, body, "Strike", "event before start date is filtered out")
	assert.NotContains(t, body, "Quota", "policy event is filtered out by type")
}

func TestPageRejectsBadDate(t *testing.T) {
	rec := get(newTestEcho(t), "/?end=01-31-2020")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Status int `json:"status"`
		Errors []struct {
			Code  string `json:"code"`
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "ERR_DATETIME", resp.Errors[0].Code)
	assert.Equal(t, "end", resp.Errors[0].Field)
}

func TestViewJSON(t *testing.T) {
	rec := get(newTestEcho(t), "/api/view?source=OPEC")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Filter models.FilterState `json:"filter"`
			Errors []struct {
				Dataset string `json:"dataset"`
				Message string `json:"message"`
			} `json:"errors"`
			Prices struct {
				Points []struct {
					Date  string  `json:"date"`
					Price float64 `json:"price"`
				} `json:"points"`
			} `json:"prices"`
			Events struct {
				SourceOptions []string `json:"source_options"`
				Items         []struct {
					Event string `json:"event"`
				} `json:"items"`
			} `json:"events"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "All", resp.Data.Filter.Type)
	assert.Equal(t, "OPEC", resp.Data.Filter.Source)
	require.Len(t, resp.Data.Errors, 1)
	assert.Equal(t, "macros", resp.Data.Errors[0].Dataset)
	assert.Len(t, resp.Data.Prices.Points, 2)
	assert.Equal(t, "2020-01-01", resp.Data.Prices.Points[0].Date)
	assert.Equal(t, []string{"All", "Reuters", "OPEC"}, resp.Data.Events.SourceOptions)
	require.Len(t, resp.Data.Events.Items, 1)
	assert.Equal(t, "Quota", resp.Data.Events.Items[0].Event)
}

func TestHealth(t *testing.T) {
	rec := get(newTestEcho(t), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"message":"OK","data":{"loaded":2,"failed":1,"errors":{"macros":"Status 500"}}}`, rec.Body.String())
}
