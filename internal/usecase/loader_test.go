package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"BrentDash/internal/domain/models"
	"BrentDash/internal/repository"
	xhttp "BrentDash/pkg/http"
	applogger "BrentDash/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upstreamBodies = map[string]string{
	"data":      `[{"date":"2020-01-01","price":10},{"date":"2020-02-01","price":12}]`,
	"forecast":  `[{"date":"2020-01-01","price":10,"forecast":10.5},{"date":"2020-02-01","price":12,"forecast":11}]`,
	"events":    `[{"date":"2020-01-10","event":"Strike","type":"War","source":"Reuters","expected_impact":"5","actual_impact":1.25},{"date":"2020-01-20","event":"Quota","type":"Policy","source":"OPEC","expected_impact":"","actual_impact":null}]`,
	"summary":   `{"volatility":1.2345,"avg_daily_change":-0.0123}`,
	"sentiment": `{"positive":62,"neutral":28,"negative":10}`,
	"macros":    `{"GDP_growth":2.5,"inflation_rate":5.7,"exchange_rate":0.83}`,
	"metrics":   `{"rmse":[{"model":"ARIMA","value":1.12},{"model":"Bayesian","value":0.98}]}`,
}

// newUpstream serves the canned datasets; failing maps a dataset name to the status it returns.
func newUpstream(t *testing.T, failing map[string]int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/api/")
		if code, ok := failing[name]; ok {
			http.Error(w, "upstream failure", code)
			return
		}
		body, ok := upstreamBodies[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func assertExactlyOne(t *testing.T, snap *models.Snapshot) {
	t.Helper()
	for _, name := range models.Registry {
		_, inResults := snap.Results[name]
		_, inErrors := snap.Errors[name]
		assert.True(t, inResults != inErrors, "dataset %s: results=%v errors=%v", name, inResults, inErrors)
	}
	assert.Equal(t, len(models.Registry), len(snap.Results)+len(snap.Errors))
}

func TestLoaderAllSucceed(t *testing.T) {
	srv := newUpstream(t, nil)
	for _, parallel := range []bool{false, true} {
		ld := NewLoader(repository.NewAPISource(srv.URL, nil), nil, nil, WithParallel(parallel))
		snap := ld.Load(context.Background())

		assertExactlyOne(t, snap)
		assert.Empty(t, snap.Errors)

		p, ok := snap.Prices()
		require.True(t, ok)
		assert.Len(t, p, 2)
		m, ok := snap.Metrics()
		require.True(t, ok)
		assert.Equal(t, "Bayesian", m.RMSE[1].Model)
	}
}

func TestLoaderIsolatesFailure(t *testing.T) {
	srv := newUpstream(t, map[string]int{"macros": http.StatusInternalServerError})

	var buf bytes.Buffer
	l := applogger.NewWithWriter(&buf, zerolog.InfoLevel, "json", "")
	snap := NewLoader(repository.NewAPISource(srv.URL, nil), nil, l).Load(context.Background())

	assertExactlyOne(t, snap)
	assert.Equal(t, map[models.Name]string{models.DatasetMacros: "Status 500"}, snap.Errors)
	assert.Len(t, snap.Results, 6)
	assert.Contains(t, buf.String(), `"dataset":"macros"`)
}

type stubSource struct {
	errs  map[models.Name]error
	calls []models.Name
}

func (s *stubSource) Fetch(ctx context.Context, name models.Name, dest models.Payload) error {
	s.calls = append(s.calls, name)
	if err, ok := s.errs[name]; ok {
		return err
	}
	return nil
}

func TestLoaderSequentialOrderAndTransportError(t *testing.T) {
	src := &stubSource{errs: map[models.Name]error{
		models.DatasetPrices: errors.New("connection refused"),
		models.DatasetEvents: &xhttp.StatusError{Code: http.StatusNotFound},
	}}
	snap := NewLoader(src, nil, nil).Load(context.Background())

	assert.Equal(t, models.Registry, src.calls)
	assertExactlyOne(t, snap)
	assert.Equal(t, "connection refused", snap.Errors[models.DatasetPrices])
	assert.Equal(t, "Status 404", snap.Errors[models.DatasetEvents])
}

func TestLoaderUnknownDataset(t *testing.T) {
	src := &stubSource{}
	snap := NewLoader(src, nil, nil, WithRegistry([]models.Name{"bogus", models.DatasetSummary})).Load(context.Background())

	assert.Contains(t, snap.Errors["bogus"], "unknown dataset")
	assert.True(t, snap.Loaded(models.DatasetSummary))
	assert.Equal(t, []models.Name{models.DatasetSummary}, src.calls)
}

func TestLoaderTimeoutBecomesError(t *testing.T) {
	stall := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer stall.Close()

	src := repository.NewAPISource(stall.URL, xhttp.NewClient(xhttp.WithTimeout(50*time.Millisecond)))
	snap := NewLoader(src, nil, nil, WithRegistry([]models.Name{models.DatasetSentiment})).Load(context.Background())

	msg := snap.Errors[models.DatasetSentiment]
	assert.NotEmpty(t, msg)
	assert.Empty(t, snap.Results)
}

func TestFetchErrorMessage(t *testing.T) {
	assert.Equal(t, "Status 503", (&FetchError{Dataset: "data", Status: 503}).Message())
	assert.Equal(t, "Fetch failed", (&FetchError{Dataset: "data"}).Message())

	inner := errors.New("eof")
	fe := &FetchError{Dataset: "data", Err: inner}
	assert.Equal(t, "fetch data: eof", fe.Error())
	assert.ErrorIs(t, fe, inner)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestLoaderKeepsEventsWithFreeTextImpact(t *testing.T) {
	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		name := strings.TrimPrefix(r.URL.Path, "/api/")
		body := upstreamBodies[name]
		if name == "events" {
			body = `[{"date":"2020-01-10","event":"Strike","type":"War","source":"Reuters","expected_impact":"5-10","actual_impact":"1.5"}]`
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    r,
		}, nil
	})
	client := xhttp.NewClient(xhttp.WithTransport(transport))

	snap := NewLoader(repository.NewAPISource("http://analysis.local", client), nil, nil).Load(context.Background())

	assertExactlyOne(t, snap)
	assert.Empty(t, snap.Errors)
	events, ok := snap.Events()
	require.True(t, ok)
	require.Len(t, events, 1)
	assert.False(t, events[0].ExpectedImpact.Valid)
	assert.Equal(t, models.ImpactOf(1.5), events[0].ActualImpact)
}
