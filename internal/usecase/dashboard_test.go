package usecase

import (
	"context"
	"net/http"
	"testing"

	"BrentDash/internal/domain/models"
	"BrentDash/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildViewOneFailedDataset(t *testing.T) {
	srv := newUpstream(t, map[string]int{"macros": http.StatusInternalServerError})
	snap := NewLoader(repository.NewAPISource(srv.URL, nil), nil, nil).Load(context.Background())

	v, err := NewDashboard(snap).View(models.FilterState{})
	require.NoError(t, err)

	assert.Equal(t, []DatasetError{{Dataset: models.DatasetMacros, Message: "Status 500"}}, v.Errors)
	assert.Nil(t, v.Macros)
	assert.Equal(t, 6, v.Sections())
	assert.Equal(t, models.All, v.Filter.Type)
	assert.Equal(t, models.All, v.Filter.Source)
}

func TestBuildViewAppliesFilters(t *testing.T) {
	srv := newUpstream(t, nil)
	snap := NewLoader(repository.NewAPISource(srv.URL, nil), nil, nil).Load(context.Background())

	v, err := BuildView(snap, models.FilterState{Start: "2020-01-15", Type: "All", Source: "OPEC"})
	require.NoError(t, err)

	require.Len(t, v.Prices.Points, 1)
	assert.Equal(t, "2020-02-01", v.Prices.Points[0].Date.String())
	require.Len(t, v.Forecast.Points, 1)
	assert.Equal(t, []string{"All", "War", "Policy"}, v.Events.TypeOptions)
	assert.Equal(t, []string{"All", "Reuters", "OPEC"}, v.Events.SourceOptions)
	require.Len(t, v.Events.Items, 1)
	assert.Equal(t, "Quota", v.Events.Items[0].Event)

	// the snapshot itself is untouched
	p, _ := snap.Prices()
	assert.Len(t, p, 2)
}

func TestBuildViewBadDate(t *testing.T) {
	_, err := BuildView(models.NewSnapshot(), models.FilterState{End: "31-01-2020"})
	assert.Error(t, err)
}

func TestBuildViewEmptySnapshot(t *testing.T) {
	v, err := NewDashboard(nil).View(models.FilterState{})
	require.NoError(t, err)
	assert.Zero(t, v.Sections())
	assert.Empty(t, v.Errors)
}
