package usecase

import (
	"BrentDash/internal/domain/models"
)

// DatasetError is one row of the error panel.
type DatasetError struct {
	Dataset models.Name `json:"dataset"`
	Message string      `json:"message"`
}

type PriceSection struct {
	Points []models.PricePoint `json:"points"`
}

type ForecastSection struct {
	Points []models.ForecastPoint `json:"points"`
}

type EventSection struct {
	TypeOptions   []string       `json:"type_options"`
	SourceOptions []string       `json:"source_options"`
	Items         []models.Event `json:"items"`
}

// View is everything a renderer needs. A nil section means the dataset is not shown.
type View struct {
	Filter    models.FilterState   `json:"filter"`
	Errors    []DatasetError       `json:"errors,omitempty"`
	Prices    *PriceSection        `json:"prices,omitempty"`
	Forecast  *ForecastSection     `json:"forecast,omitempty"`
	Events    *EventSection        `json:"events,omitempty"`
	Summary   *models.Summary      `json:"summary,omitempty"`
	Metrics   *models.ModelMetrics `json:"metrics,omitempty"`
	Macros    *models.Macros       `json:"macros,omitempty"`
	Sentiment *models.Sentiment    `json:"sentiment,omitempty"`
}

// Sections counts the dataset sections present in the view.
func (v *View) Sections() int {
	n := 0
	for _, present := range []bool{
		v.Prices != nil, v.Forecast != nil, v.Events != nil, v.Summary != nil,
		v.Metrics != nil, v.Macros != nil, v.Sentiment != nil,
	} {
		if present {
			n++
		}
	}
	return n
}

// Dashboard serves views over one loaded snapshot. The snapshot is never modified.
type Dashboard struct {
	snap *models.Snapshot
}

func NewDashboard(snap *models.Snapshot) *Dashboard {
	if snap == nil {
		snap = models.NewSnapshot()
	}
	return &Dashboard{snap: snap}
}

func (d *Dashboard) Snapshot() *models.Snapshot { return d.snap }

// View applies f to the snapshot.
func (d *Dashboard) View(f models.FilterState) (*View, error) {
	return BuildView(d.snap, f)
}

// BuildView filters the snapshot for display. Only the date bounds can fail to parse.
func BuildView(snap *models.Snapshot, f models.FilterState) (*View, error) {
	if f.Type == "" {
		f.Type = models.All
	}
	if f.Source == "" {
		f.Source = models.All
	}
	r, err := NewDateRange(f.Start, f.End)
	if err != nil {
		return nil, err
	}

	v := &View{Filter: f}
	for _, name := range models.Registry {
		if msg, failed := snap.Errors[name]; failed {
			v.Errors = append(v.Errors, DatasetError{Dataset: name, Message: msg})
		}
	}

	if prices, ok := snap.Prices(); ok {
		v.Prices = &PriceSection{Points: FilterByDateRange(prices, r)}
	}
	if fc, ok := snap.Forecast(); ok {
		v.Forecast = &ForecastSection{Points: FilterByDateRange(fc, r)}
	}
	if events, ok := snap.Events(); ok {
		v.Events = &EventSection{
			TypeOptions:   DropdownOptions(events, "type"),
			// Options come from source only; region still matches the source filter when typed in.
			SourceOptions: DropdownOptions(events, "source"),
			Items:         FilterByDateRange(FilterEvents(events, f.Type, f.Source), r),
		}
	}
	if s, ok := snap.Summary(); ok {
		v.Summary = s
	}
	if m, ok := snap.Metrics(); ok {
		v.Metrics = m
	}
	if m, ok := snap.Macros(); ok {
		v.Macros = m
	}
	if s, ok := snap.Sentiment(); ok {
		v.Sentiment = s
	}
	return v, nil
}
