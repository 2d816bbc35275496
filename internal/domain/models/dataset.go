package models

// Name identifies a dataset in the registry. It is also the last path segment of its endpoint.
type Name string

const (
	DatasetPrices    Name = "data"
	DatasetForecast  Name = "forecast"
	DatasetEvents    Name = "events"
	DatasetSummary   Name = "summary"
	DatasetSentiment Name = "sentiment"
	DatasetMacros    Name = "macros"
	DatasetMetrics   Name = "metrics"
)

// Registry lists every dataset in load order.
var Registry = []Name{
	DatasetPrices,
	DatasetForecast,
	DatasetEvents,
	DatasetSummary,
	DatasetSentiment,
	DatasetMacros,
	DatasetMetrics,
}

// Payload is a decoded dataset body. Each endpoint has its own concrete type.
type Payload interface {
	Dataset() Name
}

// NewPayload returns an empty payload of the right type for name, ready to decode into.
func NewPayload(name Name) (Payload, bool) {
	switch name {
	case DatasetPrices:
		return &PriceSeries{}, true
	case DatasetForecast:
		return &ForecastSeries{}, true
	case DatasetEvents:
		return &EventList{}, true
	case DatasetSummary:
		return &Summary{}, true
	case DatasetSentiment:
		return &Sentiment{}, true
	case DatasetMacros:
		return &Macros{}, true
	case DatasetMetrics:
		return &ModelMetrics{}, true
	default:
		return nil, false
	}
}

// Snapshot holds the outcome of one load. Every registry name is in exactly one of the two maps.
type Snapshot struct {
	Results map[Name]Payload
	Errors  map[Name]string
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Results: make(map[Name]Payload, len(Registry)),
		Errors:  make(map[Name]string),
	}
}

// Loaded reports whether name has a payload and no recorded error.
func (s *Snapshot) Loaded(name Name) bool {
	if s == nil {
		return false
	}
	if _, failed := s.Errors[name]; failed {
		return false
	}
	_, ok := s.Results[name]
	return ok
}

func (s *Snapshot) Prices() (PriceSeries, bool) {
	p, ok := lookup[*PriceSeries](s, DatasetPrices)
	if !ok {
		return nil, false
	}
	return *p, true
}

func (s *Snapshot) Forecast() (ForecastSeries, bool) {
	p, ok := lookup[*ForecastSeries](s, DatasetForecast)
	if !ok {
		return nil, false
	}
	return *p, true
}

func (s *Snapshot) Events() (EventList, bool) {
	p, ok := lookup[*EventList](s, DatasetEvents)
	if !ok {
		return nil, false
	}
	return *p, true
}

func (s *Snapshot) Summary() (*Summary, bool) { return lookup[*Summary](s, DatasetSummary) }
func (s *Snapshot) Sentiment() (*Sentiment, bool) { return lookup[*Sentiment](s, DatasetSentiment) }
func (s *Snapshot) Macros() (*Macros, bool) { return lookup[*Macros](s, DatasetMacros) }
func (s *Snapshot) Metrics() (*ModelMetrics, bool) { return lookup[*ModelMetrics](s, DatasetMetrics) }

func lookup[T Payload](s *Snapshot, name Name) (T, bool) {
	var zero T
	if !s.Loaded(name) {
		return zero, false
	}
	v, ok := s.Results[name].(T)
	return v, ok
}
