package models

type PricePoint struct {
	Date  Date    `json:"date"`
	Price float64 `json:"price"`
}

func (p PricePoint) Day() Date { return p.Date }

type PriceSeries []PricePoint

func (*PriceSeries) Dataset() Name { return DatasetPrices }

type ForecastPoint struct {
	Date     Date    `json:"date"`
	Price    float64 `json:"price"`
	Forecast float64 `json:"forecast"`
}

func (p ForecastPoint) Day() Date { return p.Date }

type ForecastSeries []ForecastPoint

func (*ForecastSeries) Dataset() Name { return DatasetForecast }

// Event is a market event with its measured price impact.
// Upstream feeds carry the information source under either "source" or "region".
type Event struct {
	Date           Date   `json:"date"`
	Event          string `json:"event"`
	Type           string `json:"type"`
	Source         string `json:"source,omitempty"`
	Region         string `json:"region,omitempty"`
	ExpectedImpact Impact `json:"expected_impact"`
	ActualImpact   Impact `json:"actual_impact"`
}

func (e Event) Day() Date { return e.Date }

type EventList []Event

func (*EventList) Dataset() Name { return DatasetEvents }

type Summary struct {
	Volatility     float64 `json:"volatility"`
	AvgDailyChange float64 `json:"avg_daily_change"`
}

func (*Summary) Dataset() Name { return DatasetSummary }

type Sentiment struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

func (*Sentiment) Dataset() Name { return DatasetSentiment }

type Macros struct {
	GDPGrowth     float64 `json:"GDP_growth"`
	InflationRate float64 `json:"inflation_rate"`
	ExchangeRate  float64 `json:"exchange_rate"`
}

func (*Macros) Dataset() Name { return DatasetMacros }

type ModelScore struct {
	Model string  `json:"model"`
	Value float64 `json:"value"`
}

type ModelMetrics struct {
	RMSE []ModelScore `json:"rmse"`
}

func (*ModelMetrics) Dataset() Name { return DatasetMetrics }
