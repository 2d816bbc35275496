package repository

import (
	"context"

	"BrentDash/internal/domain/models"
)

// DatasetSource fetches one dataset and decodes it into dest.
type DatasetSource interface {
	Fetch(ctx context.Context, name models.Name, dest models.Payload) error
}

type Metrics interface {
	RecordFetch(dataset string, ok bool, seconds float64)
	RecordLoad(loaded, failed int, seconds float64)
	RecordDatasetStatus(dataset string, loaded bool)
}
