package repository

import (
	"context"
	"fmt"
	"strings"

	"BrentDash/internal/domain/models"
	domrepo "BrentDash/internal/domain/repository"
	xhttp "BrentDash/pkg/http"
)

// APISource reads datasets from the analysis API at <baseURL>/api/<name>.
type APISource struct {
	baseURL string
	client  *xhttp.Client
}

func NewAPISource(baseURL string, client *xhttp.Client) *APISource {
	if client == nil {
		client = xhttp.NewClient()
	}
	return &APISource{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// URL returns the endpoint for a dataset.
func (s *APISource) URL(name models.Name) string {
	return s.baseURL + "/api/" + string(name)
}

func (s *APISource) Fetch(ctx context.Context, name models.Name, dest models.Payload) error {
	if err := s.client.GetJSON(ctx, s.URL(name), dest); err != nil {
		return fmt.Errorf("get %s: %w", name, err)
	}
	return nil
}

var _ domrepo.DatasetSource = (*APISource)(nil)
