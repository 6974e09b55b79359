package api

import (
	"context"
	"net/http"
	"net/url"

	"omm/models"
)

// CatalogRepo implements repository.CatalogRepository against the platform API.
type CatalogRepo struct {
	client *Client
}

func NewCatalogRepo(c *Client) *CatalogRepo {
	return &CatalogRepo{client: c}
}

func (r *CatalogRepo) FetchParts(ctx context.Context, vehicleID string) ([]models.CatalogPart, error) {
	path := "/catalog/parts"
	if vehicleID != "" {
		path += "?vehicleId=" + url.QueryEscape(vehicleID)
	}
	var parts []models.CatalogPart
	if err := r.client.do(ctx, http.MethodGet, path, nil, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}
