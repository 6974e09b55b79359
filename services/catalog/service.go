package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"omm/database/repository"
	"omm/models"
	"omm/utils"
)

const (
	partsKeyPrefix = "catalog:parts:"
	partsCacheTTL  = 10 * time.Minute
)

// ViewCache is the keyed cache in front of the platform catalogue. Backed by
// Redis in production; a Get miss is reported as an error.
type ViewCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// CatalogService serves filtered views over the part catalogue.
type CatalogService interface {
	Parts(ctx context.Context, vehicleID string, cfg ViewConfig) ([]models.CatalogPart, error)
	GroupedParts(ctx context.Context, vehicleID string, cfg ViewConfig) ([]CategoryGroup, error)
}

// DefaultCatalogService implements CatalogService with a read-through cache
// in front of the platform catalogue.
type DefaultCatalogService struct {
	Repo  repository.CatalogRepository
	Cache ViewCache
}

func (s *DefaultCatalogService) Parts(ctx context.Context, vehicleID string, cfg ViewConfig) ([]models.CatalogPart, error) {
	parts, err := s.fetch(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return Build(parts, cfg), nil
}

func (s *DefaultCatalogService) GroupedParts(ctx context.Context, vehicleID string, cfg ViewConfig) ([]CategoryGroup, error) {
	parts, err := s.fetch(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return BuildGrouped(parts, cfg), nil
}

func (s *DefaultCatalogService) fetch(ctx context.Context, vehicleID string) ([]models.CatalogPart, error) {
	key := partsKeyPrefix + cacheKey(vehicleID)
	if data, err := s.Cache.Get(ctx, key); err == nil {
		var parts []models.CatalogPart
		if err := json.Unmarshal([]byte(data), &parts); err == nil {
			return parts, nil
		}
	}

	parts, err := s.Repo.FetchParts(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog parts: %w", err)
	}

	if data, err := json.Marshal(parts); err == nil {
		if err := s.Cache.Set(ctx, key, string(data), partsCacheTTL); err != nil {
			utils.GetLogger().Warn("failed to cache catalog parts", zap.String("vehicleId", vehicleID), zap.Error(err))
		}
	}
	return parts, nil
}

func cacheKey(vehicleID string) string {
	if vehicleID == "" {
		return "global"
	}
	return vehicleID
}
