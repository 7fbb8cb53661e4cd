package services

import (
	"context"
	"time"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/models"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/redis"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/rowstore"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
)

// CatalogService serves the read-only Category and Role catalogs. Reads go
// through the optional Redis cache; a nil cache means every call hits the
// row store. The catalogs have no mutation endpoints, so no invalidation
// beyond the TTL is needed.
type CatalogService struct {
	store rowstore.RowStore
	cache *redis.Service
	ttl   time.Duration
}

func NewCatalogService(store rowstore.RowStore, cache *redis.Service, ttl time.Duration) *CatalogService {
	return &CatalogService{store: store, cache: cache, ttl: ttl}
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if hit, err := s.cache.GetCatalog(ctx, "categories", &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.store.Read(ctx, models.TableCategories)
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, models.CategoryFromRow(row))
	}

	if err := s.cache.SetCatalog(ctx, "categories", categories, s.ttl); err == nil {
		logger.Log.Debug().Int("count", len(categories)).Msg("Cached categories catalog")
	}
	return categories, nil
}

func (s *CatalogService) Roles(ctx context.Context) ([]models.Role, error) {
	var cached []models.Role
	if hit, err := s.cache.GetCatalog(ctx, "roles", &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.store.Read(ctx, models.TableRoles)
	if err != nil {
		return nil, err
	}

	roles := make([]models.Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, models.RoleFromRow(row))
	}

	if err := s.cache.SetCatalog(ctx, "roles", roles, s.ttl); err == nil {
		logger.Log.Debug().Int("count", len(roles)).Msg("Cached roles catalog")
	}
	return roles, nil
}
