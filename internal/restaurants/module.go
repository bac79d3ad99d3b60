// Package restaurants provides the restaurant inspections bounded context.
package restaurants

import (
	apphttp "restaurant_inspections_backend/internal/http"
	"restaurant_inspections_backend/internal/restaurants/cache"
	"restaurant_inspections_backend/internal/restaurants/handler"
	"restaurant_inspections_backend/internal/restaurants/repository"
	"restaurant_inspections_backend/internal/restaurants/service"
	"restaurant_inspections_backend/platform/config"
	"restaurant_inspections_backend/platform/logger"
	"restaurant_inspections_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the restaurant inspections bounded context implementing http.Module.
type Module struct {
	handler   *handler.Handler
	service   *service.Service
	repo      repository.Repository
	metaCache *cache.Metadata
}

// NewModule creates and initializes the restaurants module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, cfg *config.Config, log *logger.Logger) (*Module, error) {
	repo := repository.New(pool, cfg.GetQueryTimeout())

	metaCache, err := cache.NewMetadata(cfg.GetRedisURL(), cfg.GetMetadataCacheTTL(), log)
	if err != nil {
		return nil, err
	}
	if metaCache == nil {
		log.Info("metadata cache disabled; REDIS_URL not configured")
	}

	svc := service.New(repo, metaCache, log)
	h := handler.New(svc, val)

	return &Module{
		handler:   h,
		service:   svc,
		repo:      repo,
		metaCache: metaCache,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "restaurants"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts restaurant routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/restaurants")
	group.POST("/query", m.handler.SearchRestaurants)
	group.POST("/details", m.handler.GetRestaurantDetails)
	group.GET("/boroughs", m.handler.GetBoroughs)
	group.GET("/cuisines", m.handler.GetCuisines)
	group.GET("/metadata", m.handler.GetMetadata)
	group.GET("/health", m.handler.Health)
}

// Close releases module resources.
func (m *Module) Close() error {
	if m.metaCache != nil {
		return m.metaCache.Close()
	}
	return nil
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
