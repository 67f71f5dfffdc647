//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/catalog/delivery/http"
	"github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/catalog/repository"
	"github.com/vastrika/storefront/internal/catalog/resolver"
	"github.com/vastrika/storefront/internal/catalog/usecase/command"
	"github.com/vastrika/storefront/internal/catalog/usecase/query"
)

// ProvideSareeRepository provides the saree repository with tracing enabled
func ProvideSareeRepository(db *gorm.DB) domain.SareeRepository {
	return repository.NewGormCatalogRepositoryWithTracing(db)
}

// ProvideRegionRepository provides the region repository
func ProvideRegionRepository(db *gorm.DB) domain.RegionRepository {
	return repository.NewGormRegionRepository(db)
}

// ProvideResolver provides the fallback resolver with the default store timeout
func ProvideResolver(sarees domain.SareeRepository, regions domain.RegionRepository) *resolver.Resolver {
	return resolver.New(sarees, regions, resolver.DefaultStoreTimeout)
}

var RepositorySet = wire.NewSet(
	ProvideSareeRepository,
	ProvideRegionRepository,
	ProvideResolver,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateSareeHandler,
	command.NewUpdateSareeHandler,
	command.NewDeleteSareeHandler,
	command.NewUpdateStockHandler,
	command.NewDecrementStockHandler,
	command.NewCreateRegionHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewListSareesHandler,
	query.NewGetSareeHandler,
	query.NewListRegionsHandler,
	query.NewGetRegionHandler,
	query.NewListTypesHandler,
	query.NewListStatesHandler,
	query.NewGetStatsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CatalogHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCatalogHandler,
	)
	return nil, nil
}
