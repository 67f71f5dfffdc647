//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/catalog/resolver"
	"github.com/vastrika/storefront/internal/order/delivery/http"
	"github.com/vastrika/storefront/internal/order/domain"
	"github.com/vastrika/storefront/internal/order/repository"
	"github.com/vastrika/storefront/internal/order/usecase/command"
	"github.com/vastrika/storefront/internal/order/usecase/query"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewPlaceOrderHandler,
	command.NewUpdateStatusHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetOrderHandler,
	query.NewListOrdersHandler,
	query.NewGetStatsHandler,
)

// InitializeHTTPHandler initializes the order HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, catalog *resolver.Resolver, publisher command.EventPublisher) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewOrderHandler,
	)
	return nil, nil
}
