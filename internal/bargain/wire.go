//go:build wireinject
// +build wireinject

package bargain

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/bargain/delivery/http"
	"github.com/vastrika/storefront/internal/bargain/domain"
	"github.com/vastrika/storefront/internal/bargain/repository"
	"github.com/vastrika/storefront/internal/bargain/usecase/command"
	"github.com/vastrika/storefront/internal/bargain/usecase/query"
	"github.com/vastrika/storefront/internal/catalog/resolver"
)

// ProvideOfferRepository provides the bargain offer repository
func ProvideOfferRepository(db *gorm.DB) domain.OfferRepository {
	return repository.NewGormOfferRepository(db)
}

// InitializeHTTPHandler initializes the bargain HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, catalog *resolver.Resolver, publisher command.EventPublisher) (*http.BargainHandler, error) {
	wire.Build(
		ProvideOfferRepository,
		command.NewSubmitOfferHandler,
		command.NewRespondOfferHandler,
		query.NewGetOfferHandler,
		query.NewListOffersHandler,
		http.NewBargainHandler,
	)
	return nil, nil
}
