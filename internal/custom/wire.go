//go:build wireinject
// +build wireinject

package custom

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/custom/delivery/http"
	"github.com/vastrika/storefront/internal/custom/domain"
	"github.com/vastrika/storefront/internal/custom/repository"
	"github.com/vastrika/storefront/internal/custom/usecase/command"
	"github.com/vastrika/storefront/internal/custom/usecase/query"
)

// ProvideRequestRepository provides the custom request repository
func ProvideRequestRepository(db *gorm.DB) domain.RequestRepository {
	return repository.NewGormRequestRepository(db)
}

// InitializeHTTPHandler initializes the custom design HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher command.EventPublisher) (*http.CustomHandler, error) {
	wire.Build(
		ProvideRequestRepository,
		command.NewSubmitRequestHandler,
		command.NewQuoteRequestHandler,
		query.NewGetRequestHandler,
		query.NewListRequestsHandler,
		query.NewGetOptionsHandler,
		http.NewCustomHandler,
	)
	return nil, nil
}
