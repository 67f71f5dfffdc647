//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/user/delivery/http"
	"github.com/vastrika/storefront/internal/user/domain"
	"github.com/vastrika/storefront/internal/user/repository"
)

// ProvideUserRepository provides the user repository with tracing enabled
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepositoryWithTracing(db)
}

// InitializeHTTPHandler initializes the user HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.UserHandler, error) {
	wire.Build(
		ProvideUserRepository,
		http.NewUserHandler,
	)
	return nil, nil
}
