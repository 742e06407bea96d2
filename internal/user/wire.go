//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/traceright/dataset-service/internal/user/delivery/http"
	"github.com/traceright/dataset-service/internal/user/domain"
	"github.com/traceright/dataset-service/internal/user/repository"
	"github.com/traceright/dataset-service/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// ProvideCheckAdminHandler provides the admin gate query handler
func ProvideCheckAdminHandler(repo domain.UserRepository) *query.CheckAdminHandler {
	return query.NewCheckAdminHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.UserHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewUserHandler,
	)
	return nil, nil
}

// InitializeCheckAdminHandler initializes the admin gate with all dependencies
func InitializeCheckAdminHandler(db *gorm.DB) (*query.CheckAdminHandler, error) {
	wire.Build(
		RepositorySet,
		ProvideCheckAdminHandler,
	)
	return nil, nil
}
