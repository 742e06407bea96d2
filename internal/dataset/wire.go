//go:build wireinject
// +build wireinject

package dataset

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/traceright/dataset-service/internal/dataset/delivery/http"
	"github.com/traceright/dataset-service/internal/dataset/domain"
	"github.com/traceright/dataset-service/internal/dataset/store"
	"github.com/traceright/dataset-service/internal/dataset/usecase/command"
	"github.com/traceright/dataset-service/internal/dataset/usecase/query"
	userrepo "github.com/traceright/dataset-service/internal/user/repository"
	userquery "github.com/traceright/dataset-service/internal/user/usecase/query"
)

// ProvideDocumentStore provides the traced Postgres-backed document store
func ProvideDocumentStore(db *gorm.DB) domain.DocumentStore {
	return store.NewTracingStore(store.NewGormDocumentStore(db))
}

// ProvideAdminGate provides the authorization gate backed by the users table
func ProvideAdminGate(db *gorm.DB) command.AdminGate {
	return NewUserAdminGate(userquery.NewCheckAdminHandler(userrepo.NewGormUserRepository(db)))
}

// Command Handlers Providers
func ProvideSeedDatasetHandler(
	s domain.DocumentStore,
	gate command.AdminGate,
	guard command.RunGuard,
	publisher command.AuditPublisher,
) *command.SeedDatasetHandler {
	return command.NewSeedDatasetHandler(s, gate, guard, publisher)
}

func ProvideClearDatasetHandler(
	s domain.DocumentStore,
	gate command.AdminGate,
	publisher command.AuditPublisher,
) *command.ClearDatasetHandler {
	return command.NewClearDatasetHandler(s, gate, publisher)
}

// Query Handlers Providers
func ProvideGetCountsHandler(s domain.DocumentStore) *query.GetCountsHandler {
	return query.NewGetCountsHandler(s)
}

// Wire sets
var StoreSet = wire.NewSet(
	ProvideDocumentStore,
)

var HandlerSet = wire.NewSet(
	ProvideAdminGate,
	ProvideSeedDatasetHandler,
	ProvideClearDatasetHandler,
	ProvideGetCountsHandler,
)

// InitializeHTTPHandler initializes the dataset HTTP handler with all
// dependencies. guard and publisher may be nil interfaces.
func InitializeHTTPHandler(db *gorm.DB, guard command.RunGuard, publisher command.AuditPublisher) (*http.DatasetHandler, error) {
	wire.Build(
		StoreSet,
		HandlerSet,
		http.NewDatasetHandler,
	)
	return nil, nil
}
