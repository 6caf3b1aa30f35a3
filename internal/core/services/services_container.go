package services

import (
	"log/slog"

	portsrepo "github.com/amzplat/assetsvc/internal/core/ports/repositories"
	portssvc "github.com/amzplat/assetsvc/internal/core/ports/services"
	"github.com/amzplat/assetsvc/internal/platform/cache"
	"github.com/amzplat/assetsvc/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	snapshotCache cache.SnapshotCache,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The catalog service comes first since the account service validates
	// foreign keys against it.
	container.Catalog = NewCatalogService(
		repos.AssetTypeRepo,
		repos.ActionTypeRepo,
		snapshotCache,
		cfg.CatalogCacheTTL,
		logger,
	)
	container.Account = NewAccountService(repos.AccountRepo, container.Catalog)

	return container
}

// Interface implementation checks at compile time
var (
	_ portssvc.CatalogSvcFacade = (*CatalogService)(nil)
	_ portssvc.AccountSvcFacade = (*AccountService)(nil)
)
