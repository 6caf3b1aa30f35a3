package pgsql

import (
	portsrepo "github.com/amzplat/assetsvc/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetTypeRepo:  newPgxAssetTypeRepository(dbPool),
		ActionTypeRepo: newPgxActionTypeRepository(dbPool),
		AccountRepo:    newPgxAccountRepository(dbPool),
	}
}
