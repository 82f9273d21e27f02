package pgsql

import (
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to db, usually a *pgxpool.Pool.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(db),
		HistoryRepo:    newPgxConversionHistoryRepository(db),
		RequestLogRepo: newPgxRequestLogRepository(db),
	}
}
