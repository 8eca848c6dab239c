package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	societyRepo := newPgxSocietyRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo)
	reconciliationRepo := newReconciliationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SocietyRepo:        societyRepo,
		AccountRepo:        accountRepo,
		JournalRepo:        journalRepo,
		ReconciliationRepo: reconciliationRepo,
	}
}
