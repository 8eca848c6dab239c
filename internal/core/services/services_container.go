package services

import (
	portsrepo "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/repositories"
	portssvc "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/services"
)

// NewServiceContainer wires all services with their repository dependencies.
// The society service doubles as the authorizer for every other service.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	societySvc := NewSocietyService(repos.SocietyRepo)
	reconciliationSvc := NewReconciliationService(repos.ReconciliationRepo, repos.AccountRepo, societySvc)
	accountSvc := NewAccountService(repos.AccountRepo, societySvc, reconciliationSvc)
	journalSvc := NewJournalService(repos.JournalRepo, accountSvc, societySvc)
	transactionSvc := NewTransactionService(accountSvc, journalSvc, societySvc)

	return &portssvc.ServiceContainer{
		SocietySvc:        societySvc,
		AccountSvc:        accountSvc,
		JournalSvc:        journalSvc,
		TransactionSvc:    transactionSvc,
		ReconciliationSvc: reconciliationSvc,
	}
}
