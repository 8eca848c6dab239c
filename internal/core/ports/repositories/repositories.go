package repositories

// RepositoryProvider holds all repository facades used by the service layer
type RepositoryProvider struct {
	SocietyRepo        SocietyRepositoryFacade
	AccountRepo        AccountRepositoryFacade
	JournalRepo        JournalRepositoryFacade
	ReconciliationRepo ReconciliationRepositoryFacade
}
