package services

// ServiceContainer holds all service facades wired at startup
type ServiceContainer struct {
	SocietySvc        SocietySvcFacade
	AccountSvc        AccountSvcFacade
	JournalSvc        JournalSvcFacade
	TransactionSvc    TransactionSvcFacade
	ReconciliationSvc ReconciliationSvcFacade
}
