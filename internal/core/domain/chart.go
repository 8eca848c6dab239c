package domain

// Well-known ledger codes in the default housing-society chart. The
// simplified posting flow and the dues reconciliation are anchored to these.
const (
	CodeCash           = "1010"
	CodeBank           = "1020"
	CodeDuesReceivable = "1210"
	CodeCorpusFund     = "3010"
)

// ChartEntry describes one account in the default chart of accounts.
type ChartEntry struct {
	Code        string
	Name        string
	AccountType AccountType
}

// DefaultChart is the standard chart of accounts seeded for a new housing
// society. Codes group by type: 1xxx assets, 2xxx liabilities, 3xxx equity,
// 4xxx income, 5xxx expenses.
var DefaultChart = []ChartEntry{
	{Code: CodeCash, Name: "Cash in Hand", AccountType: Asset},
	{Code: CodeBank, Name: "Bank Account", AccountType: Asset},
	{Code: CodeDuesReceivable, Name: "Member Dues Receivable", AccountType: Asset},
	{Code: "2010", Name: "Security Deposits Held", AccountType: Liability},
	{Code: "2020", Name: "Advance Maintenance Received", AccountType: Liability},
	{Code: CodeCorpusFund, Name: "Corpus Fund", AccountType: Equity},
	{Code: "3020", Name: "Sinking Fund", AccountType: Equity},
	{Code: "4001", Name: "Maintenance Income", AccountType: Income},
	{Code: "4010", Name: "Penalty Income", AccountType: Income},
	{Code: "4020", Name: "Interest Income", AccountType: Income},
	{Code: "5010", Name: "Repairs and Maintenance", AccountType: Expense},
	{Code: "5020", Name: "Electricity Charges", AccountType: Expense},
	{Code: "5030", Name: "Security Charges", AccountType: Expense},
	{Code: "5040", Name: "Water Charges", AccountType: Expense},
}
