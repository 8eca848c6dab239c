package mapping

import (
	"github.com/jayamurli1954/GharMitra-sub002/internal/core/domain"
	"github.com/jayamurli1954/GharMitra-sub002/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:          d.JournalID,
		SocietyID:          d.SocietyID,
		JournalDate:        d.JournalDate,
		Description:        d.Description,
		VoucherType:        models.VoucherType(d.VoucherType),
		VoucherNumber:      d.VoucherNumber,
		SequenceNumber:     d.SequenceNumber,
		Status:             models.JournalStatus(d.Status),
		OriginalJournalID:  d.OriginalJournalID,
		ReversingJournalID: d.ReversingJournalID,
		Amount:             d.Amount,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:          m.JournalID,
		SocietyID:          m.SocietyID,
		JournalDate:        m.JournalDate,
		Description:        m.Description,
		VoucherType:        domain.VoucherType(m.VoucherType),
		VoucherNumber:      m.VoucherNumber,
		SequenceNumber:     m.SequenceNumber,
		Status:             domain.JournalStatus(m.Status),
		OriginalJournalID:  m.OriginalJournalID,
		ReversingJournalID: m.ReversingJournalID,
		Amount:             m.Amount,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		JournalID:       d.JournalID,
		AccountID:       d.AccountID,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.TransactionType),
		FlatID:          d.FlatID,
		Notes:           d.Notes,
		RunningBalance:  d.RunningBalance,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		JournalID:          m.JournalID,
		AccountID:          m.AccountID,
		Amount:             m.Amount,
		TransactionType:    domain.TransactionType(m.TransactionType),
		FlatID:             m.FlatID,
		Notes:              m.Notes,
		RunningBalance:     m.RunningBalance,
		JournalDate:        m.JournalDate,
		JournalDescription: m.JournalDescription,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
