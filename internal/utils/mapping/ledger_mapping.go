package mapping

import (
	"github.com/plannivo/revenue-backend/internal/core/domain"
	"github.com/plannivo/revenue-backend/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:        d.EntryID,
		SourceType:     string(d.SourceType),
		SourceID:       d.SourceID,
		ServiceType:    d.ServiceType,
		ServiceSubtype: d.ServiceSubtype,
		ServiceID:      d.ServiceID,
		CustomerID:     d.CustomerID,
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		OccurredAt:     d.OccurredAt,
		Status:         d.Status,
		Metadata:       d.Metadata,
		CommissionAmt:  d.InstructorCommissionAmount,
		CommissionType: d.InstructorCommissionType,
		CommissionVal:  d.InstructorCommissionValue,
		CommissionSrc:  d.InstructorCommissionSource,
		RecordedAt:     d.RecordedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:                    m.EntryID,
		SourceType:                 domain.SourceType(m.SourceType),
		SourceID:                   m.SourceID,
		ServiceType:                m.ServiceType,
		ServiceSubtype:             m.ServiceSubtype,
		ServiceID:                  m.ServiceID,
		CustomerID:                 m.CustomerID,
		Amount:                     m.Amount,
		CurrencyCode:               m.CurrencyCode,
		OccurredAt:                 m.OccurredAt,
		Status:                     m.Status,
		Metadata:                   m.Metadata,
		InstructorCommissionAmount: m.CommissionAmt,
		InstructorCommissionType:   m.CommissionType,
		InstructorCommissionValue:  m.CommissionVal,
		InstructorCommissionSource: m.CommissionSrc,
		RecordedAt:                 m.RecordedAt,
		UpdatedAt:                  m.UpdatedAt,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
