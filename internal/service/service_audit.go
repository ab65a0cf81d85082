package service

import (
	"context"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// auditService records and reads the append-only field edit trail.
type auditService struct {
	audit  store.AuditRepository
	logger *logger.Logger
}

func NewAuditService(audit store.AuditRepository, log *logger.Logger) AuditService {
	return &auditService{audit: audit, logger: log}
}

// RecordEdit appends one entry. Called with a transactional ctx it joins
// that transaction, so the entry commits or rolls back with the edit.
func (s *auditService) RecordEdit(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error) {
	saved, err := s.audit.InsertAuditEntry(ctx, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("research_id", entry.ResearchID).
			Str("field", entry.FieldName).
			Msg("recording audit entry failed")
		return models.AuditEntry{}, err
	}
	return saved, nil
}

func (s *auditService) History(ctx context.Context, researchID int64) ([]models.AuditEntry, error) {
	entries, err := s.audit.ListAuditEntries(ctx, researchID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("research_id", researchID).Msg("listing audit entries failed")
		return nil, err
	}
	if entries == nil {
		entries = []models.AuditEntry{}
	}
	return entries, nil
}
