package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/jackc/pgerrcode"
)

// auditRepository appends to and reads the "field_edit_audit" table. The
// table has no update or delete path; a trigger rejects both.
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] over db.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// InsertAuditEntry appends entry and returns it with ID and CreatedAt set.
// A research id that does not exist yields [ErrResearchNotFound].
func (r *auditRepository) InsertAuditEntry(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	err := r.db.conn(ctx).QueryRowContext(ctx, insertAuditEntry,
		entry.ResearchID,
		entry.UserID,
		entry.Username,
		entry.FieldName,
		entry.OldValue,
		entry.NewValue,
		entry.IPAddress,
		entry.UserAgent,
		entry.EditReason,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*auditRepository.InsertAuditEntry").
			Int64("research_id", entry.ResearchID).
			Str("field", entry.FieldName).
			Msg("error inserting audit entry")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.AuditEntry{}, ErrResearchNotFound
		}
		return models.AuditEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// ListAuditEntries returns every entry of the research result, newest first.
// Ties on created_at are broken by id so the order is stable.
func (r *auditRepository) ListAuditEntries(ctx context.Context, researchID int64) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.conn(ctx).QueryContext(ctx, listAuditEntries, researchID)
	if err != nil {
		log.Err(err).
			Str("func", "*auditRepository.ListAuditEntries").
			Int64("research_id", researchID).
			Msg("failed to execute query for listing audit entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AuditEntry, 0, 16)

	for rows.Next() {
		var e models.AuditEntry

		scanErr := rows.Scan(
			&e.ID,
			&e.ResearchID,
			&e.UserID,
			&e.Username,
			&e.FieldName,
			&e.OldValue,
			&e.NewValue,
			&e.IPAddress,
			&e.UserAgent,
			&e.EditReason,
			&e.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*auditRepository.ListAuditEntries").
				Int64("research_id", researchID).
				Msg("failed to scan audit row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, e)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*auditRepository.ListAuditEntries").
			Int64("research_id", researchID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}
