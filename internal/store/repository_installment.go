package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/jackc/pgerrcode"
)

type installmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInstallmentRepository constructs an [InstallmentRepository] over db.
func NewInstallmentRepository(db *DB, logger *logger.Logger) InstallmentRepository {
	logger.Debug().Msg("creating installment repository")
	return &installmentRepository{
		db:     db,
		logger: logger,
	}
}

func scanInstallment(row rowScanner) (models.Installment, error) {
	var i models.Installment
	err := row.Scan(
		&i.ID,
		&i.ResearchID,
		&i.InstallmentNumber,
		&i.DelqCollector,
		&i.EscrowCollector,
		&i.EscrowSearchStartDate,
		&i.TaxBillingDate,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func (r *installmentRepository) ListInstallments(ctx context.Context, researchID int64) ([]models.Installment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.conn(ctx).QueryContext(ctx, listInstallments, researchID)
	if err != nil {
		log.Err(err).
			Str("func", "*installmentRepository.ListInstallments").
			Int64("research_id", researchID).
			Msg("failed to execute query for listing installments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	installments := make([]models.Installment, 0, models.MaxInstallmentNumber)
	for rows.Next() {
		i, scanErr := scanInstallment(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*installmentRepository.ListInstallments").Msg("failed to scan installment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		installments = append(installments, i)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return installments, nil
}

// UpsertInstallment creates or replaces the settings of one installment.
func (r *installmentRepository) UpsertInstallment(ctx context.Context, researchID int64, number int, data models.InstallmentData) (models.Installment, error) {
	log := logger.FromContext(ctx)

	row := r.db.conn(ctx).QueryRowContext(ctx, upsertInstallment,
		researchID,
		number,
		data.DelqCollector,
		data.EscrowCollector,
		data.EscrowSearchStartDate,
		data.TaxBillingDate,
	)

	installment, err := scanInstallment(row)
	if err != nil {
		log.Err(err).
			Str("func", "*installmentRepository.UpsertInstallment").
			Int64("research_id", researchID).
			Int("installment_number", number).
			Msg("error upserting installment")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Installment{}, ErrResearchNotFound
		}
		return models.Installment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return installment, nil
}

// DeleteInstallment is a no-op when the installment does not exist.
func (r *installmentRepository) DeleteInstallment(ctx context.Context, researchID int64, number int) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.conn(ctx).ExecContext(ctx, deleteInstallment, researchID, number); err != nil {
		log.Err(err).
			Str("func", "*installmentRepository.DeleteInstallment").
			Int64("research_id", researchID).
			Int("installment_number", number).
			Msg("error deleting installment")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
