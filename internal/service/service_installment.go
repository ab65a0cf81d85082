package service

import (
	"context"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

type installmentService struct {
	installments store.InstallmentRepository
	logger       *logger.Logger
}

func NewInstallmentService(installments store.InstallmentRepository, log *logger.Logger) InstallmentService {
	return &installmentService{installments: installments, logger: log}
}

func (s *installmentService) List(ctx context.Context, researchID int64) ([]models.Installment, error) {
	list, err := s.installments.ListInstallments(ctx, researchID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("research_id", researchID).Msg("listing installments failed")
		return nil, err
	}
	if list == nil {
		list = []models.Installment{}
	}
	return list, nil
}

// Upsert creates or replaces installment ref.Number. Empty dates are stored
// as NULL and MM/DD/YY dates are converted.
func (s *installmentService) Upsert(ctx context.Context, ref models.InstallmentRef, data models.InstallmentData) (models.Installment, error) {
	var err error
	if data.EscrowSearchStartDate, err = normalizeOptionalDate(data.EscrowSearchStartDate); err != nil {
		return models.Installment{}, err
	}
	if data.TaxBillingDate, err = normalizeOptionalDate(data.TaxBillingDate); err != nil {
		return models.Installment{}, err
	}

	saved, err := s.installments.UpsertInstallment(ctx, ref.ResearchID, ref.Number, data)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("research_id", ref.ResearchID).
			Int("installment_number", ref.Number).
			Msg("upserting installment failed")
		return models.Installment{}, err
	}
	return saved, nil
}

func (s *installmentService) Delete(ctx context.Context, ref models.InstallmentRef) error {
	if err := s.installments.DeleteInstallment(ctx, ref.ResearchID, ref.Number); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("research_id", ref.ResearchID).
			Int("installment_number", ref.Number).
			Msg("deleting installment failed")
		return err
	}
	return nil
}
