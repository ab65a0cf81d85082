// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Installment numbers are limited to this inclusive range.
const (
	MinInstallmentNumber = 1
	MaxInstallmentNumber = 10
)

// Installment holds per-installment collection settings of a research result.
type Installment struct {
	ID                    int64     `json:"id"`
	ResearchID            int64     `json:"research_id"`
	InstallmentNumber     int       `json:"installment_number"`
	DelqCollector         *string   `json:"delq_collector"`
	EscrowCollector       *string   `json:"escrow_collector"`
	EscrowSearchStartDate *string   `json:"escrow_search_start_date"`
	TaxBillingDate        *string   `json:"tax_billing_date"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// InstallmentData is the writable part of an installment.
type InstallmentData struct {
	DelqCollector         *string `json:"delq_collector"`
	EscrowCollector       *string `json:"escrow_collector"`
	EscrowSearchStartDate *string `json:"escrow_search_start_date"`
	TaxBillingDate        *string `json:"tax_billing_date"`
}

// InstallmentRef addresses one installment of a research result.
type InstallmentRef struct {
	ResearchID int64
	Number     int
}

// ValidNumber reports whether Number is within the allowed range.
func (r InstallmentRef) ValidNumber() bool {
	return r.Number >= MinInstallmentNumber && r.Number <= MaxInstallmentNumber
}
