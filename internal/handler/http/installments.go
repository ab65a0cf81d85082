package http

import (
	"net/http"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

func (h *Handler) listInstallments(w http.ResponseWriter, r *http.Request) {
	researchID, err := pathInt64(r, "researchId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.InstallmentService.List(r.Context(), researchID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.InstallmentsResponse{Success: true, ResearchID: researchID, Installments: list}, http.StatusOK)
}

func installmentRef(r *http.Request) (models.InstallmentRef, error) {
	researchID, err := pathInt64(r, "researchId")
	if err != nil {
		return models.InstallmentRef{}, err
	}
	// A non-numeric number is left at zero and fails the range check.
	number, _ := pathInt(r, "number")
	return models.InstallmentRef{ResearchID: researchID, Number: number}, nil
}

func (h *Handler) upsertInstallment(w http.ResponseWriter, r *http.Request) {
	ref, err := installmentRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var data models.InstallmentData
	if err = decodeJSON(w, r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := h.services.InstallmentService.Upsert(r.Context(), ref, data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.InstallmentResponse{Success: true, Installment: saved}, http.StatusOK)
}

func (h *Handler) deleteInstallment(w http.ResponseWriter, r *http.Request) {
	ref, err := installmentRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.InstallmentService.Delete(r.Context(), ref); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true, Message: "Installment deleted"}, http.StatusOK)
}
