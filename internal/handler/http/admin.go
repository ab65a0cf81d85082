package http

import (
	"net/http"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

func (h *Handler) createInviteCode(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateInviteRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	invite, err := h.services.AdminService.CreateInviteCode(r.Context(), identity, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, invite, http.StatusCreated)
}

func (h *Handler) deactivateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	revoked, err := h.services.AdminService.DeactivateUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeactivateUserResponse{Success: true, UserID: userID, RevokedSessions: revoked}, http.StatusOK)
}
