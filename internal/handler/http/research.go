package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

func (h *Handler) listStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.services.ResearchService.ListStates(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, states, http.StatusOK)
}

// jurisdictionFilter reads the listing and export filters from the query.
func jurisdictionFilter(r *http.Request) models.JurisdictionFilter {
	q := r.URL.Query()
	jt := q.Get("jurisdictionType")
	if jt == "" {
		jt = models.JurisdictionAll
	}
	return models.JurisdictionFilter{
		State:            q.Get("state"),
		Search:           q.Get("search"),
		SearchByNameOnly: q.Get("searchMode") == "name",
		JurisdictionType: jt,
		HideValidated:    q.Get("hideValidated") == "true",
	}
}

// listCounties answers a bare array, or a page object when paginate=true.
func (h *Handler) listCounties(w http.ResponseWriter, r *http.Request) {
	filter := jurisdictionFilter(r)
	q := r.URL.Query()

	if q.Get("paginate") != "true" {
		rows, err := h.services.ResearchService.ListJurisdictions(r.Context(), filter)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, rows, http.StatusOK)
		return
	}

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.services.ResearchService.PageJurisdictions(r.Context(), filter, models.PageRequest{
		Page:      page,
		Limit:     limit,
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) updateField(w http.ResponseWriter, r *http.Request) {
	researchID, err := pathInt64(r, "researchId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.FieldUpdateRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	_, err = h.services.ResearchService.UpdateField(r.Context(), models.FieldEdit{
		ResearchID: researchID,
		Field:      req.Field,
		Value:      req.Value,
		EditReason: req.EditReason,
		Actor:      identity,
		Client:     clientInfo(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FieldUpdateResponse{
		Success:     true,
		Message:     "Field updated successfully",
		AuditLogged: true,
	}, http.StatusOK)
}

func (h *Handler) editHistory(w http.ResponseWriter, r *http.Request) {
	researchID, err := pathInt64(r, "researchId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := h.services.AuditService.History(r.Context(), researchID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.EditHistoryResponse{
		Success:     true,
		ResearchID:  researchID,
		EditHistory: entries,
		TotalEdits:  len(entries),
	}, http.StatusOK)
}

func (h *Handler) listVersions(w http.ResponseWriter, r *http.Request) {
	researchID, err := pathInt64(r, "researchId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	history, err := h.services.ResearchService.ListVersions(r.Context(), researchID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	versions := history.Versions
	if versions == nil {
		versions = []models.ResearchVersion{}
	}
	utils.WriteJSON(w, models.VersionsResponse{
		Success:           true,
		CurrentResearchID: history.CurrentResearchID,
		CountyID:          history.CountyID,
		Versions:          versions,
		TotalVersions:     len(versions),
	}, http.StatusOK)
}

func (h *Handler) getResearch(w http.ResponseWriter, r *http.Request) {
	researchID, err := pathInt64(r, "researchId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	research, err := h.services.ResearchService.GetResearch(r.Context(), researchID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ResearchResponse{Success: true, Research: research}, http.StatusOK)
}
