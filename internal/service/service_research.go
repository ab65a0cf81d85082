package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// Listing defaults.
const (
	DefaultPage      = 1
	DefaultPageLimit = 50
	SortByName       = "display_name"
	SortAsc          = "asc"
	SortDesc         = "desc"
)

var stateNames = map[string]string{
	"WI": "Wisconsin",
	"IL": "Illinois",
	"IA": "Iowa",
	"MI": "Michigan",
	"MN": "Minnesota",
	"IN": "Indiana",
	"OH": "Ohio",
	"FL": "Florida",
}

type researchService struct {
	transactor store.Transactor
	research   store.ResearchRepository
	audit      AuditService

	logger *logger.Logger
}

func NewResearchService(storages *store.Storages, audit AuditService, log *logger.Logger) ResearchService {
	return &researchService{
		transactor: storages.Transactor,
		research:   storages.ResearchRepository,
		audit:      audit,
		logger:     log,
	}
}

// ListStates returns every state with jurisdictions. Codes without a known
// name keep the code as name.
func (s *researchService) ListStates(ctx context.Context) ([]models.State, error) {
	states, err := s.research.ListStates(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing states failed")
		return nil, err
	}

	for i := range states {
		states[i].Name = states[i].Code
		if name, ok := stateNames[states[i].Code]; ok {
			states[i].Name = name
		}
	}
	return states, nil
}

// ListJurisdictions applies the whole filter and sorts by display name,
// case-insensitively.
func (s *researchService) ListJurisdictions(ctx context.Context, filter models.JurisdictionFilter) ([]models.Jurisdiction, error) {
	rows, err := s.research.ListJurisdictions(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("filter", filter).Msg("listing jurisdictions failed")
		return nil, err
	}

	out := make([]models.Jurisdiction, 0, len(rows))
	for _, j := range rows {
		if filter.JurisdictionType != "" && filter.JurisdictionType != models.JurisdictionAll &&
			j.JurisdictionType() != filter.JurisdictionType {
			continue
		}
		if filter.HideValidated && j.IsValidated() {
			continue
		}
		out = append(out, j)
	}

	slices.SortStableFunc(out, func(a, b models.Jurisdiction) int {
		return strings.Compare(a.SortKey(), b.SortKey())
	})
	return out, nil
}

// PageJurisdictions returns one page of ListJurisdictions.
func (s *researchService) PageJurisdictions(ctx context.Context, filter models.JurisdictionFilter, page models.PageRequest) (models.JurisdictionPage, error) {
	all, err := s.ListJurisdictions(ctx, filter)
	if err != nil {
		return models.JurisdictionPage{}, err
	}

	if page.Page < 1 {
		page.Page = DefaultPage
	}
	if page.Limit < 1 {
		page.Limit = DefaultPageLimit
	}
	if page.SortOrder != SortDesc {
		page.SortOrder = SortAsc
	}
	page.SortBy = SortByName

	if page.SortOrder == SortDesc {
		slices.Reverse(all)
	}

	total := len(all)
	start := min((page.Page-1)*page.Limit, total)
	end := min(start+page.Limit, total)

	return models.JurisdictionPage{
		Data:       all[start:end],
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: (total + page.Limit - 1) / page.Limit,
		SortBy:     page.SortBy,
		SortOrder:  page.SortOrder,
	}, nil
}

func (s *researchService) GetResearch(ctx context.Context, researchID int64) (models.Jurisdiction, error) {
	j, err := s.research.GetResearch(ctx, researchID)
	if err != nil {
		if !errors.Is(err, store.ErrResearchNotFound) {
			logger.FromContext(ctx).Err(err).Int64("research_id", researchID).Msg("getting research failed")
		}
		return models.Jurisdiction{}, err
	}
	return j, nil
}

// ListVersions returns all research results of the county owning researchID.
func (s *researchService) ListVersions(ctx context.Context, researchID int64) (models.VersionHistory, error) {
	countyID, err := s.research.GetCountyIDByResearchID(ctx, researchID)
	if err != nil {
		return models.VersionHistory{}, err
	}

	versions, err := s.research.ListResearchVersions(ctx, countyID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("county_id", countyID).Msg("listing research versions failed")
		return models.VersionHistory{}, err
	}

	return models.VersionHistory{
		CurrentResearchID: researchID,
		CountyID:          countyID,
		Versions:          versions,
	}, nil
}

// UpdateField changes one editable field and records the change.
//
// The old value is read with a row lock, the field is updated and the
// audit entry is inserted in one transaction. Either all three happen or
// none.
func (s *researchService) UpdateField(ctx context.Context, edit models.FieldEdit) (models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	spec, ok := models.LookupField(edit.Field)
	if !ok {
		return models.AuditEntry{}, store.ErrInvalidField
	}

	value, err := normalizeFieldValue(spec.Kind, edit.Value.Value)
	if err != nil {
		return models.AuditEntry{}, err
	}

	var recorded models.AuditEntry
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		old, err := s.research.LockFieldValue(ctx, edit.ResearchID, spec)
		if err != nil {
			return err
		}

		if err = s.research.UpdateField(ctx, edit.ResearchID, spec, value); err != nil {
			return err
		}

		recorded, err = s.audit.RecordEdit(ctx, models.AuditEntry{
			ResearchID: edit.ResearchID,
			UserID:     edit.Actor.UserID,
			Username:   edit.Actor.Username,
			FieldName:  spec.Name,
			OldValue:   old,
			NewValue:   value,
			IPAddress:  optional(edit.Client.IPAddress),
			UserAgent:  optional(edit.Client.UserAgent),
			EditReason: edit.EditReason,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, store.ErrResearchNotFound) {
			log.Err(err).Int64("research_id", edit.ResearchID).Str("field", spec.Name).Msg("field update failed")
		}
		return models.AuditEntry{}, fmt.Errorf("field update failed: %w", err)
	}

	log.Info().
		Int64("research_id", edit.ResearchID).
		Str("field", spec.Name).
		Str("username", edit.Actor.Username).
		Msg("field updated")
	return recorded, nil
}

// ExportTable renders the filtered listing with the fixed export header.
func (s *researchService) ExportTable(ctx context.Context, filter models.JurisdictionFilter) (models.ExportTable, error) {
	rows, err := s.ListJurisdictions(ctx, filter)
	if err != nil {
		return models.ExportTable{}, err
	}

	table := models.ExportTable{
		Header: models.ExportHeader,
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, j := range rows {
		table.Rows = append(table.Rows, j.ExportRow())
	}
	return table, nil
}
