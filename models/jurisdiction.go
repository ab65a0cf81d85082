// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Jurisdiction types derived from a county row.
const (
	JurisdictionAll          = "all"
	JurisdictionCounty       = "county"
	JurisdictionMunicipality = "municipality"
)

// MethodPropagatedFromCounty marks research copied from the parent county.
// Such municipalities count as validated.
const MethodPropagatedFromCounty = "propagated_from_county"

// County is one row of the counties table. A row with no municipality name,
// or one equal to the county name, is the county itself.
type County struct {
	ID               int64
	State            string
	CountyName       string
	MunicipalityName *string
	FIPSCode         *string
}

// JurisdictionType returns JurisdictionCounty or JurisdictionMunicipality.
func (c County) JurisdictionType() string {
	if c.MunicipalityName == nil || *c.MunicipalityName == "" || *c.MunicipalityName == c.CountyName {
		return JurisdictionCounty
	}
	return JurisdictionMunicipality
}

// DisplayName is the municipality name when present, otherwise the county name.
func (c County) DisplayName() string {
	if c.MunicipalityName != nil && *c.MunicipalityName != "" {
		return *c.MunicipalityName
	}
	return c.CountyName
}

// Research is a research result row: the latest one for a county in
// listings, or a specific version.
type Research struct {
	ID              int64
	CountyID        int64
	ResearchDate    *time.Time
	MethodUsed      *string
	Success         *bool
	ValidationScore *float64
	Values          ResearchValues
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}

// EditStats summarizes the audit trail of a research result and, for
// county rows, the validation state of its municipalities.
type EditStats struct {
	EditCount    int64
	LastEditDate *time.Time

	TotalMunicipalities      *int64
	MunicipalitiesWithEdits  *int64
	MunicipalitiesPropagated *int64
}

// HasAuditEntries reports whether the research result was ever edited.
func (s EditStats) HasAuditEntries() bool {
	return s.EditCount > 0
}

// Jurisdiction is a county row joined with its research result and edit
// statistics. Research is nil when the county has never been researched.
type Jurisdiction struct {
	County
	Research *Research
	Stats    EditStats
}

// IsValidated reports whether the row is hidden by the hideValidated filter.
//
// A municipality is validated once it has manual edits or its research was
// propagated from the county. A county is validated once it has manual edits
// and every child municipality is validated.
func (j Jurisdiction) IsValidated() bool {
	if j.JurisdictionType() == JurisdictionMunicipality {
		propagated := j.Research != nil && j.Research.MethodUsed != nil &&
			*j.Research.MethodUsed == MethodPropagatedFromCounty
		return j.Stats.HasAuditEntries() || propagated
	}

	total := deref(j.Stats.TotalMunicipalities)
	allValidated := total > 0 &&
		deref(j.Stats.MunicipalitiesWithEdits)+deref(j.Stats.MunicipalitiesPropagated) >= total
	return j.Stats.HasAuditEntries() && allValidated
}

// Value returns an editable research value or "" when absent.
func (j Jurisdiction) Value(field string) string {
	if j.Research == nil {
		return ""
	}
	return j.Research.Values.Get(field)
}

// SortKey is the case-insensitive display name used for ordering.
func (j Jurisdiction) SortKey() string {
	return strings.ToLower(j.DisplayName())
}

// MarshalJSON renders the row flat, the way the listing UI consumes it.
func (j Jurisdiction) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"id":                        j.County.ID,
		"state":                     j.State,
		"county_name":               j.CountyName,
		"municipality_name":         j.MunicipalityName,
		"fips_code":                 j.FIPSCode,
		"jurisdiction_type":         j.JurisdictionType(),
		"display_name":              j.DisplayName(),
		"has_audit_entries":         j.Stats.HasAuditEntries(),
		"edit_count":                j.Stats.EditCount,
		"last_edit_date":            j.Stats.LastEditDate,
		"total_municipalities":      j.Stats.TotalMunicipalities,
		"municipalities_with_edits": j.Stats.MunicipalitiesWithEdits,
		"municipalities_propagated": j.Stats.MunicipalitiesPropagated,
		"research_id":               nil,
	}
	for _, f := range EditableFields {
		out[f.Name] = nil
	}

	if r := j.Research; r != nil {
		out["research_id"] = r.ID
		out["research_date"] = r.ResearchDate
		out["method_used"] = r.MethodUsed
		out["success"] = r.Success
		out["validation_score"] = r.ValidationScore
		for name, v := range r.Values {
			out[name] = v
		}
	}

	return json.Marshal(out)
}

// ResearchVersion is one research result of a county together with its
// audit summary.
type ResearchVersion struct {
	Research
	EditCount    int64
	LastEditDate *time.Time
}

func (v ResearchVersion) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"research_id":      v.ID,
		"research_date":    v.ResearchDate,
		"method_used":      v.MethodUsed,
		"success":          v.Success,
		"validation_score": v.ValidationScore,
		"created_at":       v.CreatedAt,
		"updated_at":       v.UpdatedAt,
		"edit_count":       v.EditCount,
		"last_edit_date":   v.LastEditDate,
	}
	for name, val := range v.Values {
		out[name] = val
	}

	return json.Marshal(out)
}

// JurisdictionFilter selects rows for listings and exports.
type JurisdictionFilter struct {
	State            string
	Search           string
	SearchByNameOnly bool
	JurisdictionType string
	HideValidated    bool
}

// PageRequest asks for one page of a listing. Zero Page disables pagination.
type PageRequest struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// JurisdictionPage is a paginated listing.
type JurisdictionPage struct {
	Data       []Jurisdiction `json:"data"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
	SortBy     string         `json:"sortBy"`
	SortOrder  string         `json:"sortOrder"`
}

// State is a state with at least one jurisdiction.
type State struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	JurisdictionCount int    `json:"jurisdiction_count"`
}

func deref(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// VersionHistory lists every research result of the county that owns
// CurrentResearchID, newest first.
type VersionHistory struct {
	CurrentResearchID int64
	CountyID          int64
	Versions          []ResearchVersion
}
