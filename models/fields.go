// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldKind describes how an editable research field is stored.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldDate
	FieldInteger
)

// SQLType is the PostgreSQL type a value of this kind is cast to.
func (k FieldKind) SQLType() string {
	switch k {
	case FieldDate:
		return "date"
	case FieldInteger:
		return "integer"
	default:
		return "text"
	}
}

// FieldSpec names one column of research_results that users may edit.
type FieldSpec struct {
	Name string
	Kind FieldKind
}

// EditableFields is the fixed allow-list of user-editable research fields,
// in column order.
var EditableFields = []FieldSpec{
	{Name: "current_tax_year", Kind: FieldText},
	{Name: "num_installments", Kind: FieldInteger},
	{Name: "due_date_1", Kind: FieldDate},
	{Name: "due_date_2", Kind: FieldDate},
	{Name: "due_date_3", Kind: FieldDate},
	{Name: "due_date_4", Kind: FieldDate},
	{Name: "due_date_5", Kind: FieldDate},
	{Name: "due_date_6", Kind: FieldDate},
	{Name: "due_date_7", Kind: FieldDate},
	{Name: "due_date_8", Kind: FieldDate},
	{Name: "due_date_9", Kind: FieldDate},
	{Name: "due_date_10", Kind: FieldDate},
	{Name: "primary_contact_name", Kind: FieldText},
	{Name: "primary_contact_title", Kind: FieldText},
	{Name: "primary_contact_phone", Kind: FieldText},
	{Name: "primary_contact_email", Kind: FieldText},
	{Name: "tax_authority_physical_address", Kind: FieldText},
	{Name: "tax_authority_mailing_address", Kind: FieldText},
	{Name: "general_phone_number", Kind: FieldText},
	{Name: "fax_number", Kind: FieldText},
	{Name: "web_address", Kind: FieldText},
	{Name: "county_website", Kind: FieldText},
	{Name: "pay_taxes_url", Kind: FieldText},
	{Name: "notes", Kind: FieldText},
	{Name: "default_delq_collector", Kind: FieldText},
	{Name: "default_escrow_collector", Kind: FieldText},
	{Name: "delq_search_start_date", Kind: FieldDate},
	{Name: "default_escrow_search_start_date", Kind: FieldDate},
	{Name: "tax_billing_date", Kind: FieldDate},
}

// LookupField returns the spec of an editable field.
func LookupField(name string) (FieldSpec, bool) {
	for _, f := range EditableFields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// ResearchValues holds the editable fields of a research result keyed by
// column name. A nil value is SQL NULL.
type ResearchValues map[string]*string

// Get returns the value of the field or "" when it is NULL or absent.
func (v ResearchValues) Get(name string) string {
	if p := v[name]; p != nil {
		return *p
	}
	return ""
}
