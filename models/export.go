// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExportHeader is the fixed column header of jurisdiction exports.
var ExportHeader = []string{
	"State", "Municipality Name", "FIPS Code", "Parent County",
	"Current Tax Year", "# Installments",
	"Due Date 1", "Due Date 2", "Due Date 3", "Due Date 4", "Due Date 5", "Due Date 6",
	"Primary Contact Name", "Primary Contact Title", "Primary Contact Phone", "Primary Contact Email",
	"Tax Authority Physical Address", "Tax Authority Mailing Address",
	"General Phone Number", "Fax Number", "Web Address", "Notes",
}

// exportFields are the research fields following the four county columns.
var exportFields = []string{
	"current_tax_year", "num_installments",
	"due_date_1", "due_date_2", "due_date_3", "due_date_4", "due_date_5", "due_date_6",
	"primary_contact_name", "primary_contact_title", "primary_contact_phone", "primary_contact_email",
	"tax_authority_physical_address", "tax_authority_mailing_address",
	"general_phone_number", "fax_number", "web_address", "notes",
}

// ExportRow renders the jurisdiction as one export row aligned with
// ExportHeader. Missing values are empty strings.
func (j Jurisdiction) ExportRow() []string {
	row := make([]string, 0, len(ExportHeader))

	fips := ""
	if j.FIPSCode != nil {
		fips = *j.FIPSCode
	}
	row = append(row, j.State, j.DisplayName(), fips, j.CountyName)

	for _, f := range exportFields {
		row = append(row, j.Value(f))
	}
	return row
}

// ExportTable is a rendered export: ExportHeader plus one row per
// jurisdiction.
type ExportTable struct {
	Header []string
	Rows   [][]string
}
