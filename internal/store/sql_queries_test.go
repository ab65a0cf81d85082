package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListJurisdictionsQuery_NoFilter(t *testing.T) {
	query, args, err := buildListJurisdictionsQuery(models.JurisdictionFilter{})
	require.NoError(t, err)
	assert.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from counties c")
	require.Contains(t, q, "left join lateral")
	require.Contains(t, q, "order by research_date desc")
	require.Contains(t, q, "total_municipalities")
	require.Contains(t, q, "municipalities_with_edits")
	require.Contains(t, q, "municipalities_propagated")
	require.Contains(t, q, "'propagated_from_county'")
	require.NotContains(t, q, "where c.state")
	require.Contains(t, q, "order by c.state, coalesce(c.municipality_name, c.county_name)")

	for _, f := range models.EditableFields {
		require.Contains(t, q, "lr."+f.Name+"::text")
	}
}

func Test_buildListJurisdictionsQuery(t *testing.T) {
	tests := []struct {
		name         string
		filter       models.JurisdictionFilter
		wantArgs     []any
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "state only",
			filter:       models.JurisdictionFilter{State: "WI"},
			wantArgs:     []any{"WI"},
			wantContains: []string{"c.state = $1"},
			wantMissing:  []string{"like"},
		},
		{
			name:   "name search lowercases pattern",
			filter: models.JurisdictionFilter{Search: "  Dane ", SearchByNameOnly: true},
			wantArgs: []any{
				"%dane%", "%dane%",
			},
			wantContains: []string{"lower(c.municipality_name) like $1", "lower(c.county_name) like $2"},
			wantMissing:  []string{"lr.primary_contact_email) like"},
		},
		{
			name:   "general search with state",
			filter: models.JurisdictionFilter{State: "IL", Search: "cook"},
			wantArgs: []any{
				"IL", "%cook%", "%cook%", "%cook%", "%cook%", "%cook%", "%cook%", "%cook%",
			},
			wantContains: []string{
				"c.state = $1",
				"lower(c.state) like",
				"lower(lr.primary_contact_name) like",
				"lower(lr.primary_contact_phone) like",
				"lower(lr.primary_contact_email) like",
				"lower(lr.web_address) like $8",
			},
		},
		{
			name:        "blank search ignored",
			filter:      models.JurisdictionFilter{Search: "   "},
			wantArgs:    nil,
			wantMissing: []string{"like"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListJurisdictionsQuery(tt.filter)
			require.NoError(t, err)

			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}

			q := strings.ToLower(query)
			for _, s := range tt.wantContains {
				assert.Contains(t, q, s)
			}
			for _, s := range tt.wantMissing {
				assert.NotContains(t, q, s)
			}
		})
	}
}

func Test_buildGetResearchQuery(t *testing.T) {
	query, args, err := buildGetResearchQuery(42)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(42)}, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from research_results rr join counties c on c.id = rr.county_id")
	assert.Contains(t, q, "where rr.id = $1")
}

func Test_buildListResearchVersionsQuery(t *testing.T) {
	query, args, err := buildListResearchVersionsQuery(7)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(7)}, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "where rr.county_id = $1")
	assert.Contains(t, q, "order by rr.research_date desc, rr.created_at desc")
}

func Test_buildLockFieldValueQuery(t *testing.T) {
	field, ok := models.LookupField("tax_billing_date")
	require.True(t, ok)

	query, args, err := buildLockFieldValueQuery(5, field)
	require.NoError(t, err)
	assert.Equal(t, "SELECT tax_billing_date::text FROM research_results WHERE id = $1 FOR UPDATE", query)
	assert.Equal(t, []any{int64(5)}, args)
}

func Test_buildUpdateFieldQuery(t *testing.T) {
	tests := []struct {
		field    string
		wantCast string
	}{
		{field: "notes", wantCast: "CAST($1 AS text)"},
		{field: "due_date_3", wantCast: "CAST($1 AS date)"},
		{field: "num_installments", wantCast: "CAST($1 AS integer)"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			field, ok := models.LookupField(tt.field)
			require.True(t, ok)

			value := "x"
			query, args, err := buildUpdateFieldQuery(9, field, &value)
			require.NoError(t, err)

			assert.Equal(t,
				"UPDATE research_results SET "+tt.field+" = "+tt.wantCast+", updated_at = NOW() WHERE id = $2",
				query)
			require.Len(t, args, 2)
			assert.Equal(t, &value, args[0])
			assert.Equal(t, int64(9), args[1])
		})
	}
}

func Test_buildFieldQueries_RejectInjection(t *testing.T) {
	bad := models.FieldSpec{Name: "notes = 'x'; DROP TABLE users; --"}

	_, _, err := buildLockFieldValueQuery(1, bad)
	assert.ErrorIs(t, err, ErrInvalidField)

	_, _, err = buildUpdateFieldQuery(1, bad, nil)
	assert.ErrorIs(t, err, ErrInvalidField)
}

func Test_buildUpdateFieldQuery_UsesAllowListKind(t *testing.T) {
	// the kind is taken from the allow-list, not from the caller
	query, _, err := buildUpdateFieldQuery(1, models.FieldSpec{Name: "due_date_1", Kind: models.FieldText}, nil)
	require.NoError(t, err)
	assert.Contains(t, query, "CAST($1 AS date)")
}
