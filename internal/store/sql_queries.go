package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tax-jurisdictions/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `id, username, email, password_hash, first_name, last_name, role, is_active, created_at, last_login`

const (
	createUser = `INSERT INTO users (username, email, password_hash, first_name, last_name, role)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + userColumns + `;`

	// username match wins when one account's username equals another's email
	findUserByLogin = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1 OR email = $1
    ORDER BY (username = $1) DESC
    LIMIT 1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2);`

	updateLastLogin = `UPDATE users SET last_login = NOW() WHERE id = $1;`

	deactivateUser = `UPDATE users SET is_active = FALSE WHERE id = $1;`
)

const inviteColumns = `id, code, email, max_uses, uses_count, expires_at, is_active, created_by, created_at`

const (
	lockUsableInviteCode = `SELECT ` + inviteColumns + `
    FROM invite_codes
    WHERE code = $1
      AND is_active = TRUE
      AND (expires_at IS NULL OR expires_at > NOW())
      AND (max_uses IS NULL OR uses_count < max_uses)
    FOR UPDATE;`

	incrementInviteCodeUsage = `UPDATE invite_codes
    SET uses_count = uses_count + 1, used_by = $2, used_at = NOW()
    WHERE id = $1;`

	createInviteCode = `INSERT INTO invite_codes (code, email, max_uses, expires_at, created_by)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + inviteColumns + `;`
)

const sessionColumns = `id, user_id, refresh_token, ip_address, user_agent, expires_at, last_activity, is_active, created_at`

const (
	createSession = `INSERT INTO user_sessions (user_id, refresh_token, ip_address, user_agent, expires_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + sessionColumns + `;`

	findActiveSession = `SELECT s.id, s.user_id, s.refresh_token, s.ip_address, s.user_agent, s.expires_at,
        s.last_activity, s.is_active, s.created_at, u.username, u.role, u.is_active
    FROM user_sessions s
    JOIN users u ON u.id = s.user_id
    WHERE s.refresh_token = $1 AND s.is_active = TRUE AND s.expires_at > NOW();`

	touchSession = `UPDATE user_sessions SET last_activity = NOW() WHERE id = $1;`

	revokeSession = `UPDATE user_sessions SET is_active = FALSE WHERE refresh_token = $1 AND is_active = TRUE;`

	revokeUserSessions = `UPDATE user_sessions SET is_active = FALSE WHERE user_id = $1 AND is_active = TRUE;`

	deactivateExpiredSessions = `UPDATE user_sessions SET is_active = FALSE WHERE is_active = TRUE AND expires_at <= NOW();`
)

const (
	insertAuditEntry = `INSERT INTO field_edit_audit (
        research_id, user_id, username, field_name, old_value, new_value, ip_address, user_agent, edit_reason
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, created_at;`

	listAuditEntries = `SELECT id, research_id, user_id, username, field_name, old_value, new_value,
        ip_address, user_agent, edit_reason, created_at
    FROM field_edit_audit
    WHERE research_id = $1
    ORDER BY created_at DESC, id DESC;`
)

const (
	listStates = `SELECT state, COUNT(*) FROM counties GROUP BY state ORDER BY state;`

	getCountyIDByResearchID = `SELECT county_id FROM research_results WHERE id = $1;`
)

const installmentColumns = `id, research_id, installment_number, delq_collector, escrow_collector,
        escrow_search_start_date::text, tax_billing_date::text, created_at, updated_at`

const (
	listInstallments = `SELECT ` + installmentColumns + `
    FROM installment_details
    WHERE research_id = $1
    ORDER BY installment_number;`

	upsertInstallment = `INSERT INTO installment_details (
        research_id, installment_number, delq_collector, escrow_collector, escrow_search_start_date, tax_billing_date
    ) VALUES ($1, $2, $3, $4, CAST($5 AS date), CAST($6 AS date))
    ON CONFLICT (research_id, installment_number) DO UPDATE SET
        delq_collector = EXCLUDED.delq_collector,
        escrow_collector = EXCLUDED.escrow_collector,
        escrow_search_start_date = EXCLUDED.escrow_search_start_date,
        tax_billing_date = EXCLUDED.tax_billing_date,
        updated_at = NOW()
    RETURNING ` + installmentColumns + `;`

	deleteInstallment = `DELETE FROM installment_details WHERE research_id = $1 AND installment_number = $2;`
)

// Child municipality statistics of county rows. Municipalities are matched
// to a county by state and by county name with or without the " County" suffix.
const (
	childMunicipalitiesCond = `c2.state = c.state
        AND (c2.county_name = c.county_name OR c2.county_name || ' County' = c.county_name)
        AND c2.municipality_name IS NOT NULL
        AND c2.municipality_name <> c2.county_name`

	isCountyRow = `c.municipality_name IS NULL OR c.municipality_name = '' OR c.municipality_name = c.county_name`

	totalMunicipalitiesColumn = `CASE WHEN ` + isCountyRow + ` THEN (
        SELECT COUNT(DISTINCT c2.id) FROM counties c2
        WHERE ` + childMunicipalitiesCond + `
    ) END AS total_municipalities`

	municipalitiesWithEditsColumn = `CASE WHEN ` + isCountyRow + ` THEN (
        SELECT COUNT(DISTINCT c2.id) FROM counties c2
        JOIN research_results rr2 ON rr2.county_id = c2.id
        JOIN field_edit_audit fea2 ON fea2.research_id = rr2.id
        WHERE ` + childMunicipalitiesCond + `
    ) END AS municipalities_with_edits`

	municipalitiesPropagatedColumn = `CASE WHEN ` + isCountyRow + ` THEN (
        SELECT COUNT(DISTINCT c2.id) FROM counties c2
        JOIN research_results rr2 ON rr2.county_id = c2.id
        WHERE ` + childMunicipalitiesCond + `
          AND rr2.method_used = '` + models.MethodPropagatedFromCounty + `'
    ) END AS municipalities_propagated`

	latestResearchJoin = `LATERAL (
        SELECT * FROM research_results
        WHERE county_id = c.id
        ORDER BY research_date DESC, id DESC
        LIMIT 1
    ) lr ON TRUE`

	editStatsJoin = `LATERAL (
        SELECT COUNT(*) AS edit_count, MAX(created_at) AS last_edit_date
        FROM field_edit_audit
        WHERE research_id = lr.id
    ) fea ON TRUE`
)

// Columns matched by the general search mode, in addition to the names.
var generalSearchColumns = []string{
	"c.state",
	"lr.primary_contact_name",
	"lr.primary_contact_phone",
	"lr.primary_contact_email",
	"lr.web_address",
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// researchValueColumns selects every editable field of alias as text so
// dates and integers scan uniformly into *string.
func researchValueColumns(alias string) []string {
	cols := make([]string, 0, len(models.EditableFields))
	for _, f := range models.EditableFields {
		cols = append(cols, fmt.Sprintf("%s.%s::text", alias, f.Name))
	}
	return cols
}

func countyColumns() []string {
	return []string{"c.id", "c.state", "c.county_name", "c.municipality_name", "c.fips_code"}
}

// checkField guards every builder that interpolates a column name.
func checkField(field models.FieldSpec) (models.FieldSpec, error) {
	spec, ok := models.LookupField(field.Name)
	if !ok {
		return models.FieldSpec{}, fmt.Errorf("%w: %q", ErrInvalidField, field.Name)
	}
	return spec, nil
}

// buildListJurisdictionsQuery selects every county with its latest research
// result, the audit summary of that result and child municipality
// statistics. Only State and Search of filter are applied in SQL.
func buildListJurisdictionsQuery(filter models.JurisdictionFilter) (string, []any, error) {
	cols := countyColumns()
	cols = append(cols, "lr.id", "lr.research_date", "lr.method_used", "lr.success", "lr.validation_score")
	cols = append(cols, researchValueColumns("lr")...)
	cols = append(cols,
		"fea.edit_count",
		"fea.last_edit_date",
		totalMunicipalitiesColumn,
		municipalitiesWithEditsColumn,
		municipalitiesPropagatedColumn,
	)

	builder := psql().
		Select(cols...).
		From("counties c").
		LeftJoin(latestResearchJoin).
		LeftJoin(editStatsJoin)

	if filter.State != "" {
		builder = builder.Where(sq.Eq{"c.state": filter.State})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		or := sq.Or{
			sq.Like{"LOWER(c.municipality_name)": pattern},
			sq.Like{"LOWER(c.county_name)": pattern},
		}
		if !filter.SearchByNameOnly {
			for _, col := range generalSearchColumns {
				or = append(or, sq.Like{"LOWER(" + col + ")": pattern})
			}
		}
		builder = builder.Where(or)
	}

	query, args, err := builder.
		OrderBy("c.state", "COALESCE(c.municipality_name, c.county_name)").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildGetResearchQuery selects one research result joined with its county.
func buildGetResearchQuery(researchID int64) (string, []any, error) {
	cols := countyColumns()
	cols = append(cols, "rr.id", "rr.research_date", "rr.method_used", "rr.success", "rr.validation_score")
	cols = append(cols, researchValueColumns("rr")...)
	cols = append(cols,
		"rr.created_at",
		"rr.updated_at",
		"(SELECT COUNT(*) FROM field_edit_audit fea WHERE fea.research_id = rr.id)",
		"(SELECT MAX(created_at) FROM field_edit_audit fea WHERE fea.research_id = rr.id)",
	)

	query, args, err := psql().
		Select(cols...).
		From("research_results rr").
		Join("counties c ON c.id = rr.county_id").
		Where(sq.Eq{"rr.id": researchID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListResearchVersionsQuery selects every research result of a county,
// newest first.
func buildListResearchVersionsQuery(countyID int64) (string, []any, error) {
	cols := []string{"rr.id", "rr.county_id", "rr.research_date", "rr.method_used", "rr.success", "rr.validation_score"}
	cols = append(cols, researchValueColumns("rr")...)
	cols = append(cols,
		"rr.created_at",
		"rr.updated_at",
		"(SELECT COUNT(*) FROM field_edit_audit fea WHERE fea.research_id = rr.id)",
		"(SELECT MAX(created_at) FROM field_edit_audit fea WHERE fea.research_id = rr.id)",
	)

	query, args, err := psql().
		Select(cols...).
		From("research_results rr").
		Where(sq.Eq{"rr.county_id": countyID}).
		OrderBy("rr.research_date DESC", "rr.created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildLockFieldValueQuery reads one field as text and locks the row.
func buildLockFieldValueQuery(researchID int64, field models.FieldSpec) (string, []any, error) {
	spec, err := checkField(field)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql().
		Select(spec.Name + "::text").
		From("research_results").
		Where(sq.Eq{"id": researchID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateFieldQuery sets one field, casting the text value to the
// column type, and bumps updated_at.
func buildUpdateFieldQuery(researchID int64, field models.FieldSpec, value *string) (string, []any, error) {
	spec, err := checkField(field)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql().
		Update("research_results").
		Set(spec.Name, sq.Expr("CAST(? AS "+spec.Kind.SQLType()+")", value)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": researchID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
