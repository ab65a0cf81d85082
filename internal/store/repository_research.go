package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// researchRepository reads counties with their research results and edits
// single research fields.
type researchRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResearchRepository constructs a [ResearchRepository] over db.
func NewResearchRepository(db *DB, logger *logger.Logger) ResearchRepository {
	logger.Debug().Msg("creating research repository")
	return &researchRepository{
		db:     db,
		logger: logger,
	}
}

// valueDests returns scan destinations for every editable field and a
// function collecting them into ResearchValues.
func valueDests() ([]any, func() models.ResearchValues) {
	vals := make([]*string, len(models.EditableFields))
	dests := make([]any, len(vals))
	for i := range vals {
		dests[i] = &vals[i]
	}
	return dests, func() models.ResearchValues {
		out := make(models.ResearchValues, len(vals))
		for i, f := range models.EditableFields {
			out[f.Name] = vals[i]
		}
		return out
	}
}

func (r *researchRepository) ListStates(ctx context.Context) ([]models.State, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.conn(ctx).QueryContext(ctx, listStates)
	if err != nil {
		log.Err(err).Str("func", "*researchRepository.ListStates").Msg("failed to execute query for listing states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.State, 0, 8)
	for rows.Next() {
		var s models.State
		if err := rows.Scan(&s.Code, &s.JurisdictionCount); err != nil {
			log.Err(err).Str("func", "*researchRepository.ListStates").Msg("failed to scan state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		states = append(states, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return states, nil
}

// ListJurisdictions returns counties matching the state and search parts of
// filter, each with its latest research result. Type and validation
// filtering is left to the caller.
func (r *researchRepository) ListJurisdictions(ctx context.Context, filter models.JurisdictionFilter) ([]models.Jurisdiction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListJurisdictionsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*researchRepository.ListJurisdictions").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*researchRepository.ListJurisdictions").
			Str("state", filter.State).
			Msg("failed to execute query for listing jurisdictions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.Jurisdiction, 0, 128)

	for rows.Next() {
		var (
			j               models.Jurisdiction
			researchID      *int64
			researchDate    *time.Time
			methodUsed      *string
			success         *bool
			validationScore *float64
		)

		values, collect := valueDests()
		dests := []any{&j.ID, &j.State, &j.CountyName, &j.MunicipalityName, &j.FIPSCode,
			&researchID, &researchDate, &methodUsed, &success, &validationScore}
		dests = append(dests, values...)
		dests = append(dests,
			&j.Stats.EditCount,
			&j.Stats.LastEditDate,
			&j.Stats.TotalMunicipalities,
			&j.Stats.MunicipalitiesWithEdits,
			&j.Stats.MunicipalitiesPropagated,
		)

		if scanErr := rows.Scan(dests...); scanErr != nil {
			log.Err(scanErr).Str("func", "*researchRepository.ListJurisdictions").Msg("failed to scan jurisdiction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if researchID != nil {
			j.Research = &models.Research{
				ID:              *researchID,
				CountyID:        j.ID,
				ResearchDate:    researchDate,
				MethodUsed:      methodUsed,
				Success:         success,
				ValidationScore: validationScore,
				Values:          collect(),
			}
		}

		result = append(result, j)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*researchRepository.ListJurisdictions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return result, nil
}

// GetResearch returns one research result joined with its county.
func (r *researchRepository) GetResearch(ctx context.Context, researchID int64) (models.Jurisdiction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetResearchQuery(researchID)
	if err != nil {
		return models.Jurisdiction{}, err
	}

	var (
		j  models.Jurisdiction
		rr models.Research
	)
	values, collect := valueDests()
	dests := []any{&j.ID, &j.State, &j.CountyName, &j.MunicipalityName, &j.FIPSCode,
		&rr.ID, &rr.ResearchDate, &rr.MethodUsed, &rr.Success, &rr.ValidationScore}
	dests = append(dests, values...)
	dests = append(dests, &rr.CreatedAt, &rr.UpdatedAt, &j.Stats.EditCount, &j.Stats.LastEditDate)

	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(dests...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Jurisdiction{}, ErrResearchNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*researchRepository.GetResearch").
			Int64("research_id", researchID).
			Msg("error selecting research result")
		return models.Jurisdiction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rr.CountyID = j.ID
	rr.Values = collect()
	j.Research = &rr

	return j, nil
}

func (r *researchRepository) GetCountyIDByResearchID(ctx context.Context, researchID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var countyID int64
	err := r.db.conn(ctx).QueryRowContext(ctx, getCountyIDByResearchID, researchID).Scan(&countyID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrResearchNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*researchRepository.GetCountyIDByResearchID").
			Int64("research_id", researchID).
			Msg("error selecting county id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return countyID, nil
}

// ListResearchVersions returns every research result of the county, newest
// first, with its audit summary.
func (r *researchRepository) ListResearchVersions(ctx context.Context, countyID int64) ([]models.ResearchVersion, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListResearchVersionsQuery(countyID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*researchRepository.ListResearchVersions").
			Int64("county_id", countyID).
			Msg("failed to execute query for listing research versions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	versions := make([]models.ResearchVersion, 0, 4)

	for rows.Next() {
		var v models.ResearchVersion

		values, collect := valueDests()
		dests := []any{&v.ID, &v.CountyID, &v.ResearchDate, &v.MethodUsed, &v.Success, &v.ValidationScore}
		dests = append(dests, values...)
		dests = append(dests, &v.CreatedAt, &v.UpdatedAt, &v.EditCount, &v.LastEditDate)

		if scanErr := rows.Scan(dests...); scanErr != nil {
			log.Err(scanErr).Str("func", "*researchRepository.ListResearchVersions").Msg("failed to scan version row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		v.Values = collect()
		versions = append(versions, v)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return versions, nil
}

// LockFieldValue must run inside [DB.WithinTransaction]; the row stays
// locked until that transaction ends.
func (r *researchRepository) LockFieldValue(ctx context.Context, researchID int64, field models.FieldSpec) (*string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLockFieldValueQuery(researchID, field)
	if err != nil {
		return nil, err
	}

	var value *string
	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResearchNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*researchRepository.LockFieldValue").
			Int64("research_id", researchID).
			Str("field", field.Name).
			Msg("error reading field value")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *researchRepository) UpdateField(ctx context.Context, researchID int64, field models.FieldSpec, value *string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateFieldQuery(researchID, field, value)
	if err != nil {
		return err
	}

	res, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*researchRepository.UpdateField").
			Int64("research_id", researchID).
			Str("field", field.Name).
			Msg("error updating field")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrResearchNotFound
	}

	return nil
}
