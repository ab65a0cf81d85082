package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var auditRowColumns = []string{
	"id", "research_id", "user_id", "username", "field_name", "old_value", "new_value",
	"ip_address", "user_agent", "edit_reason", "created_at",
}

func newTestAuditRepo(t *testing.T) (*auditRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &auditRepository{db: db, logger: logger.Nop()}, mock
}

func TestInsertAuditEntry_Success(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	entry := models.AuditEntry{
		ResearchID: 42,
		UserID:     1,
		Username:   "john",
		FieldName:  "notes",
		OldValue:   nil,
		NewValue:   strPtr("new"),
		IPAddress:  strPtr("127.0.0.1"),
	}
	now := time.Now()

	mock.ExpectQuery("INSERT INTO field_edit_audit").
		WithArgs(entry.ResearchID, entry.UserID, entry.Username, entry.FieldName,
			nil, "new", "127.0.0.1", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(100, now))

	saved, err := repo.InsertAuditEntry(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, int64(100), saved.ID)
	assert.Equal(t, now, saved.CreatedAt)
	assert.Equal(t, "john", saved.Username)
}

func TestInsertAuditEntry_UnknownResearch(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	mock.ExpectQuery("INSERT INTO field_edit_audit").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.InsertAuditEntry(context.Background(), models.AuditEntry{ResearchID: 999})
	assert.ErrorIs(t, err, ErrResearchNotFound)
}

func TestListAuditEntries_NewestFirst(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	t1 := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	t0 := t1.Add(-time.Hour)

	mock.ExpectQuery("FROM field_edit_audit .* ORDER BY created_at DESC, id DESC").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(auditRowColumns).
			AddRow(2, 42, 1, "john", "notes", "a", "b", nil, nil, "typo", t1).
			AddRow(1, 42, 1, "john", "notes", nil, "a", nil, nil, nil, t0))

	entries, err := repo.ListAuditEntries(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].ID)
	assert.Equal(t, "typo", *entries[0].EditReason)
	assert.Nil(t, entries[1].OldValue)
}

func TestListAuditEntries_Empty(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	mock.ExpectQuery("FROM field_edit_audit").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(auditRowColumns))

	entries, err := repo.ListAuditEntries(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListAuditEntries_QueryError(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	mock.ExpectQuery("FROM field_edit_audit").WillReturnError(errors.New("boom"))

	_, err := repo.ListAuditEntries(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
