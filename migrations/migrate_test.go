// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose's first query fails

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations_AuditTableIsAppendOnly(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	if err != nil || len(files) == 0 {
		t.Fatalf("expected embedded migrations, got %v (%v)", files, err)
	}

	var all strings.Builder
	for _, f := range files {
		b, err := fs.ReadFile(embedMigrations, f)
		if err != nil {
			t.Fatal(err)
		}
		all.Write(b)
	}

	schema := all.String()
	for _, want := range []string{
		"refresh_token TEXT        NOT NULL UNIQUE",
		"BEFORE UPDATE OR DELETE ON field_edit_audit",
		"UNIQUE (research_id, installment_number)",
	} {
		if !strings.Contains(schema, want) {
			t.Errorf("expected schema to contain %q", want)
		}
	}
}
