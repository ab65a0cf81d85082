package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "machine-secret"

// fakeAPI answers the handful of routes taxctl calls and rejects requests
// without the machine token.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+testToken {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "alice" || req.Password != "s3cret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"})
			return
		}
		writeJSON(w, http.StatusOK, models.LoginResponse{
			Success:     true,
			User:        models.LoginUser{ID: 5, Username: "alice", Role: models.RoleUser},
			AccessToken: testToken,
		})
	})
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "OK", Database: "connected", Type: "PostgreSQL"})
	})
	mux.HandleFunc("GET /api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.VersionResponse{Version: "2.0.0"})
	})
	mux.HandleFunc("GET /api/export/csv", authed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("State,County\n" + r.URL.Query().Get("state") + ",Travis\n"))
	}))
	mux.HandleFunc("GET /api/counties/{id}/edit-history", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.EditHistoryResponse{
			Success:     true,
			ResearchID:  11,
			EditHistory: []models.AuditEntry{{ID: 1, FieldName: "notes"}},
			TotalEdits:  1,
		})
	}))
	mux.HandleFunc("POST /api/admin/users/{id}/deactivate", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.DeactivateUserResponse{Success: true, UserID: 7, RevokedSessions: 1})
	}))
	mux.HandleFunc("POST /api/admin/invite-codes", authed(func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateInviteRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		writeJSON(w, http.StatusCreated, models.InviteCode{ID: 1, Code: req.Code, MaxUses: req.MaxUses, IsActive: true})
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// runCLI runs taxctl in a scratch directory with a clean TAXCTL_* environment.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, name := range []string{"TAXCTL_SERVER_URL", "TAXCTL_MACHINE_TOKEN", "TAXCTL_REQUEST_TIMEOUT", "TAXCTL_LOG_LEVEL", "TAXCTL_PASSWORD"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage: taxctl")

	code, _, stderr = runCLI(t, "frobnicate")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)
}

func TestRun_LoginPrintsAccessToken(t *testing.T) {
	srv := fakeAPI(t)

	code, stdout, stderr := runCLI(t, "-server", srv.URL, "login", "-u", "alice", "-p", "s3cret")

	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, testToken+"\n", stdout)
}

func TestRun_LoginErrors(t *testing.T) {
	srv := fakeAPI(t)

	code, stdout, stderr := runCLI(t, "-server", srv.URL, "login", "-u", "alice", "-p", "wrong")
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Invalid username or password")

	code, _, stderr = runCLI(t, "-server", srv.URL, "login", "-u", "alice")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "-u and a password are required")
}

func TestRun_Health(t *testing.T) {
	srv := fakeAPI(t)

	code, stdout, _ := runCLI(t, "-server", srv.URL, "health")

	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, `"database": "connected"`)
}

func TestRun_Version(t *testing.T) {
	srv := fakeAPI(t)

	code, stdout, _ := runCLI(t, "-server", srv.URL, "version")

	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, `"server": "2.0.0"`)
}

func TestRun_ExportToFile(t *testing.T) {
	srv := fakeAPI(t)
	out := filepath.Join(t.TempDir(), "out.csv")

	code, _, stderr := runCLI(t, "-server", srv.URL, "-token", testToken, "export", "-o", out, "-state", "TX")

	require.Equal(t, exitOK, code, stderr)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "State,County\nTX,Travis\n", string(data))
}

func TestRun_ExportToStdout(t *testing.T) {
	srv := fakeAPI(t)

	code, stdout, _ := runCLI(t, "-server", srv.URL, "-token", testToken, "export", "-o", "-")

	require.Equal(t, exitOK, code)
	assert.Equal(t, "State,County\n,Travis\n", stdout)
}

func TestRun_ExportUnauthorizedRemovesFile(t *testing.T) {
	srv := fakeAPI(t)
	out := filepath.Join(t.TempDir(), "out.csv")

	code, _, stderr := runCLI(t, "-server", srv.URL, "export", "-o", out)

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "Authentication required")
	assert.NoFileExists(t, out)
}

func TestRun_History(t *testing.T) {
	srv := fakeAPI(t)

	code, stdout, _ := runCLI(t, "-server", srv.URL, "-token", testToken, "history", "11")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, `"totalEdits": 1`)

	code, _, stderr := runCLI(t, "-server", srv.URL, "-token", testToken, "history", "eleven")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "researchId must be a positive integer")
}

func TestRun_Invite(t *testing.T) {
	srv := fakeAPI(t)

	code, stdout, stderr := runCLI(t, "-server", srv.URL, "-token", testToken, "invite", "-code", "TEAM-1", "-max-uses", "3")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, `"code": "TEAM-1"`)
	assert.Contains(t, stdout, `"max_uses": 3`)

	code, _, _ = runCLI(t, "-server", srv.URL, "-token", testToken, "invite", "-expires", "tomorrow")
	assert.Equal(t, exitUsage, code)
}

func TestRun_Deactivate(t *testing.T) {
	srv := fakeAPI(t)

	code, stdout, _ := runCLI(t, "-server", srv.URL, "-token", testToken, "deactivate", "7")

	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, `"revokedSessions": 1`)
}
