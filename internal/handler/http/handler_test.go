package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/config"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/service"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	userToken    = "user-token"
	adminToken   = "admin-token"
	refreshToken = "refresh-token"
	machineToken = "machine-secret"
)

var (
	testUser  = models.Identity{UserID: 7, Username: "alice", Role: models.RoleUser}
	testAdmin = models.Identity{UserID: 1, Username: "root", Role: models.RoleAdmin}
)

type testServices struct {
	tokens       *mockTokenService
	auth         *mockAuthService
	audit        *mockAuditService
	research     *mockResearchService
	installments *mockInstallmentService
	admin        *mockAdminService
	health       *mockHealthService
}

func testVerify(_ context.Context, token string) (models.Claims, error) {
	switch token {
	case userToken:
		return models.Claims{UserID: testUser.UserID, Username: testUser.Username, Role: testUser.Role}, nil
	case adminToken:
		return models.Claims{UserID: testAdmin.UserID, Username: testAdmin.Username, Role: testAdmin.Role}, nil
	case refreshToken:
		return models.Claims{UserID: testUser.UserID, Username: testUser.Username, Role: testUser.Role, Type: models.RefreshTokenType}, nil
	}
	return models.Claims{}, service.ErrTokenIsExpiredOrInvalid
}

func testConfig() *config.StructuredConfig {
	cfg := &config.StructuredConfig{}
	cfg.App.MachineToken = machineToken
	cfg.Server.TrustProxyHeaders = true
	return cfg
}

// newTestHandler returns a handler wired to fn-field mocks and the
// router built by Init.
func newTestHandler(t *testing.T) (*testServices, *Handler, http.Handler) {
	t.Helper()
	m := &testServices{
		tokens:       &mockTokenService{verifyFn: testVerify},
		auth:         &mockAuthService{},
		audit:        &mockAuditService{},
		research:     &mockResearchService{},
		installments: &mockInstallmentService{},
		admin:        &mockAdminService{},
		health:       &mockHealthService{},
	}
	services := &service.Services{
		TokenService:       m.tokens,
		AuthService:        m.auth,
		AuditService:       m.audit,
		ResearchService:    m.research,
		InstallmentService: m.installments,
		AdminService:       m.admin,
		HealthService:      m.health,
		AppInfoService:     &mockAppInfoService{version: "1.2.3"},
	}
	h := NewHandler(services, testConfig(), logger.Nop())
	return m, h, h.Init()
}

func doRequest(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}

func assertError(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, message, decodeBody(t, rr)["error"])
}

// ─────────────────────────────────────────────
// NewHandler / Init
// ─────────────────────────────────────────────

func TestNewHandler_StoresSettings(t *testing.T) {
	cfg := testConfig()
	cfg.Server.AuthRateLimit = 1
	cfg.Server.AuthRateBurst = 2
	svc := &service.Services{}

	h := NewHandler(svc, cfg, logger.Nop())

	assert.Same(t, svc, h.services)
	assert.Equal(t, machineToken, h.machineToken)
	require.NotNil(t, h.authLimiter)
	assert.Equal(t, 2, h.authLimiter.burst)
	assert.True(t, h.trustProxyHeaders)
	assert.NotNil(t, h.metrics)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_ZeroRateDisablesLimiter(t *testing.T) {
	h := NewHandler(&service.Services{}, testConfig(), logger.Nop())
	assert.Nil(t, h.authLimiter)
}

func TestInit_UnknownRoute_JSON404(t *testing.T) {
	_, _, router := newTestHandler(t)

	rr := doRequest(t, router, http.MethodGet, "/api/nope", "", userToken)

	assertError(t, rr, http.StatusNotFound, "Not found")
}

func TestInit_WrongMethod_JSON405(t *testing.T) {
	_, _, router := newTestHandler(t)

	rr := doRequest(t, router, http.MethodGet, "/api/auth/login", "", "")

	assertError(t, rr, http.StatusMethodNotAllowed, "Method not allowed")
}

func TestInit_TraceIDHeader(t *testing.T) {
	_, _, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))

	rr = doRequest(t, router, http.MethodGet, "/api/version", "", "")
	assert.Len(t, rr.Header().Get(traceIDHeader), 36, "generated trace ids are uuids")
}

// ─────────────────────────────────────────────
// Version / Health / Metrics
// ─────────────────────────────────────────────

func TestVersion(t *testing.T) {
	_, _, router := newTestHandler(t)

	rr := doRequest(t, router, http.MethodGet, "/api/version", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", decodeBody(t, rr)["version"])
}

func TestHealth(t *testing.T) {
	m, _, router := newTestHandler(t)

	rr := doRequest(t, router, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "PostgreSQL", body["type"])
	assert.NotEmpty(t, body["timestamp"])

	m.health.err = service.ErrDatabaseUnavailable
	rr = doRequest(t, router, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "disconnected", decodeBody(t, rr)["database"])
}

func TestMetricsEndpoint(t *testing.T) {
	_, _, router := newTestHandler(t)

	doRequest(t, router, http.MethodGet, "/api/version", "", "")
	rr := doRequest(t, router, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `http_requests_total{method="GET",route="/api/version",status="200"} 1`)
}
