package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/config"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/go-resty/resty/v2"
)

const (
	ExportCSV  = "csv"
	ExportXLSX = "xlsx"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient builds an [APIClient] for cfg.ServerURL. The machine
// token, when configured, is stored as the initial bearer token.
//
// Returns an error if the server URL cannot be parsed.
func NewHTTPAPIClient(cfg config.Client, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	c := &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.MachineToken)
	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(out.AccessToken)
	return out, nil
}

func (h *httpAPIClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var out models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}

	return out, mapHTTPError(resp)
}

func (h *httpAPIClient) Version(ctx context.Context) (string, error) {
	var out models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.Version, nil
}

func (h *httpAPIClient) Export(ctx context.Context, format string, filter models.JurisdictionFilter, w io.Writer) (int64, error) {
	if format != ExportCSV && format != ExportXLSX {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(filterQuery(filter)).
		SetDoNotParseResponse(true).
		Get("/api/export/" + format)
	if err != nil {
		return 0, fmt.Errorf("export request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		raw, _ := io.ReadAll(body)
		return 0, mapStatus(resp.StatusCode(), raw)
	}

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("reading export: %w", err)
	}

	h.logger.Debug().Str("format", format).Int64("bytes", n).Msg("export downloaded")
	return n, nil
}

func (h *httpAPIClient) EditHistory(ctx context.Context, researchID int64) (models.EditHistoryResponse, error) {
	var out models.EditHistoryResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		SetPathParam("researchId", strconv.FormatInt(researchID, 10)).
		Get("/api/counties/{researchId}/edit-history")
	if err != nil {
		return models.EditHistoryResponse{}, fmt.Errorf("edit history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EditHistoryResponse{}, err
	}

	return out, nil
}

func (h *httpAPIClient) CreateInviteCode(ctx context.Context, req models.CreateInviteRequest) (models.InviteCode, error) {
	var out models.InviteCode

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/admin/invite-codes")
	if err != nil {
		return models.InviteCode{}, fmt.Errorf("create invite code request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InviteCode{}, err
	}

	return out, nil
}

func (h *httpAPIClient) DeactivateUser(ctx context.Context, userID int64) (models.DeactivateUserResponse, error) {
	var out models.DeactivateUserResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		SetPathParam("userId", strconv.FormatInt(userID, 10)).
		Post("/api/admin/users/{userId}/deactivate")
	if err != nil {
		return models.DeactivateUserResponse{}, fmt.Errorf("deactivate user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeactivateUserResponse{}, err
	}

	return out, nil
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// filterQuery renders the listing filters as the server's query parameters.
func filterQuery(filter models.JurisdictionFilter) url.Values {
	q := url.Values{}
	if filter.State != "" {
		q.Set("state", filter.State)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.SearchByNameOnly {
		q.Set("searchMode", "name")
	}
	if filter.JurisdictionType != "" && filter.JurisdictionType != models.JurisdictionAll {
		q.Set("jurisdictionType", filter.JurisdictionType)
	}
	if filter.HideValidated {
		q.Set("hideValidated", "true")
	}
	return q
}
