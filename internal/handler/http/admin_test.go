package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/validators"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInviteCode(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantActor models.Identity
	}{
		{"admin", adminToken, testAdmin},
		{"machine", machineToken, models.MachineIdentity()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, router := newTestHandler(t)
			var gotActor models.Identity
			var gotReq models.CreateInviteRequest
			m.admin.createInviteFn = func(_ context.Context, actor models.Identity, req models.CreateInviteRequest) (models.InviteCode, error) {
				gotActor, gotReq = actor, req
				return models.InviteCode{ID: 4, Code: req.Code, MaxUses: req.MaxUses, IsActive: true}, nil
			}

			rr := doRequest(t, router, http.MethodPost, "/api/admin/invite-codes", `{"code":"TEAM-2026","maxUses":5}`, tt.token)

			require.Equal(t, http.StatusCreated, rr.Code)
			assert.Equal(t, tt.wantActor, gotActor)
			assert.Equal(t, "TEAM-2026", gotReq.Code)
			require.NotNil(t, gotReq.MaxUses)
			assert.Equal(t, 5, *gotReq.MaxUses)

			body := decodeBody(t, rr)
			assert.Equal(t, "TEAM-2026", body["code"])
			assert.Equal(t, float64(5), body["max_uses"])
			assert.Equal(t, true, body["is_active"])
		})
	}
}

func TestCreateInviteCode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"bad code", validators.ErrInvalidInviteCode, http.StatusBadRequest, "Invite code must be 4 to 64 letters, digits or dashes"},
		{"bad expiry", validators.ErrInvalidExpiry, http.StatusBadRequest, "expiresAt must be in the future"},
		{"duplicate", store.ErrInviteCodeAlreadyExists, http.StatusConflict, "Invite code already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, router := newTestHandler(t)
			m.admin.createInviteFn = func(context.Context, models.Identity, models.CreateInviteRequest) (models.InviteCode, error) {
				return models.InviteCode{}, tt.err
			}

			rr := doRequest(t, router, http.MethodPost, "/api/admin/invite-codes", `{"code":"x"}`, adminToken)

			assertError(t, rr, tt.status, tt.message)
		})
	}
}

func TestAdmin_ForbiddenForUsers(t *testing.T) {
	m, _, router := newTestHandler(t)
	called := false
	m.admin.createInviteFn = func(context.Context, models.Identity, models.CreateInviteRequest) (models.InviteCode, error) {
		called = true
		return models.InviteCode{}, nil
	}
	m.admin.deactivateFn = func(context.Context, int64) (int64, error) {
		called = true
		return 0, nil
	}

	rr := doRequest(t, router, http.MethodPost, "/api/admin/invite-codes", `{"code":"TEAM-2026"}`, userToken)
	assertError(t, rr, http.StatusForbidden, "Insufficient permissions")

	rr = doRequest(t, router, http.MethodPost, "/api/admin/users/7/deactivate", "", userToken)
	assertError(t, rr, http.StatusForbidden, "Insufficient permissions")

	rr = doRequest(t, router, http.MethodPost, "/api/admin/users/7/deactivate", "", "")
	assertError(t, rr, http.StatusUnauthorized, "Authentication required")

	assert.False(t, called)
}

func TestDeactivateUser(t *testing.T) {
	m, _, router := newTestHandler(t)
	m.admin.deactivateFn = func(_ context.Context, userID int64) (int64, error) {
		switch userID {
		case 7:
			return 2, nil
		default:
			return 0, store.ErrUserNotFound
		}
	}

	rr := doRequest(t, router, http.MethodPost, "/api/admin/users/7/deactivate", "", adminToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"userId":7,"revokedSessions":2}`, rr.Body.String())

	rr = doRequest(t, router, http.MethodPost, "/api/admin/users/8/deactivate", "", adminToken)
	assertError(t, rr, http.StatusNotFound, "User not found")

	rr = doRequest(t, router, http.MethodPost, "/api/admin/users/zero/deactivate", "", adminToken)
	assertError(t, rr, http.StatusBadRequest, "Invalid path parameter")
}
