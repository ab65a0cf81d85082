package http

import (
	"net/http"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// auth is the gate in front of every protected route. The checks run in a
// fixed order and the first match wins:
//  1. the bearer token is taken from "Authorization", with or without the
//     "Bearer " prefix;
//  2. a token equal to the configured machine token yields the machine
//     identity, even while the token service is not ready;
//  3. no token service: 503;
//  4. no token: 401 "Authentication required";
//  5. a token that fails verification, or a refresh token: 401
//     "Invalid or expired token";
//  6. otherwise the token identity is stored in the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		token := utils.ExtractBearerToken(r.Header.Get("Authorization"))

		if h.machineToken != "" && token == h.machineToken {
			log.Debug().Msg("machine token accepted")
			next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), models.MachineIdentity())))
			return
		}

		if h.services == nil || h.services.TokenService == nil {
			log.Warn().Msg("request rejected, token service is not ready")
			utils.WriteError(w, msgAuthNotReady, http.StatusServiceUnavailable)
			return
		}

		if token == "" {
			utils.WriteError(w, msgAuthRequired, http.StatusUnauthorized)
			return
		}

		claims, err := h.services.TokenService.Verify(r.Context(), token)
		if err != nil || claims.IsRefresh() {
			log.Debug().Err(err).Msg("token rejected")
			utils.WriteError(w, msgInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), claims.Identity())))
	})
}

// requireRole answers 403 unless the identity set by auth carries role.
func (h *Handler) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.WriteError(w, msgAuthRequired, http.StatusUnauthorized)
				return
			}
			if identity.Role != role {
				logger.FromRequest(r).Info().
					Str("username", identity.Username).
					Str("required_role", role).
					Msg("insufficient permissions")
				utils.WriteError(w, msgForbidden, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
