package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/config"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/mock"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Shared helpers
// ─────────────────────────────────────────────

type testStorages struct {
	tx           *mock.MockTransactor
	health       *mock.MockHealthChecker
	users        *mock.MockUserRepository
	invites      *mock.MockInviteCodeRepository
	sessions     *mock.MockSessionRepository
	audit        *mock.MockAuditRepository
	research     *mock.MockResearchRepository
	installments *mock.MockInstallmentRepository
}

// newTestStorages returns gomock repositories and a transactor that runs
// fn inline, as a committed transaction would.
func newTestStorages(t *testing.T) (*testStorages, *store.Storages) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testStorages{
		tx:           mock.NewMockTransactor(ctrl),
		health:       mock.NewMockHealthChecker(ctrl),
		users:        mock.NewMockUserRepository(ctrl),
		invites:      mock.NewMockInviteCodeRepository(ctrl),
		sessions:     mock.NewMockSessionRepository(ctrl),
		audit:        mock.NewMockAuditRepository(ctrl),
		research:     mock.NewMockResearchRepository(ctrl),
		installments: mock.NewMockInstallmentRepository(ctrl),
	}

	m.tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	return m, &store.Storages{
		Transactor:            m.tx,
		HealthChecker:         m.health,
		UserRepository:        m.users,
		InviteCodeRepository:  m.invites,
		SessionRepository:     m.sessions,
		AuditRepository:       m.audit,
		ResearchRepository:    m.research,
		InstallmentRepository: m.installments,
	}
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:         "test-sign-key",
		TokenIssuer:          "tax-jurisdictions-test",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
		SessionDuration:      7 * 24 * time.Hour,
		Version:              "test",
	}
}

func newTestTokenService(t *testing.T) TokenService {
	t.Helper()
	tokens, err := NewTokenService(testAppConfig(), logger.Nop())
	require.NoError(t, err)
	return tokens
}

func strPtr(s string) *string { return &s }
