package store

import "github.com/MKhiriev/go-tax-jurisdictions/internal/logger"

// Storages aggregates every repository backed by one PostgreSQL pool.
type Storages struct {
	Transactor            Transactor
	HealthChecker         HealthChecker
	UserRepository        UserRepository
	InviteCodeRepository  InviteCodeRepository
	SessionRepository     SessionRepository
	AuditRepository       AuditRepository
	ResearchRepository    ResearchRepository
	InstallmentRepository InstallmentRepository
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Transactor:            db,
		HealthChecker:         db,
		UserRepository:        NewUserRepository(db, log),
		InviteCodeRepository:  NewInviteCodeRepository(db, log),
		SessionRepository:     NewSessionRepository(db, log),
		AuditRepository:       NewAuditRepository(db, log),
		ResearchRepository:    NewResearchRepository(db, log),
		InstallmentRepository: NewInstallmentRepository(db, log),
	}
}
