package repositories

import (
	"context"
	"time"

	"elite-hub/treinador/internal/constants"
	"elite-hub/treinador/internal/metrics"
	"elite-hub/treinador/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type ProfileRepository struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewProfileRepository(db *sqlx.DB, reg *metrics.MetricsRegistry) *ProfileRepository {
	return &ProfileRepository{db: db, metrics: reg}
}

// FindByCPF looks up exactly one profile by its normalized (digits-only)
// CPF. sql.ErrNoRows surfaces unchanged so the service layer can tell a
// miss from a broken query.
func (r *ProfileRepository) FindByCPF(ctx context.Context, cpf string) (*entities.Profile, error) {
	start := time.Now()

	var profile entities.Profile
	err := r.db.QueryRowxContext(ctx, constants.GetProfileByCPF, cpf).StructScan(&profile)
	record(r.metrics, "profile_by_cpf", start, err)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, profileID string) (*entities.Profile, error) {
	start := time.Now()

	var profile entities.Profile
	err := r.db.QueryRowxContext(ctx, constants.GetProfileByID, profileID).StructScan(&profile)
	record(r.metrics, "profile_by_id", start, err)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
