package repositories

import (
	"context"
	"time"

	"elite-hub/treinador/internal/constants"
	"elite-hub/treinador/internal/metrics"
	"elite-hub/treinador/internal/models/dtos"
	"elite-hub/treinador/internal/models/entities"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CheckInRepository struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewCheckInRepository(db *sqlx.DB, reg *metrics.MetricsRegistry) *CheckInRepository {
	return &CheckInRepository{db: db, metrics: reg}
}

func (r *CheckInRepository) ListByProfile(ctx context.Context, profileID string) ([]dtos.CheckIn, error) {
	start := time.Now()

	var rows []entities.CheckIn
	err := r.db.SelectContext(ctx, &rows, constants.GetCheckInsByProfile, profileID)
	record(r.metrics, "checkins_by_profile", start, err)
	if err != nil {
		return nil, err
	}

	checkIns := make([]dtos.CheckIn, 0, len(rows))
	for _, row := range rows {
		checkIns = append(checkIns, dtos.CheckIn{
			ID:       row.ID,
			Date:     row.Date,
			Weight:   row.Weight,
			DayIndex: row.DayIndex,
		})
	}
	return checkIns, nil
}

// Insert appends a weight observation. Nothing enforces one check-in per
// (profile, day index, date); repeated submissions stack up.
func (r *CheckInRepository) Insert(ctx context.Context, profileID string, req *dtos.CreateCheckInReq) (*dtos.CheckIn, error) {
	start := time.Now()

	checkIn := dtos.CheckIn{
		ID:       uuid.NewString(),
		Date:     req.Date,
		Weight:   req.Weight,
		DayIndex: req.DayIndex,
	}

	var createdAt time.Time
	err := r.db.QueryRowxContext(ctx, constants.InsertCheckIn,
		checkIn.ID,
		profileID,
		checkIn.DayIndex,
		checkIn.Date,
		checkIn.Weight,
	).Scan(&createdAt)
	record(r.metrics, "checkin_insert", start, err)
	if err != nil {
		return nil, err
	}

	return &checkIn, nil
}
