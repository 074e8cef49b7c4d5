package repositories

import (
	"context"
	"time"

	"elite-hub/treinador/internal/constants"
	"elite-hub/treinador/internal/metrics"
	"elite-hub/treinador/internal/models/dtos"
	"elite-hub/treinador/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type ScheduleRepository struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewScheduleRepository(db *sqlx.DB, reg *metrics.MetricsRegistry) *ScheduleRepository {
	return &ScheduleRepository{db: db, metrics: reg}
}

// ListByProfile returns the weekly schedule with nested exercises, ordered
// by day position then exercise position. Days without exercises come back
// with an empty exercise list.
func (r *ScheduleRepository) ListByProfile(ctx context.Context, profileID string) ([]dtos.TrainingDay, error) {
	start := time.Now()

	var rows []entities.ScheduleRow
	err := r.db.SelectContext(ctx, &rows, constants.GetScheduleByProfile, profileID)
	record(r.metrics, "schedule_by_profile", start, err)
	if err != nil {
		return nil, err
	}

	return groupScheduleRows(rows), nil
}

// groupScheduleRows folds the flat join result into days with nested
// exercises, preserving row order.
func groupScheduleRows(rows []entities.ScheduleRow) []dtos.TrainingDay {
	days := make([]dtos.TrainingDay, 0)
	index := make(map[string]int)

	for _, row := range rows {
		i, seen := index[row.ID]
		if !seen {
			days = append(days, dtos.TrainingDay{
				Day:          row.Day,
				Focus:        row.Focus,
				MuscleGroups: row.MuscleGroups,
				Intensity:    row.Intensity,
				Exercises:    []dtos.Exercise{},
			})
			i = len(days) - 1
			index[row.ID] = i
		}

		if row.ExerciseName == nil {
			continue
		}
		ex := dtos.Exercise{Name: *row.ExerciseName}
		if row.ExerciseSets != nil {
			ex.Sets = *row.ExerciseSets
		}
		if row.ExerciseTechnique != nil {
			ex.Technique = *row.ExerciseTechnique
		}
		if row.ExerciseCoachNote != nil {
			ex.CoachNote = *row.ExerciseCoachNote
		}
		days[i].Exercises = append(days[i].Exercises, ex)
	}

	return days
}
