package entities

import "time"

// ScheduleRow is one row of the training-day/exercise join. Exercise fields
// are nullable because days without exercises still come back (LEFT JOIN).
type ScheduleRow struct {
	ID                string  `db:"id"`
	Day               string  `db:"day"`
	Focus             string  `db:"focus"`
	MuscleGroups      string  `db:"muscle_groups"`
	Intensity         string  `db:"intensity"`
	ExerciseName      *string `db:"exercise_name"`
	ExerciseSets      *string `db:"exercise_sets"`
	ExerciseTechnique *string `db:"exercise_technique"`
	ExerciseCoachNote *string `db:"exercise_coach_note"`
}

type CheckIn struct {
	ID       string    `db:"id"`
	DayIndex int       `db:"day_index"`
	Date     string    `db:"date"`
	Weight   float64   `db:"weight"`
	Created  time.Time `db:"created_at"`
}

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services"`
	Uptime   string                   `json:"uptime"`
}
