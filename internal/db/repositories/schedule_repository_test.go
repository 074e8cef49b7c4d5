package repositories

import (
	"testing"

	"elite-hub/treinador/internal/models/entities"
)

func strPtr(s string) *string { return &s }

func TestGroupScheduleRows(t *testing.T) {
	rows := []entities.ScheduleRow{
		{ID: "d-1", Day: "Segunda", Focus: "Peito", MuscleGroups: "Peito/Tríceps", Intensity: "Alta",
			ExerciseName: strPtr("Supino reto"), ExerciseSets: strPtr("4x8")},
		{ID: "d-1", Day: "Segunda", Focus: "Peito", MuscleGroups: "Peito/Tríceps", Intensity: "Alta",
			ExerciseName: strPtr("Crucifixo"), ExerciseSets: strPtr("3x12"), ExerciseTechnique: strPtr("Cadência lenta")},
		{ID: "d-2", Day: "Quarta", Focus: "Costas", MuscleGroups: "Costas/Bíceps", Intensity: "Moderada",
			ExerciseName: strPtr("Puxada alta"), ExerciseSets: strPtr("4x10")},
	}

	days := groupScheduleRows(rows)

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Day != "Segunda" || days[1].Day != "Quarta" {
		t.Errorf("day order must follow row order: %v, %v", days[0].Day, days[1].Day)
	}
	if len(days[0].Exercises) != 2 {
		t.Errorf("expected 2 exercises on day 1, got %d", len(days[0].Exercises))
	}
	if days[0].Exercises[1].Technique != "Cadência lenta" {
		t.Errorf("unexpected technique: %q", days[0].Exercises[1].Technique)
	}
	if len(days[1].Exercises) != 1 {
		t.Errorf("expected 1 exercise on day 2, got %d", len(days[1].Exercises))
	}
}

func TestGroupScheduleRows_DayWithoutExercises(t *testing.T) {
	rows := []entities.ScheduleRow{
		{ID: "d-1", Day: "Domingo", Focus: "Descanso", Intensity: "Nenhuma"},
	}

	days := groupScheduleRows(rows)

	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].Exercises == nil {
		t.Error("exercises must encode as [] not null")
	}
	if len(days[0].Exercises) != 0 {
		t.Errorf("expected no exercises, got %d", len(days[0].Exercises))
	}
}

func TestGroupScheduleRows_Empty(t *testing.T) {
	days := groupScheduleRows(nil)
	if days == nil {
		t.Fatal("schedule must encode as [] not null")
	}
	if len(days) != 0 {
		t.Errorf("expected empty schedule, got %d days", len(days))
	}
}
