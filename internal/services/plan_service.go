package services

import (
	"context"
	"fmt"

	"elite-hub/treinador/internal/logging"
	"elite-hub/treinador/internal/models/dtos"

	"golang.org/x/sync/errgroup"
)

type ScheduleLister interface {
	ListByProfile(ctx context.Context, profileID string) ([]dtos.TrainingDay, error)
}

type CheckInLister interface {
	ListByProfile(ctx context.Context, profileID string) ([]dtos.CheckIn, error)
}

// PlanService merges the weekly schedule and the check-in history for a
// profile. The two reads have no data dependency and run concurrently.
type PlanService struct {
	schedule ScheduleLister
	checkIns CheckInLister
}

func NewPlanService(schedule ScheduleLister, checkIns CheckInLister) *PlanService {
	return &PlanService{
		schedule: schedule,
		checkIns: checkIns,
	}
}

// Aggregate returns (schedule, checkIns). A schedule read failure degrades
// to an empty schedule; a check-in read failure fails the whole aggregation.
func (s *PlanService) Aggregate(ctx context.Context, profileID string) ([]dtos.TrainingDay, []dtos.CheckIn, error) {
	var (
		days     []dtos.TrainingDay
		checkIns []dtos.CheckIn
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := s.schedule.ListByProfile(gctx, profileID)
		if err != nil {
			logging.Warn("Schedule read failed, returning empty schedule",
				"profile_id", profileID,
				"error", err.Error(),
			)
			days = []dtos.TrainingDay{}
			return nil
		}
		days = result
		return nil
	})

	g.Go(func() error {
		result, err := s.checkIns.ListByProfile(gctx, profileID)
		if err != nil {
			return fmt.Errorf("check-in read failed: %w", err)
		}
		checkIns = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if days == nil {
		days = []dtos.TrainingDay{}
	}
	if checkIns == nil {
		checkIns = []dtos.CheckIn{}
	}
	return days, checkIns, nil
}
