package services

import (
	"context"
	"database/sql"
	"errors"

	"elite-hub/treinador/internal/common"
	"elite-hub/treinador/internal/logging"
	"elite-hub/treinador/internal/metrics"
	"elite-hub/treinador/internal/models/dtos"
	"elite-hub/treinador/internal/models/entities"
)

type ProfileFinder interface {
	FindByCPF(ctx context.Context, cpf string) (*entities.Profile, error)
}

type MembershipLister interface {
	ListActiveByCPF(ctx context.Context, cpf string) ([]dtos.Membership, error)
}

type PlanAggregator interface {
	Aggregate(ctx context.Context, profileID string) ([]dtos.TrainingDay, []dtos.CheckIn, error)
}

// LoginResult is the gateway's terminal success outcome: exactly one of
// Single or Multi is set.
type LoginResult struct {
	Single *dtos.SingleUnitLogin
	Multi  *dtos.MultiUnitLogin
}

// LoginService sequences identity resolution, membership lookup, and plan
// aggregation. Identity and membership are resolved independently against
// the same normalized CPF: a profile that exists but has no active
// membership never has its plan data exposed.
type LoginService struct {
	profiles    ProfileFinder
	memberships MembershipLister
	plan        PlanAggregator
	metrics     *metrics.MetricsRegistry
}

func NewLoginService(profiles ProfileFinder, memberships MembershipLister, plan PlanAggregator, reg *metrics.MetricsRegistry) *LoginService {
	return &LoginService{
		profiles:    profiles,
		memberships: memberships,
		plan:        plan,
		metrics:     reg,
	}
}

func (s *LoginService) Login(ctx context.Context, rawCPF string) (*LoginResult, *LoginError) {
	cpf := common.NormalizeCPF(rawCPF)

	// An all-punctuation input must not reach the store: an empty string
	// lookup would be a wildcard waiting to happen.
	if cpf == "" {
		s.countOutcome("not_found")
		return nil, notFoundError(CodeEmptyCPF, nil)
	}

	profile, err := s.profiles.FindByCPF(ctx, cpf)
	if err != nil {
		code := CodeProfileQueryFailed
		if errors.Is(err, sql.ErrNoRows) {
			code = CodeProfileNotFound
		}
		s.countOutcome("not_found")
		loginErr := notFoundError(code, err)
		logging.Info("Login rejected", "code", string(code), "error", err.Error())
		return nil, loginErr
	}

	memberships, err := s.memberships.ListActiveByCPF(ctx, cpf)
	if err != nil {
		s.countOutcome("forbidden")
		logging.Info("Login rejected", "code", string(CodeMembershipQueryFailed), "error", err.Error())
		return nil, forbiddenError(CodeMembershipQueryFailed, err)
	}
	if len(memberships) == 0 {
		s.countOutcome("forbidden")
		logging.Info("Login rejected", "code", string(CodeNoActiveMembership), "profile_id", profile.ID)
		return nil, forbiddenError(CodeNoActiveMembership, nil)
	}

	profileDTO := ProfileToDTO(profile)

	if len(memberships) > 1 {
		s.countOutcome("multiple_units")
		return &LoginResult{
			Multi: &dtos.MultiUnitLogin{
				MultipleUnits: true,
				Units:         memberships,
				Profile:       profileDTO,
			},
		}, nil
	}

	days, checkIns, err := s.plan.Aggregate(ctx, profile.ID)
	if err != nil {
		s.countOutcome("internal_error")
		logging.Error("Plan aggregation failed", "profile_id", profile.ID, "error", err.Error())
		return nil, internalError(CodeCheckinReadFailed, err)
	}

	s.countOutcome("single_unit")
	return &LoginResult{
		Single: &dtos.SingleUnitLogin{
			MultipleUnits: false,
			Unit:          memberships[0],
			Profile: dtos.CompositeProfile{
				Profile:        profileDTO,
				WeeklySchedule: days,
				CheckIns:       checkIns,
			},
		},
	}, nil
}

func (s *LoginService) countOutcome(outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.LoginOutcomesTotal.WithLabelValues(outcome).Inc()
}

func ProfileToDTO(p *entities.Profile) dtos.Profile {
	return dtos.Profile{
		ID:                   p.ID,
		Name:                 p.Name,
		CPF:                  p.CPF,
		Age:                  p.Age,
		Sex:                  p.Sex,
		Objective:            p.Objective,
		CurrentWeight:        p.CurrentWeight,
		TargetWeight:         p.TargetWeight,
		Height:               p.Height,
		ClinicalRestrictions: common.SplitRestrictions(p.ClinicalRestrictions),
	}
}
