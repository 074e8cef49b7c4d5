package services

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"elite-hub/treinador/internal/constants"
	"elite-hub/treinador/internal/models/dtos"
	"elite-hub/treinador/internal/models/entities"
)

// Mock repositories
type mockProfileFinder struct {
	findFunc func(ctx context.Context, cpf string) (*entities.Profile, error)
	calls    []string
}

func (m *mockProfileFinder) FindByCPF(ctx context.Context, cpf string) (*entities.Profile, error) {
	m.calls = append(m.calls, cpf)
	return m.findFunc(ctx, cpf)
}

type mockMembershipLister struct {
	listFunc func(ctx context.Context, cpf string) ([]dtos.Membership, error)
}

func (m *mockMembershipLister) ListActiveByCPF(ctx context.Context, cpf string) ([]dtos.Membership, error) {
	return m.listFunc(ctx, cpf)
}

type mockPlanAggregator struct {
	aggregateFunc func(ctx context.Context, profileID string) ([]dtos.TrainingDay, []dtos.CheckIn, error)
	called        bool
}

func (m *mockPlanAggregator) Aggregate(ctx context.Context, profileID string) ([]dtos.TrainingDay, []dtos.CheckIn, error) {
	m.called = true
	return m.aggregateFunc(ctx, profileID)
}

func testProfile() *entities.Profile {
	return &entities.Profile{
		ID:   "p-1",
		CPF:  "12345678901",
		Name: "Usuário 1",
	}
}

func membership(id, unitName string) dtos.Membership {
	return dtos.Membership{
		ID:     id,
		Role:   "aluno",
		Status: constants.MembershipStatusActive,
		Unit:   dtos.UnitRef{ID: "u-" + id, Name: unitName, Slug: "academia-x"},
	}
}

func TestLogin_SingleUnit(t *testing.T) {
	profiles := &mockProfileFinder{
		findFunc: func(ctx context.Context, cpf string) (*entities.Profile, error) {
			if cpf != "12345678901" {
				t.Errorf("expected normalized cpf, got %q", cpf)
			}
			return testProfile(), nil
		},
	}
	memberships := &mockMembershipLister{
		listFunc: func(ctx context.Context, cpf string) ([]dtos.Membership, error) {
			return []dtos.Membership{membership("m-1", "Academia X")}, nil
		},
	}
	plan := &mockPlanAggregator{
		aggregateFunc: func(ctx context.Context, profileID string) ([]dtos.TrainingDay, []dtos.CheckIn, error) {
			return []dtos.TrainingDay{{Day: "Segunda", Focus: "Peito"}},
				[]dtos.CheckIn{{Date: "2026-08-01", Weight: 82.5, DayIndex: 0}},
				nil
		},
	}

	svc := NewLoginService(profiles, memberships, plan, nil)

	result, loginErr := svc.Login(context.Background(), "123.456.789-01")
	if loginErr != nil {
		t.Fatalf("unexpected error: %v", loginErr)
	}
	if result.Single == nil {
		t.Fatal("expected single-unit result")
	}
	if result.Single.MultipleUnits {
		t.Error("expected multipleUnits=false")
	}
	if result.Single.Unit.Unit.Name != "Academia X" {
		t.Errorf("unexpected unit: %+v", result.Single.Unit)
	}
	if len(result.Single.Profile.WeeklySchedule) != 1 {
		t.Errorf("expected 1 schedule day, got %d", len(result.Single.Profile.WeeklySchedule))
	}
	if len(result.Single.Profile.CheckIns) != 1 {
		t.Errorf("expected 1 check-in, got %d", len(result.Single.Profile.CheckIns))
	}
}

func TestLogin_MultipleUnits_SkipsPlan(t *testing.T) {
	profiles := &mockProfileFinder{
		findFunc: func(ctx context.Context, cpf string) (*entities.Profile, error) {
			return testProfile(), nil
		},
	}
	memberships := &mockMembershipLister{
		listFunc: func(ctx context.Context, cpf string) ([]dtos.Membership, error) {
			return []dtos.Membership{membership("m-1", "Academia X"), membership("m-2", "Academia Y")}, nil
		},
	}
	plan := &mockPlanAggregator{
		aggregateFunc: func(ctx context.Context, profileID string) ([]dtos.TrainingDay, []dtos.CheckIn, error) {
			return nil, nil, nil
		},
	}

	svc := NewLoginService(profiles, memberships, plan, nil)

	result, loginErr := svc.Login(context.Background(), "12345678901")
	if loginErr != nil {
		t.Fatalf("unexpected error: %v", loginErr)
	}
	if result.Multi == nil {
		t.Fatal("expected multi-unit result")
	}
	if !result.Multi.MultipleUnits {
		t.Error("expected multipleUnits=true")
	}
	if len(result.Multi.Units) != 2 {
		t.Errorf("expected 2 units, got %d", len(result.Multi.Units))
	}
	if plan.called {
		t.Error("plan aggregator must not run for multi-unit logins")
	}
}

func TestLogin_NotFound(t *testing.T) {
	profiles := &mockProfileFinder{
		findFunc: func(ctx context.Context, cpf string) (*entities.Profile, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := NewLoginService(profiles, &mockMembershipLister{}, &mockPlanAggregator{}, nil)

	_, loginErr := svc.Login(context.Background(), "999.999.999-99")
	if loginErr == nil {
		t.Fatal("expected error")
	}
	if loginErr.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", loginErr.HTTPStatus)
	}
	if loginErr.Code != CodeProfileNotFound {
		t.Errorf("expected code %s, got %s", CodeProfileNotFound, loginErr.Code)
	}
	if loginErr.Message != constants.MsgUserNotFound {
		t.Errorf("unexpected message: %s", loginErr.Message)
	}
}

func TestLogin_QueryErrorKeepsDistinctCode(t *testing.T) {
	profiles := &mockProfileFinder{
		findFunc: func(ctx context.Context, cpf string) (*entities.Profile, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewLoginService(profiles, &mockMembershipLister{}, &mockPlanAggregator{}, nil)

	_, loginErr := svc.Login(context.Background(), "12345678901")
	if loginErr == nil {
		t.Fatal("expected error")
	}
	if loginErr.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", loginErr.HTTPStatus)
	}
	if loginErr.Code != CodeProfileQueryFailed {
		t.Errorf("expected code %s, got %s", CodeProfileQueryFailed, loginErr.Code)
	}
}

func TestLogin_Forbidden_InactiveOnly(t *testing.T) {
	profiles := &mockProfileFinder{
		findFunc: func(ctx context.Context, cpf string) (*entities.Profile, error) {
			return testProfile(), nil
		},
	}
	// Active-only filtering happens in the store query, so inactive
	// memberships come back as an empty list here.
	memberships := &mockMembershipLister{
		listFunc: func(ctx context.Context, cpf string) ([]dtos.Membership, error) {
			return []dtos.Membership{}, nil
		},
	}
	svc := NewLoginService(profiles, memberships, &mockPlanAggregator{}, nil)

	_, loginErr := svc.Login(context.Background(), "12345678901")
	if loginErr == nil {
		t.Fatal("expected error")
	}
	if loginErr.HTTPStatus != http.StatusForbidden {
		t.Errorf("expected 403, got %d", loginErr.HTTPStatus)
	}
	if loginErr.Code != CodeNoActiveMembership {
		t.Errorf("expected code %s, got %s", CodeNoActiveMembership, loginErr.Code)
	}
	if loginErr.Message != constants.MsgNoActiveMemberships {
		t.Errorf("unexpected message: %s", loginErr.Message)
	}
}

func TestLogin_EmptyCPFNeverHitsStore(t *testing.T) {
	profiles := &mockProfileFinder{
		findFunc: func(ctx context.Context, cpf string) (*entities.Profile, error) {
			return testProfile(), nil
		},
	}
	svc := NewLoginService(profiles, &mockMembershipLister{}, &mockPlanAggregator{}, nil)

	_, loginErr := svc.Login(context.Background(), "...---")
	if loginErr == nil {
		t.Fatal("expected error")
	}
	if loginErr.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", loginErr.HTTPStatus)
	}
	if loginErr.Code != CodeEmptyCPF {
		t.Errorf("expected code %s, got %s", CodeEmptyCPF, loginErr.Code)
	}
	if len(profiles.calls) != 0 {
		t.Errorf("store must not be queried for empty cpf, got calls: %v", profiles.calls)
	}
}

func TestLogin_CheckinFailureIsInternalError(t *testing.T) {
	profiles := &mockProfileFinder{
		findFunc: func(ctx context.Context, cpf string) (*entities.Profile, error) {
			return testProfile(), nil
		},
	}
	memberships := &mockMembershipLister{
		listFunc: func(ctx context.Context, cpf string) ([]dtos.Membership, error) {
			return []dtos.Membership{membership("m-1", "Academia X")}, nil
		},
	}
	plan := &mockPlanAggregator{
		aggregateFunc: func(ctx context.Context, profileID string) ([]dtos.TrainingDay, []dtos.CheckIn, error) {
			return nil, nil, errors.New("check-in read failed")
		},
	}
	svc := NewLoginService(profiles, memberships, plan, nil)

	_, loginErr := svc.Login(context.Background(), "12345678901")
	if loginErr == nil {
		t.Fatal("expected error")
	}
	if loginErr.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", loginErr.HTTPStatus)
	}
	if loginErr.Message != constants.MsgCheckinFetchFailed {
		t.Errorf("unexpected message: %s", loginErr.Message)
	}
}
