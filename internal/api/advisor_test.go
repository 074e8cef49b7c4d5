package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"elite-hub/treinador/internal/constants"
	"elite-hub/treinador/internal/models/dtos"
	"elite-hub/treinador/internal/models/entities"
)

type mockTipGenerator struct {
	generateFunc func(ctx context.Context, profile *dtos.Profile, question string) (string, bool, error)
}

func (m *mockTipGenerator) GenerateTip(ctx context.Context, profile *dtos.Profile, question string) (string, bool, error) {
	return m.generateFunc(ctx, profile, question)
}

type mockProfileGetter struct {
	findFunc func(ctx context.Context, profileID string) (*entities.Profile, error)
}

func (m *mockProfileGetter) FindByID(ctx context.Context, profileID string) (*entities.Profile, error) {
	return m.findFunc(ctx, profileID)
}

func advisorRequest(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/advisor/tip", bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func foundProfile() *mockProfileGetter {
	return &mockProfileGetter{
		findFunc: func(ctx context.Context, profileID string) (*entities.Profile, error) {
			return &entities.Profile{ID: profileID, Name: "Usuário 1"}, nil
		},
	}
}

func TestAdvisorTipHandler_Success(t *testing.T) {
	generator := &mockTipGenerator{
		generateFunc: func(ctx context.Context, profile *dtos.Profile, question string) (string, bool, error) {
			return "Prefira máquinas com apoio torácico.", false, nil
		},
	}

	rr := advisorRequest(t, AdvisorTipHandler(generator, foundProfile(), nil),
		dtos.AdvisorTipReq{ProfileID: "p-1", Question: "Como substituir remada curvada?"})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %s", resp.Status)
	}
}

func TestAdvisorTipHandler_CollaboratorFailureServesFallback(t *testing.T) {
	generator := &mockTipGenerator{
		generateFunc: func(ctx context.Context, profile *dtos.Profile, question string) (string, bool, error) {
			return "", false, errors.New("upstream unavailable")
		},
	}

	rr := advisorRequest(t, AdvisorTipHandler(generator, foundProfile(), nil),
		dtos.AdvisorTipReq{ProfileID: "p-1", Question: "Dica de hoje?"})

	// Degradation is silent to the caller: still a 200 with a usable tip.
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Status string              `json:"status"`
		Data   dtos.AdvisorTipResp `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Data.Fallback {
		t.Error("expected fallback flag")
	}
	if resp.Data.Tip != constants.MsgAdvisorFallback {
		t.Errorf("expected fixed fallback tip, got %q", resp.Data.Tip)
	}
}

func TestAdvisorTipHandler_UnknownProfile(t *testing.T) {
	generator := &mockTipGenerator{
		generateFunc: func(ctx context.Context, profile *dtos.Profile, question string) (string, bool, error) {
			t.Fatal("generator must not run for unknown profiles")
			return "", false, nil
		},
	}
	profiles := &mockProfileGetter{
		findFunc: func(ctx context.Context, profileID string) (*entities.Profile, error) {
			return nil, errors.New("no rows")
		},
	}

	rr := advisorRequest(t, AdvisorTipHandler(generator, profiles, nil),
		dtos.AdvisorTipReq{ProfileID: "missing", Question: "?"})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestAdvisorTipHandler_MissingFields(t *testing.T) {
	generator := &mockTipGenerator{
		generateFunc: func(ctx context.Context, profile *dtos.Profile, question string) (string, bool, error) {
			t.Fatal("generator must not run for invalid requests")
			return "", false, nil
		},
	}

	rr := advisorRequest(t, AdvisorTipHandler(generator, foundProfile(), nil),
		dtos.AdvisorTipReq{ProfileID: "", Question: ""})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
