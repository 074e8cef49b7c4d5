package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"elite-hub/treinador/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

type mockCheckInStore struct {
	listFunc   func(ctx context.Context, profileID string) ([]dtos.CheckIn, error)
	insertFunc func(ctx context.Context, profileID string, req *dtos.CreateCheckInReq) (*dtos.CheckIn, error)
}

func (m *mockCheckInStore) ListByProfile(ctx context.Context, profileID string) ([]dtos.CheckIn, error) {
	return m.listFunc(ctx, profileID)
}

func (m *mockCheckInStore) Insert(ctx context.Context, profileID string, req *dtos.CreateCheckInReq) (*dtos.CheckIn, error) {
	return m.insertFunc(ctx, profileID, req)
}

func checkInRouter(store *mockCheckInStore) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/profiles/{profile_id}/checkins", ListCheckInsHandler(store))
	r.Post("/profiles/{profile_id}/checkins", CreateCheckInHandler(store, nil))
	return r
}

func TestCreateCheckInHandler_Success(t *testing.T) {
	store := &mockCheckInStore{
		insertFunc: func(ctx context.Context, profileID string, req *dtos.CreateCheckInReq) (*dtos.CheckIn, error) {
			if profileID != "p-1" {
				t.Errorf("expected profile p-1, got %s", profileID)
			}
			return &dtos.CheckIn{ID: "c-1", Date: req.Date, Weight: req.Weight, DayIndex: req.DayIndex}, nil
		},
	}

	body, _ := json.Marshal(dtos.CreateCheckInReq{Date: "2026-08-30", Weight: 81.2, DayIndex: 2})
	req := httptest.NewRequest("POST", "/profiles/p-1/checkins", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	checkInRouter(store).ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	var resp dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %s", resp.Status)
	}
}

func TestCreateCheckInHandler_InvalidPayload(t *testing.T) {
	store := &mockCheckInStore{
		insertFunc: func(ctx context.Context, profileID string, req *dtos.CreateCheckInReq) (*dtos.CheckIn, error) {
			t.Fatal("store must not be called for invalid payloads")
			return nil, nil
		},
	}

	cases := []dtos.CreateCheckInReq{
		{Date: "", Weight: 80, DayIndex: 0},
		{Date: "2026-08-30", Weight: 0, DayIndex: 0},
		{Date: "2026-08-30", Weight: 80, DayIndex: -1},
	}

	for _, tc := range cases {
		body, _ := json.Marshal(tc)
		req := httptest.NewRequest("POST", "/profiles/p-1/checkins", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		checkInRouter(store).ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("payload %+v: expected 400, got %d", tc, rr.Code)
		}
	}
}

func TestListCheckInsHandler(t *testing.T) {
	store := &mockCheckInStore{
		listFunc: func(ctx context.Context, profileID string) ([]dtos.CheckIn, error) {
			return []dtos.CheckIn{
				{ID: "c-1", Date: "2026-08-01", Weight: 82, DayIndex: 0},
				{ID: "c-2", Date: "2026-08-08", Weight: 81, DayIndex: 0},
			}, nil
		},
	}

	req := httptest.NewRequest("GET", "/profiles/p-1/checkins", nil)
	rr := httptest.NewRecorder()
	checkInRouter(store).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestListCheckInsHandler_StoreFailure(t *testing.T) {
	store := &mockCheckInStore{
		listFunc: func(ctx context.Context, profileID string) ([]dtos.CheckIn, error) {
			return nil, errors.New("query failed")
		},
	}

	req := httptest.NewRequest("GET", "/profiles/p-1/checkins", nil)
	rr := httptest.NewRecorder()
	checkInRouter(store).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}
