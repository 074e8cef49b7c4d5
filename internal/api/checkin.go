package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"elite-hub/treinador/internal/common"
	"elite-hub/treinador/internal/metrics"
	"elite-hub/treinador/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

type checkInStore interface {
	ListByProfile(ctx context.Context, profileID string) ([]dtos.CheckIn, error)
	Insert(ctx context.Context, profileID string, req *dtos.CreateCheckInReq) (*dtos.CheckIn, error)
}

// ListCheckInsHandler handles GET /api/v1/profiles/{profile_id}/checkins
func ListCheckInsHandler(store checkInStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		profileID := chi.URLParam(r, "profile_id")
		if profileID == "" {
			common.RespondError(w, initTime, nil, "Missing profile id", http.StatusBadRequest)
			return
		}

		checkIns, err := store.ListByProfile(r.Context(), profileID)
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to fetch check-ins", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Check-ins fetched", checkIns)
	}
}

// CreateCheckInHandler handles POST /api/v1/profiles/{profile_id}/checkins
//
// Check-ins are append-only; nothing stops a second entry for the same day.
func CreateCheckInHandler(store checkInStore, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		profileID := chi.URLParam(r, "profile_id")
		if profileID == "" {
			common.RespondError(w, initTime, nil, "Missing profile id", http.StatusBadRequest)
			return
		}

		var req dtos.CreateCheckInReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid check-in payload", http.StatusBadRequest)
			return
		}
		if req.Date == "" || req.Weight <= 0 || req.DayIndex < 0 {
			common.RespondError(w, initTime, nil, "Invalid check-in payload", http.StatusBadRequest)
			return
		}

		checkIn, err := store.Insert(r.Context(), profileID, &req)
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to record check-in", http.StatusInternalServerError)
			return
		}

		if metricsReg != nil {
			metricsReg.CheckInsCreatedTotal.Inc()
		}
		common.RespondSuccess(w, initTime, "Check-in recorded", checkIn, http.StatusCreated)
	}
}

func (h *Handlers) ListCheckIns() http.HandlerFunc {
	return ListCheckInsHandler(h.deps.Repo.CheckIn)
}

func (h *Handlers) CreateCheckIn() http.HandlerFunc {
	return CreateCheckInHandler(h.deps.Repo.CheckIn, h.deps.Metrics)
}
