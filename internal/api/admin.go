package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"elite-hub/treinador/internal/common"
	"elite-hub/treinador/internal/models/dtos"
	gormModels "elite-hub/treinador/internal/models/gorm"

	"github.com/go-chi/chi/v5"
)

type adminStore interface {
	ListProfiles(ctx context.Context) ([]gormModels.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, req *dtos.UpdateProfileReq) (*gormModels.Profile, error)
	ReplaceSchedule(ctx context.Context, profileID string, req *dtos.ReplaceScheduleReq) error
}

// AdminListProfilesHandler handles GET /api/v1/admin/profiles
func AdminListProfilesHandler(store adminStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		profiles, err := store.ListProfiles(r.Context())
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to list profiles", http.StatusInternalServerError)
			return
		}

		out := make([]dtos.Profile, 0, len(profiles))
		for i := range profiles {
			out = append(out, adminProfileToDTO(&profiles[i]))
		}
		common.RespondSuccess(w, initTime, "Profiles fetched", out)
	}
}

// AdminUpdateProfileHandler handles PUT /api/v1/admin/profiles/{profile_id}
func AdminUpdateProfileHandler(store adminStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		profileID := chi.URLParam(r, "profile_id")
		var req dtos.UpdateProfileReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid profile payload", http.StatusBadRequest)
			return
		}

		profile, err := store.UpdateProfile(r.Context(), profileID, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update profile", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Profile updated", adminProfileToDTO(profile))
	}
}

// AdminReplaceScheduleHandler handles PUT /api/v1/admin/profiles/{profile_id}/schedule
func AdminReplaceScheduleHandler(store adminStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		profileID := chi.URLParam(r, "profile_id")
		var req dtos.ReplaceScheduleReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid schedule payload", http.StatusBadRequest)
			return
		}

		if err := store.ReplaceSchedule(r.Context(), profileID, &req); err != nil {
			common.RespondError(w, initTime, err, "Failed to replace schedule", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Schedule replaced", nil)
	}
}

func adminProfileToDTO(p *gormModels.Profile) dtos.Profile {
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

func (h *Handlers) AdminListProfiles() http.HandlerFunc {
	return AdminListProfilesHandler(h.deps.Repo.Admin)
}

func (h *Handlers) AdminUpdateProfile() http.HandlerFunc {
	return AdminUpdateProfileHandler(h.deps.Repo.Admin)
}

func (h *Handlers) AdminReplaceSchedule() http.HandlerFunc {
	return AdminReplaceScheduleHandler(h.deps.Repo.Admin)
}
