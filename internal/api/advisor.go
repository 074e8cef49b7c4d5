package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"elite-hub/treinador/internal/common"
	"elite-hub/treinador/internal/constants"
	"elite-hub/treinador/internal/logging"
	"elite-hub/treinador/internal/metrics"
	"elite-hub/treinador/internal/models/dtos"
	"elite-hub/treinador/internal/models/entities"
	"elite-hub/treinador/internal/services"
)

type tipGenerator interface {
	GenerateTip(ctx context.Context, profile *dtos.Profile, question string) (string, bool, error)
}

type profileGetter interface {
	FindByID(ctx context.Context, profileID string) (*entities.Profile, error)
}

// AdvisorTipHandler handles POST /api/v1/advisor/tip.
//
// The generative collaborator is best-effort: when it fails the response is
// still 200 with a fixed fallback tip, never an error. Login never touches
// this path.
func AdvisorTipHandler(generator tipGenerator, profiles profileGetter, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AdvisorTipReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProfileID == "" || req.Question == "" {
			common.RespondError(w, initTime, nil, "Invalid tip request", http.StatusBadRequest)
			return
		}

		profile, err := profiles.FindByID(r.Context(), req.ProfileID)
		if err != nil {
			common.RespondError(w, initTime, nil, "Profile not found", http.StatusNotFound)
			return
		}

		profileDTO := services.ProfileToDTO(profile)

		tip, cached, err := generator.GenerateTip(r.Context(), &profileDTO, req.Question)
		if err != nil {
			logging.Warn("Advisor call failed, serving fallback",
				"profile_id", req.ProfileID,
				"error", err.Error(),
			)
			countAdvisor(metricsReg, "fallback")
			common.RespondSuccess(w, initTime, "Tip generated", dtos.AdvisorTipResp{
				Tip:      constants.MsgAdvisorFallback,
				Fallback: true,
			})
			return
		}

		if metricsReg != nil {
			if cached {
				metricsReg.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixAdvisorTip)).Inc()
			} else {
				metricsReg.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixAdvisorTip)).Inc()
			}
		}
		if cached {
			countAdvisor(metricsReg, "cached")
		} else {
			countAdvisor(metricsReg, "ok")
		}
		common.RespondSuccess(w, initTime, "Tip generated", dtos.AdvisorTipResp{Tip: tip})
	}
}

func countAdvisor(metricsReg *metrics.MetricsRegistry, result string) {
	if metricsReg == nil {
		return
	}
	metricsReg.AdvisorRequestsTotal.WithLabelValues(result).Inc()
}

func (h *Handlers) AdvisorTip() http.HandlerFunc {
	return AdvisorTipHandler(h.deps.Services.Advisor, h.deps.Repo.Profile, h.deps.Metrics)
}
