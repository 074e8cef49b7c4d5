package api

import (
	"context"
	"encoding/json"
	"net/http"

	"elite-hub/treinador/internal/constants"
	"elite-hub/treinador/internal/models/dtos"
	"elite-hub/treinador/internal/services"
)

// loginGateway is the slice of LoginService the handler needs.
type loginGateway interface {
	Login(ctx context.Context, rawCPF string) (*services.LoginResult, *services.LoginError)
}

// LoginHandler handles POST /login.
//
// The login contract predates the /api/v1 envelope: successes return the
// raw multipleUnits shapes and failures return {"error": "..."} with 404,
// 403, or 500. The web client depends on these exact bodies.
func LoginHandler(gateway loginGateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			// An unreadable body carries no identifier, which is the
			// same terminal state as an unknown one.
			writeLoginJSON(w, http.StatusNotFound, dtos.LoginErrorBody{Error: constants.MsgUserNotFound})
			return
		}

		result, loginErr := gateway.Login(r.Context(), req.CPF)
		if loginErr != nil {
			writeLoginJSON(w, loginErr.HTTPStatus, dtos.LoginErrorBody{Error: loginErr.Message})
			return
		}

		if result.Multi != nil {
			writeLoginJSON(w, http.StatusOK, result.Multi)
			return
		}
		writeLoginJSON(w, http.StatusOK, result.Single)
	}
}

func writeLoginJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handlers) Login() http.HandlerFunc {
	return LoginHandler(h.deps.Services.Login)
}
