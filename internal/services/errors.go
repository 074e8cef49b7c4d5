package services

import (
	"fmt"
	"net/http"

	"elite-hub/treinador/internal/constants"
)

// OutcomeCode distinguishes failure causes internally even when they share
// one external response shape. A query error and a zero-row result answer
// the client identically but must not look identical in the logs.
type OutcomeCode string

const (
	CodeEmptyCPF              OutcomeCode = "empty_cpf"
	CodeProfileNotFound       OutcomeCode = "profile_not_found"
	CodeProfileQueryFailed    OutcomeCode = "profile_query_failed"
	CodeNoActiveMembership    OutcomeCode = "no_active_membership"
	CodeMembershipQueryFailed OutcomeCode = "membership_query_failed"
	CodeCheckinReadFailed     OutcomeCode = "checkin_read_failed"
)

// LoginError carries the internal code plus the user-facing message and
// HTTP status the gateway must emit.
type LoginError struct {
	Code       OutcomeCode
	HTTPStatus int
	Message    string
	Err        error
}

func (e *LoginError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return string(e.Code)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

func notFoundError(code OutcomeCode, err error) *LoginError {
	return &LoginError{
		Code:       code,
		HTTPStatus: http.StatusNotFound,
		Message:    constants.MsgUserNotFound,
		Err:        err,
	}
}

func forbiddenError(code OutcomeCode, err error) *LoginError {
	return &LoginError{
		Code:       code,
		HTTPStatus: http.StatusForbidden,
		Message:    constants.MsgNoActiveMemberships,
		Err:        err,
	}
}

func internalError(code OutcomeCode, err error) *LoginError {
	return &LoginError{
		Code:       code,
		HTTPStatus: http.StatusInternalServerError,
		Message:    constants.MsgCheckinFetchFailed,
		Err:        err,
	}
}
