package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/simonvc/tripbudget/internal/ledger"
	"github.com/simonvc/tripbudget/internal/tools"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// resultStatus picks the HTTP status for a tool result. The body always
// carries the result itself.
func resultStatus(res tools.Result) int {
	er, ok := res.(*tools.ErrorResult)
	if !ok {
		return http.StatusOK
	}
	switch er.Kind {
	case tools.KindValidation:
		return http.StatusBadRequest
	case tools.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
