package httpapi

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response{
		Status: statusSuccess,
		Data:   data,
	}); err != nil {
		slog.Default().Error("can't encode response",
			slog.String("err", err.Error()),
		)
	}
}

func respondError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response{
		Status:  statusError,
		Message: msg,
	}); err != nil {
		slog.Default().Error("can't encode response",
			slog.String("err", err.Error()),
		)
	}
}
