// Package respond writes JSON responses for the /api routes.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jekabolt/seminar-booking/internal/dto"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't encode response",
			slog.String("err", err.Error()),
		)
	}
}

// Error writes msg as {"error": msg}.
func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// Decode reads a JSON body of at most 1MB into v.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
