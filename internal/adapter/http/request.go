package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fundraise/internal/core/port"
)

// campaignID extracts the {id} path parameter. A non-numeric id is a
// malformed request and reported as HTTP 400; out-of-range numeric ids are
// left for the usecase to reject.
func campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeJSON encodes v as the response body. Encoding should rarely fail;
// failures are logged and the response left as-is.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps an operation outcome to an HTTP status. The taxonomy is
// surfaced verbatim in the body so callers can distinguish outcomes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, port.ErrInvalidGoal), errors.Is(err, port.ErrZeroDonation):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, port.ErrInvalidCampaignID):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrCampaignCompleted),
		errors.Is(err, port.ErrAlreadyWithdrawn),
		errors.Is(err, port.ErrGoalNotReached):
		status = http.StatusConflict
	case errors.Is(err, port.ErrTransferFailed):
		status = http.StatusBadGateway
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), status)
}
