package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fundraise/internal/core/domain"
)

type donateRequest struct {
	Amount int64 `json:"amount"`
}

type donateResponse struct {
	Balance int64 `json:"balance"`
}

// handleDonate credits a donation from the authenticated caller to the
// campaign. The upstream payment layer settles the transferred value and
// forwards it in the X-Attached-Value header; it must equal the declared
// amount or the request is rejected before the ledger is touched.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var req donateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	attached, err := strconv.ParseInt(r.Header.Get("X-Attached-Value"), 10, 64)
	if err != nil {
		http.Error(w, "missing attached value", http.StatusBadRequest)
		return
	}
	if attached != req.Amount {
		http.Error(w, "attached value does not match amount", http.StatusBadRequest)
		return
	}

	call := domain.CallContext{Caller: CallerFromContext(r.Context()), Value: attached}
	balance, err := h.svc.Donate(r.Context(), call, id, req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, donateResponse{Balance: balance})
}
