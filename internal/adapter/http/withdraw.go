package httpadapter

import (
	"net/http"

	"fundraise/internal/core/domain"
)

type withdrawResponse struct {
	Amount int64 `json:"amount"`
}

// handleWithdraw executes the one-time payout for a campaign. Only the
// operator identity is authorized; everyone else receives HTTP 403 with
// the campaign left untouched.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	call := domain.CallContext{Caller: CallerFromContext(r.Context())}
	amount, err := h.svc.Withdraw(r.Context(), call, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, withdrawResponse{Amount: amount})
}
