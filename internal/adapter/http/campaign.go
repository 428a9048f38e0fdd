package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fundraise/internal/core/domain"
)

type createCampaignRequest struct {
	Title string `json:"title"`
	Goal  int64  `json:"goal"`
}

type createCampaignResponse struct {
	ID int64 `json:"id"`
}

// handleCreateCampaign opens a new campaign for the authenticated caller.
// On success it returns HTTP 201 with the assigned id. A non-positive goal
// produces HTTP 400.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	call := domain.CallContext{Caller: CallerFromContext(r.Context())}
	id, err := h.svc.CreateCampaign(r.Context(), call, req.Title, req.Goal)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createCampaignResponse{ID: id})
}

// handleGetCampaign returns the current state of a campaign. Unknown ids
// produce HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handleListCampaigns returns a page of campaigns ordered by id. It
// accepts optional `limit` and `offset` query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var limit, offset int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = v
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid offset", http.StatusBadRequest)
			return
		}
		offset = v
	}
	views, err := h.svc.ListCampaigns(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handleDonationHistory returns donor identities and cumulative amounts,
// index-aligned by first-contribution order.
func (h *Handler) handleDonationHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	history, err := h.svc.DonationHistory(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, history)
}
