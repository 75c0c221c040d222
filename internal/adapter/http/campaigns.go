package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// handleListCampaigns accepts optional status, q and owner query
// parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, err := domain.ParseStatus(q.Get("status"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter := port.CampaignFilter{Status: status, Query: q.Get("q")}
	if owner := q.Get("owner"); owner != "" {
		if !common.IsHexAddress(owner) {
			h.writeError(w, http.StatusBadRequest, "invalid owner address")
			return
		}
		addr := common.HexToAddress(owner)
		filter.Owner = &addr
	}

	campaigns, err := h.svc.Campaigns.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.logger.Warn("list campaigns failed", slog.Any("error", err))
		h.writeError(w, http.StatusBadGateway, "campaigns unavailable")
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 0 {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	campaign, err := h.svc.Campaigns.GetCampaign(r.Context(), id)
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.logger.Warn("get campaign failed", slog.Any("error", err))
		h.writeError(w, http.StatusBadGateway, "campaigns unavailable")
	default:
		h.writeJSON(w, http.StatusOK, campaign)
	}
}

func (h *Handler) handleSupporters(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	supporters, err := h.svc.Campaigns.Supporters(r.Context(), id.Address)
	if err != nil {
		h.logger.Warn("supporters failed", slog.Any("error", err))
		h.writeError(w, http.StatusBadGateway, "campaigns unavailable")
		return
	}
	h.writeJSON(w, http.StatusOK, supporters)
}

func (h *Handler) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	stats, err := h.svc.Campaigns.DashboardStats(r.Context(), id.Address)
	if err != nil {
		h.logger.Warn("dashboard stats failed", slog.Any("error", err))
		h.writeError(w, http.StatusBadGateway, "campaigns unavailable")
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
