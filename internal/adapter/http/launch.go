package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type launchResponse struct {
	*domain.CampaignLaunch
	Error string `json:"error,omitempty"`
}

// handleLaunchCampaign creates a campaign on chain for the calling wallet
// and records its draft once confirmed. It answers 201 when confirmed and
// otherwise maps outcomes like handleContribute.
func (h *Handler) handleLaunchCampaign(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	var draft port.DraftRequest
	if err := decodeJSON(w, r, &draft); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	launch, err := h.svc.Launches.Launch(r.Context(), port.LaunchRequest{Creator: id.Address, Draft: draft})
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusCreated, launchResponse{CampaignLaunch: launch})
	case errors.Is(err, domain.ErrStillPending):
		h.writeJSON(w, http.StatusAccepted, launchResponse{CampaignLaunch: launch, Error: err.Error()})
	default:
		status, ok := failureStatus[domain.FailureKindOf(err)]
		if !ok || launch == nil {
			h.internalError(w, r, err)
			return
		}
		h.logger.Info("campaign launch rejected",
			slog.String("launch_id", launch.ID.String()),
			slog.Int("status", status),
			slog.Any("error", err))
		h.writeJSON(w, status, launchResponse{CampaignLaunch: launch, Error: err.Error()})
	}
}
