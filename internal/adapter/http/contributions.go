package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type contributeRequest struct {
	// Amount is in display units, e.g. "0.1".
	Amount string `json:"amount"`
}

type contributionResponse struct {
	*domain.ContributionAttempt
	Error string `json:"error,omitempty"`
}

var failureStatus = map[domain.FailureKind]int{
	domain.FailureValidation:        http.StatusBadRequest,
	domain.FailureAuthorization:     http.StatusForbidden,
	domain.FailureInsufficientFunds: http.StatusPaymentRequired,
	domain.FailureExecution:         http.StatusUnprocessableEntity,
	domain.FailureNetwork:           http.StatusBadGateway,
}

// handleContribute runs the contribution workflow for the calling wallet.
// It answers 200 once confirmed, 202 when the transaction is still pending
// and a failure-specific status otherwise. The attempt is always included.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	var body contributeRequest
	if err = decodeJSON(w, r, &body); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount, err := domain.ParseAmount(body.Amount)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	attempt, err := h.svc.Contributions.Contribute(r.Context(), port.ContributionRequest{
		CampaignID: campaignID,
		Amount:     amount,
		Payer:      id.Address,
	})
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, contributionResponse{ContributionAttempt: attempt})
	case errors.Is(err, domain.ErrStillPending):
		h.writeJSON(w, http.StatusAccepted, contributionResponse{ContributionAttempt: attempt, Error: err.Error()})
	default:
		status, ok := failureStatus[domain.FailureKindOf(err)]
		if !ok || attempt == nil {
			h.internalError(w, r, err)
			return
		}
		h.logger.Info("contribution rejected",
			slog.String("attempt_id", attempt.ID.String()),
			slog.Int("status", status),
			slog.Any("error", err))
		h.writeJSON(w, status, contributionResponse{ContributionAttempt: attempt, Error: err.Error()})
	}
}

// handleGetContribution returns one of the caller's own attempts.
func (h *Handler) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	caller, _ := identity(r)
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid contribution id")
		return
	}
	attempt, err := h.svc.Contributions.GetContribution(r.Context(), id)
	if errors.Is(err, port.ErrContributionNotFound) || (err == nil && attempt.Payer != caller.Address) {
		h.writeError(w, http.StatusNotFound, port.ErrContributionNotFound.Error())
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, attempt)
}
