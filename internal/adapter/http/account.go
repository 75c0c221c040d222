package httpadapter

import (
	"errors"
	"net/http"
	"strings"

	"crowdfund/internal/core/port"
)

type registerRequest struct {
	WalletAddress      string `json:"walletAddress"`
	SmartWalletAddress string `json:"smartWalletAddress"`
}

type profileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// callerWallet is the lowercase smart wallet the account tables are keyed
// by.
func callerWallet(r *http.Request) string {
	id, _ := identity(r)
	return strings.ToLower(id.Address.Hex())
}

// handleRegister answers 201 for a new user and 200 when the smart wallet
// was already registered.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, created, err := h.svc.Accounts.Register(r.Context(), req.WalletAddress, req.SmartWalletAddress)
	if err != nil {
		h.accountError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.writeJSON(w, status, user)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.svc.Accounts.UpdateProfile(r.Context(), callerWallet(r), req.Username, req.Email)
	if err != nil {
		h.accountError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	user, err := h.svc.Accounts.GetUser(r.Context(), q.Get("walletAddress"), q.Get("smartWalletAddress"))
	if err != nil {
		h.accountError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.svc.Accounts.ListDrafts(r.Context(), callerWallet(r))
	if err != nil {
		h.accountError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, drafts)
}

func (h *Handler) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	var req port.DraftRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	draft, err := h.svc.Accounts.CreateDraft(r.Context(), callerWallet(r), req)
	if err != nil {
		h.accountError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, draft)
}

func (h *Handler) accountError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidDraft), errors.Is(err, port.ErrInvalidProfile):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrUserNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	default:
		h.internalError(w, r, err)
	}
}
