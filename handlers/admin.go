// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/pollboard/middleware"
	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/polls"
)

type AdminHandler struct {
	svc *polls.Service
}

func NewAdminHandler(svc *polls.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// ListPolls handles GET /admin/polls
func (h *AdminHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetAllPolls(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollListResponse{Polls: list})
}

// DeletePoll handles DELETE /admin/polls/{id}
func (h *AdminHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.AdminDeletePoll(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
