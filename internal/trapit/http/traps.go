package http

import (
	"errors"
	"net/http"

	"github.com/trapit/trapit/internal/trapit/domain"
	"github.com/trapit/trapit/internal/trapit/service"
	"github.com/trapit/trapit/pkg/httpx"
	"github.com/trapit/trapit/pkg/trapitsdk"
)

type TrapsHandler struct {
	TrapService *service.TrapService
}

func toTrapInfo(t domain.Trap) trapitsdk.Trap {
	return trapitsdk.Trap{
		TrapID:   t.ID,
		TrapName: t.Name,
		Status:   string(t.Status),
	}
}

// HandleCreate registers a trap for an account.
//
//	@Summary		Register a trap
//	@Description	New traps start inactive. trapName defaults to "Backyard Trap".
//	@Tags			Traps
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trapitsdk.CreateTrapRequest		true	"email, trapId, optional trapName"
//	@Success		201		{object}	trapitsdk.CreateTrapResponse	"Trap added successfully"
//	@Failure		400		{object}	trapitsdk.MessageResponse		"Missing fields or trap ID already exists"
//	@Failure		404		{object}	trapitsdk.MessageResponse		"User not found"
//	@Failure		500		{object}	trapitsdk.MessageResponse		"Server error"
//	@Router			/api/traps [post].
func (h *TrapsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req trapitsdk.CreateTrapRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	trap, err := h.TrapService.CreateTrap(r.Context(), req.Email, req.TrapID, req.TrapName)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusCreated, trapitsdk.CreateTrapResponse{
			Message: "Trap added successfully",
			Trap:    toTrapInfo(trap),
		})
	case errors.Is(err, service.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "Email and Trap ID required")
	case errors.Is(err, service.ErrTrapExists):
		writeMessage(w, http.StatusBadRequest, "Trap ID already exists")
	case errors.Is(err, service.ErrAccountNotFound):
		writeMessage(w, http.StatusNotFound, msgUserMissing)
	default:
		serverError(w, r, msgServerError, err)
	}
}

// HandleList returns the traps owned by an account.
//
//	@Summary		List traps for an account
//	@Tags			Traps
//	@Produce		json
//	@Param			email	path		string	true	"account email"
//	@Success		200		{array}		trapitsdk.Trap
//	@Failure		500		{object}	trapitsdk.MessageResponse	"Database error"
//	@Router			/api/traps/user/{email} [get].
func (h *TrapsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	traps, err := h.TrapService.ListTraps(r.Context(), r.PathValue("email"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeMessage(w, http.StatusBadRequest, "Email required")
			return
		}
		serverError(w, r, "Database error", err)
		return
	}

	out := make([]trapitsdk.Trap, len(traps))
	for i, t := range traps {
		out[i] = toTrapInfo(t)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdateStatus switches a trap between active and inactive.
//
//	@Summary		Update trap status
//	@Tags			Traps
//	@Accept			json
//	@Produce		json
//	@Param			trapId	path		string								true	"trap ID"
//	@Param			request	body		trapitsdk.UpdateTrapStatusRequest	true	"status: active or inactive"
//	@Success		200		{object}	trapitsdk.MessageResponse			"Status updated"
//	@Failure		400		{object}	trapitsdk.MessageResponse			"Status required or invalid"
//	@Failure		404		{object}	trapitsdk.MessageResponse			"Trap not found"
//	@Failure		500		{object}	trapitsdk.MessageResponse			"Update failed"
//	@Router			/api/traps/{trapId}/status [put].
func (h *TrapsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req trapitsdk.UpdateTrapStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.TrapService.UpdateStatus(r.Context(), r.PathValue("trapId"), req.Status)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "Status updated")
	case errors.Is(err, service.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "Status required")
	case errors.Is(err, service.ErrInvalidTrapStatus):
		writeMessage(w, http.StatusBadRequest, "Status must be active or inactive")
	case errors.Is(err, service.ErrTrapNotFound):
		writeMessage(w, http.StatusNotFound, "Trap not found")
	default:
		serverError(w, r, "Update failed", err)
	}
}

// HandleDelete removes a trap.
//
//	@Summary		Delete a trap
//	@Tags			Traps
//	@Produce		json
//	@Param			trapId	path		string						true	"trap ID"
//	@Success		200		{object}	trapitsdk.MessageResponse	"Trap deleted successfully"
//	@Failure		404		{object}	trapitsdk.MessageResponse	"Trap not found"
//	@Failure		500		{object}	trapitsdk.MessageResponse	"Delete failed"
//	@Router			/api/traps/{trapId} [delete].
func (h *TrapsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.TrapService.DeleteTrap(r.Context(), r.PathValue("trapId"))
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "Trap deleted successfully")
	case errors.Is(err, service.ErrTrapNotFound):
		writeMessage(w, http.StatusNotFound, "Trap not found")
	default:
		serverError(w, r, "Delete failed", err)
	}
}
