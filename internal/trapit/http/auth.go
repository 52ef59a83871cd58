package http

import (
	"errors"
	"net/http"

	"github.com/trapit/trapit/internal/trapit/service"
	"github.com/trapit/trapit/pkg/httpx"
	"github.com/trapit/trapit/pkg/trapitsdk"
)

type AuthHandler struct {
	AccountService *service.AccountService
}

// HandleRegister creates an account.
//
//	@Summary		Register an account
//	@Description	Creates an account keyed by email. The password is stored as a slow salted hash.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trapitsdk.RegisterRequest	true	"email, optional fullName, password"
//	@Success		201		{object}	trapitsdk.MessageResponse	"User registered successfully"
//	@Failure		400		{object}	trapitsdk.MessageResponse	"Missing fields or user already exists"
//	@Failure		500		{object}	trapitsdk.MessageResponse	"Server error"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req trapitsdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.AccountService.Register(r.Context(), req.Email, req.FullName, req.Password)
	switch {
	case err == nil:
		writeMessage(w, http.StatusCreated, "User registered successfully")
	case errors.Is(err, service.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "Email and password required")
	case errors.Is(err, service.ErrAccountExists):
		writeMessage(w, http.StatusBadRequest, "User already exists")
	default:
		serverError(w, r, msgServerError, err)
	}
}

// HandleLogin checks an email and password.
//
//	@Summary		Log in
//	@Description	Verifies the password and returns the account profile. No session or token is issued.
//	@Description	Unknown email and wrong password return the same 401 response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trapitsdk.LoginRequest		true	"email and password"
//	@Success		200		{object}	trapitsdk.LoginResponse		"Login successful"
//	@Failure		400		{object}	trapitsdk.MessageResponse	"Invalid request body"
//	@Failure		401		{object}	trapitsdk.MessageResponse	"Invalid credentials"
//	@Failure		500		{object}	trapitsdk.MessageResponse	"Server error"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req trapitsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	acct, err := h.AccountService.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, trapitsdk.LoginResponse{
			Message: "Login successful",
			User: trapitsdk.UserProfile{
				Email:    acct.Email,
				FullName: acct.FullName,
			},
		})
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidCredentials):
		// A missing field fails the same way as a wrong password.
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		serverError(w, r, msgServerError, err)
	}
}

// HandleUpdateName changes the account's display name.
//
//	@Summary		Update full name
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trapitsdk.UpdateNameRequest		true	"email and new fullName"
//	@Success		200		{object}	trapitsdk.UpdateNameResponse	"Name updated successfully"
//	@Failure		400		{object}	trapitsdk.MessageResponse		"Missing fields"
//	@Failure		404		{object}	trapitsdk.MessageResponse		"User not found"
//	@Failure		500		{object}	trapitsdk.MessageResponse		"Failed to update name"
//	@Router			/api/auth/update-name [put].
func (h *AuthHandler) HandleUpdateName(w http.ResponseWriter, r *http.Request) {
	var req trapitsdk.UpdateNameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	name, err := h.AccountService.UpdateName(r.Context(), req.Email, req.FullName)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, trapitsdk.UpdateNameResponse{
			Message:  "Name updated successfully",
			FullName: name,
		})
	case errors.Is(err, service.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "Email and full name required")
	case errors.Is(err, service.ErrAccountNotFound):
		writeMessage(w, http.StatusNotFound, msgUserMissing)
	default:
		serverError(w, r, "Failed to update name", err)
	}
}

// HandleChangePassword replaces the password after checking the current one.
//
//	@Summary		Change password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trapitsdk.ChangePasswordRequest	true	"email, currentPassword, newPassword"
//	@Success		200		{object}	trapitsdk.MessageResponse		"Password changed successfully"
//	@Failure		400		{object}	trapitsdk.MessageResponse		"Missing fields"
//	@Failure		401		{object}	trapitsdk.MessageResponse		"Current password is incorrect"
//	@Failure		404		{object}	trapitsdk.MessageResponse		"User not found"
//	@Failure		500		{object}	trapitsdk.MessageResponse		"Failed to update password"
//	@Router			/api/auth/change-password [post].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req trapitsdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.AccountService.ChangePassword(r.Context(), req.Email, req.CurrentPassword, req.NewPassword)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "Password changed successfully")
	case errors.Is(err, service.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "Email, current password and new password required")
	case errors.Is(err, service.ErrAccountNotFound):
		writeMessage(w, http.StatusNotFound, msgUserMissing)
	case errors.Is(err, service.ErrWrongPassword):
		writeMessage(w, http.StatusUnauthorized, "Current password is incorrect")
	default:
		serverError(w, r, "Failed to update password", err)
	}
}
