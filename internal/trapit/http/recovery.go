package http

import (
	"errors"
	"net/http"

	"github.com/trapit/trapit/internal/trapit/service"
	"github.com/trapit/trapit/pkg/httpx"
	"github.com/trapit/trapit/pkg/trapitsdk"
)

type RecoveryHandler struct {
	RecoveryService *service.RecoveryService
}

// writeChallengeError maps the verify outcomes shared by verify-otp and
// reset-password. It reports false when err is not one of them.
func writeChallengeError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, service.ErrChallengeNotFound):
		writeMessage(w, http.StatusBadRequest, "OTP not found")
	case errors.Is(err, service.ErrInvalidCode):
		writeMessage(w, http.StatusBadRequest, "Invalid OTP")
	case errors.Is(err, service.ErrCodeExpired):
		writeMessage(w, http.StatusBadRequest, "OTP expired")
	default:
		return false
	}
	return true
}

// HandleSendOTP issues a reset code and emails it.
//
//	@Summary		Send password reset code
//	@Description	Stores a fresh 6-digit code valid for 5 minutes, replacing any earlier code, and emails it.
//	@Description	If the email fails the stored code remains valid.
//	@Tags			Password Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trapitsdk.SendOTPRequest	true	"email"
//	@Success		200		{object}	trapitsdk.MessageResponse	"OTP sent to email"
//	@Failure		400		{object}	trapitsdk.MessageResponse	"Email required"
//	@Failure		404		{object}	trapitsdk.MessageResponse	"User not found"
//	@Failure		500		{object}	trapitsdk.MessageResponse	"Failed to save OTP or failed to send OTP email"
//	@Router			/api/auth/forgot-password/send-otp [post].
func (h *RecoveryHandler) HandleSendOTP(w http.ResponseWriter, r *http.Request) {
	var req trapitsdk.SendOTPRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.RecoveryService.SendOTP(r.Context(), req.Email)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "OTP sent to email")
	case errors.Is(err, service.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "Email required")
	case errors.Is(err, service.ErrAccountNotFound):
		writeMessage(w, http.StatusNotFound, msgUserMissing)
	case errors.Is(err, service.ErrChallengeNotSaved):
		serverError(w, r, "Failed to save OTP", err)
	case errors.Is(err, service.ErrDelivery):
		serverError(w, r, "Failed to send OTP email", err)
	default:
		serverError(w, r, msgServerError, err)
	}
}

// HandleVerifyOTP checks a reset code without consuming it.
//
//	@Summary		Verify password reset code
//	@Tags			Password Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trapitsdk.VerifyOTPRequest	true	"email and otp"
//	@Success		200		{object}	trapitsdk.MessageResponse	"OTP verified"
//	@Failure		400		{object}	trapitsdk.MessageResponse	"OTP not found, invalid or expired"
//	@Failure		500		{object}	trapitsdk.MessageResponse	"Server error"
//	@Router			/api/auth/forgot-password/verify-otp [post].
func (h *RecoveryHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req trapitsdk.VerifyOTPRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.RecoveryService.VerifyOTP(r.Context(), req.Email, req.OTP)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "OTP verified")
	case errors.Is(err, service.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "Email and OTP required")
	case writeChallengeError(w, err):
	default:
		serverError(w, r, msgServerError, err)
	}
}

// HandleResetPassword sets a new password and discards the reset code.
//
//	@Summary		Reset password
//	@Description	Sets a new password. Unless the server disables it, otp must pass the same checks as verify-otp.
//	@Tags			Password Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trapitsdk.ResetPasswordRequest	true	"email, otp, newPassword"
//	@Success		200		{object}	trapitsdk.MessageResponse		"Password successfully changed"
//	@Failure		400		{object}	trapitsdk.MessageResponse		"Missing fields, OTP not found, invalid or expired"
//	@Failure		500		{object}	trapitsdk.MessageResponse		"Failed to update password"
//	@Router			/api/auth/forgot-password/reset-password [post].
func (h *RecoveryHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req trapitsdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.RecoveryService.ResetPassword(r.Context(), req.Email, req.OTP, req.NewPassword)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "Password successfully changed")
	case errors.Is(err, service.ErrValidation):
		if h.RecoveryService.RequireOTPForReset {
			writeMessage(w, http.StatusBadRequest, "Email, OTP and new password required")
		} else {
			writeMessage(w, http.StatusBadRequest, "Email and new password required")
		}
	case writeChallengeError(w, err):
	default:
		serverError(w, r, "Failed to update password", err)
	}
}
