package trapitsdk

import (
	"context"
	"net/http"
)

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateName(ctx context.Context, req UpdateNameRequest) (*UpdateNameResponse, error) {
	var out UpdateNameResponse
	if err := c.call(ctx, http.MethodPut, "/api/auth/update-name", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/change-password", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendOTP asks the server to email a reset code for email.
func (c *Client) SendOTP(ctx context.Context, email string) (*MessageResponse, error) {
	var out MessageResponse
	err := c.call(ctx, http.MethodPost, "/api/auth/forgot-password/send-otp",
		SendOTPRequest{Email: email}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOTP checks a reset code without consuming it.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*MessageResponse, error) {
	var out MessageResponse
	err := c.call(ctx, http.MethodPost, "/api/auth/forgot-password/verify-otp",
		VerifyOTPRequest{Email: email, OTP: otp}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/forgot-password/reset-password", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
