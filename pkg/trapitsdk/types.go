package trapitsdk

// MessageResponse is the body of most success and every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Accounts
// ============================================================================

type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile is the non-secret part of an account.
type UserProfile struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

type UpdateNameRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type UpdateNameResponse struct {
	Message  string `json:"message"`
	FullName string `json:"fullName"`
}

type ChangePasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ============================================================================
// Password recovery
// ============================================================================

type SendOTPRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest sets a new password. OTP is required unless the server
// runs with reset verification disabled.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp,omitempty"`
	NewPassword string `json:"newPassword"`
}

// ============================================================================
// Traps
// ============================================================================

type CreateTrapRequest struct {
	Email    string `json:"email"`
	TrapID   string `json:"trapId"`
	TrapName string `json:"trapName,omitempty"`
}

type Trap struct {
	TrapID   string `json:"trapId"`
	TrapName string `json:"trapName"`
	Status   string `json:"status"`
}

type CreateTrapResponse struct {
	Message string `json:"message"`
	Trap    Trap   `json:"trap"`
}

type UpdateTrapStatusRequest struct {
	Status string `json:"status"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains individual component health checks (only for readiness)
	Checks *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
