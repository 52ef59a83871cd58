// Package notify delivers password reset codes by email.
package notify

import (
	"bytes"
	"context"
	"html/template"
)

// Notifier delivers a reset code to email.
type Notifier interface {
	SendOTP(ctx context.Context, email, code string) error
}

const otpSubject = "Your TrapIT OTP Code"

var otpTemplate = template.Must(template.New("otp").Parse(`
<h2>TrapIT Verification Code</h2>
<p>Your OTP code is:</p>
<h1>{{.Code}}</h1>
<p>This code will expire in {{.Minutes}} minutes.</p>
`))

type otpMessage struct {
	Code    string
	Minutes int
}

// renderOTP returns the HTML body for a reset code email.
func renderOTP(code string, minutes int) (string, error) {
	var buf bytes.Buffer
	if err := otpTemplate.Execute(&buf, otpMessage{Code: code, Minutes: minutes}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
