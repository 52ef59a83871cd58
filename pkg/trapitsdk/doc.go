/*
Package trapitsdk provides a client for the TrapIT backend HTTP API.

# Overview

The API is unauthenticated: every call carries the account email in its body
or path. Create a Client and call the typed methods:

	client := trapitsdk.NewClient("http://localhost:3000")

	_, err := client.Register(ctx, trapitsdk.RegisterRequest{
		Email:    "pat@example.com",
		FullName: "Pat",
		Password: "correct horse",
	})

	login, err := client.Login(ctx, trapitsdk.LoginRequest{
		Email:    "pat@example.com",
		Password: "correct horse",
	})
	fmt.Println(login.User.FullName)

# Password Recovery

Recovery is three calls. The code arrives by email:

	_, err = client.SendOTP(ctx, "pat@example.com")
	_, err = client.VerifyOTP(ctx, "pat@example.com", code)
	_, err = client.ResetPassword(ctx, trapitsdk.ResetPasswordRequest{
		Email:       "pat@example.com",
		OTP:         code,
		NewPassword: "new password",
	})

# Error Handling

Every non-success response is returned as *APIError carrying the HTTP status
and the server's message:

	var apiErr *trapitsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		// wrong email or password
	}
*/
package trapitsdk
