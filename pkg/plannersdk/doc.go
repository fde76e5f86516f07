/*
Package plannersdk is a Go client for the planner authentication API.

# Overview

SDKClient wraps the JSON endpoints under /api together with the probe
endpoints. Every call takes a context and returns a typed response or an
*APIError carrying the HTTP status and the server's message.

	client := plannersdk.NewSDKClient("http://localhost:3000")

	auth, err := client.Register(ctx, plannersdk.RegisterRequest{
		Name:            "Ana",
		Email:           "ana@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	me, err := client.Me(ctx, auth.Token)

# Password reset

ForgotPassword always succeeds for a well-formed email. Servers running in
development mode echo the token back in ForgotPasswordResponse.ResetToken,
which is how the end-to-end suite completes the flow without a mailbox:

	fp, err := client.ForgotPassword(ctx, "ana@example.com")
	err = client.ResetPassword(ctx, fp.ResetToken, "novasenha")

# Error Handling

Non-2xx responses become *APIError. Branch on the status code:

	_, err := client.Login(ctx, "ana@example.com", "wrong")
	var apiErr *plannersdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		// bad credentials
	}
*/
package plannersdk
