// Package authapi wraps the remote authentication endpoints of the bootcamper
// API: login, registration, user profile and password management.
//
// A Service sends every request through a Doer, normally an
// *apiclient.Client, so timeouts, the shared Authorization header and error
// mapping live in one place.
//
//	svc := authapi.New(client)
//	resp, err := svc.Login(ctx, authapi.Credentials{Email: email, Password: password})
//	if err != nil {
//	    notices.Error(ctx, apiclient.ErrorMessage(err))
//	}
//
// Login and Register hand the returned token to the configured TokenSink
// (see WithTokenSink); Logout clears it again. Without a sink the service only
// updates the Doer's authorization when it implements Authorizer.
package authapi
