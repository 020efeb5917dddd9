// Package apiclient is a small JSON-over-HTTP client for the bootcamper API.
//
// A Client resolves request paths against one base URL, bounds every request
// with a timeout (DefaultTimeout unless WithTimeout is given) and attaches the
// Authorization value set with SetAuthorization.
//
//	client, err := apiclient.New("https://bootcamper.xyz/api/bootcamper/admin")
//	if err != nil {
//	    return err
//	}
//	var resp AuthResponse
//	err = client.Post(ctx, "auth/v1/login", creds, &resp)
//
// # Errors
//
// Non-2xx responses are returned as *APIError carrying the status code and
// the server's message. Requests that exceed the timeout wrap ErrTimeout;
// other transport failures wrap ErrRequestFailed. ErrorMessage turns any of
// these into text suitable for a notice.
//
// # Process-wide client
//
// SetDefault installs a client shared by the package-level Get, Post and
// SetAuthorization functions. The binary sets it once at startup.
package apiclient
