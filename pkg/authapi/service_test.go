package authapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootcamper/authkit/pkg/apiclient"
	"github.com/bootcamper/authkit/pkg/authapi"
)

type fakeAPI struct {
	mu       sync.Mutex
	bodies   map[string]map[string]any
	auth     map[string]string
	failWith map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		bodies:   make(map[string]map[string]any),
		auth:     make(map[string]string),
		failWith: make(map[string]int),
	}
}

func (f *fakeAPI) record(r *http.Request) {
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.bodies[r.URL.Path] = body
	f.auth[r.URL.Path] = r.Header.Get("Authorization")
	f.mu.Unlock()
}

func (f *fakeAPI) fail(endpoint string, code int) {
	f.mu.Lock()
	f.failWith[endpoint] = code
	f.mu.Unlock()
}

func (f *fakeAPI) failure(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failWith[endpoint]
}

func (f *fakeAPI) body(path string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[path]
}

func (f *fakeAPI) authorization(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.auth[path]
}

func (f *fakeAPI) router() chi.Router {
	r := chi.NewRouter()
	r.Route("/auth/v1", func(r chi.Router) {
		r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			if code := f.failure("login"); code != 0 {
				writeJSON(w, code, map[string]string{"message": "Invalid credentials"})
				return
			}
			writeJSON(w, http.StatusOK, authapi.AuthResponse{
				Token: "token-1",
				User:  authapi.User{ID: "u1", Email: "user@example.com"},
			})
		})
		r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			writeJSON(w, http.StatusOK, map[string]any{"user": map[string]string{"id": "u2"}})
		})
		r.Get("/getUserInfo", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			writeJSON(w, http.StatusOK, authapi.User{ID: r.URL.Query().Get("id"), Name: "Ada"})
		})
		r.Post("/updateUserInfo", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			writeJSON(w, http.StatusOK, authapi.User{ID: "u1", Name: "Grace"})
		})
		for _, p := range []string{"/forgotPassword", "/resetPassword", "/updatePassword", "/logout"} {
			r.Post(p, func(w http.ResponseWriter, r *http.Request) {
				f.record(r)
				if code := f.failure("logout"); code != 0 && r.URL.Path == authapi.PathLogout {
					w.WriteHeader(code)
					return
				}
				w.WriteHeader(http.StatusNoContent)
			})
		}
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func setup(t *testing.T) (*fakeAPI, *apiclient.Client) {
	t.Helper()
	api := newFakeAPI()
	server := httptest.NewServer(api.router())
	t.Cleanup(server.Close)

	c, err := apiclient.New(server.URL, apiclient.WithTimeout(time.Second))
	require.NoError(t, err)
	return api, c
}

type recordingSink struct {
	tokens  []string
	forgets int
	err     error
}

func (s *recordingSink) Persist(_ context.Context, token string) error {
	s.tokens = append(s.tokens, token)
	return s.err
}

func (s *recordingSink) Forget(context.Context) error {
	s.forgets++
	return s.err
}

func TestLogin(t *testing.T) {
	t.Parallel()

	api, client := setup(t)
	svc := authapi.New(client)

	resp, err := svc.Login(context.Background(), authapi.Credentials{Email: "user@example.com", Password: "Abcdef1!"})
	require.NoError(t, err)
	assert.Equal(t, "token-1", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, map[string]any{"email": "user@example.com", "password": "Abcdef1!"}, api.body(authapi.PathLogin))

	assert.Equal(t, "Bearer token-1", client.Authorization())

	_, err = svc.GetUserInfo(context.Background(), authapi.UserInfoQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-1", api.authorization(authapi.PathGetUserInfo))
}

func TestLogin_Rejected(t *testing.T) {
	t.Parallel()

	api, client := setup(t)
	api.fail("login", http.StatusUnauthorized)
	svc := authapi.New(client)

	resp, err := svc.Login(context.Background(), authapi.Credentials{Email: "user@example.com", Password: "wrong"})
	assert.Nil(t, resp)
	assert.True(t, apiclient.IsAPIError(err, http.StatusUnauthorized))
	assert.Equal(t, "Invalid credentials", apiclient.ErrorMessage(err))
	assert.Empty(t, client.Authorization())
}

func TestRegister_MissingToken(t *testing.T) {
	t.Parallel()

	api, client := setup(t)
	svc := authapi.New(client)

	_, err := svc.Register(context.Background(), authapi.Registration{Name: "Ada", Email: "ada@example.com", Password: "Abcdef1!"})
	assert.ErrorIs(t, err, authapi.ErrMissingToken)
	assert.Equal(t, map[string]any{"name": "Ada", "email": "ada@example.com", "password": "Abcdef1!"}, api.body(authapi.PathRegister))
}

func TestTokenSink(t *testing.T) {
	t.Parallel()

	_, client := setup(t)
	sink := &recordingSink{}
	svc := authapi.New(client, authapi.WithTokenSink(sink))
	ctx := context.Background()

	_, err := svc.Login(ctx, authapi.Credentials{Email: "user@example.com", Password: "Abcdef1!"})
	require.NoError(t, err)
	assert.Equal(t, []string{"token-1"}, sink.tokens)
	assert.Empty(t, client.Authorization(), "the sink owns the authorization")

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, 1, sink.forgets)
}

func TestTokenSink_PersistError(t *testing.T) {
	t.Parallel()

	_, client := setup(t)
	sinkErr := errors.New("store down")
	svc := authapi.New(client, authapi.WithTokenSink(&recordingSink{err: sinkErr}))

	_, err := svc.Login(context.Background(), authapi.Credentials{Email: "user@example.com", Password: "Abcdef1!"})
	assert.ErrorIs(t, err, sinkErr)
}

func TestProfileAndPasswordEndpoints(t *testing.T) {
	t.Parallel()

	api, client := setup(t)
	svc := authapi.New(client)
	ctx := context.Background()

	user, err := svc.GetUserInfo(ctx, authapi.UserInfoQuery{ID: "u9"})
	require.NoError(t, err)
	assert.Equal(t, "u9", user.ID)

	user, err = svc.UpdateUserInfo(ctx, authapi.UpdateUserInfoRequest{Name: "Grace"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", user.Name)
	assert.Equal(t, map[string]any{"name": "Grace"}, api.body(authapi.PathUpdateUserInfo))

	require.NoError(t, svc.ForgotPassword(ctx, authapi.ForgotPasswordRequest{Email: "user@example.com"}))
	assert.Equal(t, map[string]any{"email": "user@example.com"}, api.body(authapi.PathForgotPassword))

	require.NoError(t, svc.ResetPassword(ctx, authapi.ResetPasswordRequest{Token: "t", Password: "Abcdef1!"}))
	assert.Equal(t, map[string]any{"token": "t", "password": "Abcdef1!"}, api.body(authapi.PathResetPassword))

	require.NoError(t, svc.UpdatePassword(ctx, authapi.UpdatePasswordRequest{OldPassword: "a", NewPassword: "b"}))
	assert.Equal(t, map[string]any{"oldPassword": "a", "newPassword": "b"}, api.body(authapi.PathUpdatePassword))
}

func TestLogout_ClearsTokenOnServerError(t *testing.T) {
	t.Parallel()

	api, client := setup(t)
	api.fail("logout", http.StatusInternalServerError)
	client.SetAuthorization("Bearer stale")
	svc := authapi.New(client)

	err := svc.Logout(context.Background())
	assert.True(t, apiclient.IsAPIError(err, http.StatusInternalServerError))
	assert.Empty(t, client.Authorization())
	assert.Equal(t, "Bearer stale", api.authorization(authapi.PathLogout))
}

func TestNilDoer(t *testing.T) {
	t.Parallel()

	svc := authapi.New(nil)
	ctx := context.Background()

	_, err := svc.Login(ctx, authapi.Credentials{})
	assert.ErrorIs(t, err, authapi.ErrNilDoer)
	_, err = svc.GetUserInfo(ctx, authapi.UserInfoQuery{})
	assert.ErrorIs(t, err, authapi.ErrNilDoer)
	assert.ErrorIs(t, svc.ForgotPassword(ctx, authapi.ForgotPasswordRequest{}), authapi.ErrNilDoer)
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", authapi.BearerToken("  "))
	assert.Equal(t, "Bearer abc", authapi.BearerToken("abc"))
	assert.Equal(t, "Bearer abc", authapi.BearerToken("Bearer abc"))
	assert.Equal(t, "bearer abc", authapi.BearerToken("bearer abc"))
}
