package authapi

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bootcamper/authkit/pkg/logger"
)

// Endpoint paths, relative to the client base URL.
const (
	PathLogin          = "/auth/v1/login"
	PathRegister       = "/auth/v1/register"
	PathGetUserInfo    = "/auth/v1/getUserInfo"
	PathForgotPassword = "/auth/v1/forgotPassword"
	PathResetPassword  = "/auth/v1/resetPassword"
	PathUpdateUserInfo = "/auth/v1/updateUserInfo"
	PathUpdatePassword = "/auth/v1/updatePassword"
	PathLogout         = "/auth/v1/logout"
)

// Doer sends JSON requests. *apiclient.Client implements it.
type Doer interface {
	Get(ctx context.Context, path string, params, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

// Authorizer receives the Authorization header value for later requests.
// *apiclient.Client implements it.
type Authorizer interface {
	SetAuthorization(value string)
}

// TokenSink is told about tokens obtained by Login and Register and about
// Logout. session.Keeper implements it.
type TokenSink interface {
	Persist(ctx context.Context, token string) error
	Forget(ctx context.Context) error
}

// Service calls the authentication endpoints.
type Service struct {
	doer   Doer
	sink   TokenSink
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTokenSink routes obtained tokens to sink instead of setting the
// Doer's authorization directly.
func WithTokenSink(sink TokenSink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service sending requests through doer.
func New(doer Doer, opts ...Option) *Service {
	s := &Service{
		doer:   doer,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login authenticates with email and password.
func (s *Service) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	return s.authenticate(ctx, PathLogin, creds)
}

// Register creates an account and authenticates it.
func (s *Service) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	return s.authenticate(ctx, PathRegister, reg)
}

func (s *Service) authenticate(ctx context.Context, path string, body any) (*AuthResponse, error) {
	if s.doer == nil {
		return nil, ErrNilDoer
	}

	var resp AuthResponse
	if err := s.doer.Post(ctx, path, body, &resp); err != nil {
		return nil, err
	}
	if strings.TrimSpace(resp.Token) == "" {
		return nil, ErrMissingToken
	}

	if err := s.storeToken(ctx, resp.Token); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "authenticated",
		logger.Path(path),
		slog.String("user_id", resp.User.ID),
	)
	return &resp, nil
}

// GetUserInfo returns the user selected by query.
func (s *Service) GetUserInfo(ctx context.Context, query UserInfoQuery) (*User, error) {
	if s.doer == nil {
		return nil, ErrNilDoer
	}

	var user User
	if err := s.doer.Get(ctx, PathGetUserInfo, query, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ForgotPassword asks the server to send a password reset email.
func (s *Service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	return s.post(ctx, PathForgotPassword, req)
}

// ResetPassword sets a new password using a reset token.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	return s.post(ctx, PathResetPassword, req)
}

// UpdateUserInfo updates the authenticated user and returns the stored result.
func (s *Service) UpdateUserInfo(ctx context.Context, req UpdateUserInfoRequest) (*User, error) {
	if s.doer == nil {
		return nil, ErrNilDoer
	}

	var user User
	if err := s.doer.Post(ctx, PathUpdateUserInfo, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword changes the signed-in user's password.
func (s *Service) UpdatePassword(ctx context.Context, req UpdatePasswordRequest) error {
	return s.post(ctx, PathUpdatePassword, req)
}

// Logout ends the session on the server and clears the local token. The local
// token is cleared even when the server call fails.
func (s *Service) Logout(ctx context.Context) error {
	err := s.post(ctx, PathLogout, struct{}{})
	if clearErr := s.clearToken(ctx); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

func (s *Service) post(ctx context.Context, path string, body any) error {
	if s.doer == nil {
		return ErrNilDoer
	}
	return s.doer.Post(ctx, path, body, nil)
}

func (s *Service) storeToken(ctx context.Context, token string) error {
	if s.sink != nil {
		return s.sink.Persist(ctx, token)
	}
	if a, ok := s.doer.(Authorizer); ok {
		a.SetAuthorization(BearerToken(token))
	}
	return nil
}

func (s *Service) clearToken(ctx context.Context) error {
	if s.sink != nil {
		return s.sink.Forget(ctx)
	}
	if a, ok := s.doer.(Authorizer); ok {
		a.SetAuthorization("")
	}
	return nil
}

// BearerToken formats token as an Authorization header value. Tokens that
// already carry a scheme are returned unchanged.
func BearerToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if scheme, _, ok := strings.Cut(token, " "); ok && strings.EqualFold(scheme, "bearer") {
		return token
	}
	return "Bearer " + token
}
