package tui_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootcamper/authkit/pkg/apiclient"
	"github.com/bootcamper/authkit/pkg/authapi"
	"github.com/bootcamper/authkit/pkg/form"
	"github.com/bootcamper/authkit/pkg/tui"
)

type stubDriver struct {
	inputs     []string
	passwords  []string
	confirm    []bool
	info       []string
	inputPos   int
	passPos    int
	confirmPos int
	prompts    []tui.InputConfig
}

func (s *stubDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg tui.InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ tui.ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.info = append(s.info, msg)
	return nil
}

type scriptedAuth struct {
	mu        sync.Mutex
	errs      []error
	logins    []authapi.Credentials
	registers []authapi.Registration
}

func (a *scriptedAuth) next() error {
	if len(a.errs) == 0 {
		return nil
	}
	err := a.errs[0]
	a.errs = a.errs[1:]
	return err
}

func (a *scriptedAuth) Login(_ context.Context, creds authapi.Credentials) (*authapi.AuthResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logins = append(a.logins, creds)
	if err := a.next(); err != nil {
		return nil, err
	}
	return &authapi.AuthResponse{Token: "t"}, nil
}

func (a *scriptedAuth) Register(_ context.Context, reg authapi.Registration) (*authapi.AuthResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.registers = append(a.registers, reg)
	if err := a.next(); err != nil {
		return nil, err
	}
	return &authapi.AuthResponse{Token: "t"}, nil
}

func newRunner(t *testing.T, auth form.Authenticator, driver tui.PromptDriver, opts ...tui.Option) *tui.Runner {
	t.Helper()
	ctrl, err := form.New(auth)
	require.NoError(t, err)
	return tui.NewRunner(ctrl, append([]tui.Option{tui.WithDriver(driver)}, opts...)...)
}

func TestRunner_Login(t *testing.T) {
	t.Parallel()

	auth := &scriptedAuth{}
	driver := &stubDriver{
		confirm:   []bool{false},
		inputs:    []string{"", "not-an-email", "user@example.com"},
		passwords: []string{"weak", "Abcdef1!"},
	}

	require.NoError(t, newRunner(t, auth, driver).Run(context.Background()))

	assert.Equal(t, []authapi.Credentials{{Email: "user@example.com", Password: "Abcdef1!"}}, auth.logins)
	assert.Contains(t, driver.info, "  Email cannot be empty")
	assert.Contains(t, driver.info, "  Invalid email address")
	assert.Contains(t, driver.info, "  Password must contain at least one uppercase and lowercase letter, number and special characters")
	assert.Equal(t, "Signed in as user@example.com", driver.info[len(driver.info)-1])
	assert.Equal(t, "Email", driver.prompts[0].Message)
}

func TestRunner_Register(t *testing.T) {
	t.Parallel()

	auth := &scriptedAuth{}
	driver := &stubDriver{
		confirm:   []bool{true},
		inputs:    []string{"  ", "Ada", "ada@example.com"},
		passwords: []string{"Abcdef1!"},
	}

	require.NoError(t, newRunner(t, auth, driver).Run(context.Background()))

	assert.Equal(t, []authapi.Registration{{Name: "Ada", Email: "ada@example.com", Password: "Abcdef1!"}}, auth.registers)
	assert.Equal(t, "Login", driver.info[0])
	assert.Equal(t, "Sign Up", driver.info[1])
	assert.Contains(t, driver.info, "  Name cannot be empty")
	assert.Equal(t, "Account created for ada@example.com", driver.info[len(driver.info)-1])
}

func TestRunner_RetryAfterRemoteFailure(t *testing.T) {
	t.Parallel()

	auth := &scriptedAuth{errs: []error{&apiclient.APIError{StatusCode: 401, Message: "Invalid credentials"}}}
	driver := &stubDriver{
		confirm:   []bool{false, true},
		inputs:    []string{"user@example.com", "user@example.com"},
		passwords: []string{"Wrongpass1!", "Abcdef1!"},
	}

	require.NoError(t, newRunner(t, auth, driver).Run(context.Background()))

	require.Len(t, auth.logins, 2)
	assert.Equal(t, "Abcdef1!", auth.logins[1].Password)
	assert.Contains(t, driver.info, "! Invalid credentials")
	assert.Equal(t, "user@example.com", driver.prompts[2].Default, "previous value is offered again")
}

func TestRunner_GiveUpAfterRemoteFailure(t *testing.T) {
	t.Parallel()

	auth := &scriptedAuth{errs: []error{&apiclient.APIError{StatusCode: 401, Message: "Invalid credentials"}}}
	driver := &stubDriver{
		confirm:   []bool{false, false},
		inputs:    []string{"user@example.com"},
		passwords: []string{"Abcdef1!"},
	}

	err := newRunner(t, auth, driver).Run(context.Background())
	assert.True(t, apiclient.IsAPIError(err, 401))
}

func TestRunner_TooManyAttempts(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{
		confirm: []bool{false},
		inputs:  []string{"a", "b"},
	}

	err := newRunner(t, &scriptedAuth{}, driver, tui.WithMaxAttempts(2)).Run(context.Background())
	assert.ErrorIs(t, err, tui.ErrTooManyAttempts)
	assert.Equal(t, "Too many invalid attempts", driver.info[len(driver.info)-1])
}

func TestRunner_PromptError(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{}
	err := newRunner(t, &scriptedAuth{}, driver).Run(context.Background())
	assert.EqualError(t, err, "no confirm scripted")
}
