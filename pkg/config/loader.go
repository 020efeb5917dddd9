package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a Load call.
type Option func(*options)

type options struct {
	files    []string
	prefix   string
	override bool
}

// WithEnvFiles reads the given dotenv files before parsing. Missing files are
// ignored. Without this option the default .env in the working directory is
// tried.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
	}
}

// WithOverride lets values from dotenv files replace variables that are
// already set in the process environment.
func WithOverride() Option {
	return func(o *options) {
		o.override = true
	}
}

// WithPrefix only considers variables starting with prefix; the prefix is
// stripped before matching struct tags.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load parses environment variables into v using `env` and `envDefault`
// struct tags.
//
// Example:
//
//	type ClientConfig struct {
//		BaseURL string        `env:"API_BASE_URL,required"`
//		Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if err := loadEnvFiles(o); err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(o *options) error {
	if len(o.files) == 0 {
		// The default .env is optional
		_ = godotenv.Load()
		return nil
	}

	existing := make([]string, 0, len(o.files))
	for _, f := range o.files {
		if _, err := godotenv.Read(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	var err error
	if o.override {
		err = godotenv.Overload(existing...)
	} else {
		err = godotenv.Load(existing...)
	}
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
