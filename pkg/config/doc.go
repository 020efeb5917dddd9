// Package config loads application configuration from environment variables
// and optional dotenv files into a typed struct.
//
// It wraps github.com/joho/godotenv for reading dotenv files and
// github.com/caarlos0/env/v11 for parsing `env` / `envDefault` struct tags.
//
// # Usage
//
//	type Config struct {
//		BaseURL string        `env:"API_BASE_URL" envDefault:"https://bootcamper.xyz/api/bootcamper/admin"`
//		Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithEnvFiles(".env", ".env.local")); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig, dotenv read failures with
// ErrLoadingEnvFile, so callers can match them with errors.Is.
package config
