// Package config loads application configuration from environment variables
// into annotated Go structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing files are fine), then
// the environment is parsed into any struct using `env` field tags.
//
// # Usage
//
//	type EdgeConfig struct {
//		Addr          string `env:"EDGE_ADDR" envDefault:":8080"`
//		SecureCookies bool   `env:"EDGE_SECURE_COOKIES" envDefault:"false"`
//	}
//
//	var cfg EdgeConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// MustLoad panics on failure and is intended for configuration the process
// cannot start without.
package config
