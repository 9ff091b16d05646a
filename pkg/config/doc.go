// Package config loads runtime settings from environment variables and
// optional .env files.
//
// Load parses any struct tagged for github.com/caarlos0/env into the value it
// is given. Variables from .env files (read with github.com/joho/godotenv)
// never override variables already present in the process environment.
//
//	type Settings struct {
//		Level int `env:"LEVEL" envDefault:"5"`
//	}
//
//	var s Settings
//	err := config.Load(&s, config.WithPrefix("MUNGE_"))
//
// LoadSettings wraps Load for the munge command's own knobs. A missing
// default ".env" is not an error; a file passed with WithEnvFiles must exist.
package config
