package config

import (
	"fmt"
	"os"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// LoadEnvironment reads SITEMETA_ENV. An unset variable means production.
func LoadEnvironment() (Environment, error) {
	env := os.Getenv(EnvironmentEnv)

	switch env {
	case string(EnvDevelopment):
		return EnvDevelopment, nil
	case string(EnvProduction), "":
		return EnvProduction, nil
	default:
		return "", fmt.Errorf("invalid %s: %q", EnvironmentEnv, env)
	}
}
