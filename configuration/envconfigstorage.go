package configuration

import (
	"errors"
	"os"
	"strings"
)

const envPrefix = "TASKBOARD_"

// EnvConfigStorage serves configuration from TASKBOARD_* environment variables
type EnvConfigStorage struct{}

// NewEnvConfigStorage ...
func NewEnvConfigStorage() *EnvConfigStorage {
	return &EnvConfigStorage{}
}

func envName(key Key) string {
	return envPrefix + strings.ToUpper(string(key))
}

// Get ...
func (s *EnvConfigStorage) Get(key Key) (string, error) {
	v, ok := os.LookupEnv(envName(key))
	if !ok || v == "" {
		return "", errors.New("config key not found")
	}
	return v, nil
}

// Set ...
func (s *EnvConfigStorage) Set(key Key, val string) error {
	return os.Setenv(envName(key), val)
}
