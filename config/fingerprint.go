package config

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint hashes the canonical YAML encoding of cfg. Formatting,
// comments and key order in the source file do not change it.
func Fingerprint(cfg *Config) (string, error) {
	data, err := Marshal(cfg, FormatYAML)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
