// Package token stores the admin bearer token for CLI use. The web
// dashboard keeps tokens in sessions instead; this file-backed store
// exists so scripted CLI calls survive between invocations.
package token

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const credentialsFileName = "credentials.json"

// EnvToken is the environment variable consulted before the
// credentials file.
const EnvToken = "SHOPADMIN_TOKEN"

type credentials struct {
	AdminToken string `json:"adminToken"`
}

// Path returns the credentials file path (~/.shopadmin/credentials.json).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".shopadmin", credentialsFileName), nil
}

// Load returns the stored admin token, preferring the SHOPADMIN_TOKEN
// environment variable. An empty string means no token is stored.
func Load() string {
	if tok := os.Getenv(EnvToken); tok != "" {
		return strings.TrimSpace(tok)
	}

	p, err := Path()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return ""
	}
	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return ""
	}
	return strings.TrimSpace(creds.AdminToken)
}

// Save writes the admin token to the credentials file, creating the
// config directory when needed.
func Save(tok string) error {
	if strings.TrimSpace(tok) == "" {
		return fmt.Errorf("token cannot be empty")
	}

	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(credentials{AdminToken: tok}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.WriteFile(p, data, 0600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Clear removes the stored credentials. Clearing an absent file is not
// an error.
func Clear() error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
