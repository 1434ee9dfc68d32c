package main

import (
	"testing"

	"github.com/Jyoti0525/habitflow/internal/constants"
)

func TestFlagHasEmbeddedCredentials(t *testing.T) {
	tests := []struct {
		name string
		flag string
		want bool
	}{
		{"default path", constants.DefaultConfigPath, false},
		{"json path", "/tmp/habitflow.json", false},
		{"postgres without password", "postgresql://admin@db.internal:5432/habitflow", false},
		{"postgres with password", "postgresql://admin:pw@db.internal:5432/habitflow", true},
		{"postgres scheme with password", "postgres://admin:pw@db.internal:5432/habitflow", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := flagHasEmbeddedCredentials(tt.flag); got != tt.want {
				t.Errorf("expected %v for %s, got %v", tt.want, tt.flag, got)
			}
		})
	}
}

func TestResolveConfigEnvPassword(t *testing.T) {
	// A password-bearing DSN from the environment resolves as-is; the
	// embedded-credentials gate applies to the flag, not the result.
	dsn := "postgresql://admin:pw@db.internal:5432/habitflow"
	t.Setenv("HABITFLOW_DB_CONNECTION", dsn)

	if got := resolveConfig(constants.DefaultConfigPath); got != dsn {
		t.Errorf("expected env connection string, got %s", got)
	}
	if flagHasEmbeddedCredentials(constants.DefaultConfigPath) {
		t.Error("default flag should not trip the credentials gate")
	}
}

func TestResolveConfigFlagWins(t *testing.T) {
	t.Setenv("HABITFLOW_DB_CONNECTION", "postgresql://admin@env.internal/habitflow")

	if got := resolveConfig("/tmp/custom.db"); got != "/tmp/custom.db" {
		t.Errorf("explicit flag should win over the environment, got %s", got)
	}
	if got := resolveConfig("postgresql://admin@flag.internal/habitflow"); got != "postgresql://admin@flag.internal/habitflow" {
		t.Errorf("explicit postgres flag should win over the environment, got %s", got)
	}
}
