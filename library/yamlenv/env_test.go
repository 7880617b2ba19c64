package yamlenv

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Conn *Env[string] `yaml:"conn"`
	Port *Env[int]    `yaml:"port"`
}

func TestEnv_PlainScalar(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	if err := yaml.Unmarshal([]byte("conn: postgres://localhost\nport: 8080\n"), &cfg); err != nil {
		t.Fatalf("yaml.Unmarshal returned error: %v", err)
	}

	if cfg.Conn.Value != "postgres://localhost" {
		t.Fatalf("unexpected conn: %q", cfg.Conn.Value)
	}
	if cfg.Port.Value != 8080 {
		t.Fatalf("unexpected port: %d", cfg.Port.Value)
	}
}

func TestEnv_Reference(t *testing.T) {
	t.Setenv("TEST_PG_CONN", "postgres://env-host/db")
	t.Setenv("TEST_PORT", "9090")

	var cfg testConfig
	if err := yaml.Unmarshal([]byte("conn: ${TEST_PG_CONN}\nport: ${TEST_PORT}\n"), &cfg); err != nil {
		t.Fatalf("yaml.Unmarshal returned error: %v", err)
	}

	if cfg.Conn.Value != "postgres://env-host/db" {
		t.Fatalf("unexpected conn: %q", cfg.Conn.Value)
	}
	if cfg.Port.Value != 9090 {
		t.Fatalf("unexpected port: %d", cfg.Port.Value)
	}
}

func TestEnv_MissingVariable(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := yaml.Unmarshal([]byte("conn: ${DEFINITELY_NOT_SET_VAR_42}\n"), &cfg)
	if err == nil {
		t.Fatalf("expected error for unset environment variable")
	}
	if !strings.Contains(err.Error(), "DEFINITELY_NOT_SET_VAR_42") {
		t.Fatalf("error must name the variable: %v", err)
	}
}

// Строка вида ${...} в середине значения ссылкой не считается.
func TestEnv_PartialPatternIsLiteral(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	if err := yaml.Unmarshal([]byte("conn: \"prefix-${NOT_A_REF}\"\n"), &cfg); err != nil {
		t.Fatalf("yaml.Unmarshal returned error: %v", err)
	}
	if cfg.Conn.Value != "prefix-${NOT_A_REF}" {
		t.Fatalf("unexpected conn: %q", cfg.Conn.Value)
	}
}
