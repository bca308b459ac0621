package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults point at the real public
// APIs with sane timeouts.
func TestLoadConfig_Defaults(t *testing.T) {
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("BCB_BASE_URL")
	_ = os.Unsetenv("SIDRA_BASE_URL")
	_ = os.Unsetenv("FOCUS_BASE_URL")
	_ = os.Unsetenv("BCB_TIMEOUT_SECONDS")
	_ = os.Unsetenv("SIDRA_TIMEOUT_SECONDS")
	_ = os.Unsetenv("FOCUS_TIMEOUT_SECONDS")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	up := AppConfig.Upstream
	if up.BCBBaseURL != "https://api.bcb.gov.br/dados/serie/bcdata.sgs" {
		t.Fatalf("unexpected BCB base URL: %q", up.BCBBaseURL)
	}
	if up.SidraBaseURL != "https://apisidra.ibge.gov.br/values" {
		t.Fatalf("unexpected SIDRA base URL: %q", up.SidraBaseURL)
	}
	if up.FocusBaseURL != "https://olinda.bcb.gov.br/olinda/servico/Expectativas/versao/v1/odata" {
		t.Fatalf("unexpected Focus base URL: %q", up.FocusBaseURL)
	}
	if up.BCBTimeout != 30*time.Second || up.SidraTimeout != 20*time.Second || up.FocusTimeout != 15*time.Second {
		t.Fatalf("unexpected timeouts: %+v", up)
	}
}

// TestLoadConfig_EnvOverride verifies that environment variables take
// precedence over defaults.
func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("BCB_BASE_URL", "http://localhost:9999/sgs")
	t.Setenv("BCB_TIMEOUT_SECONDS", "5")

	LoadConfig()

	if AppConfig.Upstream.BCBBaseURL != "http://localhost:9999/sgs" {
		t.Fatalf("env override not applied: %q", AppConfig.Upstream.BCBBaseURL)
	}
	if AppConfig.Upstream.BCBTimeout != 5*time.Second {
		t.Fatalf("env override not applied: %v", AppConfig.Upstream.BCBTimeout)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig
// triggers a fatal exit when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
