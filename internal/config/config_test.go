package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      "8000",
			Namespace: "biolink",
			Database:  "main",
		},
		JWT: JWTConfig{
			PrivateKeyPath: "./keys/private.pem",
			PublicKeyPath:  "./keys/public.pem",
			ExpirationMins: 1440,
			Issuer:         "api.biolink.page",
		},
		RateLimit: RateLimitConfig{
			Rate:   100,
			Window: time.Minute,
			Burst:  20,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
}

func TestConfig_Validate_ProductionRequiresKeys(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "production"
	cfg.JWT.PrivateKeyPath = ""
	cfg.JWT.PublicKeyPath = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing key paths in production")
	}
	if !strings.Contains(err.Error(), "JWT_PRIVATE_KEY_PATH") {
		t.Errorf("expected error to mention JWT_PRIVATE_KEY_PATH, got: %v", err)
	}
}

func TestConfig_Validate_CollectsMultipleErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""
	cfg.Database.Host = ""
	cfg.JWT.ExpirationMins = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"SERVER_PORT", "DB_HOST", "JWT_EXPIRATION_MINS"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected joined error to mention %s, got: %v", want, err)
		}
	}
}

func TestConfig_Validate_BadEmailDomain(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Registration.AllowedEmailDomains = []string{"gmail.com", "not-a-domain"}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for malformed email domain")
	}
	if !strings.Contains(err.Error(), "not-a-domain") {
		t.Errorf("expected error to name the bad entry, got: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port == "" {
		t.Error("expected default server port")
	}
	if cfg.Database.Namespace == "" {
		t.Error("expected default database namespace")
	}
	if cfg.JWT.ExpirationMins <= 0 {
		t.Error("expected positive default token expiration")
	}
}
