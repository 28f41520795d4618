package config

import (
	"os"
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := Default()
	cfg.LinkedIn.Email = "test@example.com"
	cfg.LinkedIn.Password = "password123"
	cfg.Group.MembersURL = "https://www.linkedin.com/groups/42/members/"
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Connection.DailyLimit != 25 {
		t.Errorf("expected default daily limit of 25, got %d", cfg.Connection.DailyLimit)
	}
	if cfg.Collector.MaxStaleScrolls != 3 {
		t.Errorf("expected 3 stale scrolls by default, got %d", cfg.Collector.MaxStaleScrolls)
	}
	if cfg.Connection.SkipPending {
		t.Error("pending filter should be off by default")
	}
	if !cfg.Stealth.Headless {
		t.Error("headless should be on by default")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()

	// Should fail without credentials
	if err := cfg.Validate(); err == nil {
		t.Error("validation should fail without credentials")
	}

	cfg = validConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("validation should pass: %v", err)
	}

	cfg.Group.MembersURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("validation should fail without a members URL")
	}

	cfg = validConfig()
	cfg.Connection.DailyLimit = 0
	if err := cfg.Validate(); err == nil {
		t.Error("validation should fail with a zero daily limit")
	}

	cfg = validConfig()
	cfg.Connection.MaxDelaySeconds = cfg.Connection.MinDelaySeconds - 1
	if err := cfg.Validate(); err == nil {
		t.Error("validation should fail when max delay < min delay")
	}

	cfg = validConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("validation should fail on an unknown log level")
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("OUTREACH_TEST_EMAIL", "a@b.com")
	defer os.Unsetenv("OUTREACH_TEST_EMAIL")

	in := "email: ${OUTREACH_TEST_EMAIL}\npassword: ${OUTREACH_TEST_MISSING:fallback}"
	got := expandEnvVars(in)
	want := "email: a@b.com\npassword: fallback"

	if got != want {
		t.Errorf("expandEnvVars = %q, want %q", got, want)
	}
}

func TestDelayGetters(t *testing.T) {
	cfg := Default()
	cfg.Connection.MinDelaySeconds = 10
	cfg.Connection.MaxDelaySeconds = 20

	if cfg.MinDelay() != 10*time.Second {
		t.Errorf("MinDelay = %v", cfg.MinDelay())
	}
	if cfg.MaxDelay() != 20*time.Second {
		t.Errorf("MaxDelay = %v", cfg.MaxDelay())
	}
	if cfg.SettleDelayMin() != 2*time.Second {
		t.Errorf("SettleDelayMin = %v", cfg.SettleDelayMin())
	}

	cfg.Stealth.MinActionDelayMs = 300
	cfg.Stealth.MaxActionDelayMs = 1200
	if cfg.ActionDelayMin() != 300*time.Millisecond {
		t.Errorf("ActionDelayMin = %v", cfg.ActionDelayMin())
	}
	if cfg.ActionDelayMax() != 1200*time.Millisecond {
		t.Errorf("ActionDelayMax = %v", cfg.ActionDelayMax())
	}
}
