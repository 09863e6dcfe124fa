package config

import (
	"testing"
)

func TestParseAdminIDs(t *testing.T) {
	set, err := ParseAdminIDs("123, 456,789")
	if err != nil {
		t.Fatalf("ParseAdminIDs: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("expected 3 admins, got %d", len(set))
	}
	if !set.Contains(456) {
		t.Fatalf("expected set to contain 456")
	}
	if set.Contains(999) {
		t.Fatalf("did not expect set to contain 999")
	}
}

func TestParseAdminIDsEmpty(t *testing.T) {
	set, err := ParseAdminIDs("")
	if err != nil {
		t.Fatalf("ParseAdminIDs: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %d entries", len(set))
	}
}

func TestParseAdminIDsInvalid(t *testing.T) {
	if _, err := ParseAdminIDs("123,abc"); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("TOKEN", "test-token")
	t.Setenv("ADMIN_USER_IDS", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UsersFile != "users.json" {
		t.Fatalf("expected default users file, got %q", cfg.UsersFile)
	}
	if cfg.ProviderBase != "https://my.telegram.org" {
		t.Fatalf("expected default provider base, got %q", cfg.ProviderBase)
	}
	if cfg.HTTPTimeout.Seconds() != 20 {
		t.Fatalf("expected 20s http timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.BroadcastDelay.Milliseconds() != 500 {
		t.Fatalf("expected 500ms broadcast delay, got %v", cfg.BroadcastDelay)
	}
	if !cfg.AdminIDs.Contains(42) {
		t.Fatalf("expected admin 42")
	}
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TOKEN", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when TOKEN is missing")
	}
}
