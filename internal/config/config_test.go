package config

import (
	"os"
	"testing"
)

func TestGetIntBool(t *testing.T) {
	os.Setenv("X_INT", "42")
	t.Cleanup(func() { os.Unsetenv("X_INT") })
	if v := getInt("X_INT", 1); v != 42 {
		t.Fatalf("want 42, got %d", v)
	}

	os.Setenv("X_BOOL_T", "true")
	os.Setenv("X_BOOL_F", "false")
	t.Cleanup(func() { os.Unsetenv("X_BOOL_T"); os.Unsetenv("X_BOOL_F") })
	if !getBool("X_BOOL_T", false) {
		t.Fatalf("want true")
	}
	if getBool("X_BOOL_F", true) {
		t.Fatalf("want false")
	}
}

func TestStoreValidatorRejects(t *testing.T) {
	cfg := &Config{}
	cfg.RateLimit.Max = 10
	s := NewStore(cfg)
	s.AddValidator(func(next *Config, changed map[string]bool) error {
		if next.RateLimit.Max < 0 {
			return os.ErrInvalid
		}
		return nil
	})

	bad := cloneConfig(cfg)
	bad.RateLimit.Max = -1
	if s.UpdateValidated(bad, map[string]bool{"ratelimit.max": true}) {
		t.Fatalf("negative limit should be rejected")
	}
	if s.Get().RateLimit.Max != 10 {
		t.Fatalf("config must stay unchanged after rejected update")
	}

	good := cloneConfig(cfg)
	good.RateLimit.Max = 50
	if !s.UpdateValidated(good, map[string]bool{"ratelimit.max": true}) {
		t.Fatalf("valid update rejected")
	}
	if s.Get().RateLimit.Max != 50 {
		t.Fatalf("update not applied")
	}
}
