package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"tabi/internal/currency"
)

// isolate runs the test from an empty directory with the tabi variables
// unset, restoring both afterwards.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, key := range []string{"TABI_CURRENCY", "TABI_DEBUG_LOG", "TABI_NO_ALT_SCREEN"} {
		key := key
		prev, had := os.LookupEnv(key)
		_ = os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(key, prev)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
	return dir
}

func TestParseDefaults(t *testing.T) {
	isolate(t)
	cfg, err := parse("test", nil, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Currency != currency.JPY || cfg.ExportPath != "" || cfg.DebugLog != "" || cfg.NoAltScreen || cfg.ShowVersion {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("TABI_CURRENCY", "inr")
	t.Setenv("TABI_NO_ALT_SCREEN", "true")

	cfg, err := parse("test", nil, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Currency != currency.INR || !cfg.NoAltScreen {
		t.Fatalf("environment not applied: %+v", cfg)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("TABI_CURRENCY", "INR")
	t.Setenv("TABI_DEBUG_LOG", "env.log")

	cfg, err := parse("test", []string{"-currency", "jpy", "-debug-log", "flag.log", "-export", "trip.db", "-version"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Currency != currency.JPY {
		t.Errorf("Currency = %s, want JPY", cfg.Currency)
	}
	if cfg.DebugLog != "flag.log" {
		t.Errorf("DebugLog = %q, want flag.log", cfg.DebugLog)
	}
	if cfg.ExportPath != "trip.db" || !cfg.ShowVersion {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestDotEnvFiles(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TABI_CURRENCY=INR\nTABI_DEBUG_LOG=dotenv.log\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env.local"), []byte("TABI_CURRENCY=JPY\nTABI_NO_ALT_SCREEN=1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := parse("test", nil, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// .env is loaded first and does not get overridden by .env.local.
	if cfg.Currency != currency.INR || cfg.DebugLog != "dotenv.log" || !cfg.NoAltScreen {
		t.Fatalf("dotenv values not applied: %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	isolate(t)

	if _, err := parse("test", []string{"-currency", "USD"}, io.Discard); !errors.Is(err, currency.ErrUnknownCurrency) {
		t.Errorf("unknown currency err = %v", err)
	}
	if _, err := parse("test", []string{"-nope"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
	if _, err := parse("test", []string{"extra"}, io.Discard); err == nil {
		t.Error("expected error for positional arguments")
	}
}
