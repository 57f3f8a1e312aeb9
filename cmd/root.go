package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"tabi/internal/currency"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	CurrencyRaw string `env:"TABI_CURRENCY" envDefault:"JPY"`
	DebugLog    string `env:"TABI_DEBUG_LOG"`
	NoAltScreen bool   `env:"TABI_NO_ALT_SCREEN"`

	// Derived from CurrencyRaw or set from flags only.
	Currency    currency.Currency
	ExportPath  string
	ShowVersion bool
}

// ParseFlags loads .env files, reads the environment and then applies
// command-line flags, which take precedence.
func ParseFlags(version string, args []string) (*Config, error) {
	return parse(version, args, os.Stderr)
}

func parse(version string, args []string, usage io.Writer) (*Config, error) {
	config := &Config{}

	// Missing .env files are fine. Variables already set win.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := flag.NewFlagSet("tabi", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&config.CurrencyRaw, "currency", config.CurrencyRaw, "Display currency, JPY or INR (or set TABI_CURRENCY)")
	fs.StringVar(&config.ExportPath, "export", "", "Write the itinerary to a SQLite file and exit")
	fs.StringVar(&config.DebugLog, "debug-log", config.DebugLog, "Append debug logs to this file (or set TABI_DEBUG_LOG)")
	fs.BoolVar(&config.NoAltScreen, "no-alt-screen", config.NoAltScreen, "Render inline instead of in the alternate screen")
	fs.BoolVar(&config.ShowVersion, "version", false, fmt.Sprintf("Print the version (%s) and exit", version))
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cur, err := currency.Parse(config.CurrencyRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid currency: %w", err)
	}
	config.Currency = cur

	return config, nil
}
