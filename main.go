package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"tabi/cmd"
	"tabi/internal/currency"
	"tabi/internal/db"
	"tabi/internal/itinerary"
	"tabi/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse CLI flags
	config, err := cmd.ParseFlags(version, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if config.ShowVersion {
		fmt.Println("tabi", version)
		return
	}

	set := itinerary.Default()

	if config.ExportPath != "" {
		if err := export(config.ExportPath, set); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d days to %s\n", set.Len(), config.ExportPath)
		return
	}

	// The UI owns the terminal, so logs go to a file or nowhere.
	if config.DebugLog != "" {
		f, err := tea.LogToFile(config.DebugLog, "tabi")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("starting tabi %s, currency %s", version, config.Currency)

	var opts []tea.ProgramOption
	if !config.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	// Create and run Bubble Tea app
	conv := currency.NewConverter(currency.DefaultRates)
	p := tea.NewProgram(ui.New(set, conv, config.Currency), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

func export(path string, set *itinerary.Set) error {
	database, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if err := db.SaveItinerary(database, set.Days()); err != nil {
		return fmt.Errorf("failed to export itinerary: %w", err)
	}
	return nil
}
