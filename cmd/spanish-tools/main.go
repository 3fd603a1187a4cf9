package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/jessejeter/spanish-tools/internal/config"
	"github.com/jessejeter/spanish-tools/internal/deck"
	"github.com/jessejeter/spanish-tools/internal/storage"
	"github.com/jessejeter/spanish-tools/internal/web"
)

func main() {
	flags := pflag.NewFlagSet("spanish-tools", pflag.ExitOnError)
	configPath := flags.String("config", "", "Path to a YAML config file")
	flags.String("db", "spanish-tools.db", "Path to the SQLite database file")
	flags.String("addr", "localhost:8080", "Address for the web UI to listen on")
	flags.Bool("drills", false, "Generate present-tense conjugation drills for verb entries")
	addSource := flags.String("add-source", "", "Register a deck source (directory or git URL) and exit")
	runSync := flags.Bool("sync", false, "Sync all sources and exit")
	serve := flags.Bool("serve", false, "Sync once, then serve the web UI")
	flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Database opened successfully", "path", cfg.DBPath)

	syncOpts := deck.Options{
		ReposDir:       cfg.ReposDir,
		GenerateDrills: cfg.Drills,
	}

	switch {
	case *addSource != "":
		registerSource(db, *addSource)

	case *runSync:
		if err := deck.RunSync(db, syncOpts); err != nil {
			slog.Error("Sync failed", "error", err)
			os.Exit(1)
		}

	case *serve:
		if err := deck.RunSync(db, syncOpts); err != nil {
			slog.Error("Sync failed", "error", err)
			os.Exit(1)
		}
		server := web.NewServer(db, cfg.Params(), syncOpts)
		slog.Info("Serving web UI", "addr", cfg.Addr)
		if err := http.ListenAndServe(cfg.Addr, server); err != nil {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}

	default:
		flags.Usage()
	}
}

// registerSource stores a new deck source, classifying it as local or git.
func registerSource(db *storage.DB, path string) {
	existing, err := db.FindSourceByPath(path)
	if err != nil {
		slog.Error("Failed to look up source", "path", path, "error", err)
		os.Exit(1)
	}
	if existing != nil {
		slog.Info("Source already registered", "path", path, "id", existing.ID)
		return
	}

	sourceType := deck.SourceType(path)
	id, err := db.InsertSource(path, sourceType)
	if err != nil {
		slog.Error("Failed to add source", "path", path, "error", err)
		os.Exit(1)
	}
	slog.Info("Source added", "id", id, "type", sourceType, "path", path)
}
