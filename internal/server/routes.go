package server

import (
	"log/slog"
	"net/http"

	"braintrainer/internal/badges"
	"braintrainer/internal/config"
	"braintrainer/internal/metrics"
	"braintrainer/internal/notify"
	"braintrainer/internal/stats"
	"braintrainer/internal/storage"
	"braintrainer/internal/unlocks"
)

type Server struct {
	Repo    storage.Repository
	Model   *stats.Model
	Badges  *badges.Engine
	Unlocks *unlocks.Ledger
	Hub     *notify.Hub
}

func Run() error {
	cfg := config.Load()
	slog.SetDefault(newLogger(cfg.LogLevel))

	repo := openRepository(cfg)
	defer repo.Close()

	model := stats.NewModel()
	srv := &Server{
		Repo:    repo,
		Model:   model,
		Badges:  badges.NewEngine(model, repo),
		Unlocks: unlocks.NewLedger(repo),
		Hub:     notify.NewHub(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/profiles", srv.handleProfiles)
	mux.HandleFunc("/profiles/", srv.handleProfile)
	mux.HandleFunc("/games", srv.handleGames)
	mux.HandleFunc("/ws", srv.handleWS)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.Handle("/metrics", metrics.Handler())

	addr := "0.0.0.0:" + cfg.Port
	slog.Info("server listening", "addr", addr)
	return http.ListenAndServe(addr, mux)
}

// openRepository picks postgres when DATABASE_URL is set, the local sqlite
// file otherwise. Falls back to the in-memory store so the app still runs
// (without persistence) when the database is unreachable.
func openRepository(cfg config.Config) storage.Repository {
	if cfg.DatabaseURL != "" {
		repo, err := storage.NewPostgresRepository(cfg.DatabaseURL)
		if err == nil {
			return repo
		}
		slog.Error("postgres unavailable, falling back to memory store", "error", err)
		return storage.NewMemoryRepository()
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLitePath)
	if err == nil {
		return repo
	}
	slog.Error("sqlite unavailable, falling back to memory store", "error", err)
	return storage.NewMemoryRepository()
}
