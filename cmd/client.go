package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jfmyers9/genius/internal/config"
	"github.com/jfmyers9/genius/internal/lookup"
	"github.com/rs/zerolog"
)

// session bundles what every API command needs. Close releases all of it.
type session struct {
	cfg     *config.Config
	logger  zerolog.Logger
	client  *lookup.Client
	history *lookup.History
}

// openSession loads configuration and opens the history and API client
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if !cfg.HasCredentials() {
		return nil, fmt.Errorf("Genius credentials not configured. Run 'genius auth' or set GENIUS_CLIENT_ID and GENIUS_CLIENT_SECRET")
	}

	logger := setupLogger(logFile, logLevel)

	history := openHistory(cfg.HistoryDB, logger)

	client, err := lookup.New(lookup.Options{
		ClientID:     cfg.Genius.ClientID,
		ClientSecret: cfg.Genius.ClientSecret,
		AccessToken:  cfg.Genius.AccessToken,
		BaseURL:      cfg.Genius.BaseURL,
		UserAgent:    cfg.Genius.UserAgent,
		Timeout:      time.Duration(cfg.Timeout) * time.Second,
		Logger:       logger,
		History:      history,
	})
	if err != nil {
		if history != nil {
			_ = history.Close()
		}
		return nil, err
	}

	return &session{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		history: history,
	}, nil
}

// openHistory opens the history database. A database that cannot be opened
// disables history instead of failing the command.
func openHistory(path string, logger zerolog.Logger) *lookup.History {
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("History disabled")
		return nil
	}

	history, err := lookup.NewHistory(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("History disabled")
		return nil
	}

	logger.Debug().Str("path", path).Msg("Using history database")
	return history
}

// Close releases the API client and history database
func (s *session) Close() {
	if err := s.client.Close(); err != nil {
		s.logger.Error().Err(err).Msg("Failed to close client")
	}
	if s.history != nil {
		if err := s.history.Close(); err != nil {
			s.logger.Error().Err(err).Msg("Failed to close history")
		}
	}
}
