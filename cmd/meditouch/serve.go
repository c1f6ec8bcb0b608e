package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ngamdu/Meditouch/internal/application/usecase"
	"github.com/Ngamdu/Meditouch/internal/infrastructure/ai/gemini"
	"github.com/Ngamdu/Meditouch/internal/infrastructure/journal"
	"github.com/Ngamdu/Meditouch/internal/presentation/httpapi"
	"go.uber.org/zap"
)

// ServeCmd runs the HTTP API.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides server.addr)."`
}

// Run starts the server and blocks until SIGINT or SIGTERM.
func (c *ServeCmd) Run(rt *runtime) error {
	cfg := rt.store.Settings
	addr := cfg.Server.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	client := gemini.NewClient(gemini.Config{
		APIKey:  cfg.GenAI.APIKey,
		Model:   cfg.GenAI.Model,
		BaseURL: cfg.GenAI.BaseURL,
	})
	if !client.Configured() {
		rt.logger.Warn("GOOGLE_GENAI_API_KEY is not set; menu requests will fail")
	}

	var repo usecase.JournalRepository
	if path := cfg.JournalPath(); path != "" {
		store, err := journal.Open(path)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				rt.logger.Warn("close journal", zap.Error(err))
			}
		}()
		repo = store
		rt.logger.Debug("journal enabled", zap.String("path", path))
	}

	menus := usecase.NewMenuService(client, repo, rt.logger)
	handler := httpapi.NewHandler(menus, rt.logger).Routes()

	ctx, stop := signal.NotifyContext(rt.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpapi.NewServer(addr, handler, rt.logger).Run(ctx)
}
