// Package reportserver hosts the score report and the raw history
// database over HTTP.
package reportserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"agenteval/internal/history"
)

// Config captures the settings for serving a history-backed report.
type Config struct {
	Addr   string
	DBPath string

	// Now is used for report timestamps. time.Now when nil.
	Now func() time.Time
}

// Serve starts an HTTP server that hosts the report page and data
// endpoints. It blocks until ctx is cancelled or the server fails.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("reportserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("reportserver: addr is required")
	}
	if cfg.DBPath == "" {
		return errors.New("reportserver: db path is required")
	}

	db, err := history.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	handler, err := NewHandler(db, cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
