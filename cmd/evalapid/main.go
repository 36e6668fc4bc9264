package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agenteval/internal/api"
	"agenteval/internal/notify"
	"agenteval/internal/platform"
	"agenteval/pkg/agenteval"
)

// main launches evalapid, the in-memory evaluation service daemon.
func main() {
	os.Exit(run())
}

// run executes evalapid and returns an exit code.
func run() int {
	configPath := flag.String("config", "evalapid.yaml", "path to evalapid config")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	suites := platform.DefaultSuites(time.Now())
	if cfg.Catalog.SeedPath != "" {
		suites, err = platform.LoadSuiteSeed(cfg.Catalog.SeedPath, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "catalog seed error: %v\n", err)
			return 1
		}
	}

	logf := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}

	// The dispatcher reads webhook registrations from the store, and the
	// store reports lifecycle events to the dispatcher. The closure breaks
	// the construction cycle; events cannot fire before New returns.
	var store *platform.Store
	dispatcher := notify.New(notify.Config{
		Webhooks:        func() []*agenteval.Webhook { return store.Webhooks() },
		DeliveryTimeout: cfg.deliveryTimeout(),
		Logf:            logf,
	})
	store = platform.New(platform.Config{
		Timings: platform.Timings{
			PendingFor: cfg.pendingFor(),
			RunningFor: cfg.runningFor(),
		},
		Org:      cfg.Server.Org,
		Suites:   suites,
		Listener: dispatcher.Handle,
	})

	handler := api.NewHandler(api.Config{
		Store:  store,
		APIKey: cfg.Server.APIKey,
		Now:    time.Now,
	})
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/", handler)

	server := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepLoop(ctx, store, cfg.sweepInterval())

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	fmt.Fprintf(os.Stderr, "evalapid listening on %s\n", cfg.Server.ListenAddr)

	select {
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "shutting down")
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		return 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
	}
	dispatcher.Wait()
	return 0
}

// sweepLoop materializes lifecycle transitions on a timer so webhook
// deliveries fire even when no client is polling.
func sweepLoop(ctx context.Context, store *platform.Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.Sweep()
		}
	}
}
