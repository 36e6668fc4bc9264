package reportserver

import (
	"database/sql"
	"errors"
	"io"
	"net/http"
	"time"

	"agenteval/internal/report"
)

// NewHandler builds the HTTP handler for the report page and the raw
// DuckDB history file.
func NewHandler(db *sql.DB, cfg Config) (http.Handler, error) {
	if db == nil {
		return nil, errors.New("reportserver: db is nil")
	}
	if cfg.DBPath == "" {
		return nil, errors.New("reportserver: db path is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	mux := http.NewServeMux()
	mux.Handle("/", serveReport(db, now))
	mux.Handle("/data/history.duckdb", serveDatabase(cfg.DBPath))
	return mux, nil
}

// serveReport renders the report page from the current database state,
// so a reload reflects newly pulled evaluations.
func serveReport(db *sql.DB, now func() time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := report.Build(r.Context(), db, now())
		if err != nil {
			http.Error(w, "failed to build report", http.StatusInternalServerError)
			return
		}
		html, err := report.RenderHTML(r.Context(), data)
		if err != nil {
			http.Error(w, "failed to render report", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, html)
	})
}

// serveDatabase serves the DuckDB file from disk for local inspection.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	})
}
