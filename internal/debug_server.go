package internal

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"dm-relay/repositories"
)

//go:embed inspect.html
var templatesFS embed.FS

const defaultInspectLimit = 50

type StatsProvider func() map[string]any

type PageData struct {
	Limit   int
	Uploads []repositories.UploadRecord
	Stats   map[string]any
}

// StartDebugServer exposes a read-only inspect page: live relay counters
// plus the most recent upload records from the media index. Strictly an
// operator surface, never reachable through the public listener.
func StartDebugServer(repository repositories.IMediaRepository, port int,
	endpoint string, statsProvider StatsProvider, log *slog.Logger) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		limit := defaultInspectLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		data := PageData{
			Limit: limit,
			Stats: make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		uploads, err := repository.ListUploads(limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data.Uploads = uploads

		if err := tmpl.Execute(w, data); err != nil {
			log.Error("Failed to render inspect page", "error", err)
		}
	})

	go func() {
		addr := fmt.Sprintf("localhost:%d", port)
		log.Info("Debug server listening", "url", fmt.Sprintf("http://%s%s", addr, endpoint))
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("Debug server stopped", "error", err)
		}
	}()
}
