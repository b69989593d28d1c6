// Package dashboard implements the admin web UI. Every page is a thin
// view over the platform's REST API: handlers fetch JSON through
// internal/api, run it through the shared list pipeline, and render
// HTML tables with search, pagination, and CRUD actions.
package dashboard

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/me/shopadmin/internal/api"
	"github.com/me/shopadmin/internal/assets"
	"github.com/me/shopadmin/internal/store"
)

// UI handles the web user interface.
type UI struct {
	api       *api.Client
	store     store.Store
	sessions  *SessionManager
	uploader  *assets.Uploader // nil when uploads are not configured
	logger    *slog.Logger
	startTime time.Time
	secure    bool // Use secure cookies (HTTPS)
}

// Config holds UI configuration.
type Config struct {
	Secure bool // Use secure cookies for HTTPS
}

// New creates a new UI handler.
func New(apiClient *api.Client, st store.Store, logger *slog.Logger, cfg Config) *UI {
	return &UI{
		api:       apiClient,
		store:     st,
		sessions:  NewSessionManager(st),
		logger:    logger.With("component", "dashboard"),
		startTime: time.Now(),
		secure:    cfg.Secure,
	}
}

// WithUploader enables image uploads through the given uploader.
func (ui *UI) WithUploader(u *assets.Uploader) {
	ui.uploader = u
}

// --- Render helpers ---

func (ui *UI) render(w http.ResponseWriter, template string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, template, data); err != nil {
		ui.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	buf.WriteTo(w)
}

// renderError shows the error page with a message safe for admins.
// The underlying error goes to the log, not the page.
func (ui *UI) renderError(w http.ResponseWriter, message string, err error) {
	ui.logger.Error(message, "error", err)
	data := map[string]any{
		"Title":   "Error - ShopAdmin",
		"Message": message,
		"Detail":  api.UserMessage(err),
	}
	w.WriteHeader(http.StatusInternalServerError)
	ui.render(w, "error", data)
}

func (ui *UI) renderNotFound(w http.ResponseWriter, message string) {
	data := map[string]any{
		"Title":   "Not Found - ShopAdmin",
		"Message": message,
	}
	w.WriteHeader(http.StatusNotFound)
	ui.render(w, "error", data)
}

// redirectWithError bounces back to a form page carrying the error in
// the query string.
func redirectWithError(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

func (ui *UI) pathParam(r *http.Request, name string) string {
	return r.PathValue(name)
}
