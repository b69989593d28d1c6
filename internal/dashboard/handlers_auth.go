package dashboard

import (
	"net/http"
	"strings"
	"time"

	"github.com/me/shopadmin/internal/api"
	"github.com/me/shopadmin/pkg/model"
)

// HandleLogin renders the login page.
func (ui *UI) HandleLogin(w http.ResponseWriter, r *http.Request) {
	// If already logged in, redirect to the dashboard.
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := map[string]any{
		"Title": "Login - ShopAdmin",
		"Error": r.URL.Query().Get("error"),
	}
	ui.render(w, "login", data)
}

// HandleLoginPost processes the login form by authenticating against
// the platform API and storing the issued bearer token in the session.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/login", "Invalid request")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		redirectWithError(w, r, "/login", "Email and password required")
		return
	}

	result, err := ui.api.Login(r.Context(), email, password)
	if err != nil {
		ui.logger.Warn("login failed", "email", email, "error", err)
		redirectWithError(w, r, "/login", "Invalid credentials")
		return
	}

	sess, err := ui.sessions.CreateSession(r.Context(), result.User, result.Token, api.TokenExpiry(result.Token))
	if err != nil {
		ui.logger.Error("create session failed", "error", err)
		redirectWithError(w, r, "/login", "Session creation failed")
		return
	}

	SetSessionCookie(w, sess, ui.secure)

	ui.logger.Info("admin logged in", "email", email, "session", sess.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout clears the session and redirects to login.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil {
		_ = ui.sessions.DeleteSession(r.Context(), sess.ID)
		ui.logger.Info("admin logged out", "email", sess.Email, "session", sess.ID)
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleHome renders the overview page: order counts by status plus
// the most recent orders.
func (ui *UI) HandleHome(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	token := tokenFromContext(r.Context())

	orders, err := ui.api.ListOrders(r.Context(), token)
	if err != nil {
		ui.renderError(w, "Failed to load orders", err)
		return
	}

	stats := map[string]int{}
	for _, o := range orders {
		stats[o.Status.String()]++
	}

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}

	products, _ := ui.api.ListProducts(r.Context(), token)
	members, _ := ui.api.ListMembers(r.Context(), token)

	data := map[string]any{
		"Title":        "Dashboard - ShopAdmin",
		"Session":      sess,
		"OrderCount":   len(orders),
		"ProductCount": len(products),
		"MemberCount":  len(members),
		"RecentOrders": recent,
		"Stats":        stats,
		"Statuses":     model.OrderStatuses,
		"Uptime":       time.Since(ui.startTime).Round(time.Second).String(),
	}
	ui.render(w, "home", data)
}
