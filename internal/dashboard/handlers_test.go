package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/me/shopadmin/internal/api"
)

// fakePlatform is a minimal stand-in for the remote platform API.
type fakePlatform struct {
	mux            *http.ServeMux
	deletedProduct string
	orderStatus    string
	failDeletes    bool
}

func newFakePlatform() *fakePlatform {
	f := &fakePlatform{mux: http.NewServeMux()}

	f.mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &creds)
		if creds["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message":"Invalid credentials"}`)
			return
		}
		fmt.Fprint(w, `{"data":{"token":"tok-123","user":{"_id":"u1","name":"Ada","email":"ada@example.com","role":"admin"}}}`)
	})

	f.mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"_id":"p1","name":"Wooden Train","category":"Toys","price":29.5,"countInStock":12},
			{"_id":"p2","name":"Plush Bear","category":"Toys","price":14.0,"countInStock":2},
			{"_id":"p3","name":"Chess Set","category":"Games","price":45.0,"countInStock":0}
		]}`)
	})

	f.mux.HandleFunc("DELETE /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		if f.failDeletes {
			w.WriteHeader(http.StatusConflict)
			fmt.Fprint(w, `{"message":"product has open orders"}`)
			return
		}
		f.deletedProduct = r.PathValue("id")
		fmt.Fprint(w, `{"success":true,"data":{}}`)
	})

	f.mux.HandleFunc("GET /api/orders", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"_id":"o1","customerName":"Jane Doe","email":"jane@example.com","totalAmount":59.0,"itemCount":2,"status":"pending"},
			{"_id":"o2","customerName":"John Roe","email":"john@example.com","totalAmount":14.0,"itemCount":1,"status":"shipped"}
		]}`)
	})

	f.mux.HandleFunc("PUT /api/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &body)
		f.orderStatus = body["status"]
		fmt.Fprint(w, `{"success":true,"data":{}}`)
	})

	f.mux.HandleFunc("GET /api/members", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	})

	return f
}

// setupUI wires a full dashboard against the fake platform and returns
// the router plus a logged-in session cookie.
func setupUI(t *testing.T, platform *fakePlatform) (chi.Router, *http.Cookie) {
	t.Helper()

	srv := httptest.NewServer(platform.mux)
	t.Cleanup(srv.Close)

	st := setupTestStore(t)
	t.Cleanup(func() { st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.NewClient(srv.URL, logger)
	ui := New(client, st, logger, Config{})

	r := chi.NewRouter()
	ui.RegisterRoutes(r)

	// Log in through the real handler so the session carries the token.
	form := url.Values{"email": {"ada@example.com"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("login: expected redirect, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("login: expected redirect to /, got %q", loc)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login: expected session cookie")
	}
	return r, cookies[0]
}

func TestAuthMiddleware_RedirectsWithoutSession(t *testing.T) {
	r, _ := setupUI(t, newFakePlatform())

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestLoginPost_BadCredentials(t *testing.T) {
	r, _ := setupUI(t, newFakePlatform())

	form := url.Values{"email": {"ada@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/login?error=") {
		t.Errorf("expected bounce back to login with error, got %q", loc)
	}
}

func TestProductList_RendersTable(t *testing.T) {
	r, cookie := setupUI(t, newFakePlatform())

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"Wooden Train", "Plush Bear", "Chess Set", "Low Stock", "Out of Stock"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestProductList_SearchFilters(t *testing.T) {
	r, cookie := setupUI(t, newFakePlatform())

	req := httptest.NewRequest(http.MethodGet, "/products?q=chess", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "Chess Set") {
		t.Error("expected matching product in page")
	}
	if strings.Contains(body, "Wooden Train") {
		t.Error("expected non-matching product to be filtered out")
	}
}

func TestProductDelete_CallsAPI(t *testing.T) {
	platform := newFakePlatform()
	r, cookie := setupUI(t, platform)

	req := httptest.NewRequest(http.MethodDelete, "/products/p2", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if platform.deletedProduct != "p2" {
		t.Errorf("expected delete for p2, got %q", platform.deletedProduct)
	}
}

func TestProductDelete_FailureLeavesViewAlone(t *testing.T) {
	platform := newFakePlatform()
	platform.failDeletes = true
	r, cookie := setupUI(t, platform)

	req := httptest.NewRequest(http.MethodDelete, "/products/p2", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap none so the row stays in place")
	}
	if !strings.Contains(w.Body.String(), "product has open orders") {
		t.Errorf("expected server message in body, got %q", w.Body.String())
	}
}

func TestOrderStatus_RefreshesOnSuccess(t *testing.T) {
	platform := newFakePlatform()
	r, cookie := setupUI(t, platform)

	form := url.Values{"status": {"Shipped"}}
	req := httptest.NewRequest(http.MethodPost, "/orders/o1/status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("HX-Refresh") != "true" {
		t.Error("expected HX-Refresh so the table refetches")
	}
	if platform.orderStatus != "Shipped" {
		t.Errorf("expected status Shipped sent to API, got %q", platform.orderStatus)
	}
}

func TestOrderExport_CSV(t *testing.T) {
	r, cookie := setupUI(t, newFakePlatform())

	req := httptest.NewRequest(http.MethodGet, "/orders/export", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Jane Doe") || !strings.Contains(body, "John Roe") {
		t.Error("expected both orders in export")
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	r, cookie := setupUI(t, newFakePlatform())

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", w.Code)
	}

	// The old cookie no longer grants access.
	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after logout, got %d", w.Code)
	}
}

func TestRenderTemplate_UnknownName(t *testing.T) {
	var sb strings.Builder
	if err := renderTemplate(&sb, "no/such/page", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestRenderTemplate_ErrorPage(t *testing.T) {
	var sb strings.Builder
	data := map[string]any{"Title": "Error", "Message": "boom", "Detail": "try again"}
	if err := renderTemplate(&sb, "error", data); err != nil {
		t.Fatalf("render error page: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "boom") || !strings.Contains(out, "try again") {
		t.Errorf("expected message and detail in output, got %q", out)
	}
}
