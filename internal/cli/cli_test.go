package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// startFakePlatform serves canned platform API responses and records
// mutations for assertions.
type fakePlatform struct {
	stockSet   map[string]string
	lastStatus string
	renewalFor string
}

func startFakePlatform(t *testing.T) (*fakePlatform, string) {
	t.Helper()
	f := &fakePlatform{stockSet: map[string]string{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"_id":"p1","name":"Wooden Train","category":"Toys","price":29.5,"countInStock":12},
			{"_id":"p2","name":"Plush Bear","category":"Toys","price":14.0,"countInStock":2}
		]}`)
	})
	mux.HandleFunc("PATCH /api/products/admin/{id}/stock", func(w http.ResponseWriter, r *http.Request) {
		f.stockSet[r.PathValue("id")] = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"success":true,"data":{}}`)
	})
	mux.HandleFunc("GET /api/orders", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"_id":"o1","customerName":"Jane Doe","email":"jane@example.com","totalAmount":59.0,"itemCount":2,"status":"pending"},
			{"_id":"o2","customerName":"John Roe","email":"john@example.com","totalAmount":14.0,"itemCount":1,"status":"shipped"}
		]}`)
	})
	mux.HandleFunc("PUT /api/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		f.lastStatus = r.PathValue("id")
		fmt.Fprint(w, `{"success":true,"data":{}}`)
	})
	mux.HandleFunc("POST /api/emails/send-renewal/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.renewalFor = r.PathValue("id")
		fmt.Fprint(w, `{"success":true,"data":{}}`)
	})
	mux.HandleFunc("GET /api/toys", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"_id":"t1","name":"Blocks","ageRange":"3-6","totalUnits":5,"availableUnits":0}
		]}`)
	})
	mux.HandleFunc("GET /api/discounts", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"_id":"d1","code":"SUMMER25","percent":25,"startDate":"2000-01-01","endDate":"2099-12-31","isActive":true}
		]}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv.URL
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestProductsList(t *testing.T) {
	_, url := startFakePlatform(t)
	t.Setenv("SHOPADMIN_TOKEN", "tok-cli")

	out, err := runCLI(t, "--api", url, "products", "list")
	if err != nil {
		t.Fatalf("products list: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "Wooden Train") || !strings.Contains(out, "Plush Bear") {
		t.Errorf("expected both products in output, got: %s", out)
	}
	if !strings.Contains(out, "Low Stock") {
		t.Errorf("expected derived stock status in output, got: %s", out)
	}
	if !strings.Contains(out, "Page 1 of 1 (2 results)") {
		t.Errorf("expected page footer, got: %s", out)
	}
}

func TestProductsList_Search(t *testing.T) {
	_, url := startFakePlatform(t)
	t.Setenv("SHOPADMIN_TOKEN", "tok-cli")

	out, err := runCLI(t, "--api", url, "products", "list", "-q", "bear")
	if err != nil {
		t.Fatalf("products list: %v", err)
	}
	if !strings.Contains(out, "Plush Bear") {
		t.Errorf("expected matching product, got: %s", out)
	}
	if strings.Contains(out, "Wooden Train") {
		t.Errorf("expected non-match filtered out, got: %s", out)
	}
}

func TestProductsList_Pagination(t *testing.T) {
	_, url := startFakePlatform(t)
	t.Setenv("SHOPADMIN_TOKEN", "tok-cli")

	out, err := runCLI(t, "--api", url, "products", "list", "--page-size", "1", "--page", "2")
	if err != nil {
		t.Fatalf("products list: %v", err)
	}
	if !strings.Contains(out, "Plush Bear") {
		t.Errorf("expected second page record, got: %s", out)
	}
	if strings.Contains(out, "Wooden Train") {
		t.Errorf("expected first page record absent, got: %s", out)
	}
	if !strings.Contains(out, "Page 2 of 2") {
		t.Errorf("expected page footer, got: %s", out)
	}
}

func TestProductsSetStock_SendsToken(t *testing.T) {
	f, url := startFakePlatform(t)
	t.Setenv("SHOPADMIN_TOKEN", "tok-cli")

	out, err := runCLI(t, "--api", url, "products", "set-stock", "p2", "8")
	if err != nil {
		t.Fatalf("set-stock: %v\noutput: %s", err, out)
	}
	if auth := f.stockSet["p2"]; auth != "Bearer tok-cli" {
		t.Errorf("expected bearer token on request, got %q", auth)
	}
	if !strings.Contains(out, "set to 8") {
		t.Errorf("expected confirmation, got: %s", out)
	}
}

func TestProductsSetStock_RejectsNegative(t *testing.T) {
	_, url := startFakePlatform(t)

	_, err := runCLI(t, "--api", url, "products", "set-stock", "p2", "-1")
	if err == nil {
		t.Fatal("expected error for negative quantity")
	}
}

func TestOrdersSetStatus(t *testing.T) {
	f, url := startFakePlatform(t)
	t.Setenv("SHOPADMIN_TOKEN", "tok-cli")

	out, err := runCLI(t, "--api", url, "orders", "set-status", "o1", "shipped")
	if err != nil {
		t.Fatalf("set-status: %v", err)
	}
	if f.lastStatus != "o1" {
		t.Errorf("expected status update for o1, got %q", f.lastStatus)
	}
	if !strings.Contains(out, "moved to Shipped") {
		t.Errorf("expected normalized status in confirmation, got: %s", out)
	}
}

func TestMembersSendRenewal(t *testing.T) {
	f, url := startFakePlatform(t)
	t.Setenv("SHOPADMIN_TOKEN", "tok-cli")

	out, err := runCLI(t, "--api", url, "members", "send-renewal", "m1")
	if err != nil {
		t.Fatalf("send-renewal: %v", err)
	}
	if f.renewalFor != "m1" {
		t.Errorf("expected renewal for m1, got %q", f.renewalFor)
	}
	if !strings.Contains(out, "Renewal reminder sent") {
		t.Errorf("expected confirmation, got: %s", out)
	}
}

func TestToysList_DerivedStatus(t *testing.T) {
	_, url := startFakePlatform(t)
	t.Setenv("SHOPADMIN_TOKEN", "tok-cli")

	out, err := runCLI(t, "--api", url, "toys", "list")
	if err != nil {
		t.Fatalf("toys list: %v", err)
	}
	if !strings.Contains(out, "Out of Stock") {
		t.Errorf("expected zero-unit toy to show Out of Stock, got: %s", out)
	}
}

func TestDiscountsList_DerivedStatus(t *testing.T) {
	_, url := startFakePlatform(t)
	t.Setenv("SHOPADMIN_TOKEN", "tok-cli")

	out, err := runCLI(t, "--api", url, "discounts", "list")
	if err != nil {
		t.Fatalf("discounts list: %v", err)
	}
	if !strings.Contains(out, "SUMMER25") || !strings.Contains(out, "Active") {
		t.Errorf("expected active discount in output, got: %s", out)
	}
}

func TestLogin_RequiresEmailOrToken(t *testing.T) {
	_, url := startFakePlatform(t)

	_, err := runCLI(t, "--api", url, "login")
	if err == nil {
		t.Fatal("expected error without --email or --token")
	}
}
