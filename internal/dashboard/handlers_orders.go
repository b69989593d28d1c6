package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/me/shopadmin/internal/api"
	"github.com/me/shopadmin/internal/listview"
	"github.com/me/shopadmin/pkg/model"
)

func (ui *UI) orderConfig(token api.TokenSource) listview.Config[model.Order] {
	return listview.Config[model.Order]{
		Fetch: func(ctx context.Context) ([]model.Order, error) {
			return ui.api.ListOrders(ctx, token)
		},
		ID: func(o model.Order) string { return o.ID },
		SearchText: func(o model.Order) []string {
			return []string{o.ID, o.CustomerName, o.Email, o.Status.String(), strconv.FormatFloat(o.Total, 'f', 2, 64)}
		},
		PageSize: pageSizeOrders,
	}
}

// HandleOrderList renders the order table.
func (ui *UI) HandleOrderList(w http.ResponseWriter, r *http.Request) {
	ld, err := runList(r, ui.orderConfig(tokenFromContext(r.Context())))
	if err != nil {
		ui.renderError(w, "Failed to load orders", err)
		return
	}
	data := listTemplateData("Orders", r, ld)
	data["Statuses"] = model.OrderStatuses
	ui.render(w, "orders/list", data)
}

// HandleOrderDetail renders a single order.
func (ui *UI) HandleOrderDetail(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")

	order, err := ui.api.GetOrder(r.Context(), tokenFromContext(r.Context()), id)
	if err != nil {
		if api.IsNotFound(err) {
			ui.renderNotFound(w, "Order not found")
			return
		}
		ui.renderError(w, "Failed to load order", err)
		return
	}

	data := map[string]any{
		"Title":    fmt.Sprintf("Order %s - ShopAdmin", order.ID),
		"Session":  SessionFromContext(r.Context()),
		"Order":    order,
		"Statuses": model.OrderStatuses,
	}
	ui.render(w, "orders/detail", data)
}

// HandleOrderStatus moves an order to the selected status (HTMX). The
// platform API validates the transition; the page refetches on success
// so the table always reflects the server's state.
func (ui *UI) HandleOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	status := model.ParseStatus(r.FormValue("status"))
	token := tokenFromContext(r.Context())

	if err := ui.api.UpdateOrderStatus(r.Context(), token, id, status); err != nil {
		ui.logger.Error("order status update failed", "order_id", id, "error", err)
		w.Header().Set("HX-Reswap", "none")
		http.Error(w, api.UserMessage(err), http.StatusInternalServerError)
		return
	}

	ui.logger.Info("order status updated", "order_id", id, "status", status)
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}

// HandleOrderDelete deletes an order (HTMX).
func (ui *UI) HandleOrderDelete(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	token := tokenFromContext(r.Context())
	ui.handleMutation(w, r, "order delete", func(ctx context.Context) error {
		return ui.api.DeleteOrder(ctx, token, id)
	})
}

// HandleOrderExport exports the (optionally searched) order set as CSV.
func (ui *UI) HandleOrderExport(w http.ResponseWriter, r *http.Request) {
	token := tokenFromContext(r.Context())

	orders, err := ui.api.ListOrders(r.Context(), token)
	if err != nil {
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}
	cfg := ui.orderConfig(token)
	orders = listview.Filter(orders, r.URL.Query().Get("q"), cfg.SearchText)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=orders_%s.csv", time.Now().Format("20060102_150405")))

	fmt.Fprintln(w, "ID,Customer,Email,Total,Items,Status,Created At")
	for _, o := range orders {
		fmt.Fprintf(w, "%s,%q,%s,%.2f,%d,%s,%s\n",
			o.ID, o.CustomerName, o.Email, o.Total, o.ItemCount, o.Status, o.CreatedAt)
	}
}

// --- Transactions ---

func (ui *UI) transactionConfig(token api.TokenSource) listview.Config[model.Transaction] {
	return listview.Config[model.Transaction]{
		Fetch: func(ctx context.Context) ([]model.Transaction, error) {
			return ui.api.ListTransactions(ctx, token)
		},
		ID: func(t model.Transaction) string { return t.ID },
		SearchText: func(t model.Transaction) []string {
			return []string{t.ID, t.OrderID, t.Method, t.Status.String(), strconv.FormatFloat(t.Amount, 'f', 2, 64)}
		},
	}
}

// HandleTransactionList renders the transaction table.
func (ui *UI) HandleTransactionList(w http.ResponseWriter, r *http.Request) {
	ld, err := runList(r, ui.transactionConfig(tokenFromContext(r.Context())))
	if err != nil {
		ui.renderError(w, "Failed to load transactions", err)
		return
	}
	ui.render(w, "transactions/list", listTemplateData("Transactions", r, ld))
}

// HandleTransactionExport exports transactions as CSV.
func (ui *UI) HandleTransactionExport(w http.ResponseWriter, r *http.Request) {
	token := tokenFromContext(r.Context())

	txs, err := ui.api.ListTransactions(r.Context(), token)
	if err != nil {
		http.Error(w, "Failed to load transactions", http.StatusInternalServerError)
		return
	}
	cfg := ui.transactionConfig(token)
	txs = listview.Filter(txs, r.URL.Query().Get("q"), cfg.SearchText)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=transactions_%s.csv", time.Now().Format("20060102_150405")))

	fmt.Fprintln(w, "ID,Order ID,Amount,Method,Status,Created At")
	for _, t := range txs {
		fmt.Fprintf(w, "%s,%s,%.2f,%s,%s,%s\n",
			t.ID, t.OrderID, t.Amount, t.Method, t.Status, t.CreatedAt)
	}
}

// --- Shipping zones ---

func (ui *UI) shippingConfig(token api.TokenSource) listview.Config[model.ShippingZone] {
	return listview.Config[model.ShippingZone]{
		Fetch: func(ctx context.Context) ([]model.ShippingZone, error) {
			return ui.api.ListShippingZones(ctx, token)
		},
		ID: func(z model.ShippingZone) string { return z.ID },
		SearchText: func(z model.ShippingZone) []string {
			fields := []string{z.Name, z.Status.String()}
			return append(fields, z.Regions...)
		},
	}
}

// HandleShippingList renders the shipping-zone table.
func (ui *UI) HandleShippingList(w http.ResponseWriter, r *http.Request) {
	ld, err := runList(r, ui.shippingConfig(tokenFromContext(r.Context())))
	if err != nil {
		ui.renderError(w, "Failed to load shipping zones", err)
		return
	}
	ui.render(w, "shipping/list", listTemplateData("Shipping", r, ld))
}

// shippingPayload builds the API payload from the submitted form.
func shippingPayload(r *http.Request) map[string]any {
	rate, _ := strconv.ParseFloat(r.FormValue("rate"), 64)
	days, _ := strconv.Atoi(r.FormValue("delivery_days"))
	return map[string]any{
		"name":         r.FormValue("name"),
		"rate":         rate,
		"deliveryDays": days,
		"isActive":     r.FormValue("active") == "on",
	}
}

// HandleShippingCreate adds a shipping zone.
func (ui *UI) HandleShippingCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/shipping", "Invalid form")
		return
	}
	if err := ui.api.CreateShippingZone(r.Context(), tokenFromContext(r.Context()), shippingPayload(r)); err != nil {
		redirectWithError(w, r, "/shipping", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/shipping", http.StatusSeeOther)
}

// HandleShippingUpdate edits a shipping zone.
func (ui *UI) HandleShippingUpdate(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/shipping", "Invalid form")
		return
	}
	if err := ui.api.UpdateShippingZone(r.Context(), tokenFromContext(r.Context()), id, shippingPayload(r)); err != nil {
		redirectWithError(w, r, "/shipping", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/shipping", http.StatusSeeOther)
}

// HandleShippingDelete deletes a shipping zone (HTMX).
func (ui *UI) HandleShippingDelete(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	token := tokenFromContext(r.Context())
	ui.handleMutation(w, r, "shipping zone delete", func(ctx context.Context) error {
		return ui.api.DeleteShippingZone(ctx, token, id)
	})
}
