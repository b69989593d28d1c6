package dashboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/me/shopadmin/internal/api"
	"github.com/me/shopadmin/internal/listview"
	"github.com/me/shopadmin/pkg/model"
)

// handleMutation runs a destructive or state-changing API call from an
// HTMX action button. On success the response is an empty 200 so HTMX
// can remove or refresh the element; on failure the server's message
// comes back in the body for the client-side alert, and nothing in the
// view changes.
func (ui *UI) handleMutation(w http.ResponseWriter, r *http.Request, what string, mutate func(context.Context) error) {
	if err := mutate(r.Context()); err != nil {
		ui.logger.Error(what+" failed", "error", err)
		w.Header().Set("HX-Reswap", "none")
		http.Error(w, api.UserMessage(err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// --- Products ---

func (ui *UI) productConfig(token api.TokenSource) listview.Config[model.Product] {
	return listview.Config[model.Product]{
		Fetch: func(ctx context.Context) ([]model.Product, error) {
			return ui.api.ListProducts(ctx, token)
		},
		ID: func(p model.Product) string { return p.ID },
		SearchText: func(p model.Product) []string {
			return []string{p.Name, p.Category, p.Status.String(), strconv.FormatFloat(p.Price, 'f', 2, 64)}
		},
	}
}

// HandleProductList renders the searchable, paginated product table.
func (ui *UI) HandleProductList(w http.ResponseWriter, r *http.Request) {
	ld, err := runList(r, ui.productConfig(tokenFromContext(r.Context())))
	if err != nil {
		ui.renderError(w, "Failed to load products", err)
		return
	}
	ui.render(w, "products/list", listTemplateData("Products", r, ld))
}

// HandleProductForm renders the create or edit form. With an {id} in
// the path the current record pre-fills the fields.
func (ui *UI) HandleProductForm(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title":   "Product - ShopAdmin",
		"Session": SessionFromContext(r.Context()),
		"Error":   r.URL.Query().Get("error"),
	}

	if id := ui.pathParam(r, "id"); id != "" {
		product, err := ui.api.GetProduct(r.Context(), tokenFromContext(r.Context()), id)
		if err != nil {
			if api.IsNotFound(err) {
				ui.renderNotFound(w, "Product not found")
				return
			}
			ui.renderError(w, "Failed to load product", err)
			return
		}
		data["Product"] = product
	}
	ui.render(w, "products/form", data)
}

// productPayload builds the API payload from the submitted form.
func productPayload(r *http.Request) map[string]any {
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	stock, _ := strconv.Atoi(r.FormValue("stock"))
	payload := map[string]any{
		"name":         r.FormValue("name"),
		"description":  r.FormValue("description"),
		"category":     r.FormValue("category"),
		"price":        price,
		"countInStock": stock,
	}
	if img := r.FormValue("image"); img != "" {
		payload["image"] = img
	}
	return payload
}

// HandleProductCreate submits the create form. The redirect happens
// only after the API confirms the write.
func (ui *UI) HandleProductCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/products/new", "Invalid form")
		return
	}
	if err := ui.api.CreateProduct(r.Context(), tokenFromContext(r.Context()), productPayload(r)); err != nil {
		redirectWithError(w, r, "/products/new", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

// HandleProductUpdate submits the edit form.
func (ui *UI) HandleProductUpdate(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/products/"+id+"/edit", "Invalid form")
		return
	}
	if err := ui.api.UpdateProduct(r.Context(), tokenFromContext(r.Context()), id, productPayload(r)); err != nil {
		redirectWithError(w, r, "/products/"+id+"/edit", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

// HandleProductStock adjusts stock through the admin stock sub-route.
func (ui *UI) HandleProductStock(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	stock, err := strconv.Atoi(r.FormValue("stock"))
	if err != nil || stock < 0 {
		http.Error(w, "invalid stock value", http.StatusBadRequest)
		return
	}
	token := tokenFromContext(r.Context())
	ui.handleMutation(w, r, "stock update", func(ctx context.Context) error {
		return ui.api.UpdateProductStock(ctx, token, id, stock)
	})
}

// HandleProductDelete deletes a product (HTMX).
func (ui *UI) HandleProductDelete(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	token := tokenFromContext(r.Context())
	ui.handleMutation(w, r, "product delete", func(ctx context.Context) error {
		return ui.api.DeleteProduct(ctx, token, id)
	})
}

// --- Categories ---

func (ui *UI) categoryConfig(token api.TokenSource) listview.Config[model.Category] {
	return listview.Config[model.Category]{
		Fetch: func(ctx context.Context) ([]model.Category, error) {
			return ui.api.ListCategories(ctx, token)
		},
		ID: func(c model.Category) string { return c.ID },
		SearchText: func(c model.Category) []string {
			return []string{c.Name, c.Slug}
		},
	}
}

// HandleCategoryList renders the category table.
func (ui *UI) HandleCategoryList(w http.ResponseWriter, r *http.Request) {
	ld, err := runList(r, ui.categoryConfig(tokenFromContext(r.Context())))
	if err != nil {
		ui.renderError(w, "Failed to load categories", err)
		return
	}
	ui.render(w, "categories/list", listTemplateData("Categories", r, ld))
}

// HandleCategoryCreate adds a category from the inline form.
func (ui *UI) HandleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/categories", "Invalid form")
		return
	}
	payload := map[string]any{
		"name": r.FormValue("name"),
		"slug": r.FormValue("slug"),
	}
	if err := ui.api.CreateCategory(r.Context(), tokenFromContext(r.Context()), payload); err != nil {
		redirectWithError(w, r, "/categories", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}

// HandleCategoryUpdate renames a category.
func (ui *UI) HandleCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/categories", "Invalid form")
		return
	}
	payload := map[string]any{
		"name": r.FormValue("name"),
		"slug": r.FormValue("slug"),
	}
	if err := ui.api.UpdateCategory(r.Context(), tokenFromContext(r.Context()), id, payload); err != nil {
		redirectWithError(w, r, "/categories", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}

// HandleCategoryDelete deletes a category (HTMX).
func (ui *UI) HandleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	token := tokenFromContext(r.Context())
	ui.handleMutation(w, r, "category delete", func(ctx context.Context) error {
		return ui.api.DeleteCategory(ctx, token, id)
	})
}
