package dashboard

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/me/shopadmin/internal/api"
	"github.com/me/shopadmin/internal/listview"
	"github.com/me/shopadmin/pkg/model"
)

// --- Discounts ---

func (ui *UI) discountConfig(token api.TokenSource) listview.Config[model.Discount] {
	now := time.Now()
	return listview.Config[model.Discount]{
		Fetch: func(ctx context.Context) ([]model.Discount, error) {
			return ui.api.ListDiscounts(ctx, token)
		},
		ID: func(d model.Discount) string { return d.ID },
		SearchText: func(d model.Discount) []string {
			return []string{d.Code, d.Status(now).String(), strconv.FormatFloat(d.Percent, 'f', -1, 64)}
		},
	}
}

// HandleDiscountList renders the discount table. The displayed status
// is derived from the discount window at render time, never persisted.
func (ui *UI) HandleDiscountList(w http.ResponseWriter, r *http.Request) {
	ld, err := runList(r, ui.discountConfig(tokenFromContext(r.Context())))
	if err != nil {
		ui.renderError(w, "Failed to load discounts", err)
		return
	}
	data := listTemplateData("Discounts", r, ld)
	data["Now"] = time.Now()
	ui.render(w, "discounts/list", data)
}

// HandleDiscountForm renders the create or edit form.
func (ui *UI) HandleDiscountForm(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title":   "Discount - ShopAdmin",
		"Session": SessionFromContext(r.Context()),
		"Error":   r.URL.Query().Get("error"),
	}

	if id := ui.pathParam(r, "id"); id != "" {
		discounts, err := ui.api.ListDiscounts(r.Context(), tokenFromContext(r.Context()))
		if err != nil {
			ui.renderError(w, "Failed to load discount", err)
			return
		}
		for _, d := range discounts {
			if d.ID == id {
				data["Discount"] = d
				break
			}
		}
		if _, ok := data["Discount"]; !ok {
			ui.renderNotFound(w, "Discount not found")
			return
		}
	}
	ui.render(w, "discounts/form", data)
}

// discountPayload builds the API payload from the submitted form.
func discountPayload(r *http.Request) map[string]any {
	percent, _ := strconv.ParseFloat(r.FormValue("percent"), 64)
	return map[string]any{
		"code":      r.FormValue("code"),
		"percent":   percent,
		"startDate": r.FormValue("start_date"),
		"endDate":   r.FormValue("end_date"),
		"isActive":  r.FormValue("active") == "on",
	}
}

// HandleDiscountCreate submits the create form.
func (ui *UI) HandleDiscountCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/discounts/new", "Invalid form")
		return
	}
	if err := ui.api.CreateDiscount(r.Context(), tokenFromContext(r.Context()), discountPayload(r)); err != nil {
		redirectWithError(w, r, "/discounts/new", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/discounts", http.StatusSeeOther)
}

// HandleDiscountUpdate submits the edit form.
func (ui *UI) HandleDiscountUpdate(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/discounts/"+id+"/edit", "Invalid form")
		return
	}
	if err := ui.api.UpdateDiscount(r.Context(), tokenFromContext(r.Context()), id, discountPayload(r)); err != nil {
		redirectWithError(w, r, "/discounts/"+id+"/edit", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/discounts", http.StatusSeeOther)
}

// HandleDiscountDelete deletes a discount (HTMX).
func (ui *UI) HandleDiscountDelete(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	token := tokenFromContext(r.Context())
	ui.handleMutation(w, r, "discount delete", func(ctx context.Context) error {
		return ui.api.DeleteDiscount(ctx, token, id)
	})
}

// --- Plans ---

func (ui *UI) planConfig(token api.TokenSource) listview.Config[model.Plan] {
	return listview.Config[model.Plan]{
		Fetch: func(ctx context.Context) ([]model.Plan, error) {
			return ui.api.ListPlans(ctx, token)
		},
		ID: func(p model.Plan) string { return p.ID },
		SearchText: func(p model.Plan) []string {
			return []string{p.Name, p.Interval, p.Status.String(), strconv.FormatFloat(p.Price, 'f', 2, 64)}
		},
	}
}

// HandlePlanList renders the subscription-plan table.
func (ui *UI) HandlePlanList(w http.ResponseWriter, r *http.Request) {
	ld, err := runList(r, ui.planConfig(tokenFromContext(r.Context())))
	if err != nil {
		ui.renderError(w, "Failed to load plans", err)
		return
	}
	ui.render(w, "plans/list", listTemplateData("Plans", r, ld))
}

// planPayload builds the API payload from the submitted form.
func planPayload(r *http.Request) map[string]any {
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	return map[string]any{
		"name":     r.FormValue("name"),
		"price":    price,
		"interval": r.FormValue("interval"),
		"status":   r.FormValue("status"),
	}
}

// HandlePlanCreate adds a plan.
func (ui *UI) HandlePlanCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/plans", "Invalid form")
		return
	}
	if err := ui.api.CreatePlan(r.Context(), tokenFromContext(r.Context()), planPayload(r)); err != nil {
		redirectWithError(w, r, "/plans", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/plans", http.StatusSeeOther)
}

// HandlePlanUpdate edits a plan.
func (ui *UI) HandlePlanUpdate(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/plans", "Invalid form")
		return
	}
	if err := ui.api.UpdatePlan(r.Context(), tokenFromContext(r.Context()), id, planPayload(r)); err != nil {
		redirectWithError(w, r, "/plans", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/plans", http.StatusSeeOther)
}

// HandlePlanDelete deletes a plan (HTMX).
func (ui *UI) HandlePlanDelete(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	token := tokenFromContext(r.Context())
	ui.handleMutation(w, r, "plan delete", func(ctx context.Context) error {
		return ui.api.DeletePlan(ctx, token, id)
	})
}

// --- Members ---

func (ui *UI) memberConfig(token api.TokenSource) listview.Config[model.Member] {
	return listview.Config[model.Member]{
		Fetch: func(ctx context.Context) ([]model.Member, error) {
			return ui.api.ListMembers(ctx, token)
		},
		ID: func(m model.Member) string { return m.ID },
		SearchText: func(m model.Member) []string {
			return []string{m.Name, m.Email, m.PlanName, m.Status.String()}
		},
	}
}

// HandleMemberList renders the member table.
func (ui *UI) HandleMemberList(w http.ResponseWriter, r *http.Request) {
	ld, err := runList(r, ui.memberConfig(tokenFromContext(r.Context())))
	if err != nil {
		ui.renderError(w, "Failed to load members", err)
		return
	}
	ui.render(w, "members/list", listTemplateData("Members", r, ld))
}

// HandleMemberRenewalEmail triggers the renewal reminder email (HTMX).
func (ui *UI) HandleMemberRenewalEmail(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	token := tokenFromContext(r.Context())

	if err := ui.api.SendRenewalEmail(r.Context(), token, id); err != nil {
		ui.logger.Error("renewal email failed", "member_id", id, "error", err)
		w.Header().Set("HX-Reswap", "none")
		http.Error(w, api.UserMessage(err), http.StatusInternalServerError)
		return
	}
	ui.logger.Info("renewal email sent", "member_id", id)
	w.WriteHeader(http.StatusOK)
}

// HandleMemberDelete deletes a member (HTMX).
func (ui *UI) HandleMemberDelete(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	token := tokenFromContext(r.Context())
	ui.handleMutation(w, r, "member delete", func(ctx context.Context) error {
		return ui.api.DeleteMember(ctx, token, id)
	})
}
