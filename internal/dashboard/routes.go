package dashboard

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all dashboard routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	// Public routes (no auth required).
	r.Get("/login", ui.HandleLogin)
	r.Post("/login", ui.HandleLoginPost)

	// Protected routes. The auth guard lives here, once, instead of
	// being re-checked ad hoc inside individual handlers.
	r.Group(func(r chi.Router) {
		r.Use(ui.AuthMiddleware)

		r.Get("/", ui.HandleHome)
		r.Get("/logout", ui.HandleLogout)

		// Catalog
		r.Route("/products", func(r chi.Router) {
			r.Get("/", ui.HandleProductList)
			r.Get("/new", ui.HandleProductForm)
			r.Post("/new", ui.HandleProductCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/edit", ui.HandleProductForm)
				r.Post("/edit", ui.HandleProductUpdate)
				r.Post("/stock", ui.HandleProductStock)
				r.Delete("/", ui.HandleProductDelete)
			})
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", ui.HandleCategoryList)
			r.Post("/new", ui.HandleCategoryCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Post("/edit", ui.HandleCategoryUpdate)
				r.Delete("/", ui.HandleCategoryDelete)
			})
		})

		// Orders and money
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ui.HandleOrderList)
			r.Get("/export", ui.HandleOrderExport)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", ui.HandleOrderDetail)
				r.Post("/status", ui.HandleOrderStatus)
				r.Delete("/", ui.HandleOrderDelete)
			})
		})
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", ui.HandleTransactionList)
			r.Get("/export", ui.HandleTransactionExport)
		})
		r.Route("/shipping", func(r chi.Router) {
			r.Get("/", ui.HandleShippingList)
			r.Post("/new", ui.HandleShippingCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Post("/edit", ui.HandleShippingUpdate)
				r.Delete("/", ui.HandleShippingDelete)
			})
		})
		r.Route("/discounts", func(r chi.Router) {
			r.Get("/", ui.HandleDiscountList)
			r.Get("/new", ui.HandleDiscountForm)
			r.Post("/new", ui.HandleDiscountCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/edit", ui.HandleDiscountForm)
				r.Post("/edit", ui.HandleDiscountUpdate)
				r.Delete("/", ui.HandleDiscountDelete)
			})
		})

		// Subscriptions
		r.Route("/plans", func(r chi.Router) {
			r.Get("/", ui.HandlePlanList)
			r.Post("/new", ui.HandlePlanCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Post("/edit", ui.HandlePlanUpdate)
				r.Delete("/", ui.HandlePlanDelete)
			})
		})
		r.Route("/members", func(r chi.Router) {
			r.Get("/", ui.HandleMemberList)
			r.Route("/{id}", func(r chi.Router) {
				r.Post("/send-renewal", ui.HandleMemberRenewalEmail)
				r.Delete("/", ui.HandleMemberDelete)
			})
		})

		// Toy lending
		r.Route("/toys", func(r chi.Router) {
			r.Get("/", ui.HandleToyList)
			r.Get("/new", ui.HandleToyForm)
			r.Post("/new", ui.HandleToyCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/edit", ui.HandleToyForm)
				r.Post("/edit", ui.HandleToyUpdate)
				r.Post("/available-units", ui.HandleToyAvailableUnits)
				r.Delete("/", ui.HandleToyDelete)
			})
		})

		// Education
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", ui.HandleCourseList)
			r.Delete("/{id}", ui.HandleCourseDelete)
		})
	})
}
