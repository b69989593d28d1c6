package dashboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/me/shopadmin/internal/api"
	"github.com/me/shopadmin/internal/listview"
	"github.com/me/shopadmin/pkg/model"
)

// maxToyImageSize caps uploaded toy photos at 5 MiB.
const maxToyImageSize = 5 << 20

func (ui *UI) toyConfig(token api.TokenSource) listview.Config[model.Toy] {
	return listview.Config[model.Toy]{
		Fetch: func(ctx context.Context) ([]model.Toy, error) {
			return ui.api.ListToys(ctx, token)
		},
		ID: func(t model.Toy) string { return t.ID },
		SearchText: func(t model.Toy) []string {
			return []string{t.Name, t.AgeRange, t.Status.String(), strconv.Itoa(t.AvailableUnits)}
		},
		PageSize: pageSizeToys,
	}
}

// HandleToyList renders the lending-library toy table.
func (ui *UI) HandleToyList(w http.ResponseWriter, r *http.Request) {
	ld, err := runList(r, ui.toyConfig(tokenFromContext(r.Context())))
	if err != nil {
		ui.renderError(w, "Failed to load toys", err)
		return
	}
	ui.render(w, "toys/list", listTemplateData("Toys", r, ld))
}

// HandleToyForm renders the create or edit form.
func (ui *UI) HandleToyForm(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title":   "Toy - ShopAdmin",
		"Session": SessionFromContext(r.Context()),
		"Error":   r.URL.Query().Get("error"),
		"Uploads": ui.uploader != nil,
	}

	if id := ui.pathParam(r, "id"); id != "" {
		toy, err := ui.api.GetToy(r.Context(), tokenFromContext(r.Context()), id)
		if err != nil {
			if api.IsNotFound(err) {
				ui.renderNotFound(w, "Toy not found")
				return
			}
			ui.renderError(w, "Failed to load toy", err)
			return
		}
		data["Toy"] = toy
	}
	ui.render(w, "toys/form", data)
}

// toyPayload builds the API payload from the submitted multipart form.
// When an image file is attached and uploads are configured, the file
// goes to object storage first and the resulting public URL is what
// the platform API stores.
func (ui *UI) toyPayload(r *http.Request) (map[string]any, error) {
	total, _ := strconv.Atoi(r.FormValue("total_units"))
	available, _ := strconv.Atoi(r.FormValue("available_units"))
	payload := map[string]any{
		"name":           r.FormValue("name"),
		"ageRange":       r.FormValue("age_range"),
		"totalUnits":     total,
		"availableUnits": available,
	}

	if ui.uploader != nil {
		file, header, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
			url, uerr := ui.uploader.Upload(r.Context(), header.Filename, file)
			if uerr != nil {
				return nil, uerr
			}
			payload["image"] = url
		}
	}
	if img := r.FormValue("image_url"); img != "" {
		payload["image"] = img
	}
	return payload, nil
}

// HandleToyCreate submits the create form.
func (ui *UI) HandleToyCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxToyImageSize); err != nil {
		redirectWithError(w, r, "/toys/new", "Invalid form")
		return
	}
	payload, err := ui.toyPayload(r)
	if err != nil {
		ui.logger.Error("toy image upload failed", "error", err)
		redirectWithError(w, r, "/toys/new", "Image upload failed")
		return
	}
	if err := ui.api.CreateToy(r.Context(), tokenFromContext(r.Context()), payload); err != nil {
		redirectWithError(w, r, "/toys/new", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/toys", http.StatusSeeOther)
}

// HandleToyUpdate submits the edit form.
func (ui *UI) HandleToyUpdate(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	if err := r.ParseMultipartForm(maxToyImageSize); err != nil {
		redirectWithError(w, r, "/toys/"+id+"/edit", "Invalid form")
		return
	}
	payload, err := ui.toyPayload(r)
	if err != nil {
		ui.logger.Error("toy image upload failed", "toy_id", id, "error", err)
		redirectWithError(w, r, "/toys/"+id+"/edit", "Image upload failed")
		return
	}
	if err := ui.api.UpdateToy(r.Context(), tokenFromContext(r.Context()), id, payload); err != nil {
		redirectWithError(w, r, "/toys/"+id+"/edit", api.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/toys", http.StatusSeeOther)
}

// HandleToyAvailableUnits adjusts available units inline (HTMX). The
// page refetches on success so the derived availability badge updates.
func (ui *UI) HandleToyAvailableUnits(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	units, err := strconv.Atoi(r.FormValue("available_units"))
	if err != nil || units < 0 {
		http.Error(w, "invalid unit count", http.StatusBadRequest)
		return
	}
	token := tokenFromContext(r.Context())

	if err := ui.api.UpdateToyAvailableUnits(r.Context(), token, id, units); err != nil {
		ui.logger.Error("toy units update failed", "toy_id", id, "error", err)
		w.Header().Set("HX-Reswap", "none")
		http.Error(w, api.UserMessage(err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}

// HandleToyDelete deletes a toy (HTMX).
func (ui *UI) HandleToyDelete(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	token := tokenFromContext(r.Context())
	ui.handleMutation(w, r, "toy delete", func(ctx context.Context) error {
		return ui.api.DeleteToy(ctx, token, id)
	})
}

// --- Courses ---

func (ui *UI) courseConfig(token api.TokenSource) listview.Config[model.Course] {
	return listview.Config[model.Course]{
		Fetch: func(ctx context.Context) ([]model.Course, error) {
			return ui.api.ListCourses(ctx, token)
		},
		ID: func(c model.Course) string { return c.ID },
		SearchText: func(c model.Course) []string {
			return []string{c.Title, c.Instructor, c.Status.String(), strconv.FormatFloat(c.Price, 'f', 2, 64)}
		},
	}
}

// HandleCourseList renders the course table.
func (ui *UI) HandleCourseList(w http.ResponseWriter, r *http.Request) {
	ld, err := runList(r, ui.courseConfig(tokenFromContext(r.Context())))
	if err != nil {
		ui.renderError(w, "Failed to load courses", err)
		return
	}
	ui.render(w, "courses/list", listTemplateData("Courses", r, ld))
}

// HandleCourseDelete deletes a course (HTMX).
func (ui *UI) HandleCourseDelete(w http.ResponseWriter, r *http.Request) {
	id := ui.pathParam(r, "id")
	token := tokenFromContext(r.Context())
	ui.handleMutation(w, r, "course delete", func(ctx context.Context) error {
		return ui.api.DeleteCourse(ctx, token, id)
	})
}
