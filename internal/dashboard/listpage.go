package dashboard

import (
	"net/http"
	"strconv"

	"github.com/me/shopadmin/internal/listview"
)

// Per-resource page sizes. These match what the admins are used to;
// there is no shared default beyond listview.DefaultPageSize.
const (
	pageSizeOrders = 5
	pageSizeToys   = 4
)

// ListData is the template payload produced by one pass through the
// list pipeline.
type ListData[T any] struct {
	Items      []T
	Query      string
	Page       int
	TotalPages int
	Total      int
}

// runList executes the list pipeline for one request: load the record
// set, apply the q= search term, select the page= window.
func runList[T any](r *http.Request, cfg listview.Config[T]) (ListData[T], error) {
	p := listview.New(cfg)
	if err := p.Load(r.Context()); err != nil {
		return ListData[T]{}, err
	}

	p.SetSearch(r.URL.Query().Get("q"))
	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		p.SetPage(n)
	}

	return ListData[T]{
		Items:      p.Window(),
		Query:      p.SearchTerm(),
		Page:       p.Page(),
		TotalPages: p.TotalPages(),
		Total:      len(p.Filtered()),
	}, nil
}

// listTemplateData merges a ListData into the base template payload.
func listTemplateData[T any](title string, r *http.Request, ld ListData[T]) map[string]any {
	return map[string]any{
		"Title":      title + " - ShopAdmin",
		"Session":    SessionFromContext(r.Context()),
		"Items":      ld.Items,
		"Query":      ld.Query,
		"Page":       ld.Page,
		"TotalPages": ld.TotalPages,
		"Total":      ld.Total,
		"Error":      r.URL.Query().Get("error"),
	}
}
