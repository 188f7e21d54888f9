package handler

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Masterminds/sprig/v3"

	"github.com/pkordes/rv-pager/internal/domain"
	"github.com/pkordes/rv-pager/internal/middleware"
	"github.com/pkordes/rv-pager/internal/pager"
)

type pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type linkResponse struct {
	pager.Link
	Href string `json:"href"`
}

type tripList struct {
	Data       []domain.Trip  `json:"data"`
	Pagination pagination     `json:"pagination"`
	Links      []linkResponse `json:"links"`
}

// ListTrips handles GET /api/trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	p, page, ok := s.loadPage(w, r)
	if !ok {
		return
	}

	plan, err := p.Plan()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	links := make([]linkResponse, len(plan))
	for i, l := range plan {
		links[i] = linkResponse{Link: l, Href: p.Href(l.Page)}
	}

	totalPages, _ := p.TotalPages()
	writeJSON(w, http.StatusOK, tripList{
		Data: page.Items,
		Pagination: pagination{
			Page:       p.CurrentPage(),
			Limit:      page.Limit,
			Offset:     page.Offset,
			Total:      page.Total,
			TotalPages: totalPages,
		},
		Links: links,
	})
}

var tripsPage = template.Must(template.New("trips").Funcs(sprig.FuncMap()).Parse(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Trips, page {{.Page}} of {{.TotalPages}}</title></head>
<body>
<h1>Trips</h1>
<p>{{.Total}} trips, page {{.Page}} of {{.TotalPages}}</p>
<table>
<thead><tr><th>Name</th><th>Start</th><th>End</th></tr></thead>
<tbody>
{{- range .Trips}}
<tr><td>{{.Name}}</td><td>{{dateInZone "2006-01-02" .StartDate "UTC"}}</td><td>{{with .EndDate}}{{dateInZone "2006-01-02" . "UTC"}}{{else}}ongoing{{end}}</td></tr>
{{- else}}
<tr><td colspan="3">No trips on this page.</td></tr>
{{- end}}
</tbody>
</table>
<nav>{{.Links}}</nav>
<nav>{{.LinksCenter}}</nav>
</body>
</html>
`))

type tripsView struct {
	Trips       []domain.Trip
	Page        int
	TotalPages  int
	Total       int64
	Links       template.HTML
	LinksCenter template.HTML
}

// ListTripsPage handles GET /trips and renders the listing as HTML.
func (s *Server) ListTripsPage(w http.ResponseWriter, r *http.Request) {
	p, page, ok := s.loadPage(w, r)
	if !ok {
		return
	}

	links, err := p.Links()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	center, err := p.LinksCenter()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	totalPages, _ := p.TotalPages()
	var buf bytes.Buffer
	// Render escapes hrefs and strips markup from labels.
	err = tripsPage.Execute(&buf, tripsView{
		Trips:       page.Items,
		Page:        p.CurrentPage(),
		TotalPages:  totalPages,
		Total:       page.Total,
		Links:       template.HTML(links),
		LinksCenter: template.HTML(center),
	})
	if err != nil {
		s.writeError(w, r, fmt.Errorf("handler.Server.ListTripsPage: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// loadPage runs the request's pager against the trip count and loads the
// selected window. It writes the response itself and returns false when the
// request was redirected or failed.
func (s *Server) loadPage(w http.ResponseWriter, r *http.Request) (*pager.Pager, domain.Page[domain.Trip], bool) {
	var page domain.Page[domain.Trip]

	p, ok := middleware.PagerFromContext(r.Context())
	if !ok {
		s.writeError(w, r, errors.New("handler.Server.loadPage: no pager on request context"))
		return nil, page, false
	}

	total, err := s.trips.Count(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return nil, page, false
	}

	win, redirect := p.Run(pager.RequestFromURL(r.URL), pager.WithTotal(int(total)))
	if redirect != nil {
		http.Redirect(w, r, redirect.Location, redirect.StatusCode)
		return nil, page, false
	}

	page, err = s.trips.Page(r.Context(), win, total)
	if err != nil {
		s.writeError(w, r, err)
		return nil, page, false
	}
	return p, page, true
}
