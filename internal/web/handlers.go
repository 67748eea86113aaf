package web

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"notecal/internal/config"
	"notecal/internal/errors"
	"notecal/internal/note"
	"notecal/internal/ops"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	db       *sql.DB
	cfg      *config.Config
	renderer *Renderer
}

// HandleCalendar handles GET /calendar — the three-panel month view:
// stats sidebar, day grid, and the notes panel for the current selection.
func (h *Handlers) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	selected := r.URL.Query().Get("date")
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	month, err := ops.Month(h.db, ops.MonthInput{
		Year:     parseIntParam(r, "year", 0),
		Month:    parseIntParam(r, "month", 0),
		Selected: selected,
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	stats, err := ops.Stats(h.db)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	notes, err := ops.List(h.db, h.cfg, ops.ListInput{
		Search:   query,
		Category: category,
		Date:     selected,
		Compact:  true,
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	panelTitle := "All Notes"
	switch {
	case selected != "":
		panelTitle = "Notes for " + formatDate(selected)
	case query != "":
		panelTitle = "Search Results"
	case category != "":
		panelTitle = category + " Notes"
	}

	h.renderer.renderPage(w, r, "calendar", CalendarPageData{
		PageData: PageData{
			Title:   "Calendar",
			Version: h.renderer.version,
			Nav:     "calendar",
		},
		Month:      month,
		Stats:      stats,
		Notes:      notes.Items,
		Categories: note.Categories(),
		Selected:   selected,
		Query:      query,
		Category:   category,
		PanelTitle: panelTitle,
	})
}

// HandleList handles GET /notes — filterable list of all notes.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	date := r.URL.Query().Get("date")

	result, err := ops.List(h.db, h.cfg, ops.ListInput{
		Search:   query,
		Category: category,
		Date:     date,
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "list", ListPageData{
		PageData: PageData{
			Title:   "Notes",
			Version: h.renderer.version,
			Nav:     "notes",
		},
		Items:      result.Items,
		Total:      result.Total,
		Categories: note.Categories(),
		Query:      query,
		Category:   category,
		Date:       date,
	})
}

// HandleDetail handles GET /notes/{id} — full note with rendered content.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	result, err := ops.Fetch(h.db, ops.FetchInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	def, ok := note.LookupCategory(result.Note.Category)
	if !ok {
		def = note.CategoryDef{ID: result.Note.Category, Name: string(result.Note.Category), Color: note.DefaultActivityColor}
	}

	h.renderer.renderPage(w, r, "detail", DetailPageData{
		PageData: PageData{
			Title:   result.Note.Title,
			Version: h.renderer.version,
			Nav:     "notes",
		},
		Note:         result.Note,
		CategoryDef:  def,
		RenderedHTML: renderMarkdown(result.Note.Content),
	})
}

// HandleCreate handles POST /notes — the list page's new-note form.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("malformed form data"))
		return
	}

	output, err := ops.Create(h.db, ops.CreateInput{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		Date:     r.FormValue("date"),
		Category: r.FormValue("category"),
		Tags:     splitTags(r.FormValue("tags")),
		Pinned:   r.FormValue("pinned") != "",
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/notes/"+output.Note.ID, http.StatusSeeOther)
}

// HandleDelete handles DELETE /notes/{id}.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if _, err := ops.Delete(h.db, ops.DeleteInput{ID: id}); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// htmx swap target removal; non-htmx clients get redirected
	if r.Header.Get("HX-Request") == "true" {
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/notes", http.StatusSeeOther)
}

// splitTags splits a comma-separated tag field, dropping blanks.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// parseIntParam parses an integer query parameter with a default.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
