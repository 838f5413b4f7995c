package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	applog "pagehelm/internal/log"
	"pagehelm/internal/render"
	"pagehelm/internal/store"
	"pagehelm/internal/views/layout"
	"pagehelm/internal/views/pages"
	"pagehelm/models"
)

// Home serves the site's landing page. The home document is seeded on
// first use so the site always has a front door.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if appStore == nil {
		http.Error(w, "storage not available", http.StatusServiceUnavailable)
		return
	}

	page, err := appStore.HomePage(r.Context())
	if err != nil {
		applog.Error(r.Context(), "failed to load home page", "error", err)
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}

	servePublicPage(w, r, page)
}

// PublicPage serves a published landing page by slug. Drafts are
// indistinguishable from missing pages.
func PublicPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if appStore == nil {
		http.Error(w, "storage not available", http.StatusServiceUnavailable)
		return
	}

	page, err := appStore.PageBySlug(r.Context(), chi.URLParam(r, "slug"))
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		applog.Error(r.Context(), "failed to load public page", "error", err)
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}
	if !page.Published() {
		http.NotFound(w, r)
		return
	}

	servePublicPage(w, r, page)
}

func servePublicPage(w http.ResponseWriter, r *http.Request, page *models.Page) {
	cfg, err := store.PageConfigOf(page)
	if err != nil {
		applog.Error(r.Context(), "failed to decode page document", "error", err, "pageID", page.PageID)
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}

	opts := render.Options{CurriculumExpanded: r.URL.Query().Get("curriculum") == "all"}
	renderComponent(w, r, layout.Public(page.Title, pages.Landing(cfg, opts)))
}
