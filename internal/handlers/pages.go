package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	applog "pagehelm/internal/log"
	"pagehelm/internal/store"
	"pagehelm/models"
)

func pageIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "pageID"), 10, 64)
}

// CreatePage adds a new draft page, subject to the caller's page cap.
func CreatePage(w http.ResponseWriter, r *http.Request) {
	if appStore == nil {
		http.Error(w, "storage not available", http.StatusServiceUnavailable)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	caps, _ := capabilitiesFor(r)
	title := strings.TrimSpace(r.PostFormValue("title"))

	// The store enforces the page budget inside the create transaction, so
	// a racing second create cannot slip past the cap.
	page, err := appStore.CreatePageCapped(r.Context(), title, caps.MaxPages)
	switch {
	case errors.Is(err, store.ErrCapacityExceeded):
		putFlash(r, "Your free plan is limited to 2 pages. Upgrade to create more.")
	case err != nil:
		applog.Error(r.Context(), "failed to create page", "error", err)
		putFlash(r, "We couldn't create the page. Please try again.")
	default:
		putFlash(r, "Created "+page.Title+".")
	}
	redirectTo(w, r, "/app?tab=pages")
}

// DeletePage removes a page. The home page refuses deletion.
func DeletePage(w http.ResponseWriter, r *http.Request) {
	if appStore == nil {
		http.Error(w, "storage not available", http.StatusServiceUnavailable)
		return
	}
	id, err := pageIDParam(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch err := appStore.DeletePage(r.Context(), id); {
	case errors.Is(err, store.ErrProtectedEntity):
		putFlash(r, "The home page cannot be deleted.")
	case errors.Is(err, store.ErrNotFound):
		putFlash(r, "That page no longer exists.")
	case err != nil:
		applog.Error(r.Context(), "failed to delete page", "error", err, "pageID", id)
		putFlash(r, "We couldn't delete the page. Please try again.")
	default:
		putFlash(r, "Page deleted.")
	}
	redirectTo(w, r, "/app?tab=pages")
}

// PublishPage makes a page publicly visible. Free-tier accounts cannot
// publish.
func PublishPage(w http.ResponseWriter, r *http.Request) {
	setPageStatus(w, r, models.PageStatusPublished)
}

// UnpublishPage reverts a page to draft.
func UnpublishPage(w http.ResponseWriter, r *http.Request) {
	setPageStatus(w, r, models.PageStatusDraft)
}

func setPageStatus(w http.ResponseWriter, r *http.Request, status string) {
	if appStore == nil {
		http.Error(w, "storage not available", http.StatusServiceUnavailable)
		return
	}
	caps, _ := capabilitiesFor(r)
	if !caps.CanPublish {
		putFlash(r, "Publishing requires an upgraded plan.")
		redirectTo(w, r, "/app?tab=pages")
		return
	}

	id, err := pageIDParam(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch err := appStore.SetPageStatus(r.Context(), id, status); {
	case errors.Is(err, store.ErrNotFound):
		putFlash(r, "That page no longer exists.")
	case err != nil:
		applog.Error(r.Context(), "failed to change page status", "error", err, "pageID", id)
		putFlash(r, "We couldn't update the page. Please try again.")
	case status == models.PageStatusPublished:
		putFlash(r, "Page published.")
	default:
		putFlash(r, "Page reverted to draft.")
	}
	redirectTo(w, r, "/app?tab=pages")
}
