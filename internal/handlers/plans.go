package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	applog "pagehelm/internal/log"
	"pagehelm/internal/store"
	"pagehelm/internal/views/pages"
)

// UpdatePlan applies an admin's plan edit. Marking a plan popular demotes
// the previous popular plan; deactivating the popular plan is refused with
// an inline message.
func UpdatePlan(w http.ResponseWriter, r *http.Request) {
	if appStore == nil {
		http.Error(w, "storage not available", http.StatusServiceUnavailable)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	key := chi.URLParam(r, "planKey")
	message := ""

	for _, field := range []string{"name", "price", "period", "description", "color"} {
		if !r.PostForm.Has(field) {
			continue
		}
		if err := appStore.UpdatePlan(r.Context(), key, field, strings.TrimSpace(r.PostFormValue(field))); err != nil {
			message = planErrorMessage(err)
			break
		}
	}

	if message == "" && r.PostForm.Has("features") {
		if err := appStore.SetPlanFeatures(r.Context(), key, r.PostFormValue("features")); err != nil {
			message = planErrorMessage(err)
		}
	}

	// Checkboxes post nothing when unchecked, so presence decides intent.
	if message == "" {
		popular := r.PostFormValue("popular") == "true"
		if err := appStore.UpdatePlan(r.Context(), key, "popular", popular); err != nil {
			message = planErrorMessage(err)
		}
	}
	if message == "" {
		active := r.PostFormValue("active") == "true"
		if err := appStore.UpdatePlan(r.Context(), key, "active", active); err != nil {
			message = planErrorMessage(err)
		}
	}

	if message == "" {
		message = "Plan updated."
	}

	if isHTMX(r) {
		caps, _ := capabilitiesFor(r)
		planList, err := appStore.Plans(r.Context())
		if err != nil {
			applog.Error(r.Context(), "failed to list plans", "error", err)
			http.Error(w, "failed to load plans", http.StatusInternalServerError)
			return
		}
		renderComponent(w, r, pages.PlansPanel(planList, caps, message))
		return
	}

	putFlash(r, message)
	redirectTo(w, r, "/app?tab=plans")
}

func planErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrInvariantViolation):
		return "The popular plan must stay active. Mark another plan as popular first."
	case errors.Is(err, store.ErrNotFound):
		return "That plan no longer exists."
	default:
		return "We couldn't update the plan. Please try again."
	}
}
