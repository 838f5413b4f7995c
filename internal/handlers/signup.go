package handlers

import (
	"errors"
	"net/http"
	"strings"

	applog "pagehelm/internal/log"
	"pagehelm/internal/store"
	"pagehelm/internal/views/layout"
	"pagehelm/internal/views/pages"
	"pagehelm/models"
)

// Signup displays the account creation form and processes new registrations.
// The selected tier decides whether the account starts as USER or FREE_USER.
func Signup(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if ActiveSession(r) {
			redirectToApp(w, r)
			return
		}
		renderSignup(w, r, "")
	case http.MethodPost:
		if sessionManager == nil || appStore == nil {
			http.Error(w, "registration not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}

		name := strings.TrimSpace(r.PostFormValue("name"))
		email := normalizeEmail(r.PostFormValue("email"))
		password := r.PostFormValue("password")
		tier := r.PostFormValue("tier")

		if email == "" || !strings.Contains(email, "@") {
			renderSignup(w, r, "Please provide a valid email address.")
			return
		}
		if len(password) < 8 {
			renderSignup(w, r, "Password must be at least 8 characters long.")
			return
		}

		if _, err := appStore.UserByEmail(r.Context(), email); err == nil {
			renderSignup(w, r, "An account with that email already exists.")
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			applog.Error(r.Context(), "failed to check existing user", "error", err)
			renderSignup(w, r, "We couldn't create your account right now. Please try again.")
			return
		}

		role := models.RoleFreeUser
		if tier == "standard" {
			role = models.RoleUser
		}

		user, err := appStore.CreateUser(r.Context(), email, name, password, role, "")
		if err != nil {
			applog.Error(r.Context(), "failed to create user", "error", err)
			renderSignup(w, r, "We couldn't create your account right now. Please try again.")
			return
		}

		if err := establishSession(r, user); err != nil {
			applog.Error(r.Context(), "failed to establish session after signup", "error", err)
			renderSignup(w, r, "We couldn't sign you in after creating your account. Please try again.")
			return
		}

		redirectToApp(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func renderSignup(w http.ResponseWriter, r *http.Request, message string) {
	if isHTMX(r) {
		renderComponent(w, r, pages.Signup(message))
		return
	}
	renderComponent(w, r, layout.Base("Create an account", pages.Signup(message)))
}
