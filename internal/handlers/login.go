package handlers

import (
	"net/http"
	"strings"

	applog "pagehelm/internal/log"
	"pagehelm/internal/views/layout"
	"pagehelm/internal/views/pages"
)

// Login renders the authentication view and processes sign-in submissions.
func Login(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if ActiveSession(r) {
			redirectToApp(w, r)
			return
		}
		message := ""
		if sessionManager != nil {
			message = sessionManager.PopString(r.Context(), sessionLoginMessageKey)
		}
		renderLogin(w, r, message)
	case http.MethodPost:
		if sessionManager == nil || appStore == nil {
			http.Error(w, "authentication not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		email := normalizeEmail(r.PostFormValue("email"))
		password := r.PostFormValue("password")

		if email == "" || password == "" {
			renderLogin(w, r, "Email and password are required.")
			return
		}

		if !authenticate(w, r, email, password) {
			message := sessionManager.PopString(r.Context(), sessionLoginMessageKey)
			if message == "" {
				message = "We were unable to sign you in. Please try again."
			}
			applog.Debug(r.Context(), "authentication failed", "email", strings.ToLower(email))
			renderLogin(w, r, message)
			return
		}

		redirectToApp(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func renderLogin(w http.ResponseWriter, r *http.Request, message string) {
	if isHTMX(r) {
		renderComponent(w, r, pages.Login(message))
		return
	}
	renderComponent(w, r, layout.Base("Sign in", pages.Login(message)))
}
