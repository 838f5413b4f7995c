package handlers

import (
	"net/http"

	"pagehelm/models"
)

// SimulateEnter switches an administrator into the user view. The stored
// role never changes; the toggle lives in the session.
func SimulateEnter(w http.ResponseWriter, r *http.Request) {
	if sessionManager == nil {
		http.Error(w, "session not available", http.StatusServiceUnavailable)
		return
	}
	if currentRole(r) != models.RoleAdmin {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	sessionManager.Put(r.Context(), sessionSimulateKey, true)
	redirectToApp(w, r)
}

// SimulateExit restores the administrator view.
func SimulateExit(w http.ResponseWriter, r *http.Request) {
	if sessionManager == nil {
		http.Error(w, "session not available", http.StatusServiceUnavailable)
		return
	}
	sessionManager.Remove(r.Context(), sessionSimulateKey)
	redirectToApp(w, r)
}
