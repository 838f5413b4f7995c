// Package handlers implements the HTTP surface of the admin console and
// the public landing pages. Shared dependencies are installed once via
// Configure before the router is built.
package handlers

import (
	"net/http"

	templpkg "github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"

	"pagehelm/internal/ai"
	"pagehelm/internal/editor"
	applog "pagehelm/internal/log"
	"pagehelm/internal/policy"
	"pagehelm/internal/store"
)

const (
	sessionAuthenticatedKey = "auth:authenticated"
	sessionLoginMessageKey  = "auth:message"
	sessionUserIDKey        = "auth:user:id"
	sessionUserEmailKey     = "auth:user:email"
	sessionUserNameKey      = "auth:user:name"
	sessionUserRoleKey      = "auth:user:role"
	sessionSimulateKey      = "view:simulate"
	sessionFlashKey         = "view:flash"
	sessionPendingPageKey   = "generate:pending:config"
	sessionPendingTitleKey  = "generate:pending:title"
)

var (
	sessionManager *scs.SessionManager
	appStore       *store.Store
	editorSessions *editor.Manager
	openAIClient   *ai.Client
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, st *store.Store, sessions *editor.Manager) {
	sessionManager = sm
	appStore = st
	editorSessions = sessions
}

// ConfigureAI installs the OpenAI client used by the generation endpoints.
// A nil client disables them with a friendly message.
func ConfigureAI(client *ai.Client) {
	openAIClient = client
}

func renderComponent(w http.ResponseWriter, r *http.Request, component templpkg.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render component", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func currentUserID(r *http.Request) (uint, bool) {
	if sessionManager == nil {
		return 0, false
	}
	id := sessionManager.GetInt(r.Context(), sessionUserIDKey)
	if id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func currentRole(r *http.Request) string {
	if sessionManager == nil {
		return ""
	}
	return sessionManager.GetString(r.Context(), sessionUserRoleKey)
}

func simulating(r *http.Request) bool {
	if sessionManager == nil {
		return false
	}
	return sessionManager.GetBool(r.Context(), sessionSimulateKey)
}

// capabilitiesFor derives the request's effective capability set. The page
// count feeds the free-tier creation cap.
func capabilitiesFor(r *http.Request) (policy.Capabilities, int64) {
	var pageCount int64
	if appStore != nil {
		if count, err := appStore.CountPages(r.Context()); err == nil {
			pageCount = count
		} else {
			applog.Error(r.Context(), "failed to count pages", "error", err)
		}
	}
	return policy.Derive(currentRole(r), simulating(r), pageCount), pageCount
}

func putFlash(r *http.Request, message string) {
	if sessionManager != nil && message != "" {
		sessionManager.Put(r.Context(), sessionFlashKey, message)
	}
}

func popFlash(r *http.Request) string {
	if sessionManager == nil {
		return ""
	}
	return sessionManager.PopString(r.Context(), sessionFlashKey)
}
