package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"pagehelm/internal/ai"
	applog "pagehelm/internal/log"
	"pagehelm/internal/pageconfig"
	"pagehelm/internal/render"
	"pagehelm/internal/upload"
	"pagehelm/internal/views/layout"
	"pagehelm/internal/views/pages"
)

// Generate runs an AI page generation and, on success, stashes the merged
// document in the session for the review step. A generation already in
// flight is refused rather than queued.
func Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if sessionManager == nil || appStore == nil {
		http.Error(w, "generation not available", http.StatusServiceUnavailable)
		return
	}
	if openAIClient == nil {
		renderGeneratePanel(w, r, "AI integration is not configured. Set OPENAI_API_KEY to enable this tool.")
		return
	}

	if err := r.ParseMultipartForm(upload.MaxUploadSize); err != nil {
		renderGeneratePanel(w, r, "The submission was too large or malformed. Please try again.")
		return
	}

	product := strings.TrimSpace(r.PostFormValue("product"))
	description := strings.TrimSpace(r.PostFormValue("description"))
	if product == "" {
		renderGeneratePanel(w, r, "Provide a product name before generating.")
		return
	}

	fileContext, message := readContextFile(r)
	if message != "" {
		renderGeneratePanel(w, r, message)
		return
	}
	if description == "" && fileContext == "" {
		renderGeneratePanel(w, r, "Provide a description or a context file before generating.")
		return
	}

	requestID := uuid.NewString()
	applog.Info(r.Context(), "page generation started", "requestID", requestID, "product", product)
	raw, err := openAIClient.GeneratePage(r.Context(), product, description, fileContext, ai.FetchOptions{})
	if err != nil {
		if errors.Is(err, ai.ErrBusy) {
			renderGeneratePanel(w, r, "A generation is already running. Please wait for it to finish.")
			return
		}
		applog.Error(r.Context(), "page generation failed", "requestID", requestID, "error", err)
		renderGeneratePanel(w, r, "We couldn't generate the page. Please try again shortly.")
		return
	}

	// Gaps in the model output fall back to the stock document so the
	// result always renders.
	cfg, err := pageconfig.Merge(pageconfig.Default(), raw)
	if err != nil {
		applog.Error(r.Context(), "generated document rejected", "requestID", requestID, "error", err)
		renderGeneratePanel(w, r, "The generated page was malformed. Please try again.")
		return
	}

	encoded, err := cfg.Encode()
	if err != nil {
		applog.Error(r.Context(), "failed to encode generated document", "requestID", requestID, "error", err)
		renderGeneratePanel(w, r, "We couldn't process the generated page. Please try again.")
		return
	}

	sessionManager.Put(r.Context(), sessionPendingPageKey, string(encoded))
	sessionManager.Put(r.Context(), sessionPendingTitleKey, product)

	preview := pages.Landing(cfg, render.Options{Preview: true, CurriculumExpanded: true})
	component := pages.GenerateReview(product, preview)
	if isHTMX(r) {
		renderComponent(w, r, component)
		return
	}
	renderComponent(w, r, layout.Base("Review generated page", component))
}

// GenerateAccept turns the pending generated document into a new draft page.
func GenerateAccept(w http.ResponseWriter, r *http.Request) {
	if sessionManager == nil || appStore == nil {
		http.Error(w, "generation not available", http.StatusServiceUnavailable)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	pending := sessionManager.PopString(r.Context(), sessionPendingPageKey)
	title := strings.TrimSpace(r.PostFormValue("title"))
	if title == "" {
		title = sessionManager.GetString(r.Context(), sessionPendingTitleKey)
	}
	sessionManager.Remove(r.Context(), sessionPendingTitleKey)

	if pending == "" {
		putFlash(r, "There is no generated page waiting. Generate one first.")
		redirectTo(w, r, "/app?tab=generate")
		return
	}

	cfg, err := pageconfig.Decode([]byte(pending))
	if err != nil {
		applog.Error(r.Context(), "pending document rejected", "error", err)
		putFlash(r, "The generated page could not be restored. Please generate again.")
		redirectTo(w, r, "/app?tab=generate")
		return
	}

	page, err := appStore.CreatePageWithConfig(r.Context(), title, cfg)
	if err != nil {
		applog.Error(r.Context(), "failed to create generated page", "error", err)
		putFlash(r, "We couldn't create the page. Please try again.")
		redirectTo(w, r, "/app?tab=generate")
		return
	}

	putFlash(r, "Created "+page.Title+" from the generated draft.")
	redirectTo(w, r, "/app?tab=pages")
}

// GenerateDiscard drops the pending generated document.
func GenerateDiscard(w http.ResponseWriter, r *http.Request) {
	if sessionManager != nil {
		sessionManager.Remove(r.Context(), sessionPendingPageKey)
		sessionManager.Remove(r.Context(), sessionPendingTitleKey)
	}
	redirectTo(w, r, "/app?tab=generate")
}

func renderGeneratePanel(w http.ResponseWriter, r *http.Request, message string) {
	component := pages.GeneratePanel(message)
	if isHTMX(r) {
		renderComponent(w, r, component)
		return
	}
	renderComponent(w, r, layout.Base("Generate a landing page", component))
}

func readContextFile(r *http.Request) (string, string) {
	file, header, err := r.FormFile("context")
	if errors.Is(err, http.ErrMissingFile) {
		return "", ""
	}
	if err != nil {
		return "", "The context file could not be read. Please try again."
	}
	defer file.Close()

	if header.Size > upload.MaxUploadSize {
		return "", "The context file is too large."
	}
	data, err := io.ReadAll(io.LimitReader(file, upload.MaxUploadSize+1))
	if err != nil {
		return "", "The context file could not be read. Please try again."
	}

	text, err := upload.TextContext(header.Filename, data)
	if err != nil {
		applog.Debug(r.Context(), "context file rejected", "error", err, "filename", header.Filename)
		return "", "Only text and PDF context files are supported."
	}
	return text, ""
}
