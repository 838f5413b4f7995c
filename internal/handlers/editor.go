package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pagehelm/internal/editor"
	applog "pagehelm/internal/log"
	"pagehelm/internal/pageconfig"
	"pagehelm/internal/store"
	"pagehelm/internal/views/layout"
	"pagehelm/internal/views/pages"
)

func editorToken(r *http.Request) string {
	if sessionManager == nil {
		return ""
	}
	return sessionManager.Token(r.Context())
}

// EditorOpen starts an edit session for a page and renders the editing
// surface. Reopening replaces any session already held by the caller.
func EditorOpen(w http.ResponseWriter, r *http.Request) {
	if appStore == nil || editorSessions == nil {
		http.Error(w, "editor not available", http.StatusServiceUnavailable)
		return
	}
	id, err := pageIDParam(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, err := appStore.Page(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		applog.Error(r.Context(), "failed to load page for editing", "error", err, "pageID", id)
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}

	session, err := editorSessions.Open(editorToken(r), page)
	if err != nil {
		applog.Error(r.Context(), "failed to open edit session", "error", err, "pageID", id)
		http.Error(w, "failed to open editor", http.StatusInternalServerError)
		return
	}

	renderEditor(w, r, session, "")
}

// EditorTitle updates the working title.
func EditorTitle(w http.ResponseWriter, r *http.Request) {
	applyEdit(w, r, func(token string) error {
		return editorSessions.SetTitle(token, strings.TrimSpace(r.PostFormValue("title")))
	})
}

// EditorField applies one section-scoped field edit.
func EditorField(w http.ResponseWriter, r *http.Request) {
	applyEdit(w, r, func(token string) error {
		section, err := pageconfig.ParseSectionKey(r.PostFormValue("section"))
		if err != nil {
			return err
		}
		return editorSessions.UpdateField(token, section, r.PostFormValue("field"), formValue(r))
	})
}

// EditorItem applies one list-item field edit.
func EditorItem(w http.ResponseWriter, r *http.Request) {
	applyEdit(w, r, func(token string) error {
		section, err := pageconfig.ParseSectionKey(r.PostFormValue("section"))
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(r.PostFormValue("index"))
		if err != nil {
			return err
		}
		return editorSessions.UpdateItem(token, section, index, r.PostFormValue("field"), formValue(r))
	})
}

// EditorItemAdd appends an empty item to a section list.
func EditorItemAdd(w http.ResponseWriter, r *http.Request) {
	applyEdit(w, r, func(token string) error {
		section, err := pageconfig.ParseSectionKey(r.PostFormValue("section"))
		if err != nil {
			return err
		}
		item, err := emptyItemFor(section)
		if err != nil {
			return err
		}
		return editorSessions.AddItem(token, section, item)
	})
}

// EditorItemRemove drops an item from a section list.
func EditorItemRemove(w http.ResponseWriter, r *http.Request) {
	applyEdit(w, r, func(token string) error {
		section, err := pageconfig.ParseSectionKey(r.PostFormValue("section"))
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(r.PostFormValue("index"))
		if err != nil {
			return err
		}
		return editorSessions.RemoveItem(token, section, index)
	})
}

// EditorFocus records the focused section and tells the client which
// preview anchor to scroll to.
func EditorFocus(w http.ResponseWriter, r *http.Request) {
	if editorSessions == nil {
		http.Error(w, "editor not available", http.StatusServiceUnavailable)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	token := editorToken(r)
	anchor, err := editorSessions.SetFocus(token, pageconfig.SectionKey(r.PostFormValue("section")))
	if err != nil {
		renderEditorState(w, r, token, err)
		return
	}

	w.Header().Set("HX-Trigger", `{"preview:scroll":"`+anchor+`"}`)
	renderEditorState(w, r, token, nil)
}

// EditorSave commits the working copy and returns to the page list. The
// session survives a failed save.
func EditorSave(w http.ResponseWriter, r *http.Request) {
	if appStore == nil || editorSessions == nil {
		http.Error(w, "editor not available", http.StatusServiceUnavailable)
		return
	}

	token := editorToken(r)
	if err := editorSessions.Save(r.Context(), token, appStore); err != nil {
		if errors.Is(err, editor.ErrNoSession) {
			redirectTo(w, r, "/app?tab=pages")
			return
		}
		applog.Error(r.Context(), "failed to save page", "error", err)
		session, ok := editorSessions.Session(token)
		if !ok {
			redirectTo(w, r, "/app?tab=pages")
			return
		}
		renderEditor(w, r, session, saveErrorMessage(err))
		return
	}

	putFlash(r, "Page saved.")
	redirectTo(w, r, "/app?tab=pages")
}

// EditorDiscard closes the session without saving.
func EditorDiscard(w http.ResponseWriter, r *http.Request) {
	if editorSessions != nil {
		editorSessions.Discard(editorToken(r))
	}
	redirectTo(w, r, "/app?tab=pages")
}

func applyEdit(w http.ResponseWriter, r *http.Request, apply func(token string) error) {
	if editorSessions == nil {
		http.Error(w, "editor not available", http.StatusServiceUnavailable)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	token := editorToken(r)
	renderEditorState(w, r, token, apply(token))
}

func renderEditorState(w http.ResponseWriter, r *http.Request, token string, editErr error) {
	if editErr != nil && errors.Is(editErr, editor.ErrNoSession) {
		redirectTo(w, r, "/app?tab=pages")
		return
	}

	session, ok := editorSessions.Session(token)
	if !ok {
		redirectTo(w, r, "/app?tab=pages")
		return
	}

	message := ""
	if editErr != nil {
		applog.Debug(r.Context(), "edit rejected", "error", editErr)
		message = "That change was not applied: " + editErr.Error()
	}
	renderEditor(w, r, session, message)
}

func renderEditor(w http.ResponseWriter, r *http.Request, session editor.Session, message string) {
	component := pages.Editor(pages.EditorData{Session: session, Message: message})
	if isHTMX(r) {
		renderComponent(w, r, component)
		return
	}
	renderComponent(w, r, layout.Base("Edit "+session.Title, component))
}

// formValue reads the posted value. Checkbox forms post a hidden "false"
// plus "true" when checked; the last value wins.
func formValue(r *http.Request) string {
	values := r.PostForm["value"]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

func emptyItemFor(section pageconfig.SectionKey) (any, error) {
	switch section {
	case pageconfig.SectionTargetAudience:
		return pageconfig.AudienceItem{Active: true}, nil
	case pageconfig.SectionFeatures:
		return pageconfig.FeatureItem{}, nil
	case pageconfig.SectionCurriculum:
		return pageconfig.ModuleItem{}, nil
	case pageconfig.SectionBonus:
		return pageconfig.BonusItem{}, nil
	case pageconfig.SectionTestimonials:
		return pageconfig.TestimonialItem{}, nil
	}
	return nil, errors.New("section has no item list")
}

func saveErrorMessage(err error) string {
	if strings.Contains(err.Error(), "title") {
		return "The page needs a title before it can be saved."
	}
	return "We couldn't save the page. Please try again."
}
