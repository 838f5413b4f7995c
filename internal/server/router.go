package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pagehelm/internal/handlers"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handlers.Health)
	r.Get("/", handlers.Home)
	r.Get("/p/{slug}", handlers.PublicPage)

	r.HandleFunc("/login", handlers.Login)
	r.HandleFunc("/signup", handlers.Signup)
	r.HandleFunc("/logout", handlers.Logout)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	r.Route("/app", func(r chi.Router) {
		r.Use(handlers.RequireAuthentication)

		r.Get("/", handlers.Dashboard)
		r.Post("/pages", handlers.CreatePage)
		r.Post("/pages/{pageID}/delete", handlers.DeletePage)
		r.Post("/pages/{pageID}/publish", handlers.PublishPage)
		r.Post("/pages/{pageID}/unpublish", handlers.UnpublishPage)

		r.Get("/editor/{pageID}", handlers.EditorOpen)
		r.Post("/editor/title", handlers.EditorTitle)
		r.Post("/editor/field", handlers.EditorField)
		r.Post("/editor/item", handlers.EditorItem)
		r.Post("/editor/item/add", handlers.EditorItemAdd)
		r.Post("/editor/item/remove", handlers.EditorItemRemove)
		r.Post("/editor/focus", handlers.EditorFocus)
		r.Post("/editor/save", handlers.EditorSave)
		r.Post("/editor/discard", handlers.EditorDiscard)

		r.Post("/simulate/enter", handlers.SimulateEnter)
		r.Post("/simulate/exit", handlers.SimulateExit)

		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireAdmin)

			r.Post("/plans/{planKey}", handlers.UpdatePlan)
			r.Post("/generate", handlers.Generate)
			r.Post("/generate/accept", handlers.GenerateAccept)
			r.Post("/generate/discard", handlers.GenerateDiscard)
		})
	})

	return r
}
