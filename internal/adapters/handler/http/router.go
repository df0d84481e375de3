package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/notes/api/internal/core/ports"
)

func NewHandler(authHandler *AuthHandler, noteHandler *NoteHandler, userHandler *UserHandler, authService ports.AuthService, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(authService))

			r.Get("/me", userHandler.GetMe)

			r.Route("/notes", func(r chi.Router) {
				r.Get("/", noteHandler.ListNotes)
				r.Post("/", noteHandler.CreateNote)
				r.Get("/{id}", noteHandler.GetNote)
				r.Put("/{id}", noteHandler.UpdateNote)
				r.Delete("/{id}", noteHandler.DeleteNote)
			})
		})
	})

	return r
}
