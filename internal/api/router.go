package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/blog-backend/internal/api/handlers"
	"github.com/baharkarakas/blog-backend/internal/api/httpx"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/middleware"
)

type RouterDeps struct {
	Auth     *handlers.AuthHandler
	Posts    *handlers.PostsHandler
	Comments *handlers.CommentsHandler
	Gate     *middleware.AuthMiddleware
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMessage(w, http.StatusOK, "Welcome to the Blog API")
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", d.Auth.Register)
			r.Post("/login", d.Auth.Login)
			r.Post("/forgot-password", d.Auth.ForgotPassword)
			r.Post("/reset-password", d.Auth.ResetPassword)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", d.Posts.List)
			r.Get("/{id}", d.Posts.Get)

			r.Group(func(r chi.Router) {
				r.Use(d.Gate.Gate)
				r.Post("/", d.Posts.Create)
				r.Put("/{id}", d.Posts.Update)
				r.Delete("/{id}", d.Posts.Delete)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			// the path param doubles as a post id on reads and a
			// comment id on writes; chi requires one name per slot
			r.Get("/{id}", d.Comments.ListByPost)

			r.Group(func(r chi.Router) {
				r.Use(d.Gate.Gate)
				r.Post("/", d.Comments.Create)
				r.Put("/{id}", d.Comments.Update)
				r.Delete("/{id}", d.Comments.Delete)
			})
		})
	})

	return r
}
