package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cinevault/internal/logging"
)

// Server holds the handler dependencies.
type Server struct {
	users   UserProvider
	movies  MovieProvider
	storage StorageProvider
	log     logging.Logger
}

// NewHandler builds the full API router.
func NewHandler(users UserProvider, movies MovieProvider, storage StorageProvider, log logging.Logger) http.Handler {
	s := &Server{users: users, movies: movies, storage: storage, log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logRequests(log))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.Get("/auth/security-question", s.handleSecurityQuestion)
		r.Post("/auth/reset-password", s.handleResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(users, log))

			r.Post("/auth/change-password", s.handleChangePassword)
			r.Get("/auth/me", s.handleMe)

			r.Put("/users/me", s.handleUpdateProfile)
			r.Delete("/users/me", s.handleDeleteAccount)

			r.Route("/movies", func(r chi.Router) {
				r.Post("/", s.handleCreateMovie)
				r.Get("/", s.handleListMovies)
				r.Get("/{id}", s.handleGetMovie)
				r.Put("/{id}", s.handleUpdateMovie)
				r.Delete("/{id}", s.handleDeleteMovie)
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", s.handleListFavorites)
				r.Put("/{movieID}", s.handleAddFavorite)
				r.Delete("/{movieID}", s.handleRemoveFavorite)
			})

			r.Post("/uploads", s.handleRequestUpload)
			r.Get("/uploads/*", s.handleRequestDownload)
		})
	})

	return r
}
