package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinevault/internal/server/services"
)

type movieRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	ReleaseYear int      `json:"releaseYear" validate:"omitempty,gte=1888"`
	DurationMin int      `json:"durationMin" validate:"omitempty,gt=0"`
	VideoKey    string   `json:"videoKey"`
	PosterKey   string   `json:"posterKey"`
}

func (r movieRequest) toInput() services.MovieInput {
	return services.MovieInput{
		Title:       r.Title,
		Description: r.Description,
		Genres:      r.Genres,
		ReleaseYear: r.ReleaseYear,
		DurationMin: r.DurationMin,
		VideoKey:    r.VideoKey,
		PosterKey:   r.PosterKey,
	}
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.log, err)
		return
	}

	movie, err := s.movies.CreateMovie(r.Context(), userIDFromContext(r.Context()), req.toInput())
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, movie)
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := s.movies.ListMovies(r.Context())
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, movies)
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := s.movies.GetMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.log, err)
		return
	}

	movie, err := s.movies.UpdateMovie(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

func (s *Server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := s.movies.DeleteMovie(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, s.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	movies, err := s.movies.ListFavorites(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, movies)
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	if err := s.movies.AddFavorite(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "movieID")); err != nil {
		writeError(w, r, s.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if err := s.movies.RemoveFavorite(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "movieID")); err != nil {
		writeError(w, r, s.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
