package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinevault/internal/common"
)

type uploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type downloadResponse struct {
	URL string `json:"url"`
}

// handleRequestUpload allocates an object key and hands back a presigned PUT
// URL. The client uploads directly to storage; the server only ever sees the
// key, which the client then attaches to a catalog entry.
func (s *Server) handleRequestUpload(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.storage.RequestUploadURL(r.Context())
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{Key: key, URL: url})
}

// handleRequestDownload presigns a GET for the given object key. The key
// contains slashes, so the route uses a wildcard.
func (s *Server) handleRequestDownload(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		writeError(w, r, s.log, common.ErrorValidation)
		return
	}

	url, err := s.storage.RequestDownloadURL(r.Context(), key)
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, downloadResponse{URL: url})
}
