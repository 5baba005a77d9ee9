package http

import (
	"errors"
	"io"
	"net/http"

	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/storage"

	"github.com/gorilla/mux"
)

// multipartOverhead leaves room for the form boundaries around the file part.
const multipartOverhead = 64 << 10

func (h *handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "VALIDATION", "file too large", "file")
			return
		}
		writeError(w, http.StatusBadRequest, "VALIDATION", "file is required", "file")
		return
	}
	defer file.Close()

	obj, err := h.svc.Files.Save(r.Context(), header.Filename, file)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}

	logger.Info("File uploaded", "key", obj.Key, "name", obj.Name, "size", obj.Size)
	writeJSON(w, http.StatusCreated, obj)
}

func (h *handler) serveFile(w http.ResponseWriter, r *http.Request) {
	rc, contentType, err := h.svc.Files.Open(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}

func writeStorageError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrUnsupportedType):
		writeError(w, http.StatusUnsupportedMediaType, "VALIDATION", "file must be a jpeg, png or gif image", "file")
	case errors.Is(err, storage.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "VALIDATION", "file too large", "file")
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "file not found", "")
	default:
		writeServiceError(w, r, err)
	}
}
