package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.Notes.ListNotes(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *handler) addNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.svc.Notes.AddNote(r.Context(), req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (h *handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Notes.DeleteNote(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
