package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"notes-app/middleware"
	"notes-app/models"
	"notes-app/service"

	"github.com/go-chi/chi/v5"
)

type NoteHandler struct {
	Notes *service.NoteService
}

type noteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (nr noteRequest) validate() error {
	if nr.Title == "" {
		return &service.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	return nil
}

func noteID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, &service.ValidationError{Field: "id", Reason: "must be an integer"}
	}
	return id, nil
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Notes.ListNotes(r.Context(), middleware.Identity(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}
	respondJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	note, err := h.Notes.GetNote(r.Context(), id, middleware.Identity(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		respondServiceError(w, err)
		return
	}

	note, err := h.Notes.CreateNote(r.Context(), req.Title, req.Description, middleware.Identity(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		respondServiceError(w, err)
		return
	}

	note, err := h.Notes.UpdateNote(r.Context(), id, req.Title, req.Description, middleware.Identity(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if err := h.Notes.DeleteNote(r.Context(), id, middleware.Identity(r.Context())); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}
