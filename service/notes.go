package service

import (
	"context"

	"notes-app/models"
	"notes-app/store"
)

// NoteService applies the owner-or-admin policy around the note store.
// Every method takes the verified identity email explicitly; nothing is
// read from ambient request state.
type NoteService struct {
	notes store.NoteStore
	users store.UserStore
}

func NewNoteService(notes store.NoteStore, users store.UserStore) *NoteService {
	return &NoteService{notes: notes, users: users}
}

func canAccess(user *models.User, note *models.Note) bool {
	return user.Role == models.RoleAdmin || note.UserID == user.ID
}

// ListNotes returns every note for admins, and only the caller's own notes
// otherwise.
func (s *NoteService) ListNotes(ctx context.Context, identity string) ([]models.Note, error) {
	user, err := s.users.ByEmail(ctx, identity)
	if err != nil {
		return nil, err
	}
	if user.Role == models.RoleAdmin {
		return s.notes.All(ctx)
	}
	return s.notes.ByOwner(ctx, user.ID)
}

func (s *NoteService) GetNote(ctx context.Context, id int, identity string) (*models.Note, error) {
	return s.authorize(ctx, id, identity)
}

func (s *NoteService) CreateNote(ctx context.Context, title, description, identity string) (*models.Note, error) {
	user, err := s.users.ByEmail(ctx, identity)
	if err != nil {
		return nil, err
	}
	note := &models.Note{
		Title:       title,
		Description: description,
		UserID:      user.ID,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote overwrites title and description. Owner and id never change.
func (s *NoteService) UpdateNote(ctx context.Context, id int, title, description, identity string) (*models.Note, error) {
	note, err := s.authorize(ctx, id, identity)
	if err != nil {
		return nil, err
	}
	note.Title = title
	note.Description = description
	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, id int, identity string) error {
	note, err := s.authorize(ctx, id, identity)
	if err != nil {
		return err
	}
	return s.notes.Delete(ctx, note.ID)
}

// authorize resolves the caller and the note, checking existence before
// permission: a missing note is NotFound for everyone.
func (s *NoteService) authorize(ctx context.Context, id int, identity string) (*models.Note, error) {
	user, err := s.users.ByEmail(ctx, identity)
	if err != nil {
		return nil, err
	}
	note, err := s.notes.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(user, note) {
		return nil, ErrForbidden
	}
	return note, nil
}
