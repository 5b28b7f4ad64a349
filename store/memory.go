package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"notes-app/models"
)

// MemUserStore is a map-backed UserStore used by tests and DSN-less runs.
type MemUserStore struct {
	mu     sync.Mutex
	nextID int
	users  map[int]models.User
}

func NewMemUserStore() *MemUserStore {
	return &MemUserStore{nextID: 1, users: make(map[int]models.User)}
}

func (s *MemUserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemUserStore) ByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemUserStore) Create(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	u.ID = s.nextID
	s.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users[u.ID] = *u
	return nil
}

// MemNoteStore is a map-backed NoteStore used by tests and DSN-less runs.
type MemNoteStore struct {
	mu     sync.Mutex
	nextID int
	notes  map[int]models.Note
}

func NewMemNoteStore() *MemNoteStore {
	return &MemNoteStore{nextID: 1, notes: make(map[int]models.Note)}
}

func (s *MemNoteStore) All(ctx context.Context) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(models.Note) bool { return true }), nil
}

func (s *MemNoteStore) ByOwner(ctx context.Context, userID int) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(n models.Note) bool { return n.UserID == userID }), nil
}

func (s *MemNoteStore) ByID(ctx context.Context, id int) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &n, nil
}

func (s *MemNoteStore) Create(ctx context.Context, n *models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.nextID
	s.nextID++
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	s.notes[n.ID] = *n
	return nil
}

func (s *MemNoteStore) Update(ctx context.Context, n *models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[n.ID]; !ok {
		return ErrNotFound
	}
	s.notes[n.ID] = *n
	return nil
}

func (s *MemNoteStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[id]; !ok {
		return ErrNotFound
	}
	delete(s.notes, id)
	return nil
}

func (s *MemNoteStore) sorted(keep func(models.Note) bool) []models.Note {
	var notes []models.Note
	for _, n := range s.notes {
		if keep(n) {
			notes = append(notes, n)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes
}
