package store

import (
	"context"
	"errors"

	"notes-app/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore persists user credentials. Create returns ErrDuplicateEmail when
// the email is already taken.
type UserStore interface {
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

// NoteStore persists notes. Lookups return ErrNotFound for unknown ids.
type NoteStore interface {
	All(ctx context.Context) ([]models.Note, error)
	ByOwner(ctx context.Context, userID int) ([]models.Note, error)
	ByID(ctx context.Context, id int) (*models.Note, error)
	Create(ctx context.Context, n *models.Note) error
	Update(ctx context.Context, n *models.Note) error
	Delete(ctx context.Context, id int) error
}
