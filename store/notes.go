package store

import (
	"context"
	"database/sql"
	"errors"

	"notes-app/models"
)

type SQLNoteStore struct {
	db *sql.DB
}

func NewSQLNoteStore(db *sql.DB) *SQLNoteStore {
	return &SQLNoteStore{db: db}
}

func (s *SQLNoteStore) All(ctx context.Context) ([]models.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, description, user_id, created_at FROM notes ORDER BY id")
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}

func (s *SQLNoteStore) ByOwner(ctx context.Context, userID int) ([]models.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, description, user_id, created_at FROM notes WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}

func (s *SQLNoteStore) ByID(ctx context.Context, id int) (*models.Note, error) {
	var n models.Note
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, description, user_id, created_at FROM notes WHERE id = ?", id).
		Scan(&n.ID, &n.Title, &n.Description, &n.UserID, &n.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *SQLNoteStore) Create(ctx context.Context, n *models.Note) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO notes (title, description, user_id) VALUES (?, ?, ?)",
		n.Title, n.Description, n.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = int(id)
	return s.db.QueryRowContext(ctx, "SELECT created_at FROM notes WHERE id = ?", n.ID).
		Scan(&n.CreatedAt)
}

func (s *SQLNoteStore) Update(ctx context.Context, n *models.Note) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE notes SET title = ?, description = ? WHERE id = ?",
		n.Title, n.Description, n.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	// 0 rows also happens when the new values equal the old ones, so
	// re-check existence before reporting not found
	if affected == 0 {
		if _, err := s.ByID(ctx, n.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLNoteStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func collectNotes(rows *sql.Rows) ([]models.Note, error) {
	defer rows.Close()
	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Description, &n.UserID, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
