package store

import (
	"database/sql"
	"fmt"

	"github.com/abefas/todoitems/models"
)

// PostgresStore backs the todo collection with a todoitems table. The
// SERIAL primary key keeps ID assignment inside the store.
type PostgresStore struct {
	DB *sql.DB
}

// NewPostgresStore wraps an already-opened database connection.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// Insert stores a new record and returns it with the database-assigned ID.
func (s *PostgresStore) Insert(name *string, isComplete bool) (models.Todo, error) {
	todo := models.Todo{Name: name, IsComplete: isComplete}
	err := s.DB.QueryRow(
		"INSERT INTO todoitems(name, is_complete) VALUES($1, $2) RETURNING id",
		name, isComplete,
	).Scan(&todo.ID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to insert todo item: %w", err)
	}
	return todo, nil
}

// FindByID returns the record with the given ID, or ErrNotFound.
func (s *PostgresStore) FindByID(id int) (models.Todo, error) {
	var t models.Todo
	err := s.DB.QueryRow(
		"SELECT id, name, is_complete, secret FROM todoitems WHERE id = $1", id,
	).Scan(&t.ID, &t.Name, &t.IsComplete, &t.Secret)
	if err == sql.ErrNoRows {
		return models.Todo{}, ErrNotFound
	} else if err != nil {
		return models.Todo{}, fmt.Errorf("failed to retrieve todo item: %w", err)
	}
	return t, nil
}

// ListAll returns every record in ascending ID order.
func (s *PostgresStore) ListAll() ([]models.Todo, error) {
	return s.list("SELECT id, name, is_complete, secret FROM todoitems ORDER BY id ASC")
}

// ListComplete returns the completed subset in ascending ID order.
func (s *PostgresStore) ListComplete() ([]models.Todo, error) {
	return s.list("SELECT id, name, is_complete, secret FROM todoitems WHERE is_complete ORDER BY id ASC")
}

func (s *PostgresStore) list(query string) ([]models.Todo, error) {
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve todo items: %w", err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Name, &t.IsComplete, &t.Secret); err != nil {
			return nil, fmt.Errorf("failed to scan todo row: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}
	return todos, nil
}

// Update replaces Name and IsComplete; secret is deliberately not touched.
func (s *PostgresStore) Update(id int, name *string, isComplete bool) error {
	res, err := s.DB.Exec(
		"UPDATE todoitems SET name=$1, is_complete=$2 WHERE id=$3",
		name, isComplete, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update todo item: %w", err)
	}
	return checkAffected(res)
}

// Delete removes the record, or returns ErrNotFound.
func (s *PostgresStore) Delete(id int) error {
	res, err := s.DB.Exec("DELETE FROM todoitems WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("failed to delete todo item: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
