package store

import (
	"errors"

	"github.com/abefas/todoitems/models"
)

// ErrNotFound is returned when no todo item exists with the requested ID.
var ErrNotFound = errors.New("todo item not found")

// Store owns the todo collection. It is the sole writer of ID values:
// Insert assigns a fresh ID and IDs are never reassigned.
type Store interface {
	// Insert stores a new record with a fresh unique ID and returns it.
	Insert(name *string, isComplete bool) (models.Todo, error)

	// FindByID returns the record with the given ID, or ErrNotFound.
	FindByID(id int) (models.Todo, error)

	// ListAll returns every record in ascending ID order.
	ListAll() ([]models.Todo, error)

	// ListComplete returns the records with IsComplete set, in ascending ID order.
	ListComplete() ([]models.Todo, error)

	// Update replaces the record's Name and IsComplete. ID and Secret are
	// left unchanged. Returns ErrNotFound if no record has the given ID.
	Update(id int, name *string, isComplete bool) error

	// Delete removes the record, or returns ErrNotFound.
	Delete(id int) error
}
