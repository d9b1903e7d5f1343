package store

import (
	"sort"
	"sync"

	"github.com/abefas/todoitems/models"
)

// MemoryStore is a process-local Store. Contents are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	todos  map[int]models.Todo
	nextID int
}

// NewMemoryStore creates an empty in-memory store. IDs start at 1.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos:  make(map[int]models.Todo),
		nextID: 1,
	}
}

// Insert stores a new record under a fresh ID. nextID only ever grows, so
// IDs are never reused even after deletes.
func (s *MemoryStore) Insert(name *string, isComplete bool) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo := models.Todo{
		ID:         s.nextID,
		Name:       name,
		IsComplete: isComplete,
	}
	s.todos[todo.ID] = todo
	s.nextID++
	return todo, nil
}

// FindByID returns the record with the given ID, or ErrNotFound.
func (s *MemoryStore) FindByID(id int) (models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, ok := s.todos[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	return todo, nil
}

// ListAll returns every record in ascending ID order, which equals
// insertion order since IDs are monotonic.
func (s *MemoryStore) ListAll() ([]models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(models.Todo) bool { return true }), nil
}

// ListComplete returns the completed subset in ascending ID order.
func (s *MemoryStore) ListComplete() ([]models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(t models.Todo) bool { return t.IsComplete }), nil
}

// collect gathers matching records sorted by ID. Callers must hold the lock.
func (s *MemoryStore) collect(match func(models.Todo) bool) []models.Todo {
	todos := make([]models.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if match(t) {
			todos = append(todos, t)
		}
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].ID < todos[j].ID })
	return todos
}

// Update replaces Name and IsComplete wholesale, leaving ID and Secret as
// they were. Returns ErrNotFound if the ID is absent.
func (s *MemoryStore) Update(id int, name *string, isComplete bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		return ErrNotFound
	}
	todo.Name = name
	todo.IsComplete = isComplete
	s.todos[id] = todo
	return nil
}

// Delete removes the record, or returns ErrNotFound.
func (s *MemoryStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return ErrNotFound
	}
	delete(s.todos, id)
	return nil
}
