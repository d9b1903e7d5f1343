package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	s := NewMemoryStore()

	a, err := s.Insert(strp("A"), false)
	assert.NoError(t, err)
	assert.Equal(t, 1, a.ID)

	b, err := s.Insert(strp("B"), true)
	assert.NoError(t, err)
	assert.Equal(t, 2, b.ID)

	// deleting must not free an id for reuse
	assert.NoError(t, s.Delete(2))
	c, err := s.Insert(strp("C"), false)
	assert.NoError(t, err)
	assert.Equal(t, 3, c.ID)
}

func TestFindByID(t *testing.T) {
	s := NewMemoryStore()
	inserted, _ := s.Insert(strp("walk the dog"), false)

	found, err := s.FindByID(inserted.ID)
	assert.NoError(t, err)
	assert.Equal(t, inserted, found)

	_, err = s.FindByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertKeepsNilName(t *testing.T) {
	s := NewMemoryStore()
	todo, _ := s.Insert(nil, true)

	found, err := s.FindByID(todo.ID)
	assert.NoError(t, err)
	assert.Nil(t, found.Name)
	assert.True(t, found.IsComplete)
}

func TestUpdate(t *testing.T) {
	s := NewMemoryStore()
	todo, _ := s.Insert(strp("old"), false)

	assert.NoError(t, s.Update(todo.ID, strp("new"), true))

	found, _ := s.FindByID(todo.ID)
	assert.Equal(t, "new", *found.Name)
	assert.True(t, found.IsComplete)
	assert.Equal(t, todo.ID, found.ID)
}

func TestUpdateMissingIDLeavesStoreUnchanged(t *testing.T) {
	s := NewMemoryStore()
	s.Insert(strp("only"), false)

	assert.ErrorIs(t, s.Update(42, strp("ghost"), true), ErrNotFound)

	todos, _ := s.ListAll()
	assert.Len(t, todos, 1)
	assert.Equal(t, "only", *todos[0].Name)
	assert.False(t, todos[0].IsComplete)
}

func TestUpdatePreservesSecret(t *testing.T) {
	s := NewMemoryStore()
	todo, _ := s.Insert(strp("classified"), false)

	// The store is the only writer of Secret in memory mode, so poke it
	// directly to verify Update leaves it alone.
	rec := s.todos[todo.ID]
	rec.Secret = strp("hunter2")
	s.todos[todo.ID] = rec

	assert.NoError(t, s.Update(todo.ID, strp("renamed"), true))
	found, _ := s.FindByID(todo.ID)
	assert.Equal(t, "hunter2", *found.Secret)
}

func TestDelete(t *testing.T) {
	s := NewMemoryStore()
	todo, _ := s.Insert(strp("gone soon"), false)

	assert.NoError(t, s.Delete(todo.ID))
	_, err := s.FindByID(todo.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(todo.ID), ErrNotFound)
}

func TestListAllReturnsInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	for _, name := range []string{"a", "b", "c", "d"} {
		s.Insert(strp(name), false)
	}

	todos, err := s.ListAll()
	assert.NoError(t, err)
	assert.Len(t, todos, 4)
	for i, want := range []string{"a", "b", "c", "d"} {
		assert.Equal(t, i+1, todos[i].ID)
		assert.Equal(t, want, *todos[i].Name)
	}
}

func TestListCompleteIsTheCompletedSubset(t *testing.T) {
	s := NewMemoryStore()
	s.Insert(strp("a"), false)
	s.Insert(strp("b"), true)
	s.Insert(strp("c"), true)
	s.Insert(strp("d"), false)

	complete, err := s.ListComplete()
	assert.NoError(t, err)
	assert.Len(t, complete, 2)
	assert.Equal(t, 2, complete[0].ID)
	assert.Equal(t, 3, complete[1].ID)

	all, _ := s.ListAll()
	var filtered []int
	for _, todo := range all {
		if todo.IsComplete {
			filtered = append(filtered, todo.ID)
		}
	}
	assert.Equal(t, []int{2, 3}, filtered)
}

func TestEmptyStoreLists(t *testing.T) {
	s := NewMemoryStore()

	all, err := s.ListAll()
	assert.NoError(t, err)
	assert.Empty(t, all)

	complete, err := s.ListComplete()
	assert.NoError(t, err)
	assert.Empty(t, complete)
}

func TestCreateDeleteScenario(t *testing.T) {
	s := NewMemoryStore()

	a, _ := s.Insert(strp("A"), false)
	assert.Equal(t, 1, a.ID)
	b, _ := s.Insert(strp("B"), true)
	assert.Equal(t, 2, b.ID)

	complete, _ := s.ListComplete()
	assert.Len(t, complete, 1)
	assert.Equal(t, 2, complete[0].ID)
	assert.Equal(t, "B", *complete[0].Name)

	assert.NoError(t, s.Delete(1))
	_, err := s.FindByID(1)
	assert.ErrorIs(t, err, ErrNotFound)
}
