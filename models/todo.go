package models

// Todo is the internal record owned by the store. Secret must never be
// serialized to a client; only TodoView crosses the process boundary.
type Todo struct {
	ID         int
	Name       *string
	IsComplete bool
	Secret     *string
}

// TodoView is the external-facing shape of a todo item.
type TodoView struct {
	ID         int     `json:"id"`
	Name       *string `json:"name"`
	IsComplete bool    `json:"isComplete"`
}

// NewTodoView projects a record onto its external shape, dropping Secret.
func NewTodoView(t Todo) TodoView {
	return TodoView{
		ID:         t.ID,
		Name:       t.Name,
		IsComplete: t.IsComplete,
	}
}

// NewTodoViews projects a slice of records. Always returns a non-nil slice
// so an empty list serializes as [] rather than null.
func NewTodoViews(todos []Todo) []TodoView {
	views := make([]TodoView, 0, len(todos))
	for _, t := range todos {
		views = append(views, NewTodoView(t))
	}
	return views
}
