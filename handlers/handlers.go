package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/abefas/todoitems/models"
	"github.com/abefas/todoitems/store"
	"github.com/gorilla/mux"
)

// Handlers struct holds the store handle, allowing methods to share it.
type Handlers struct {
	Store store.Store
}

// NewHandlers is a constructor for the Handlers struct.
func NewHandlers(s store.Store) *Handlers {
	return &Handlers{Store: s}
}

// Register attaches the todo item routes to the router. The id pattern only
// matches digits, so non-numeric ids never reach the handlers.
func (h *Handlers) Register(router *mux.Router) {
	r := router.PathPrefix("/todoitems").Subrouter()
	r.HandleFunc("", h.GetTodos).Methods("GET")
	r.HandleFunc("/complete", h.GetCompleteTodos).Methods("GET")
	r.HandleFunc("/{id:[0-9]+}", h.GetTodo).Methods("GET")
	r.HandleFunc("", h.CreateTodo).Methods("POST")
	r.HandleFunc("/{id:[0-9]+}", h.UpdateTodo).Methods("PUT")
	r.HandleFunc("/{id:[0-9]+}", h.DeleteTodo).Methods("DELETE")
}

// respondWithJSON is a helper function to format and send JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithStoreError maps a store failure onto the wire: a missing id is
// a bare 404, anything else is a 500.
func respondWithStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	log.Printf("Store error: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// GetTodos retrieves all todo items.
func (h *Handlers) GetTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.Store.ListAll()
	if err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.NewTodoViews(todos))
}

// GetCompleteTodos retrieves the todo items that are marked complete.
func (h *Handlers) GetCompleteTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.Store.ListComplete()
	if err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.NewTodoViews(todos))
}

// GetTodo retrieves a single todo item by its ID.
func (h *Handlers) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	todo, err := h.Store.FindByID(id)
	if err != nil {
		respondWithStoreError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.NewTodoView(todo))
}

// CreateTodo creates a new todo item. Any id in the request body is
// ignored; the store assigns one.
func (h *Handlers) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var v models.TodoView
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	todo, err := h.Store.Insert(v.Name, v.IsComplete)
	if err != nil {
		respondWithStoreError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/todoitems/%d", todo.ID))
	respondWithJSON(w, http.StatusCreated, models.NewTodoView(todo))
}

// UpdateTodo replaces an existing todo item's name and completion state.
func (h *Handlers) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var v models.TodoView
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.Store.Update(id, v.Name, v.IsComplete); err != nil {
		respondWithStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTodo deletes a todo item by its ID.
func (h *Handlers) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Store.Delete(id); err != nil {
		respondWithStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
