package dashboard

import (
	"sync"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/backend"

	"github.com/google/uuid"
)

// Store держит состояния панели по сессиям администраторов.
// Состояние живёт только в памяти и исчезает вместе с сессией.
type Store struct {
	mu     sync.Mutex
	states map[string]*State
}

func NewStore() *Store {
	return &Store{states: make(map[string]*State)}
}

// Create заводит состояние для нового входа и возвращает id сессии.
func (st *Store) Create(api *backend.Client) (string, *State) {
	id := uuid.New().String()
	state := NewState(api)

	st.mu.Lock()
	st.states[id] = state
	st.mu.Unlock()
	return id, state
}

// Get возвращает состояние сессии.
func (st *Store) Get(id string) (*State, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	state, ok := st.states[id]
	return state, ok
}

// Delete выбрасывает состояние (выход из сессии).
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.states, id)
	st.mu.Unlock()
}
