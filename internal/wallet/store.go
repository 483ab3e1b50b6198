package wallet

import (
	"slices"
	"sync"
)

type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
)

// State is the wallet session as seen by every consumer.
type State struct {
	Status  Status `json:"status"`
	Address string `json:"address,omitempty"`
	ChainID string `json:"chain_id,omitempty"`
}

// Listener is notified with the committed state after every update.
type Listener func(State)

type subscription struct {
	id       int
	listener Listener
}

// Store is the single owner of the wallet State.
//
// Updates are serialized: an update is committed before its listeners run,
// and the next update starts only after every listener returned. Listeners
// may read the state but must not call Update.
type Store struct {
	updateMu sync.Mutex

	mu            sync.RWMutex
	state         State
	subscriptions []subscription
	nextID        int
}

func NewStore() *Store {
	return &Store{
		state: State{Status: StatusDisconnected},
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Update commits fn(current) and notifies the listeners in subscription
// order. It returns the committed state.
func (s *Store) Update(fn func(State) State) State {
	next, _ := s.UpdateIf(func(current State) (State, bool) {
		return fn(current), true
	})
	return next
}

// UpdateIf is Update for transitions that depend on the current state. When fn
// reports false nothing is committed, no listener runs and the current state
// is returned.
func (s *Store) UpdateIf(fn func(State) (State, bool)) (State, bool) {
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	s.mu.Lock()
	next, ok := fn(s.state)
	if !ok {
		current := s.state
		s.mu.Unlock()
		return current, false
	}
	s.state = next
	subscriptions := slices.Clone(s.subscriptions)
	s.mu.Unlock()

	for _, sub := range subscriptions {
		sub.listener(next)
	}
	return next, true
}

// Subscribe registers l and returns a function removing it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscriptions = append(s.subscriptions, subscription{id: id, listener: l})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.subscriptions = slices.DeleteFunc(s.subscriptions, func(sub subscription) bool {
			return sub.id == id
		})
	}
}
