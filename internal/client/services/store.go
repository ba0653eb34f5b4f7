// Package services holds the client-side authentication store: a state
// container for the user and admin sessions whose actions call the API and
// reduce the results into state.
package services

import (
	"fmt"
	"sync"

	"github.com/dayadevraha/devraha/internal/client/client"
	"github.com/dayadevraha/devraha/internal/client/models"
	"github.com/dayadevraha/devraha/internal/logging"
)

// AuthStore owns the authentication State. Build one per application with
// NewAuthStore; it is safe for concurrent use.
type AuthStore struct {
	api    client.Client
	logger logging.Logger

	mu     sync.Mutex
	state  State
	subs   map[uint64]chan State
	nextID uint64

	user  *KindActions
	admin *KindActions
}

// NewAuthStore returns a store whose sessions are anonymous and still marked
// as checking until CheckAuth runs.
func NewAuthStore(api client.Client, logger logging.Logger) *AuthStore {
	if logger == nil {
		logger = logging.Nop()
	}
	s := &AuthStore{
		api:    api,
		logger: logger.With("component", "auth-store"),
		state: State{
			User:  Session{CheckingAuth: true},
			Admin: Session{CheckingAuth: true},
		},
		subs: make(map[uint64]chan State),
	}
	s.user = &KindActions{store: s, kind: models.KindUser}
	s.admin = &KindActions{store: s, kind: models.KindAdmin}
	return s
}

func (s *AuthStore) User() *KindActions  { return s.user }
func (s *AuthStore) Admin() *KindActions { return s.admin }

// For returns the actions of kind. It panics on an unknown kind.
func (s *AuthStore) For(kind models.Kind) *KindActions {
	switch kind {
	case models.KindUser:
		return s.user
	case models.KindAdmin:
		return s.admin
	default:
		panic(fmt.Sprintf("services: unknown kind %q", kind))
	}
}

// Snapshot returns a copy of the current state.
func (s *AuthStore) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe returns a channel that receives the current state immediately
// and a fresh snapshot after every change. A slow reader only ever sees the
// latest snapshot. cancel closes the channel; it is safe to call twice.
func (s *AuthStore) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- s.state.clone()
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			close(ch)
			s.mu.Unlock()
		})
	}
	return ch, cancel
}

func (s *AuthStore) dispatch(reducers ...reducer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range reducers {
		r(&s.state)
	}
	snap := s.state.clone()
	for _, ch := range s.subs {
		publish(ch, snap)
	}
}

// publish replaces whatever snapshot is still buffered in ch with snap.
// Callers hold the store lock, so no other sender races for the slot.
func publish(ch chan State, snap State) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}
