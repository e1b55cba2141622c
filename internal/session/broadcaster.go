// Package session carries the signed-in state change notifications of the
// planner. Login, signup and logout publish an Event; views that render the
// current user subscribe instead of re-reading the store.
package session

import (
	"sync"

	"github.com/pkordes/tripwise/backend/internal/domain"
)

// Kind is what happened to the signed-in user.
type Kind string

const (
	KindLogin  Kind = "login"
	KindSignup Kind = "signup"
	KindLogout Kind = "logout"
)

// Event describes an auth change. User is nil after a logout.
type Event struct {
	Kind Kind         `json:"kind"`
	User *domain.User `json:"user,omitempty"`
}

// Broadcaster fans events out to subscribers. The zero value is ready to use.
type Broadcaster struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Event)
}

// NewBroadcaster returns an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers fn and returns a function that removes it again.
// fn is called synchronously from Publish and must not block.
func (b *Broadcaster) Subscribe(fn func(Event)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs == nil {
		b.subs = make(map[int]func(Event))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers e to every current subscriber.
func (b *Broadcaster) Publish(e Event) {
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}

// Subscribers returns the number of registered subscribers.
func (b *Broadcaster) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
