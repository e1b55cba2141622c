package session

import (
	"sync"

	"github.com/pkordes/tripwise/backend/internal/domain"
)

// LoggedOutGreeting is shown when nobody is signed in.
const LoggedOutGreeting = "Plan your next adventure"

// Greeting returns the header text for u, or LoggedOutGreeting for nil.
func Greeting(u *domain.User) string {
	if u == nil {
		return LoggedOutGreeting
	}
	return "Welcome back, " + u.DisplayName()
}

// GreetingView keeps the header greeting current by listening to a
// Broadcaster.
type GreetingView struct {
	mu     sync.RWMutex
	text   string
	cancel func()
}

// NewGreetingView starts with the greeting for current and follows b.
func NewGreetingView(b *Broadcaster, current *domain.User) *GreetingView {
	v := &GreetingView{text: Greeting(current)}
	v.cancel = b.Subscribe(func(e Event) {
		v.mu.Lock()
		v.text = Greeting(e.User)
		v.mu.Unlock()
	})
	return v
}

// Text returns the current greeting.
func (v *GreetingView) Text() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.text
}

// Close stops following the broadcaster.
func (v *GreetingView) Close() {
	v.cancel()
}
