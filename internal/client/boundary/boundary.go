// Package boundary tracks whether the client can render normally, is
// offline, or hit a render failure that needs an explicit retry.
package boundary

import (
	"errors"
	"fmt"
	"sync"
)

type State int

const (
	Normal State = iota
	Offline
	Errored
)

func (s State) String() string {
	switch s {
	case Offline:
		return "offline"
	case Errored:
		return "errored"
	default:
		return "normal"
	}
}

const (
	// OfflineMessage is shown while the connectivity signal is down.
	OfflineMessage = "You are currently offline. Some features may be limited."
	// FallbackMessage replaces an empty error text.
	FallbackMessage = "Something went wrong"
)

// ErrEmpty is an error with no text. Message reports it with FallbackMessage.
var ErrEmpty = errors.New("")

// Boundary is safe for concurrent use. Connectivity and the held error are
// independent; Offline wins when both apply.
type Boundary struct {
	reload func()

	mu      sync.Mutex
	offline bool
	err     error
}

// New returns a boundary in the Normal state. reload runs on TryAgain and
// may be nil.
func New(reload func()) *Boundary {
	return &Boundary{reload: reload}
}

// SetOnline feeds the connectivity signal.
func (b *Boundary) SetOnline(online bool) {
	b.mu.Lock()
	b.offline = !online
	b.mu.Unlock()
}

// Catch records a render failure. A nil err is ignored.
func (b *Boundary) Catch(err error) {
	if err == nil {
		return
	}
	b.mu.Lock()
	b.err = err
	b.mu.Unlock()
}

// TryAgain clears the held error and runs the reload callback.
func (b *Boundary) TryAgain() {
	b.mu.Lock()
	b.err = nil
	b.mu.Unlock()
	if b.reload != nil {
		b.reload()
	}
}

func (b *Boundary) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case b.offline:
		return Offline
	case b.err != nil:
		return Errored
	default:
		return Normal
	}
}

// Err returns the held error, or nil.
func (b *Boundary) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Message is the text to show for the current state, or "" when Normal.
func (b *Boundary) Message() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case b.offline:
		return OfflineMessage
	case b.err != nil:
		if msg := b.err.Error(); msg != "" {
			return msg
		}
		return FallbackMessage
	default:
		return ""
	}
}

// Run executes a render step. A returned error or a panic is caught and
// reported back; the panic does not propagate.
func (b *Boundary) Run(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = fmt.Errorf("panic: %w", v)
			default:
				err = fmt.Errorf("panic: %v", v)
			}
		}
		b.Catch(err)
	}()
	return fn()
}
