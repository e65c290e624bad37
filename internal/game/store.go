package game

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Store owns the authoritative snapshot. Dispatch calls are serialised;
// Current never blocks and always returns a fully committed snapshot.
type Store struct {
	mu      sync.Mutex
	reducer *Reducer
	current atomic.Pointer[ViewState]
	logger  *log.Logger
}

// NewStore creates a store holding the reducer's initial layout.
// A nil logger discards output.
func NewStore(reducer *Reducer, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{
		reducer: reducer,
		logger:  logger,
	}
	initial := reducer.Initial(0)
	s.current.Store(&initial)
	return s
}

// Dispatch reduces one command against the current snapshot, publishes the
// result and returns it.
func (s *Store) Dispatch(cmd Command) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.reducer.Reduce(*s.current.Load(), cmd)
	s.current.Store(&next)

	s.logger.Debug("dispatch",
		"action", cmd,
		"status", next.Status,
		"bird", next.Bird.Offset,
		"score", next.Score,
	)
	return next
}

// Current returns the latest published snapshot.
func (s *Store) Current() ViewState {
	return *s.current.Load()
}
