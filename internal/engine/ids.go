package engine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// UUIDGenerator mints random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequenceIDs mints predictable identifiers ("<prefix>-1", "<prefix>-2", ...).
// Safe for concurrent use.
type SequenceIDs struct {
	Prefix string

	mu sync.Mutex
	n  int
}

func (s *SequenceIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", s.Prefix, s.n)
}
