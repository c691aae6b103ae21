package memory

import (
	"sync"

	"diggle/internal/app/ports"
)

// Store backs the repositories with maps. Used by tests and by the server's
// ephemeral demo mode when no database is configured.
type Store struct {
	mu    sync.RWMutex
	slots map[string]ports.SaveSlotRecord
	runs  []ports.RunRecord
}

func NewStore() *Store {
	return &Store{
		slots: make(map[string]ports.SaveSlotRecord),
	}
}

// SeedSlot preloads a slot record, bypassing version checks. Test helper.
func (s *Store) SeedSlot(rec ports.SaveSlotRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[rec.SlotID] = rec
}
