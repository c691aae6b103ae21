package memory

import (
	"context"

	"diggle/internal/app/ports"
)

type SaveSlotRepo struct {
	store *Store
}

func NewSaveSlotRepo(store *Store) SaveSlotRepo {
	return SaveSlotRepo{store: store}
}

func (r SaveSlotRepo) Get(_ context.Context, slotID string) (ports.SaveSlotRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.slots[slotID]
	if !ok {
		return ports.SaveSlotRecord{}, ports.ErrNotFound
	}
	return rec, nil
}

func (r SaveSlotRepo) SaveWithVersion(_ context.Context, rec ports.SaveSlotRecord, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.slots[rec.SlotID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.slots[rec.SlotID] = rec
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.slots[rec.SlotID] = rec
	return nil
}
