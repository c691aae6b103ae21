package memory

import (
	"context"

	"diggle/internal/app/ports"
)

type RunRepo struct {
	store *Store
}

func NewRunRepo(store *Store) RunRepo {
	return RunRepo{store: store}
}

func (r RunRepo) Append(_ context.Context, rec ports.RunRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.runs = append(r.store.runs, rec)
	return nil
}

// ListRecent returns runs newest first.
func (r RunRepo) ListRecent(_ context.Context, limit int) ([]ports.RunRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if limit <= 0 || limit > len(r.store.runs) {
		limit = len(r.store.runs)
	}
	out := make([]ports.RunRecord, 0, limit)
	for i := len(r.store.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.store.runs[i])
	}
	return out, nil
}
