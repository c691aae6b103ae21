package inmemory

import "sync"

type Snapshot struct {
	SessionsStarted uint64            `json:"sessions_started"`
	TilesMined      uint64            `json:"tiles_mined"`
	ByTile          map[string]uint64 `json:"by_tile"`
	GameOvers       uint64            `json:"game_overs"`
	ByCause         map[string]uint64 `json:"by_cause"`
	DeepestRow      int               `json:"deepest_row"`
}

// Recorder aggregates gameplay KPIs across all sessions in process memory.
type Recorder struct {
	mu       sync.Mutex
	sessions uint64
	mined    uint64
	byTile   map[string]uint64
	overs    uint64
	byCause  map[string]uint64
	deepest  int
}

func NewRecorder() *Recorder {
	return &Recorder{
		byTile:  map[string]uint64{},
		byCause: map[string]uint64{},
	}
}

func (r *Recorder) RecordSessionStarted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions++
}

func (r *Recorder) RecordTileMined(tileName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mined++
	r.byTile[tileName]++
}

func (r *Recorder) RecordGameOver(cause string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overs++
	r.byCause[cause]++
}

func (r *Recorder) RecordDepth(rows int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rows > r.deepest {
		r.deepest = rows
	}
}

// SnapshotAny adapts Snapshot for callers that only need something to
// serialize, such as the KPI endpoint.
func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		SessionsStarted: r.sessions,
		TilesMined:      r.mined,
		GameOvers:       r.overs,
		DeepestRow:      r.deepest,
		ByTile:          make(map[string]uint64, len(r.byTile)),
		ByCause:         make(map[string]uint64, len(r.byCause)),
	}
	for k, v := range r.byTile {
		out.ByTile[k] = v
	}
	for k, v := range r.byCause {
		out.ByCause[k] = v
	}
	return out
}
