package session

import (
	"context"
	"sync"
	"time"

	"diggle/internal/app/ports"
	"diggle/internal/domain/mining"

	"github.com/rs/zerolog"
)

// Session owns one live game. The tick runner is the only writer of
// simulation state; every external entry point serializes through the mutex
// and lands between ticks, so the core never sees concurrent mutation.
type Session struct {
	ID        string
	Seed      int64
	CreatedAt time.Time

	mu      sync.Mutex
	game    *mining.Game
	pending []mining.Event

	logger  zerolog.Logger
	metrics ports.RunMetrics
	runs    ports.RunRepository

	stopOnce sync.Once
	stop     chan struct{}
}

func newSession(id string, game *mining.Game, logger zerolog.Logger, metrics ports.RunMetrics, runs ports.RunRepository) *Session {
	return &Session{
		ID:        id,
		Seed:      game.Config.Seed,
		CreatedAt: time.Now(),
		game:      game,
		logger:    logger.With().Str("session", id).Logger(),
		metrics:   metrics,
		runs:      runs,
		stop:      make(chan struct{}),
	}
}

func (s *Session) run(dt float64) {
	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.Step(dt)
		}
	}
}

// Step advances the game by dt seconds and drains the controller's outbox
// into the session's pending events. Exposed so tests and headless hosts can
// drive time manually.
func (s *Session) Step(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.Vehicle.Tick(dt)
	for _, ev := range s.game.Vehicle.DrainEvents() {
		s.handleEvent(ev)
		s.pending = append(s.pending, ev)
	}
}

func (s *Session) handleEvent(ev mining.Event) {
	switch ev.Type {
	case mining.EventTileMined:
		if name, ok := ev.Payload["tile"].(string); ok {
			s.metrics.RecordTileMined(name)
		}
		s.metrics.RecordDepth(s.game.Economy.MaxDepth())
	case mining.EventGameOver:
		cause, _ := ev.Payload["cause"].(string)
		s.metrics.RecordGameOver(cause)
		s.logger.Info().
			Str("cause", cause).
			Int("depth", s.game.Economy.MaxDepth()).
			Int("credits", s.game.Economy.Credits()).
			Msg("run ended")
		s.appendRunRecord(cause)
	case mining.EventSurfaceReached:
		s.logger.Debug().Msg("vehicle surfaced")
	}
}

func (s *Session) appendRunRecord(cause string) {
	if s.runs == nil {
		return
	}
	rec := ports.RunRecord{
		RunID:     s.ID + "-" + time.Now().UTC().Format("20060102T150405"),
		SessionID: s.ID,
		Cause:     cause,
		Depth:     s.game.Economy.MaxDepth(),
		Credits:   s.game.Economy.Credits(),
		Ticks:     s.game.Vehicle.Ticks(),
		EndedAt:   time.Now().UTC(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.runs.Append(ctx, rec); err != nil {
		s.logger.Error().Err(err).Msg("append run record")
	}
}

// Close stops the tick runner. Idempotent.
func (s *Session) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// SetHeldDirection queues the input; the controller applies it at the start
// of the next tick.
func (s *Session) SetHeldDirection(d mining.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Vehicle.SetHeldDirection(d)
}

// Reset is the atomic full reset used for death and manual respawn.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Respawn()
}

// RestorePosition places the vehicle at a saved cell without re-seeding
// spawn. Used by the load flow.
func (s *Session) RestorePosition(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Vehicle.RestorePosition(x, y)
}

func (s *Session) ApplyUpgrade(target mining.UpgradeTarget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ApplyUpgrade(target)
}

func (s *Session) Refuel() (float64, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Refuel()
}

func (s *Session) Repair() (float64, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Repair()
}

func (s *Session) SellCargo() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.SellCargo()
}

// SaveRecord captures the session as a persistable slot record, consistent
// at a tick boundary.
func (s *Session) SaveRecord(slotID string) ports.SaveSlotRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.game
	cell := g.Vehicle.Cell()
	return ports.SaveSlotRecord{
		SlotID:       slotID,
		Seed:         g.Config.Seed,
		Width:        g.Config.Width,
		Height:       g.Config.Height,
		SurfaceRow:   g.Config.SurfaceRow,
		CellX:        cell.X,
		CellY:        cell.Y,
		FuelLevel:    g.Fuel.Level(),
		FuelAmount:   g.Fuel.Amount(),
		HullLevel:    g.Hull.Level(),
		HullValue:    g.Hull.Integrity(),
		DrillLevel:   g.Drill.Level(),
		EngineLevel:  g.Engine.Level(),
		CoolingLevel: g.Cooling.Level(),
		CargoLevel:   g.Economy.Level(),
		Credits:      g.Economy.Credits(),
		CargoValue:   g.Economy.CargoValue(),
		MaxDepth:     g.Economy.MaxDepth(),
		MinedCells:   g.Grid.MinedCells(),
		SavedAt:      time.Now().UTC(),
	}
}

// GaugeView is one resource gauge with its UI threshold flags.
type GaugeView struct {
	Amount   float64 `json:"amount"`
	Capacity float64 `json:"capacity"`
	Level    int     `json:"level"`
	Low      bool    `json:"low"`
	Critical bool    `json:"critical"`
}

// TileView is one visible cell of the snapshot window. Unrevealed tiles are
// reported as unknown rather than omitted so the window stays rectangular.
type TileView struct {
	Cell        mining.Cell `json:"cell"`
	Tile        string      `json:"tile"`
	Revealed    bool        `json:"revealed"`
	DigProgress float64     `json:"dig_progress,omitempty"`
}

// Snapshot is the pull-based state view a rendering layer polls. It carries
// everything needed to draw a frame; the core is never reached directly.
type Snapshot struct {
	SessionID string `json:"session_id"`
	Seed      int64  `json:"seed"`

	Position mining.Position  `json:"position"`
	Target   mining.Position  `json:"target"`
	Activity mining.Activity  `json:"activity"`
	Facing   mining.Direction `json:"facing"`
	Cell     mining.Cell      `json:"cell"`

	Depth       int     `json:"depth"`
	MaxDepth    int     `json:"max_depth"`
	DigProgress float64 `json:"dig_progress"`
	GameOver    bool    `json:"game_over"`
	AtSurface   bool    `json:"at_surface"`
	SurfaceRow  int     `json:"surface_row"`
	Ticks       uint64  `json:"ticks"`

	Fuel GaugeView `json:"fuel"`
	Hull GaugeView `json:"hull"`

	DrillLevel   int `json:"drill_level"`
	EngineLevel  int `json:"engine_level"`
	CoolingLevel int `json:"cooling_level"`
	CargoLevel   int `json:"cargo_level"`

	Credits       int `json:"credits"`
	CargoValue    int `json:"cargo_value"`
	CargoCapacity int `json:"cargo_capacity"`

	Tiles  []TileView     `json:"tiles"`
	Events []mining.Event `json:"events"`
}

// Snapshot builds the current view and drains pending events to the caller.
func (s *Session) Snapshot(viewRadius int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	cell := g.Vehicle.Cell()
	snap := Snapshot{
		SessionID:     s.ID,
		Seed:          s.Seed,
		Position:      g.Vehicle.Position(),
		Target:        g.Vehicle.Target(),
		Activity:      g.Vehicle.Activity(),
		Facing:        g.Vehicle.Facing(),
		Cell:          cell,
		Depth:         g.Vehicle.Depth(),
		MaxDepth:      g.Economy.MaxDepth(),
		DigProgress:   g.Vehicle.DigProgress(),
		GameOver:      g.Vehicle.GameOver(),
		AtSurface:     g.Vehicle.AtSurface(),
		SurfaceRow:    g.Grid.SurfaceRow(),
		Ticks:         g.Vehicle.Ticks(),
		Fuel:          GaugeView{Amount: g.Fuel.Amount(), Capacity: g.Fuel.Capacity(), Level: g.Fuel.Level(), Low: g.Fuel.IsLow(), Critical: g.Fuel.IsCritical()},
		Hull:          GaugeView{Amount: g.Hull.Integrity(), Capacity: g.Hull.MaxIntegrity(), Level: g.Hull.Level(), Low: g.Hull.IsLow(), Critical: g.Hull.IsCritical()},
		DrillLevel:    g.Drill.Level(),
		EngineLevel:   g.Engine.Level(),
		CoolingLevel:  g.Cooling.Level(),
		CargoLevel:    g.Economy.Level(),
		Credits:       g.Economy.Credits(),
		CargoValue:    g.Economy.CargoValue(),
		CargoCapacity: g.Economy.Capacity(),
		Events:        s.pending,
	}
	s.pending = nil

	if viewRadius > 0 {
		snap.Tiles = buildWindow(g.Grid, cell, viewRadius)
	}
	return snap
}

func buildWindow(grid *mining.TileGrid, center mining.Cell, radius int) []TileView {
	out := make([]TileView, 0, (radius*2+1)*(radius*2+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			c := mining.Cell{X: center.X + dx, Y: center.Y + dy}
			tile, ok := grid.TileAt(c.X, c.Y)
			if !ok {
				continue
			}
			view := TileView{Cell: c, Revealed: tile.Revealed, Tile: "unknown"}
			if tile.Revealed {
				view.Tile = tile.Type.Name()
				view.DigProgress = tile.DigProgress
			}
			out = append(out, view)
		}
	}
	return out
}
