package session

import (
	"fmt"
	"sync"
	"time"

	"diggle/internal/app/ports"
	"diggle/internal/domain/mining"

	"github.com/rs/zerolog"
)

// Config wires a Manager. TickRate <= 0 disables the background runner;
// sessions are then advanced manually with Step, which is what tests and
// turn-based hosts use.
type Config struct {
	TickRate float64
	World    mining.WorldConfig
	Logger   zerolog.Logger
	Metrics  ports.RunMetrics
	Runs     ports.RunRepository
}

// Manager owns all live sessions.
type Manager struct {
	cfg Config

	mu       sync.RWMutex
	sessions map[string]*Session
	seq      uint64
}

func NewManager(cfg Config) *Manager {
	if cfg.Metrics == nil {
		cfg.Metrics = ports.NopMetrics{}
	}
	return &Manager{
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
}

// Create starts a fresh run. Seed 0 picks a clock-derived seed.
func (m *Manager) Create(seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world := m.cfg.World
	world.Seed = seed
	return m.adopt(mining.NewGame(world))
}

// Adopt registers an externally built game (the load flow) and starts
// ticking it.
func (m *Manager) Adopt(game *mining.Game) *Session {
	return m.adopt(game)
}

func (m *Manager) adopt(game *mining.Game) *Session {
	m.mu.Lock()
	m.seq++
	id := fmt.Sprintf("game-%d", m.seq)
	s := newSession(id, game, m.cfg.Logger, m.cfg.Metrics, m.cfg.Runs)
	m.sessions[id] = s
	m.mu.Unlock()

	m.cfg.Metrics.RecordSessionStarted()
	if m.cfg.TickRate > 0 {
		go s.run(1 / m.cfg.TickRate)
	}
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return s, nil
}

// Close stops one session and forgets it.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}

// Shutdown stops every session. Used on server exit.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()
	for _, s := range sessions {
		s.Close()
	}
}
