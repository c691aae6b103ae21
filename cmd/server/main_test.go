package main

import (
	"testing"

	"diggle/internal/config"

	"github.com/rs/zerolog"
)

func TestBuildLogger_ParsesLevel(t *testing.T) {
	if got := buildLogger("debug").GetLevel(); got != zerolog.DebugLevel {
		t.Fatalf("level: %v", got)
	}
	if got := buildLogger("nonsense").GetLevel(); got != zerolog.InfoLevel {
		t.Fatalf("fallback level: %v", got)
	}
}

func TestBuildRepos_MemoryFallback(t *testing.T) {
	var cfg config.Config
	slots, runs, err := buildRepos(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("build repos: %v", err)
	}
	if slots == nil || runs == nil {
		t.Fatalf("memory repos not built")
	}
}

func TestWorldConfig_Mapping(t *testing.T) {
	var cfg config.Config
	cfg.World.Width = 64
	cfg.World.Height = 200
	cfg.World.SurfaceRow = 6
	cfg.World.Seed = 99

	wc := worldConfig(cfg)
	if wc.Width != 64 || wc.Height != 200 || wc.SurfaceRow != 6 || wc.Seed != 99 {
		t.Fatalf("mapping mismatch: %+v", wc)
	}
}
