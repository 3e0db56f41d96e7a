package spacewars

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/space-wars/internal/config"
)

func TestSpawnerWaitsForInterval(t *testing.T) {
	cfg := config.SpawnConfig{RateRange: 100, RateLimit: -1, Interval: 800 * time.Millisecond}
	sp := NewSpawner(cfg, 100*time.Millisecond, rand.New(rand.NewSource(1)))
	f := Field{Width: 800, Height: 600}

	// 8 ticks is exactly 800ms, which does not exceed the interval
	for i := 1; i <= 8; i++ {
		if _, ok := sp.Step(f, 10, 20); ok || sp.phase == phaseArmed {
			t.Fatalf("tick %d: armed or spawned before 900ms", i)
		}
	}
	if _, ok := sp.Step(f, 10, 20); ok || sp.phase != phaseArmed {
		t.Fatalf("tick 9: got spawned=%v phase=%d, expected armed without a spawn", ok, sp.phase)
	}
	if _, ok := sp.Step(f, 10, 20); !ok {
		t.Fatal("expected a spawn at tick 10")
	}
	// The interval restarts after each spawn
	if _, ok := sp.Step(f, 10, 20); ok || sp.phase == phaseArmed {
		t.Fatal("armed or spawned right after a spawn")
	}
}

func TestSpawnerSpawnsOnTickAfterArming(t *testing.T) {
	cfg := config.SpawnConfig{RateRange: 100, RateLimit: -1, Interval: 50 * time.Millisecond}
	sp := NewSpawner(cfg, 100*time.Millisecond, rand.New(rand.NewSource(3)))
	f := Field{Width: 800, Height: 600}

	tests := []struct {
		tick    int
		spawned bool
		armed   bool
	}{
		{1, false, true},
		{2, true, false},
		{3, false, true},
		{4, true, false},
	}
	for _, tt := range tests {
		_, ok := sp.Step(f, 10, 20)
		armed := sp.phase == phaseArmed
		if ok != tt.spawned || armed != tt.armed {
			t.Errorf("tick %d: got spawned=%v armed=%v, expected %v and %v",
				tt.tick, ok, armed, tt.spawned, tt.armed)
		}
	}
}

func TestSpawnerRateLimitBlocks(t *testing.T) {
	cfg := config.SpawnConfig{RateRange: 100, RateLimit: 99, Interval: time.Millisecond}
	sp := NewSpawner(cfg, 100*time.Millisecond, rand.New(rand.NewSource(7)))
	f := Field{Width: 800, Height: 600}

	for i := 0; i < 1000; i++ {
		if _, ok := sp.Step(f, 10, 20); ok {
			t.Fatalf("spawned at tick %d with rate_limit = rate_range - 1", i)
		}
	}
}

func TestSpawnerObstacleShape(t *testing.T) {
	cfg := config.SpawnConfig{RateRange: 100, RateLimit: -1, Interval: time.Millisecond}
	sp := NewSpawner(cfg, 100*time.Millisecond, rand.New(rand.NewSource(42)))
	f := Field{Width: 800, Height: 600}

	for i := 1; i <= 200; i++ {
		o, ok := sp.Step(f, 12.5, 20)
		if ok != (i%2 == 0) {
			t.Fatalf("tick %d: got spawned=%v, expected spawns on every other tick", i, ok)
		}
		if !ok {
			continue
		}
		if o.Kind != KindObstacle {
			t.Errorf("got kind %v, expected obstacle", o.Kind)
		}
		if o.Pos.X < 0 || o.Pos.X >= f.Width {
			t.Errorf("got x=%v, expected within [0, 800)", o.Pos.X)
		}
		if o.Pos.Y != 0 {
			t.Errorf("got y=%v, expected 0", o.Pos.Y)
		}
		if o.Vel.Y != 12.5 || o.Radius() != 20 {
			t.Errorf("got speed %v radius %v, expected 12.5 and 20", o.Vel.Y, o.Radius())
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	cfg := config.DefaultSpaceWarsConfig().Spawn
	f := Field{Width: 800, Height: 600}
	a := NewSpawner(cfg, 100*time.Millisecond, rand.New(rand.NewSource(99)))
	b := NewSpawner(cfg, 100*time.Millisecond, rand.New(rand.NewSource(99)))

	for i := 0; i < 500; i++ {
		oa, okA := a.Step(f, 10, 20)
		ob, okB := b.Step(f, 10, 20)
		if okA != okB || oa != ob {
			t.Fatalf("tick %d: spawners diverged: %+v/%v vs %+v/%v", i, oa, okA, ob, okB)
		}
	}
}
