package lander

import (
	"testing"
	"time"

	"github.com/Haniyya/moonar-lander/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestGameReset(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	state := g.State()
	if state.GameOver {
		t.Error("Fresh flight should not be over")
	}
	if state.Paused {
		t.Error("Fresh flight should not be paused")
	}
	if state.Score != 0 {
		t.Errorf("Fresh flight score = %d, expected 0", state.Score)
	}
	if state.Outcome != core.FlightAirborne {
		t.Errorf("Fresh flight outcome = %v, expected airborne", state.Outcome)
	}
}

func TestGameIDsAndTitles(t *testing.T) {
	classic := NewClassic()
	if classic.ID() != ClassicID || classic.Title() == "" {
		t.Errorf("Classic ID/Title = %q/%q", classic.ID(), classic.Title())
	}

	deluxe := NewDeluxe()
	if deluxe.ID() != DeluxeID || deluxe.Title() == "" {
		t.Errorf("Deluxe ID/Title = %q/%q", deluxe.ID(), deluxe.Title())
	}
}

func TestGameZeroElapsedUnchanged(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	before := g.State()
	result := g.Step(0, frameWith(core.ActionThrust, core.ActionLeft))

	if result.State != before {
		t.Errorf("Step with zero elapsed changed state: %+v -> %+v", before, result.State)
	}
}

func TestGameFreeFallCrashes(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	// Without thrust the craft accelerates past the safe speed long
	// before it reaches the ground.
	var state core.GameState
	for i := 0; i < 600; i++ {
		state = g.Step(16*time.Millisecond, core.NewInputFrame()).State
		if state.GameOver {
			break
		}
	}

	if !state.GameOver {
		t.Fatal("Free fall never ended the flight")
	}
	if state.Outcome != core.FlightCrashed {
		t.Errorf("Free fall outcome = %v, expected crashed", state.Outcome)
	}
}

func TestGameSoftLanding(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	// Place the craft just above the ground, descending gently.
	g.craft.Pos = core.NewVec2(40, 21.9)
	g.craft.Vel = core.NewVec2(0, 1)

	state := g.Step(100*time.Millisecond, core.NewInputFrame()).State

	if !state.GameOver {
		t.Fatal("Touchdown should end the flight")
	}
	if state.Outcome != core.FlightLanded {
		t.Errorf("Gentle touchdown outcome = %v, expected landed", state.Outcome)
	}
	if state.Score < 100 {
		t.Errorf("Landing should award the bonus, score = %d", state.Score)
	}
}

func TestGameHardTouchdownCrashes(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	g.craft.Pos = core.NewVec2(40, 21.9)
	g.craft.Vel = core.NewVec2(0, 50)

	state := g.Step(100*time.Millisecond, core.NewInputFrame()).State

	if !state.GameOver {
		t.Fatal("Touchdown should end the flight")
	}
	if state.Outcome != core.FlightCrashed {
		t.Errorf("Fast touchdown outcome = %v, expected crashed", state.Outcome)
	}
}

func TestGameStepAfterGameOver(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	g.craft.Pos = core.NewVec2(40, 21.9)
	g.craft.Vel = core.NewVec2(0, 50)
	g.Step(100*time.Millisecond, core.NewInputFrame())

	after := g.State()
	result := g.Step(time.Second, frameWith(core.ActionThrust))

	if result.State != after {
		t.Error("Stepping a finished flight should not change its state")
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	g.Step(16*time.Millisecond, core.NewInputFrame())
	posBefore := g.craft.Pos

	g.Step(16*time.Millisecond, frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Pause action should pause the flight")
	}

	g.Step(time.Second, core.NewInputFrame())
	if g.craft.Pos != posBefore {
		t.Error("Paused flight should not advance the craft")
	}

	g.Step(16*time.Millisecond, frameWith(core.ActionPause))
	if g.State().Paused {
		t.Error("Second pause action should resume")
	}
}

func TestGameAirborneAccumulates(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	g.Step(500*time.Millisecond, core.NewInputFrame())
	g.Step(250*time.Millisecond, core.NewInputFrame())

	if g.State().Airborne != 750*time.Millisecond {
		t.Errorf("Airborne = %v, expected 750ms", g.State().Airborne)
	}
}

func TestGameResetClearsFinishedFlight(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	g.craft.Pos = core.NewVec2(40, 21.9)
	g.craft.Vel = core.NewVec2(0, 50)
	g.Step(100*time.Millisecond, core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("Setup: flight should be over")
	}

	g.Reset(testRuntime(2))
	state := g.State()
	if state.GameOver || state.Score != 0 || state.Airborne != 0 {
		t.Errorf("Reset left stale state: %+v", state)
	}
}

func TestGameDeluxeGeneratesTerrain(t *testing.T) {
	g := NewDeluxe()
	g.Reset(testRuntime(42))

	if g.terrain.Len() != g.cfg.Terrain.Length+1 {
		t.Errorf("Terrain has %d samples, expected %d", g.terrain.Len(), g.cfg.Terrain.Length+1)
	}
	for i, h := range g.terrain.Heights() {
		if h < g.cfg.Terrain.FloorHeight {
			t.Errorf("Terrain sample %d = %d, below floor", i, h)
		}
	}
}

func TestGameDeluxeTerrainSeedDeterminism(t *testing.T) {
	a := NewDeluxe()
	a.Reset(testRuntime(42))
	b := NewDeluxe()
	b.Reset(testRuntime(42))

	for i := range a.terrain.Heights() {
		if a.terrain.Heights()[i] != b.terrain.Heights()[i] {
			t.Fatalf("Same seed produced different terrain at sample %d", i)
		}
	}

	c := NewDeluxe()
	c.Reset(testRuntime(43))
	if c.terrain.Len() != a.terrain.Len() {
		t.Error("Different seeds should still satisfy the length invariant")
	}
}

func TestGameClassicHasNoTerrain(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	if g.terrain.Len() != 0 {
		t.Errorf("Classic variant generated terrain with %d samples", g.terrain.Len())
	}
}

func TestGameRenderSmoke(t *testing.T) {
	screen := core.NewScreen(80, 24)

	for _, g := range []*Game{NewClassic(), NewDeluxe()} {
		g.Reset(testRuntime(7))
		g.Step(16*time.Millisecond, frameWith(core.ActionThrust))
		g.Render(screen)
	}
}

func TestGameClassicRendersGroundLine(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	for x := 0; x < 80; x++ {
		if screen.Get(x, 23) != GroundChar {
			t.Fatalf("Ground line missing at column %d", x)
		}
	}
}
