package lander

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Haniyya/moonar-lander/internal/config"
	"github.com/Haniyya/moonar-lander/internal/core"
	"github.com/Haniyya/moonar-lander/internal/registry"
)

// Visual characters for rendering
const (
	GroundChar = '═'
	ThrustChar = '◦'
)

// Variant IDs
const (
	ClassicID = "classic"
	DeluxeID  = "deluxe"
)

// configPath and preset are set from the CLI before game creation.
var (
	configPath string
	preset     config.Preset
)

// SetConfigPath sets a custom tuning config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the difficulty preset applied at reset.
func SetPreset(p config.Preset) {
	preset = p
}

// Game implements one lander variant. The variant is fixed at
// construction; everything else comes from the tuning config.
type Game struct {
	id    string
	title string

	craft   *Craft
	terrain Terrain

	runtime core.RuntimeConfig
	cfg     config.LanderConfig

	airborne time.Duration
	bonus    int
	outcome  core.FlightOutcome
	gameOver bool
	paused   bool
	thrustOn bool // last frame's thrust, for the exhaust marker
}

// NewClassic creates the 8-direction variant.
func NewClassic() *Game {
	return &Game{id: ClassicID, title: "Moonar Classic"}
}

// NewDeluxe creates the 32-direction variant with terrain.
func NewDeluxe() *Game {
	return &Game{id: DeluxeID, title: "Moonar Deluxe"}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the flight.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(g.id, configPath)
	if err != nil {
		if g.id == DeluxeID {
			cfg = config.DefaultDeluxe()
		} else {
			cfg = config.DefaultClassic()
		}
	}
	config.ApplyPreset(&cfg, preset)
	g.cfg = cfg

	g.craft = NewCraft(cfg)
	if cfg.Terrain.Enabled {
		rng := rand.New(rand.NewSource(runtime.Seed))
		g.terrain = GenerateTerrain(rng, cfg.Terrain.Length, cfg.Terrain.MaxDelta, cfg.Terrain.FloorHeight)
	} else {
		g.terrain = Terrain{}
	}

	g.airborne = 0
	g.bonus = 0
	g.outcome = core.FlightAirborne
	g.gameOver = false
	g.paused = false
	g.thrustOn = false
}

// Step advances the flight by the elapsed wall-clock time.
func (g *Game) Step(elapsed time.Duration, in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if elapsed <= 0 {
		return core.StepResult{State: g.State()}
	}

	g.airborne += elapsed
	g.thrustOn = in.Has(core.ActionThrust)
	g.craft.Advance(elapsed, in)

	// Touchdown check against the terrain line or the flat ground.
	descent := g.craft.Vel.Y
	surfaceY := g.surfaceYAt(g.craft.Pos.X)
	if g.craft.Pos.Y >= surfaceY {
		g.craft.Pos.Y = surfaceY
		if descent <= g.cfg.Landing.SafeSpeed {
			g.outcome = core.FlightLanded
			g.bonus = 100
		} else {
			g.outcome = core.FlightCrashed
		}
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// surfaceYAt returns the y coordinate of the surface under world x.
func (g *Game) surfaceYAt(x float64) float64 {
	if g.cfg.Terrain.Enabled && g.terrain.Len() > 0 {
		return g.terrain.SurfaceY(x, g.runtime.ScreenW, g.runtime.ScreenH)
	}
	return float64(g.runtime.ScreenH - 2)
}

// score derives the score from airborne time plus the landing bonus.
func (g *Game) score() int {
	return int(g.airborne.Seconds()*10) + g.bonus
}

// Render draws the current flight to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.cfg.Terrain.Enabled && g.terrain.Len() > 0 {
		g.terrain.Render(dst)
	} else {
		dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar)
	}

	g.craft.Render(dst)
	if g.thrustOn && !g.gameOver {
		g.drawExhaust(dst)
	}

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score()))
	hud := fmt.Sprintf(" Vel %+5.1f,%+5.1f  Hdg %3.0f° ",
		g.craft.Vel.X, g.craft.Vel.Y, g.craft.Heading.Angle()*180/math.Pi)
	dst.DrawText(dst.Width()-len([]rune(hud))-2, 0, hud)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		switch g.outcome {
		case core.FlightLanded:
			g.drawCenteredMessage(dst, "TOUCHDOWN",
				fmt.Sprintf("Score: %d  |  Press R to fly again", g.score()))
		default:
			g.drawCenteredMessage(dst, "CRASHED",
				fmt.Sprintf("Score: %d  |  Press R to fly again", g.score()))
		}
	}
}

// drawExhaust marks the thruster exhaust one step behind the tail.
func (g *Game) drawExhaust(dst *core.Screen) {
	tail := core.NewVec2(-g.cfg.Craft.NoseLength-2, 0).
		Rotate(g.craft.Heading.Angle()).
		Add(g.craft.Pos)
	dst.SetCell(int(tail.X), int(tail.Y), ThrustChar, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		Outcome:  g.outcome,
		Airborne: g.airborne,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register both variants with the registry
func init() {
	registry.Register(ClassicID, func() registry.Game {
		return NewClassic()
	})
	registry.Register(DeluxeID, func() registry.Game {
		return NewDeluxe()
	})
}
