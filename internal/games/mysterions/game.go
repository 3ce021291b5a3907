package mysterions

import (
	"fmt"

	"github.com/cobrien706/mysterions/internal/config"
	"github.com/cobrien706/mysterions/internal/core"
	"github.com/cobrien706/mysterions/internal/registry"
)

// Game adapts a Session to the platform's game interface: input mapping,
// screen scaling, and HUD/overlay rendering live here, simulation rules
// stay in the session and round.
type Game struct {
	cfg     config.MysterionsConfig
	session *Session

	tickRate int
	paused   bool
	tooSmall bool

	// Screen layout, recomputed on Reset
	screenW, screenH int
	hudHeight        int
	mapOffsetX       int
	mapOffsetY       int
	mapW, mapH       int
}

// Package-level variables for config/difficulty selection from the CLI.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Mysterions game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("mysterions", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mysterions"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Mysterions"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mcfg, err := config.LoadMysterions(configPath)
	if err != nil {
		mcfg = config.DefaultMysterionsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMysterionsPreset(&mcfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = mcfg

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	g.tooSmall = g.screenW < 40 || g.screenH < 14
	g.mapOffsetX = 1
	g.mapOffsetY = g.hudHeight + 1
	g.mapW = g.screenW - 2
	g.mapH = g.screenH - g.hudHeight - 2

	g.session = NewSession(mcfg, g.tickRate, cfg.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionPause) && g.session.Status() == StatusPlaying {
		g.paused = !g.paused
	}

	if g.session.Status() == StatusGameOver {
		switch {
		case input.Has(core.ActionContinue):
			g.session.Continue()
		case input.Has(core.ActionNewGame), input.Has(core.ActionRestart):
			g.session.NewGame()
		}
		return core.StepResult{State: g.State()}
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.session.Tick(input.MoveIntent())
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Status() == StatusGameOver,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(core.NewRect(0, g.hudHeight, g.screenW, g.screenH-g.hudHeight))
	g.renderBoard(dst)

	round := g.session.Round()
	switch {
	case g.session.Status() == StatusRoundWon:
		g.renderOverlay(dst, "Round clear!", "+1 life")
	case g.session.Status() == StatusRoundLost:
		g.renderOverlay(dst, "Caught!", "-1 life")
	case g.session.Status() == StatusGameOver:
		g.renderOverlay(dst, "Game Over", "C: continue  N: new game  Q: quit")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case round.HeadStart > 0:
		secs := (round.HeadStart + g.tickRate - 1) / g.tickRate
		dst.DrawTextCentered(g.mapOffsetY, fmt.Sprintf("Get ready: %d", secs))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	round := g.session.Round()
	hud := fmt.Sprintf(" Mysterions — Round: %d  Score: %d  Lives: %d  Health: %d  Coins: %d",
		g.session.RoundNumber(), g.session.Score(), g.session.Lives(),
		round.Agent.Health, round.CoinsLeft())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard scales world coordinates down to screen cells and draws
// obstacles, coins, pursuers, and the agent.
func (g *Game) renderBoard(dst *core.Screen) {
	round := g.session.Round()

	for _, obs := range round.Board.Obstacles {
		x1, y1 := g.toCell(round, core.Vec{X: obs.X, Y: obs.Y})
		x2, y2 := g.toCell(round, core.Vec{X: obs.Right(), Y: obs.Bottom()})
		for y := y1; y <= y2; y++ {
			for x := x1; x <= x2; x++ {
				dst.SetColored(x, y, '█', core.ColorGray)
			}
		}
	}

	for i := range round.Coins {
		if round.Coins[i].Collected {
			continue
		}
		x, y := g.toCell(round, round.Coins[i].Pos)
		dst.SetColored(x, y, '$', core.ColorBrightYellow)
	}

	for _, p := range round.Pursuers {
		x, y := g.toCell(round, p.Pos)
		dst.SetColored(x, y, 'M', core.ColorBrightRed)
	}

	ax, ay := g.toCell(round, round.Agent.Pos)
	dst.SetColored(ax, ay, '@', core.ColorBrightGreen)
}

// toCell maps a world position into the board area of the screen,
// clamped to stay inside the frame.
func (g *Game) toCell(round *Round, pos core.Vec) (int, int) {
	x := g.mapOffsetX + int(pos.X/round.Board.Width*float64(g.mapW))
	y := g.mapOffsetY + int(pos.Y/round.Board.Height*float64(g.mapH))
	x = core.Clamp(x, g.mapOffsetX, g.mapOffsetX+g.mapW-1)
	y = core.Clamp(y, g.mapOffsetY, g.mapOffsetY+g.mapH-1)
	return x, y
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// RoundsWon returns the session's cleared-round count.
func (g *Game) RoundsWon() int {
	return g.session.RoundsWon()
}

// RoundsLost returns the session's lost-round count.
func (g *Game) RoundsLost() int {
	return g.session.RoundsLost()
}

// DebugState returns a string representation of the session state.
func (g *Game) DebugState() string {
	snap := g.session.Snapshot()
	return fmt.Sprintf("Tick: %d, Round: %d, Status: %s, Score: %d, Lives: %d, Health: %d, Pursuers: %d, Coins left: %d",
		snap.Tick, snap.Round, snap.Status, snap.Score, snap.Lives, snap.Health,
		len(snap.Pursuers), snap.CoinsLeft)
}
