package mysterions

import (
	"math/rand"
	"testing"

	"github.com/cobrien706/mysterions/internal/config"
	"github.com/cobrien706/mysterions/internal/core"
)

func testCfg() config.MysterionsConfig {
	return config.DefaultMysterionsConfig()
}

// scenarioRound builds a bare round on an open 720x384 board so tests can
// place entities by hand.
func scenarioRound(health int) *Round {
	return &Round{
		Board: &Board{Width: 720, Height: 384},
		Agent: Agent{
			Pos:    core.Vec{X: 100, Y: 100},
			Size:   32,
			Speed:  2,
			Health: health,
		},
	}
}

func TestAgentMoves(t *testing.T) {
	r := scenarioRound(100)
	r.Coins = []Coin{{Pos: core.Vec{X: 600, Y: 300}}}
	rng := rand.New(rand.NewSource(1))

	r.Step(testCfg(), core.Vec{X: 1, Y: -1}, rng)

	if r.Agent.Pos != (core.Vec{X: 102, Y: 98}) {
		t.Errorf("Expected agent at (102,98), got %v", r.Agent.Pos)
	}
}

func TestAgentBlockedByObstacle(t *testing.T) {
	r := scenarioRound(100)
	r.Board.Obstacles = []core.FRect{core.NewFRect(132, 90, 48, 48)}
	r.Coins = []Coin{{Pos: core.Vec{X: 600, Y: 300}}}
	rng := rand.New(rand.NewSource(1))

	r.Step(testCfg(), core.Vec{X: 1}, rng)

	if r.Agent.Pos != (core.Vec{X: 100, Y: 100}) {
		t.Errorf("Blocked agent should not move, got %v", r.Agent.Pos)
	}
}

func TestCoinPickupWinsRound(t *testing.T) {
	r := scenarioRound(100)
	r.Coins = []Coin{{Pos: core.Vec{X: 100, Y: 100}}}
	rng := rand.New(rand.NewSource(1))

	delta, outcome := r.Step(testCfg(), core.Vec{}, rng)

	if delta != 100 {
		t.Errorf("Expected 100 points for the coin, got %d", delta)
	}
	if outcome != RoundWon {
		t.Errorf("Last coin collected should win the round, got %v", outcome)
	}
	if !r.Coins[0].Collected {
		t.Error("Coin should be marked collected")
	}
}

func TestGrazingOverlapIsNotPickup(t *testing.T) {
	r := scenarioRound(100)
	// 12 units of overlap on x, below the 20 unit threshold.
	r.Coins = []Coin{{Pos: core.Vec{X: 120, Y: 100}}}
	rng := rand.New(rand.NewSource(1))

	delta, outcome := r.Step(testCfg(), core.Vec{}, rng)

	if delta != 0 || outcome != RoundPlaying {
		t.Errorf("Grazing overlap should not collect, got delta=%d outcome=%v", delta, outcome)
	}
}

func TestContactDamageAndRemoval(t *testing.T) {
	r := scenarioRound(100)
	r.Coins = []Coin{{Pos: core.Vec{X: 600, Y: 300}}}
	r.Pursuers = []*Pursuer{{Pos: core.Vec{X: 100, Y: 100}, Size: 32, Speed: 1}}
	rng := rand.New(rand.NewSource(1))

	_, outcome := r.Step(testCfg(), core.Vec{}, rng)

	if r.Agent.Health != 80 {
		t.Errorf("Expected health 80 after contact, got %d", r.Agent.Health)
	}
	if len(r.Pursuers) != 0 {
		t.Errorf("Contacting pursuer should be removed, %d left", len(r.Pursuers))
	}
	if outcome != RoundPlaying {
		t.Errorf("Round should continue at health 80, got %v", outcome)
	}
}

func TestHealthClampsAtZero(t *testing.T) {
	r := scenarioRound(10)
	r.Coins = []Coin{{Pos: core.Vec{X: 600, Y: 300}}}
	r.Pursuers = []*Pursuer{{Pos: core.Vec{X: 100, Y: 100}, Size: 32, Speed: 1}}
	rng := rand.New(rand.NewSource(1))

	_, outcome := r.Step(testCfg(), core.Vec{}, rng)

	if r.Agent.Health != 0 {
		t.Errorf("Health should clamp at 0, got %d", r.Agent.Health)
	}
	if outcome != RoundLost {
		t.Errorf("Exhausted health should lose the round, got %v", outcome)
	}
}

func TestSimultaneousContactsEachDamage(t *testing.T) {
	r := scenarioRound(100)
	r.Coins = []Coin{{Pos: core.Vec{X: 600, Y: 300}}}
	r.Pursuers = []*Pursuer{
		{Pos: core.Vec{X: 100, Y: 100}, Size: 32, Speed: 1},
		{Pos: core.Vec{X: 102, Y: 98}, Size: 32, Speed: 1},
	}
	rng := rand.New(rand.NewSource(1))

	r.Step(testCfg(), core.Vec{}, rng)

	if r.Agent.Health != 60 {
		t.Errorf("Two contacts should cost 40 health, got %d", r.Agent.Health)
	}
}

func TestLastCoinBeatsFatalHit(t *testing.T) {
	// The last coin and a fatal contact land on the same tick; coins are
	// resolved first, so the round is won.
	r := scenarioRound(20)
	r.Coins = []Coin{{Pos: core.Vec{X: 100, Y: 100}}}
	r.Pursuers = []*Pursuer{{Pos: core.Vec{X: 100, Y: 100}, Size: 32, Speed: 1}}
	rng := rand.New(rand.NewSource(1))

	_, outcome := r.Step(testCfg(), core.Vec{}, rng)

	if outcome != RoundWon {
		t.Errorf("Clearing the last coin should win even on a fatal tick, got %v", outcome)
	}
	if r.Agent.Health != 0 {
		t.Errorf("Contact damage still applies, got health %d", r.Agent.Health)
	}
}

func TestHeadStartFreezesPursuers(t *testing.T) {
	r := scenarioRound(100)
	r.HeadStart = 5
	r.Coins = []Coin{{Pos: core.Vec{X: 600, Y: 300}}}
	r.Pursuers = []*Pursuer{{Pos: core.Vec{X: 400, Y: 300}, Size: 32, Speed: 1}}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 5; i++ {
		r.Step(testCfg(), core.Vec{}, rng)
		if r.Pursuers[0].Pos != (core.Vec{X: 400, Y: 300}) {
			t.Fatalf("Pursuer moved during head start on tick %d: %v", i+1, r.Pursuers[0].Pos)
		}
	}

	r.Step(testCfg(), core.Vec{}, rng)
	if r.Pursuers[0].Pos == (core.Vec{X: 400, Y: 300}) {
		t.Error("Pursuer should move once the head start expires")
	}
}

func TestCoinsLeft(t *testing.T) {
	r := scenarioRound(100)
	r.Coins = []Coin{
		{Pos: core.Vec{X: 500, Y: 100}},
		{Pos: core.Vec{X: 600, Y: 100}, Collected: true},
		{Pos: core.Vec{X: 700, Y: 100}},
	}

	if got := r.CoinsLeft(); got != 2 {
		t.Errorf("Expected 2 coins left, got %d", got)
	}
}
