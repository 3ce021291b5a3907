package mysterions

import (
	"reflect"
	"testing"

	"github.com/cobrien706/mysterions/internal/core"
)

// winningRound is one tick from a win: a single coin under the agent.
func winningRound() *Round {
	r := scenarioRound(100)
	r.Coins = []Coin{{Pos: r.Agent.Pos}}
	return r
}

// losingRound is one tick from a loss: low health and a pursuer on top.
func losingRound() *Round {
	r := scenarioRound(20)
	r.Coins = []Coin{{Pos: core.Vec{X: 600, Y: 300}}}
	r.Pursuers = []*Pursuer{{Pos: r.Agent.Pos, Size: 32, Speed: 1}}
	return r
}

func TestRoundWinAwardsLife(t *testing.T) {
	s := NewSession(testCfg(), 60, 1)
	s.round = winningRound()

	s.Tick(core.Vec{})

	if s.status != StatusRoundWon {
		t.Fatalf("Expected RoundWon, got %v", s.status)
	}
	if s.lives != 4 {
		t.Errorf("Win should award a life, got %d", s.lives)
	}
	if s.score != 100 {
		t.Errorf("Coin score should carry to the session, got %d", s.score)
	}
	if s.intermission != 180 {
		t.Errorf("Intermission should be 3s of ticks, got %d", s.intermission)
	}
}

func TestLivesCappedOnWin(t *testing.T) {
	s := NewSession(testCfg(), 60, 1)
	s.lives = 5
	s.round = winningRound()

	s.Tick(core.Vec{})

	if s.lives != 5 {
		t.Errorf("Lives should cap at 5, got %d", s.lives)
	}
}

func TestRoundLossCostsLife(t *testing.T) {
	s := NewSession(testCfg(), 60, 1)
	s.round = losingRound()

	s.Tick(core.Vec{})

	if s.status != StatusRoundLost {
		t.Fatalf("Expected RoundLost, got %v", s.status)
	}
	if s.lives != 2 {
		t.Errorf("Loss should cost a life, got %d", s.lives)
	}
}

func TestLastLifeLossIsGameOver(t *testing.T) {
	s := NewSession(testCfg(), 60, 1)
	s.lives = 1
	s.round = losingRound()

	s.Tick(core.Vec{})

	if s.status != StatusGameOver {
		t.Fatalf("Expected GameOver, got %v", s.status)
	}
	if s.lives != 0 {
		t.Errorf("Lives should be 0 at game over, got %d", s.lives)
	}

	// Simulation is frozen at game over.
	before := s.ticks
	s.Tick(core.Vec{X: 1})
	if s.ticks != before {
		t.Error("Ticks should not advance at game over")
	}
}

func TestIntermissionDealsNextRound(t *testing.T) {
	s := NewSession(testCfg(), 60, 1)
	s.round = winningRound()
	s.Tick(core.Vec{})

	for i := 0; i < 180; i++ {
		if s.status == StatusPlaying {
			t.Fatalf("Intermission ended early after %d ticks", i)
		}
		s.Tick(core.Vec{})
	}

	if s.status != StatusPlaying {
		t.Fatalf("Expected Playing after intermission, got %v", s.status)
	}
	if s.roundNum != 2 {
		t.Errorf("Expected round 2, got %d", s.roundNum)
	}
	if s.round.Agent.Health != 100 {
		t.Errorf("New round should reset health, got %d", s.round.Agent.Health)
	}
	if s.round.HeadStart != 180 {
		t.Errorf("New round should grant a head start, got %d", s.round.HeadStart)
	}
	if s.score != 100 {
		t.Errorf("Score should carry across rounds, got %d", s.score)
	}
}

func TestContinueRefillsLivesKeepsScore(t *testing.T) {
	s := NewSession(testCfg(), 60, 1)
	s.score = 700
	s.lives = 1
	s.round = losingRound()
	s.Tick(core.Vec{})

	if s.status != StatusGameOver {
		t.Fatalf("Setup should reach game over, got %v", s.status)
	}

	s.Continue()

	if s.status != StatusPlaying {
		t.Errorf("Continue should resume play, got %v", s.status)
	}
	if s.lives != 3 {
		t.Errorf("Continue should refill lives to 3, got %d", s.lives)
	}
	if s.score != 700 {
		t.Errorf("Continue should keep the score, got %d", s.score)
	}
}

func TestNewGameResetsEverything(t *testing.T) {
	s := NewSession(testCfg(), 60, 1)
	s.score = 700
	s.roundNum = 4
	s.lives = 1
	s.round = losingRound()
	s.Tick(core.Vec{})

	s.NewGame()

	if s.score != 0 {
		t.Errorf("New game should zero the score, got %d", s.score)
	}
	if s.roundNum != 1 {
		t.Errorf("New game should restart the round counter, got %d", s.roundNum)
	}
	if s.lives != 3 {
		t.Errorf("New game should reset lives, got %d", s.lives)
	}
	if s.status != StatusPlaying {
		t.Errorf("New game should resume play, got %v", s.status)
	}
}

func TestCommandsIgnoredWhilePlaying(t *testing.T) {
	s := NewSession(testCfg(), 60, 1)
	s.score = 300
	s.lives = 2

	s.Continue()
	s.NewGame()

	if s.score != 300 || s.lives != 2 || s.roundNum != 1 {
		t.Error("Continue/NewGame should only work at game over")
	}
}

func TestQuitTerminates(t *testing.T) {
	s := NewSession(testCfg(), 60, 1)
	s.Quit()

	if !s.Terminated() {
		t.Fatal("Quit should terminate the session")
	}
	before := s.Snapshot()
	s.Tick(core.Vec{X: 1})
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("Terminated session should not advance")
	}
}

func TestSessionDeterminism(t *testing.T) {
	cfg := testCfg()
	s1 := NewSession(cfg, 60, 12345)
	s2 := NewSession(cfg, 60, 12345)

	for i := 0; i < 400; i++ {
		intent := core.Vec{}
		if i%3 == 0 {
			intent.X = 1
		}
		if i%7 == 0 {
			intent.Y = 1
		}
		s1.Tick(intent)
		s2.Tick(intent)
	}

	if !reflect.DeepEqual(s1.Snapshot(), s2.Snapshot()) {
		t.Errorf("Same seed and inputs diverged:\n%+v\n%+v", s1.Snapshot(), s2.Snapshot())
	}
}

func TestSeedChangesLayout(t *testing.T) {
	cfg := testCfg()
	s1 := NewSession(cfg, 60, 1)
	s2 := NewSession(cfg, 60, 2)

	if reflect.DeepEqual(s1.Snapshot(), s2.Snapshot()) {
		t.Error("Different seeds should generate different rounds")
	}
}
