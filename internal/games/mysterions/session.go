package mysterions

import (
	"math/rand"

	"github.com/cobrien706/mysterions/internal/config"
	"github.com/cobrien706/mysterions/internal/core"
)

// Status describes where the session is in its lifecycle.
type Status int

const (
	StatusPlaying   Status = iota
	StatusRoundWon         // intermission after clearing all coins
	StatusRoundLost        // intermission after health ran out, lives remain
	StatusGameOver         // out of lives, awaiting a command
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusRoundWon:
		return "RoundWon"
	case StatusRoundLost:
		return "RoundLost"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Session owns the lives/score bookkeeping across rounds and the
// round-to-round state machine. All timing is tick counters derived from
// the tick rate at construction, and all randomness flows through one
// seeded source, so a session is fully deterministic for a given seed
// and input sequence.
type Session struct {
	cfg        config.MysterionsConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	round      *Round
	roundNum   int
	lives      int
	score      int
	status     Status
	roundsWon  int
	roundsLost int

	headStartTicks    int
	intermissionTicks int
	intermission      int // ticks left in the current intermission
	ticks             int // total session ticks, drives time-based difficulty
	terminated        bool
}

// NewSession starts a session on its first round. seed fixes every
// random decision the session will ever make.
func NewSession(cfg config.MysterionsConfig, tickRate int, seed int64) *Session {
	s := &Session{
		cfg:               cfg,
		difficulty:        config.NewDifficultyManager(cfg.Difficulty),
		rng:               rand.New(rand.NewSource(seed)),
		roundNum:          1,
		lives:             cfg.Gameplay.StartingLives,
		headStartTicks:    int(cfg.Gameplay.HeadStartSeconds * float64(tickRate)),
		intermissionTicks: int(cfg.Gameplay.IntermissionSeconds * float64(tickRate)),
	}
	s.startRound()
	return s
}

// startRound replaces the current round with a freshly generated one,
// applying the difficulty scaling in effect right now.
func (s *Session) startRound() {
	speed := s.difficulty.PursuerSpeed(s.cfg.Pursuers.Speed, s.score, s.ticks)
	extra := s.difficulty.ExtraPursuers(s.score, s.ticks)
	s.round = NewRound(s.cfg, s.headStartTicks, extra, speed, s.rng)
	s.status = StatusPlaying
}

// Tick advances the session by one simulation step. During an
// intermission the board is frozen and only the countdown runs; at game
// over nothing moves until Continue, NewGame, or Quit.
func (s *Session) Tick(intent core.Vec) {
	if s.terminated || s.status == StatusGameOver {
		return
	}
	s.ticks++

	if s.status == StatusRoundWon || s.status == StatusRoundLost {
		if s.intermission > 0 {
			s.intermission--
		}
		if s.intermission <= 0 {
			s.roundNum++
			s.startRound()
		}
		return
	}

	delta, outcome := s.round.Step(s.cfg, intent, s.rng)
	s.score += delta

	switch outcome {
	case RoundWon:
		s.roundsWon++
		s.lives = core.Min(s.lives+1, s.cfg.Gameplay.MaxLives)
		s.status = StatusRoundWon
		s.intermission = s.intermissionTicks
	case RoundLost:
		s.roundsLost++
		s.lives--
		if s.lives <= 0 {
			s.lives = 0
			s.status = StatusGameOver
			return
		}
		s.status = StatusRoundLost
		s.intermission = s.intermissionTicks
	}
}

// Continue refills lives to the starting count and deals a new round,
// keeping the accumulated score. Only valid at game over.
func (s *Session) Continue() {
	if s.terminated || s.status != StatusGameOver {
		return
	}
	s.lives = s.cfg.Gameplay.StartingLives
	s.roundNum++
	s.startRound()
}

// NewGame resets score, lives, and the round counter and deals a new
// round. Only valid at game over.
func (s *Session) NewGame() {
	if s.terminated || s.status != StatusGameOver {
		return
	}
	s.score = 0
	s.lives = s.cfg.Gameplay.StartingLives
	s.roundNum = 1
	s.roundsWon = 0
	s.roundsLost = 0
	s.startRound()
}

// Quit ends the session permanently.
func (s *Session) Quit() {
	s.terminated = true
}

// Round returns the live round for rendering and inspection.
func (s *Session) Round() *Round { return s.round }

// RoundNumber returns the 1-based round counter.
func (s *Session) RoundNumber() int { return s.roundNum }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Status returns the session lifecycle state.
func (s *Session) Status() Status { return s.status }

// RoundsWon returns how many rounds ended with every coin collected.
func (s *Session) RoundsWon() int { return s.roundsWon }

// RoundsLost returns how many rounds ended with health exhausted.
func (s *Session) RoundsLost() int { return s.roundsLost }

// Terminated reports whether Quit was issued.
func (s *Session) Terminated() bool { return s.terminated }

// Ticks returns the total number of simulation ticks so far.
func (s *Session) Ticks() int { return s.ticks }
