package registry

import (
	"testing"

	"github.com/cobrien706/mysterions/internal/core"
)

// stubGame is a minimal Game used to exercise the registry.
type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                            { return g.id }
func (g *stubGame) Title() string                         { return g.title }
func (g *stubGame) Reset(cfg core.RuntimeConfig)          {}
func (g *stubGame) Step(in core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(dst *core.Screen)               {}
func (g *stubGame) State() core.GameState                 { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-alpha", func() Game {
		return &stubGame{id: "test-alpha", title: "Alpha"}
	})

	if !Exists("test-alpha") {
		t.Error("Exists should be true for a registered game")
	}
	if Exists("no-such-game") {
		t.Error("Exists should be false for an unknown game")
	}

	game, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if game.ID() != "test-alpha" {
		t.Errorf("Created game ID = %q, expected %q", game.ID(), "test-alpha")
	}

	// Each Create returns a fresh instance
	other, _ := Create("test-alpha")
	if game == other {
		t.Error("Create should return a new instance each call")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create should fail for an unregistered game")
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	Register("test-dup", func() Game {
		return &stubGame{id: "test-dup", title: "Dup"}
	})

	defer func() {
		if recover() == nil {
			t.Error("Register should panic on a duplicate ID")
		}
	}()
	Register("test-dup", func() Game {
		return &stubGame{id: "test-dup", title: "Dup"}
	})
}

func TestListSorted(t *testing.T) {
	Register("test-zeta", func() Game {
		return &stubGame{id: "test-zeta", title: "Zeta"}
	})
	Register("test-beta", func() Game {
		return &stubGame{id: "test-beta", title: "Beta"}
	})

	games := List()
	if len(games) < 2 {
		t.Fatalf("List returned %d games, expected at least 2", len(games))
	}
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Errorf("List not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	found := false
	for _, info := range games {
		if info.ID == "test-beta" && info.Title == "Beta" {
			found = true
		}
	}
	if !found {
		t.Error("List should include registered games with their titles")
	}
}
