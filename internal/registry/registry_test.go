package registry

import (
	"testing"

	"github.com/vovakirdan/geodash/internal/core"
)

type stubGame struct {
	id    string
	deps  Deps
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, func(deps Deps) Game { return &stubGame{id: id, deps: deps} })
	t.Cleanup(func() {
		mu.Lock()
		defer mu.Unlock()
		delete(factories, id)
		delete(titles, id)
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "test_b")
	register(t, "test_a")

	if !Exists("test_a") || Exists("test_missing") {
		t.Fatal("Exists reports wrong membership")
	}

	g, err := Create("test_a", Deps{UserID: "u1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stub, ok := g.(*stubGame)
	if !ok {
		t.Fatalf("Create returned %T", g)
	}
	if stub.deps.UserID != "u1" {
		t.Errorf("deps not passed through: %+v", stub.deps)
	}

	list := List()
	var ids []string
	for _, info := range list {
		if info.ID == "test_a" && info.Title != "Stub test_a" {
			t.Errorf("title = %q, want %q", info.Title, "Stub test_a")
		}
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("test_missing", Deps{}); err == nil {
		t.Error("Create of unknown id succeeded")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "test_dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test_dup", func(Deps) Game { return &stubGame{id: "test_dup"} })
}
