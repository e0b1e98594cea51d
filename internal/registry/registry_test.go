package registry

import (
	"testing"

	"github.com/vovakirdan/tui-whack/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                              { return g.id }
func (g *stubGame) Title() string                           { return "Stub " + g.id }
func (g *stubGame) Reset(cfg core.RuntimeConfig)            {}
func (g *stubGame) Step(in core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(dst *core.Screen)                 {}
func (g *stubGame) State() core.GameState                   { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}
	if Exists("stub_missing") {
		t.Error("stub_missing should not be registered")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, want stub_a", g.ID())
	}

	info, ok := Lookup("stub_b")
	if !ok || info.Title != "Stub stub_b" {
		t.Errorf("Lookup(stub_b) = %+v, %v", info, ok)
	}

	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_m", func() Game { return &stubGame{id: "stub_m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
