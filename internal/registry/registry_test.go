package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/space-jump/internal/core"
)

type stubGame struct {
	id  string
	env Env
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Frame(time.Time, core.Keys) bool { return true }
func (g *stubGame) TogglePause(time.Time) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-test", func(env Env) Game { return &stubGame{id: "zz-test", env: env} })

	if !Exists("zz-test") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz-test", Env{ConfigPath: "custom.yaml"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := g.(*stubGame).env.ConfigPath; got != "custom.yaml" {
		t.Errorf("env not passed to factory, ConfigPath = %q", got)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-test" {
			found = true
			if info.Title != "ZZ-TEST" {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope", Env{}); err == nil {
		t.Error("unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func(Env) Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func(Env) Game { return &stubGame{id: "zz-dup"} })
}
