package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
)

type stubGame struct {
	name  string
	seeds int64
}

func (g *stubGame) Name() string                        { return g.name }
func (g *stubGame) Description() string                 { return "stub" }
func (g *stubGame) Keymap() input.Keymap                { return input.Common }
func (g *stubGame) HandleKey(input.Command) core.Action { return core.ActionContinue }
func (g *stubGame) Update() core.Action                 { return core.ActionContinue }
func (g *stubGame) Draw(*core.Screen)                   {}
func (g *stubGame) TickRate() time.Duration             { return core.DefaultTickRate }
func (g *stubGame) State() core.GameState               { return core.GameState{} }
func (g *stubGame) Restart()                            {}

func registerStub(t *testing.T, name string) {
	t.Helper()
	Register(name, name+" description", func(env Env) Game {
		return &stubGame{name: name, seeds: env.Rand.Int63()}
	})
	t.Cleanup(func() { unregister(name) })
}

func TestRegisterAndCreate(t *testing.T) {
	registerStub(t, "zz-stub")

	if !Exists("zz-stub") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("zz-stub", Env{Config: config.Default()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Name() != "zz-stub" {
		t.Errorf("Name() = %q", g.Name())
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game", Env{})
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(unknown) err = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registerStub(t, "zz-dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", "again", func(Env) Game { return &stubGame{} })
}

func TestListSorted(t *testing.T) {
	registerStub(t, "zz-b")
	registerStub(t, "zz-a")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}

	var found bool
	for _, info := range list {
		if info.Name == "zz-a" {
			found = true
			if info.Description != "zz-a description" {
				t.Errorf("Description = %q", info.Description)
			}
		}
	}
	if !found {
		t.Error("registered game missing from List()")
	}
}

func TestSeededEnvIsDeterministic(t *testing.T) {
	registerStub(t, "zz-seed")

	rt := core.RuntimeConfig{Seed: 42}
	a, _ := Create("zz-seed", NewEnv(rt, config.Default(), nil))
	b, _ := Create("zz-seed", NewEnv(rt, config.Default(), nil))
	if a.(*stubGame).seeds != b.(*stubGame).seeds {
		t.Error("same seed should give the same random stream")
	}
}
