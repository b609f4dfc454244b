package input

import (
	"testing"

	"github.com/vovakirdan/termplay/internal/core"
)

func TestMap(t *testing.T) {
	km := Merge(Common, Keymap{
		"left": CmdLeft,
		" ":    CmdHardDrop,
		"f":    CmdFlag,
	})

	tests := []struct {
		name     string
		ev       core.KeyEvent
		expected Command
	}{
		{"bound special key", core.Press("left"), CmdLeft},
		{"space", core.Press(" "), CmdHardDrop},
		{"common quit", core.Press("q"), CmdQuit},
		{"ctrl+c quits", core.Press("ctrl+c"), CmdQuit},
		{"uppercase falls back to lowercase", core.Press("F"), CmdFlag},
		{"unknown key", core.Press("z"), CmdNone},
		{"unknown special key", core.Press("f12"), CmdNone},
		{"repeat ignored", core.KeyEvent{Name: "left", Kind: core.KeyRepeat}, CmdNone},
		{"release ignored", core.KeyEvent{Name: "left", Kind: core.KeyRelease}, CmdNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Map(km, tc.ev); got != tc.expected {
				t.Errorf("Map(%q) = %v, expected %v", tc.ev.Name, got, tc.expected)
			}
		})
	}
}

func TestMergeOverrides(t *testing.T) {
	km := Merge(Common, Keymap{"n": CmdStep})
	if km["n"] != CmdStep {
		t.Errorf("later keymap should override: n = %v", km["n"])
	}
	if Common["n"] != CmdToggleEffects {
		t.Error("Merge must not modify its inputs")
	}
}

func TestBindings(t *testing.T) {
	km := Keymap{"a": CmdLeft, "left": CmdLeft, "q": CmdQuit}
	b := km.Bindings()

	if len(b) != 2 {
		t.Fatalf("Bindings() returned %d entries, expected 2", len(b))
	}
	if b[0].Command != CmdQuit {
		t.Errorf("first binding = %v, expected quit", b[0].Command)
	}
	if len(b[1].Keys) != 2 || b[1].Keys[0] != "a" || b[1].Keys[1] != "←" {
		t.Errorf("left keys = %v, expected [a ←]", b[1].Keys)
	}
}

func TestHelpAlignsKeys(t *testing.T) {
	km := Keymap{"a": CmdLeft, "left": CmdLeft, " ": CmdHardDrop}
	got := km.Help()
	want := []string{"a/←    left", "space  hard drop"}
	if len(got) != len(want) {
		t.Fatalf("Help() = %q, expected %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestCommandIndexes(t *testing.T) {
	if i, ok := CmdPattern3.Pattern(); !ok || i != 2 {
		t.Errorf("CmdPattern3.Pattern() = %d, %v", i, ok)
	}
	if _, ok := CmdLeft.Pattern(); ok {
		t.Error("CmdLeft is not a pattern command")
	}
	if i, ok := CmdGrid4.Grid(); !ok || i != 3 {
		t.Errorf("CmdGrid4.Grid() = %d, %v", i, ok)
	}
	if CmdHardDrop.String() != "hard drop" {
		t.Errorf("CmdHardDrop.String() = %q", CmdHardDrop.String())
	}
}
