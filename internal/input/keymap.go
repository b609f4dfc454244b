package input

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/termplay/internal/core"
)

// Keymap binds key names (see core.KeyEvent) to commands.
type Keymap map[string]Command

// Common is the set of bindings every game shares.
var Common = Keymap{
	"q":      CmdQuit,
	"ctrl+c": CmdQuit,
	"r":      CmdRestart,
	"m":      CmdToggleMusic,
	"n":      CmdToggleEffects,
}

// Merge returns a new keymap with the bindings of all given maps.
// Later maps override earlier ones.
func Merge(maps ...Keymap) Keymap {
	out := make(Keymap)
	for _, m := range maps {
		for k, c := range m {
			out[k] = c
		}
	}
	return out
}

// Map looks up a key event. Unknown keys map to CmdNone.
// Repeats and releases also map to CmdNone.
func Map(km Keymap, ev core.KeyEvent) Command {
	if !ev.IsPress() {
		return CmdNone
	}
	if c, ok := km[ev.Name]; ok {
		return c
	}
	// Letters bind case-insensitively unless the upper case key is bound.
	if lower := strings.ToLower(ev.Name); lower != ev.Name && len(ev.Name) == 1 {
		return km[lower]
	}
	return CmdNone
}

// Binding is a command with every key bound to it, for help screens.
type Binding struct {
	Command Command
	Keys    []string
}

// Bindings lists the keymap grouped by command, in command order.
func (km Keymap) Bindings() []Binding {
	byCmd := make(map[Command][]string)
	for k, c := range km {
		if c == CmdNone {
			continue
		}
		byCmd[c] = append(byCmd[c], displayKey(k))
	}

	out := make([]Binding, 0, len(byCmd))
	for c, keys := range byCmd {
		sort.Strings(keys)
		out = append(out, Binding{Command: c, Keys: keys})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Command < out[j].Command
	})
	return out
}

// Help formats the bindings as aligned "keys  command" lines.
func (km Keymap) Help() []string {
	bindings := km.Bindings()
	keys := make([]string, len(bindings))
	width := 0
	for i, b := range bindings {
		keys[i] = strings.Join(b.Keys, "/")
		width = max(width, utf8.RuneCountInString(keys[i]))
	}
	lines := make([]string, len(bindings))
	for i, b := range bindings {
		pad := width - utf8.RuneCountInString(keys[i])
		lines[i] = keys[i] + strings.Repeat(" ", pad+2) + b.Command.String()
	}
	return lines
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}
