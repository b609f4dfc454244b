package input

import "github.com/vovakirdan/termplay/internal/core"

// Mapper translates key events for one game.
type Mapper struct {
	keymap Keymap
}

// NewMapper creates a mapper over the given keymap.
func NewMapper(km Keymap) *Mapper {
	return &Mapper{keymap: km}
}

// Map translates one event. See the package-level Map.
func (m *Mapper) Map(ev core.KeyEvent) Command {
	return Map(m.keymap, ev)
}
