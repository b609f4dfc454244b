package core

// KeyKind distinguishes presses from auto-repeats and releases.
// Only presses are dispatched to games.
type KeyKind uint8

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// KeyEvent is a platform-neutral keyboard event.
//
// Name follows Bubble Tea's key naming: printable keys are the character
// itself ("a", "+", " "), special keys are lowercase names ("up", "enter",
// "esc", "f1", "ctrl+c").
type KeyEvent struct {
	Name string
	Kind KeyKind
}

// Press builds a key press event.
func Press(name string) KeyEvent {
	return KeyEvent{Name: name, Kind: KeyPress}
}

// IsPress reports whether the event is a fresh key press.
func (e KeyEvent) IsPress() bool {
	return e.Kind == KeyPress
}

func (e KeyEvent) String() string {
	return e.Name
}
