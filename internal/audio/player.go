package audio

import "sync"

// Player is the audio surface games talk to.
type Player interface {
	Play(e Effect)
	StartMusic(t Track)
	StopMusic()
	// MusicIdle reports whether no track is currently playing.
	MusicIdle() bool
	ToggleMusic() bool
	ToggleEffects() bool
	MusicEnabled() bool
	EffectsEnabled() bool
}

// Settings are the user-facing audio preferences.
type Settings struct {
	MasterVolume   float64
	EffectsVolume  float64
	MusicVolume    float64
	EffectsEnabled bool
	MusicEnabled   bool
}

// DefaultSettings mirrors the shipped config defaults.
func DefaultSettings() Settings {
	return Settings{
		MasterVolume:   0.8,
		EffectsVolume:  0.7,
		MusicVolume:    0.3,
		EffectsEnabled: true,
		MusicEnabled:   true,
	}
}

// Toggles holds the enable flags shared by every player. Embed it and call
// Init before use.
type Toggles struct {
	mu      sync.Mutex
	effects bool
	music   bool
}

// Init copies the enable flags from s.
func (t *Toggles) Init(s Settings) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.effects, t.music = s.EffectsEnabled, s.MusicEnabled
}

func (t *Toggles) ToggleEffects() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.effects = !t.effects
	return t.effects
}

func (t *Toggles) ToggleMusic() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.music = !t.music
	return t.music
}

func (t *Toggles) EffectsEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.effects
}

func (t *Toggles) MusicEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.music
}

// Silent is a Player without an output device.
type Silent struct {
	Toggles
}

// NewSilent creates a silent player with the given toggle state.
func NewSilent(s Settings) *Silent {
	p := &Silent{}
	p.Init(s)
	return p
}

func (*Silent) Play(Effect)      {}
func (*Silent) StartMusic(Track) {}
func (*Silent) StopMusic()       {}

// MusicIdle is always false so callers don't keep restarting music that
// can never play.
func (*Silent) MusicIdle() bool { return false }
