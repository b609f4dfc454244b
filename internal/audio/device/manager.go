// Package device plays audio effects and music through the system speaker
// with beep.
package device

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/termplay/internal/audio"
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	return speakerErr
}

// Manager plays effects and music through the system audio device.
type Manager struct {
	audio.Toggles
	settings audio.Settings
	log      *log.Logger

	mixer   *beep.Mixer
	current *beep.Ctrl // guarded by the speaker lock
	playing atomic.Bool
	gen     atomic.Uint64
}

// Open returns a Manager, or a Silent player when the audio device can't be
// opened. Failing to open audio is never fatal.
func Open(s audio.Settings, logger *log.Logger) audio.Player {
	m, err := NewManager(s, logger)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return audio.NewSilent(s)
	}
	return m
}

// NewManager initialises the speaker and starts the shared mixer.
func NewManager(s audio.Settings, logger *log.Logger) (*Manager, error) {
	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	m := &Manager{
		settings: s,
		log:      logger,
		mixer:    &beep.Mixer{},
	}
	m.Init(s)
	speaker.Play(m.mixer)
	logger.Debug("audio ready", "sample_rate", int(sampleRate))
	return m, nil
}

// Play starts an effect on top of whatever is playing.
func (m *Manager) Play(e audio.Effect) {
	if !m.EffectsEnabled() {
		return
	}
	tone, ok := audio.ToneOf(e)
	if !ok {
		return
	}
	s, err := toneStreamer(sampleRate, tone, m.settings.MasterVolume*m.settings.EffectsVolume)
	if err != nil {
		m.log.Debug("effect skipped", "effect", e, "err", err)
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic replaces the current track with t, played once.
func (m *Manager) StartMusic(t audio.Track) {
	if !m.MusicEnabled() {
		return
	}
	s, err := melodyStreamer(sampleRate, audio.Melody(t), m.settings.MasterVolume*m.settings.MusicVolume)
	if err != nil {
		m.log.Debug("music skipped", "track", t, "err", err)
		return
	}

	gen := m.gen.Add(1)
	done := beep.Callback(func() {
		if m.gen.Load() == gen {
			m.playing.Store(false)
		}
	})
	ctrl := &beep.Ctrl{Streamer: beep.Seq(s, done)}

	m.playing.Store(true)

	speaker.Lock()
	if m.current != nil {
		m.current.Streamer = nil
	}
	m.current = ctrl
	m.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic silences the current track.
func (m *Manager) StopMusic() {
	m.gen.Add(1)
	m.playing.Store(false)

	speaker.Lock()
	if m.current != nil {
		m.current.Streamer = nil
		m.current = nil
	}
	speaker.Unlock()
}

// MusicIdle reports whether the last track finished or was stopped.
func (m *Manager) MusicIdle() bool {
	return !m.playing.Load()
}

// ToggleMusic flips music on or off, stopping the current track when off.
func (m *Manager) ToggleMusic() bool {
	on := m.Toggles.ToggleMusic()
	if !on {
		m.StopMusic()
	}
	return on
}
