package audio

import "sync"

// Recorder is a Player that remembers what it was asked to play.
// Games use it in tests.
type Recorder struct {
	mu      sync.Mutex
	Effects []Effect
	Tracks  []Track
	playing Track
	Silent
}

// NewRecorder creates a recorder with effects and music enabled.
func NewRecorder() *Recorder {
	r := &Recorder{}
	r.Init(Settings{EffectsEnabled: true, MusicEnabled: true})
	return r
}

func (r *Recorder) Play(e Effect) {
	if !r.EffectsEnabled() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Effects = append(r.Effects, e)
}

func (r *Recorder) StartMusic(t Track) {
	if !r.MusicEnabled() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Tracks = append(r.Tracks, t)
	r.playing = t
}

func (r *Recorder) StopMusic() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playing = TrackNone
}

func (r *Recorder) MusicIdle() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playing == TrackNone
}

func (r *Recorder) ToggleMusic() bool {
	on := r.Silent.ToggleMusic()
	if !on {
		r.StopMusic()
	}
	return on
}

// Count returns how many times e was played.
func (r *Recorder) Count(e Effect) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.Effects {
		if got == e {
			n++
		}
	}
	return n
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Effects = nil
	r.Tracks = nil
}
