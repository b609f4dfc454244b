package audio

import (
	"testing"
	"time"
)

func TestFastTrackIsShorter(t *testing.T) {
	var normal, fast time.Duration
	for _, n := range Melody(TrackTetris) {
		normal += n.Duration
	}
	for _, n := range Melody(TrackTetrisFast) {
		fast += n.Duration
	}
	if fast*2 != normal {
		t.Errorf("fast track = %v, expected half of %v", fast, normal)
	}
	if Melody(TrackNone) != nil {
		t.Error("TrackNone should have no melody")
	}
}

func TestRecorderHonoursToggles(t *testing.T) {
	r := NewRecorder()
	r.Play(EffectTetrisMove)
	if r.ToggleEffects() {
		t.Fatal("ToggleEffects should turn effects off")
	}
	r.Play(EffectTetrisMove)
	if r.Count(EffectTetrisMove) != 1 {
		t.Errorf("Count = %d, expected 1", r.Count(EffectTetrisMove))
	}

	r.StartMusic(TrackTetris)
	if r.MusicIdle() {
		t.Error("music should be playing")
	}
	r.ToggleMusic()
	if !r.MusicIdle() {
		t.Error("turning music off should stop the track")
	}
	r.StartMusic(TrackTetris)
	if len(r.Tracks) != 1 {
		t.Errorf("Tracks = %v, expected one start", r.Tracks)
	}
}

func TestSilentKeepsToggleState(t *testing.T) {
	s := NewSilent(DefaultSettings())
	if !s.MusicEnabled() || !s.EffectsEnabled() {
		t.Fatal("defaults should enable audio")
	}
	if s.ToggleMusic() || s.MusicEnabled() {
		t.Error("ToggleMusic should disable music")
	}
	if s.ToggleEffects() || s.EffectsEnabled() {
		t.Error("ToggleEffects should disable effects")
	}
}

func TestHarmonyTrack(t *testing.T) {
	melody := Melody(TrackTetrisHarmony)
	if len(melody) != 3 {
		t.Fatalf("harmony has %d notes, expected 3", len(melody))
	}
	for _, n := range melody {
		if len(n.Harmony) == 0 {
			t.Errorf("note %v should be a chord", n)
		}
	}
}

func TestSilentInitFromSettings(t *testing.T) {
	s := NewSilent(Settings{EffectsEnabled: true})
	if !s.EffectsEnabled() || s.MusicEnabled() {
		t.Errorf("effects=%v music=%v, expected true false", s.EffectsEnabled(), s.MusicEnabled())
	}
	if !s.ToggleMusic() {
		t.Error("ToggleMusic should enable music")
	}
}
