package device

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/termplay/internal/audio"
)

const (
	sampleRate = beep.SampleRate(44100)
	attackTime = 5 * time.Millisecond
)

func oscillator(sr beep.SampleRate, w audio.Wave, freq float64) (beep.Streamer, error) {
	switch w {
	case audio.WaveSquare:
		return generators.SquareTone(sr, freq)
	default:
		return generators.SineTone(sr, freq)
	}
}

// toneStreamer renders a tone at the given linear volume.
func toneStreamer(sr beep.SampleRate, t audio.Tone, volume float64) (beep.Streamer, error) {
	n := sr.N(t.Duration)
	if len(t.Freqs) == 0 {
		return beep.Silence(n), nil
	}

	voices := make([]beep.Streamer, 0, len(t.Freqs))
	for _, f := range t.Freqs {
		osc, err := oscillator(sr, t.Wave, f)
		if err != nil {
			return nil, fmt.Errorf("audio: %.0f Hz: %w", f, err)
		}
		voices = append(voices, osc)
	}

	gain := volume / float64(len(voices))
	if t.Gain > 0 {
		gain *= t.Gain
	}

	release := t.FadeOut
	if release == 0 {
		release = min(t.Duration/3, 30*time.Millisecond)
	}
	s := beep.Take(n, beep.Mix(voices...))
	return newEnvelope(withVolume(s, gain), n, sr.N(min(attackTime, t.Duration/4)), sr.N(release)), nil
}

// melodyStreamer renders a sequence of notes, rests included.
func melodyStreamer(sr beep.SampleRate, melody []audio.Note, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(melody))
	for _, note := range melody {
		if note.Freq <= 0 {
			parts = append(parts, beep.Silence(sr.N(note.Duration)))
			continue
		}
		freqs := append([]float64{note.Freq}, note.Harmony...)
		s, err := toneStreamer(sr, audio.Tone{Wave: audio.WaveSine, Freqs: freqs, Duration: note.Duration}, volume)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return beep.Seq(parts...), nil
}

// withVolume scales a stream linearly. effects.Volume works in powers of
// Base, so the linear volume goes through log2.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// envelope applies a linear attack and release over a fixed length stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{streamer: s, total: total, attack: attack, release: min(release, total)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
