// Package audio describes the sound effects and music games ask for.
//
// Everything here is fire-and-forget: games call Play and friends from the
// game loop and never wait on the audio device. The device package plays
// through the system speaker; Silent keeps toggle state and plays nothing.
package audio

import "time"

// Wave is the oscillator shape of a tone.
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
)

// Tone is a chord of one or more frequencies held for a duration.
type Tone struct {
	Wave     Wave
	Freqs    []float64
	Duration time.Duration
	FadeOut  time.Duration
	Gain     float64 // relative to the effects volume, 1 when zero
}

// Effect identifies a sound effect.
type Effect uint8

const (
	EffectNone Effect = iota

	EffectTetrisMove
	EffectTetrisRotate
	EffectTetrisPieceDrop
	EffectTetrisHardDrop
	EffectTetrisLineClear
	EffectTetrisTetris
	EffectTetrisLevelUp
	EffectTetrisGameOver

	EffectSnakeEat
	EffectSnakeGameOver

	Effect2048Move
	Effect2048Merge
	Effect2048Victory
	Effect2048GameOver

	EffectMinesReveal
	EffectMinesFlag
	EffectMinesUnflag
	EffectMinesHit
	EffectMinesVictory

	EffectLifeStep
	EffectLifeToggle
	EffectLifePattern
	EffectLifeStateChange

	EffectPongPaddle
	EffectPongWall
	EffectPongScore

	EffectBreakoutPaddle
	EffectBreakoutBrick
	EffectBreakoutPowerUp
	EffectBreakoutLifeLost
	EffectBreakoutGameOver

	EffectMenuSelect
	EffectMenuConfirm
	EffectMenuBack
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func sine(d time.Duration, freqs ...float64) Tone {
	return Tone{Wave: WaveSine, Freqs: freqs, Duration: d}
}

func square(d time.Duration, freqs ...float64) Tone {
	return Tone{Wave: WaveSquare, Freqs: freqs, Duration: d}
}

var effectTones = map[Effect]Tone{
	EffectTetrisMove:      sine(ms(30), 440),
	EffectTetrisRotate:    sine(ms(50), 880),
	EffectTetrisPieceDrop: square(ms(80), 220),
	EffectTetrisHardDrop:  square(ms(150), 110),
	EffectTetrisLineClear: sine(ms(300), 659, 523),
	EffectTetrisTetris:    {Wave: WaveSine, Freqs: []float64{659, 784, 523}, Duration: ms(600), Gain: 1.2},
	EffectTetrisLevelUp:   sine(ms(250), 784, 988),
	EffectTetrisGameOver:  {Wave: WaveSquare, Freqs: []float64{220}, Duration: ms(800), FadeOut: ms(200)},

	EffectSnakeEat:      sine(ms(100), 800),
	EffectSnakeGameOver: square(ms(500), 200),

	Effect2048Move:     sine(ms(100), 400),
	Effect2048Merge:    sine(ms(150), 650),
	Effect2048Victory:  sine(ms(400), 1400),
	Effect2048GameOver: square(ms(700), 220),

	EffectMinesReveal:  sine(ms(80), 600),
	EffectMinesFlag:    square(ms(60), 800),
	EffectMinesUnflag:  square(ms(50), 600),
	EffectMinesHit:     {Wave: WaveSquare, Freqs: []float64{150, 200}, Duration: ms(800), FadeOut: ms(300)},
	EffectMinesVictory: sine(ms(400), 1200),

	EffectLifeStep:        sine(ms(30), 300),
	EffectLifeToggle:      sine(ms(80), 440),
	EffectLifePattern:     sine(ms(150), 659.3, 523.3),
	EffectLifeStateChange: sine(ms(120), 523.3),

	EffectPongPaddle: sine(ms(80), 600),
	EffectPongWall:   square(ms(60), 400),
	EffectPongScore:  sine(ms(300), 1200),

	EffectBreakoutPaddle:   sine(ms(60), 523),
	EffectBreakoutBrick:    square(ms(70), 880),
	EffectBreakoutPowerUp:  sine(ms(200), 659, 988),
	EffectBreakoutLifeLost: square(ms(400), 196),
	EffectBreakoutGameOver: {Wave: WaveSquare, Freqs: []float64{165}, Duration: ms(900), FadeOut: ms(300)},

	EffectMenuSelect:  sine(ms(50), 500),
	EffectMenuConfirm: sine(ms(100), 800),
	EffectMenuBack:    {Wave: WaveSine, Freqs: []float64{600}, Duration: ms(80), FadeOut: ms(30)},
}

// ToneOf returns the tone an effect is synthesised from.
func ToneOf(e Effect) (Tone, bool) {
	t, ok := effectTones[e]
	return t, ok
}
