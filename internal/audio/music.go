package audio

import "time"

// Track identifies a piece of background music.
type Track uint8

const (
	TrackNone Track = iota
	TrackTetris
	TrackTetrisFast
	TrackTetrisHarmony
	TrackSnake
	TrackSnakeFast
	TrackPong
	TrackPongFast
	TrackVictory
	TrackBreakout
	TrackBreakoutFast
)

// Note is a single melody note. A zero frequency is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
	Harmony  []float64 // extra voices sounded with Freq
}

func notes(pairs ...[2]int) []Note {
	out := make([]Note, len(pairs))
	for i, p := range pairs {
		out[i] = Note{Freq: float64(p[0]), Duration: ms(p[1])}
	}
	return out
}

// Korobeiniki, A and B sections.
var tetrisTheme = notes(
	[2]int{659, 400}, [2]int{493, 200}, [2]int{523, 200}, [2]int{587, 400},
	[2]int{523, 200}, [2]int{493, 200}, [2]int{440, 400}, [2]int{440, 200},
	[2]int{523, 200}, [2]int{659, 400}, [2]int{587, 200}, [2]int{523, 200},
	[2]int{493, 600}, [2]int{523, 200}, [2]int{587, 400}, [2]int{659, 400},
	[2]int{523, 400}, [2]int{440, 400}, [2]int{440, 400},

	[2]int{587, 600}, [2]int{698, 200}, [2]int{880, 400}, [2]int{784, 200},
	[2]int{698, 200}, [2]int{659, 600}, [2]int{523, 200}, [2]int{659, 400},
	[2]int{587, 200}, [2]int{523, 200}, [2]int{493, 400}, [2]int{493, 200},
	[2]int{523, 200}, [2]int{587, 400}, [2]int{659, 400}, [2]int{523, 400},
	[2]int{440, 400}, [2]int{440, 400},
)

// The E-G-C chord played after a four-line clear.
var tetrisHarmony = []Note{
	{Freq: 523, Harmony: []float64{659, 784}, Duration: ms(400)},
	{Freq: 523, Harmony: []float64{659, 784}, Duration: ms(400)},
	{Freq: 523, Harmony: []float64{659, 784}, Duration: ms(600)},
}

var snakeTheme = notes(
	[2]int{440, 600}, [2]int{523, 400}, [2]int{659, 600}, [2]int{587, 400},
	[2]int{523, 600}, [2]int{440, 400}, [2]int{392, 800},
	[2]int{523, 600}, [2]int{659, 400}, [2]int{784, 600}, [2]int{659, 400},
	[2]int{523, 600}, [2]int{440, 400}, [2]int{392, 800},
)

var pongTheme = notes(
	[2]int{523, 200}, [2]int{659, 200}, [2]int{784, 200}, [2]int{659, 200},
	[2]int{587, 200}, [2]int{698, 200}, [2]int{880, 400},
	[2]int{784, 200}, [2]int{659, 200}, [2]int{523, 200}, [2]int{587, 200},
	[2]int{494, 200}, [2]int{392, 400}, [2]int{0, 200},
)

var victoryFanfare = notes(
	[2]int{523, 150}, [2]int{659, 150}, [2]int{784, 150}, [2]int{1047, 600},
)

var breakoutTheme = notes(
	[2]int{392, 200}, [2]int{523, 200}, [2]int{659, 200}, [2]int{523, 200},
	[2]int{440, 200}, [2]int{587, 200}, [2]int{698, 400},
	[2]int{659, 200}, [2]int{587, 200}, [2]int{523, 200}, [2]int{494, 200},
	[2]int{523, 600}, [2]int{0, 200},
)

// Melody returns the notes of a track.
func Melody(t Track) []Note {
	switch t {
	case TrackTetris:
		return tetrisTheme
	case TrackTetrisFast:
		return scaled(tetrisTheme, 0.5)
	case TrackTetrisHarmony:
		return tetrisHarmony
	case TrackSnake:
		return snakeTheme
	case TrackSnakeFast:
		return scaled(snakeTheme, 0.6)
	case TrackPong:
		return pongTheme
	case TrackPongFast:
		return scaled(pongTheme, 0.7)
	case TrackVictory:
		return victoryFanfare
	case TrackBreakout:
		return breakoutTheme
	case TrackBreakoutFast:
		return scaled(breakoutTheme, 0.7)
	}
	return nil
}

func scaled(in []Note, factor float64) []Note {
	out := make([]Note, len(in))
	for i, n := range in {
		n.Duration = time.Duration(float64(n.Duration) * factor)
		out[i] = n
	}
	return out
}
