package minesweeper

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
)

var testConfig = config.MinesweeperConfig{Width: 16, Height: 16, Mines: 40}

func newTestGame(seed int64) (*Game, *audio.Recorder) {
	rec := audio.NewRecorder()
	return New(rand.New(rand.NewSource(seed)), rec, testConfig), rec
}

func TestCursorStaysOnField(t *testing.T) {
	g, _ := newTestGame(1)
	x, y := g.Cursor()
	assert.Equal(t, 8, x)
	assert.Equal(t, 8, y)

	for range 20 {
		g.HandleKey(input.CmdLeft)
		g.HandleKey(input.CmdUp)
	}
	x, y = g.Cursor()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	for range 20 {
		g.HandleKey(input.CmdRight)
		g.HandleKey(input.CmdDown)
	}
	x, y = g.Cursor()
	assert.Equal(t, 15, x)
	assert.Equal(t, 15, y)
}

func TestFirstRevealIsSafe(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g, rec := newTestGame(seed)
		action := g.HandleKey(input.CmdSelect)

		require.True(t, g.Field().Laid())
		assert.NotEqual(t, core.ActionGameOver, action)
		assert.False(t, g.State().GameOver)
		assert.Positive(t, g.State().Score)
		assert.Equal(t, 1, rec.Count(audio.EffectMinesReveal))
	}
}

func TestHittingAMineEndsTheGame(t *testing.T) {
	g, rec := newTestGame(1)
	g.field = NewField(16, 16, 0)
	g.field.Place([2]int{8, 8}, [2]int{0, 0})

	action := g.HandleKey(input.CmdSelect)
	assert.Equal(t, core.ActionGameOver, action)
	assert.True(t, g.State().GameOver)
	assert.Equal(t, Revealed, g.Field().At(0, 0).State, "all mines are shown")
	assert.Equal(t, 1, rec.Count(audio.EffectMinesHit))

	// Only restart and quit work now.
	g.HandleKey(input.CmdLeft)
	x, _ := g.Cursor()
	assert.Equal(t, 8, x)
	assert.Equal(t, core.ActionQuit, g.HandleKey(input.CmdQuit))

	g.HandleKey(input.CmdRestart)
	assert.False(t, g.State().GameOver)
	assert.False(t, g.Field().Laid())
}

func TestClearingTheFieldWins(t *testing.T) {
	g, rec := newTestGame(1)
	g.field = NewField(16, 16, 0)
	g.field.Place([2]int{15, 15})

	action := g.HandleKey(input.CmdSelect)
	assert.Equal(t, core.ActionGameOver, action)

	st := g.State()
	assert.True(t, st.Won)
	assert.Equal(t, 2*255, st.Score)
	assert.Equal(t, 255, st.Details["revealed"])
	assert.Equal(t, 1, rec.Count(audio.EffectMinesVictory))
}

func TestFlagging(t *testing.T) {
	g, rec := newTestGame(1)

	g.HandleKey(input.CmdFlag)
	assert.Equal(t, Flagged, g.Field().At(8, 8).State)
	assert.Equal(t, 1, rec.Count(audio.EffectMinesFlag))

	// A flagged cell can't be revealed.
	g.HandleKey(input.CmdSelect)
	assert.Equal(t, Flagged, g.Field().At(8, 8).State)

	g.HandleKey(input.CmdFlag)
	assert.Equal(t, Hidden, g.Field().At(8, 8).State)
	assert.Equal(t, 1, rec.Count(audio.EffectMinesUnflag))
}

func TestDeterministicLayout(t *testing.T) {
	g1, _ := newTestGame(77)
	g2, _ := newTestGame(77)
	g1.HandleKey(input.CmdSelect)
	g2.HandleKey(input.CmdSelect)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			require.Equal(t, g1.Field().At(x, y), g2.Field().At(x, y))
		}
	}
}

func TestDraw(t *testing.T) {
	g, _ := newTestGame(1)
	screen := core.NewScreen(80, 24)
	g.Draw(screen)

	out := screen.String()
	assert.Contains(t, out, "Mines left: 40")
	assert.Contains(t, out, "[■]")

	g.field = NewField(16, 16, 0)
	g.field.Place([2]int{8, 8})
	g.HandleKey(input.CmdSelect)
	screen.Clear()
	g.Draw(screen)
	assert.True(t, strings.Contains(screen.String(), "BOOM"))
}
