package t2048

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/input"
)

func newTestGame(seed int64) (*Game, *audio.Recorder) {
	rec := audio.NewRecorder()
	return New(rand.New(rand.NewSource(seed)), rec, config.T2048Config{Target: 2048}), rec
}

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		score    int
	}{
		{"simple merge", [Size]int{2, 2, 0, 0}, [Size]int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", [Size]int{2, 2, 2, 0}, [Size]int{4, 2, 0, 0}, 4},
		{"double merge", [Size]int{2, 2, 2, 2}, [Size]int{4, 4, 0, 0}, 8},
		{"merged tile does not merge again", [Size]int{2, 2, 4, 0}, [Size]int{4, 4, 0, 0}, 4},
		{"no merge possible", [Size]int{2, 4, 8, 16}, [Size]int{2, 4, 8, 16}, 0},
		{"slide with gap", [Size]int{0, 0, 2, 2}, [Size]int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", [Size]int{2, 0, 0, 2}, [Size]int{4, 0, 0, 0}, 4},
		{"no change needed", [Size]int{4, 2, 0, 0}, [Size]int{4, 2, 0, 0}, 0},
		{"empty row", [Size]int{}, [Size]int{}, 0},
		{"single tile", [Size]int{0, 4, 0, 0}, [Size]int{4, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideRow(tt.input)
			if result != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

var slideInput = Board{
	{2, 2, 0, 0},
	{4, 0, 4, 0},
	{2, 2, 2, 2},
	{0, 0, 0, 2},
}

func TestSlideDirections(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Board
		score    int
	}{
		{DirLeft, Board{
			{4, 0, 0, 0},
			{8, 0, 0, 0},
			{4, 4, 0, 0},
			{2, 0, 0, 0},
		}, 4 + 8 + 8},
		{DirRight, Board{
			{0, 0, 0, 4},
			{0, 0, 0, 8},
			{0, 0, 4, 4},
			{0, 0, 0, 2},
		}, 4 + 8 + 8},
		{DirUp, Board{
			{2, 4, 4, 4},
			{4, 0, 2, 0},
			{2, 0, 0, 0},
			{0, 0, 0, 0},
		}, 4 + 4},
		{DirDown, Board{
			{0, 0, 0, 0},
			{2, 0, 0, 0},
			{4, 0, 4, 0},
			{2, 4, 2, 4},
		}, 4 + 4},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			result, score, changed := slideInput.Slide(tt.dir)
			if result != tt.expected {
				t.Errorf("Slide(%v): got\n%v\nwant\n%v", tt.dir, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("Slide(%v) score = %d, want %d", tt.dir, score, tt.score)
			}
			if !changed {
				t.Errorf("Slide(%v) should report a change", tt.dir)
			}
		})
	}
}

func TestSlideWithoutChange(t *testing.T) {
	b := Board{{2, 4, 0, 0}}
	if _, _, changed := b.Slide(DirLeft); changed {
		t.Error("Sliding a packed row against its edge should not change anything")
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g, rec := newTestGame(1)
	g.board = Board{{2, 4, 0, 0}}

	g.HandleKey(input.CmdLeft)

	s := g.Snapshot()
	if s.Board != (Board{{2, 4, 0, 0}}) {
		t.Errorf("Board changed on a no-op move: %v", s.Board)
	}
	if s.Moves != 0 || len(rec.Effects) != 0 {
		t.Error("A no-op move should not count or sound")
	}
}

func TestMoveSpawnsOneTile(t *testing.T) {
	g, rec := newTestGame(1)
	g.board = Board{{2, 2, 0, 0}}

	g.HandleKey(input.CmdLeft)

	s := g.Snapshot()
	if s.Score != 4 {
		t.Errorf("Score = %d, want 4", s.Score)
	}
	if got := len(s.Board.Empty()); got != Size*Size-2 {
		t.Errorf("Expected the merged tile plus one new tile, %d empty cells", got)
	}
	if rec.Count(audio.Effect2048Merge) != 1 {
		t.Error("Expected the merge effect")
	}
}

func TestStartsWithTwoTiles(t *testing.T) {
	g, _ := newTestGame(5)
	b := g.Snapshot().Board
	if got := len(b.Empty()); got != Size*Size-2 {
		t.Fatalf("Expected 2 tiles, got %d", Size*Size-got)
	}
	for _, row := range b {
		for _, v := range row {
			if v != 0 && v != 2 && v != 4 {
				t.Errorf("Unexpected starting tile %d", v)
			}
		}
	}
}

func TestGameOver(t *testing.T) {
	g, rec := newTestGame(1)
	// One empty cell; a left slide fills it with no merges left.
	g.board = Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{0, 8, 16, 32},
	}

	action := g.HandleKey(input.CmdLeft)
	// The slide moves the bottom row left, then the spawn fills (3,3).
	s := g.Snapshot()
	if s.Board[3][3] == 0 {
		t.Fatal("Expected a spawned tile in the freed cell")
	}
	if s.Board.CanMove() {
		if action != core.ActionContinue || s.GameOver {
			t.Error("Game should continue while moves remain")
		}
		return
	}
	if action != core.ActionGameOver || !s.GameOver {
		t.Errorf("Expected game over, got %v %+v", action, s)
	}
	if rec.Count(audio.Effect2048GameOver) != 1 {
		t.Error("Expected the game over effect")
	}
}

func TestCanMove(t *testing.T) {
	full := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	if full.CanMove() {
		t.Error("A checkerboard has no moves")
	}
	full[3][3] = 4
	if !full.CanMove() {
		t.Error("Two equal neighbours can merge")
	}
}

func TestReachingTargetWins(t *testing.T) {
	g, rec := newTestGame(1)
	g.board = Board{{1024, 1024, 0, 0}}

	if action := g.HandleKey(input.CmdLeft); action != core.ActionGameOver {
		t.Fatalf("HandleKey() = %v, want game over", action)
	}
	st := g.State()
	if !st.Won || !st.GameOver {
		t.Errorf("Expected a win, got %+v", st)
	}
	if st.Details["max_tile"] != 2048 {
		t.Errorf("max_tile = %d", st.Details["max_tile"])
	}
	if rec.Count(audio.Effect2048Victory) != 1 {
		t.Error("Expected the victory effect")
	}

	// Moves are ignored after the win; restart is not.
	before := g.Snapshot()
	g.HandleKey(input.CmdRight)
	if g.Snapshot() != before {
		t.Error("Board changed after the win")
	}
	g.HandleKey(input.CmdRestart)
	if g.Snapshot().Won {
		t.Error("Restart did not clear the win")
	}
}

func TestSmallTarget(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)), nil, config.T2048Config{Target: 8})
	g.board = Board{{4, 4, 0, 0}}

	if action := g.HandleKey(input.CmdLeft); action != core.ActionGameOver {
		t.Errorf("Reaching a target of 8 should end the game, got %v", action)
	}
}

func TestDeterministicSpawn(t *testing.T) {
	g1, _ := newTestGame(99)
	g2, _ := newTestGame(99)

	for _, cmd := range []input.Command{input.CmdLeft, input.CmdUp, input.CmdRight, input.CmdDown, input.CmdLeft} {
		g1.HandleKey(cmd)
		g2.HandleKey(cmd)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Error("Same seed and moves should produce the same board")
	}
}

func TestMaxTile(t *testing.T) {
	b := Board{{2, 0, 0, 0}, {0, 512, 0, 0}, {0, 0, 8, 0}}
	if got := b.MaxTile(); got != 512 {
		t.Errorf("MaxTile() = %d, want 512", got)
	}
}

func TestEmptyCells(t *testing.T) {
	b := Board{{2, 0, 0, 0}, {2, 2, 2, 2}, {2, 2, 2, 2}, {2, 2, 2, 0}}
	cells := b.Empty()
	want := []Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}}
	if len(cells) != len(want) {
		t.Fatalf("Empty() = %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("Empty()[%d] = %v, want %v", i, cells[i], want[i])
		}
	}
}

func TestDraw(t *testing.T) {
	g, _ := newTestGame(1)
	g.board = Board{{2048, 0, 0, 0}}
	screen := core.NewScreen(80, 24)
	g.Draw(screen)

	out := screen.String()
	if !strings.Contains(out, "2048") || !strings.Contains(out, "Score: 0") {
		t.Errorf("Unexpected frame:\n%s", out)
	}

	g.gameOver = true
	screen.Clear()
	g.Draw(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("Expected the game over box")
	}
}
