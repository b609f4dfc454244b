package t2048

// Snapshot captures the game state for tests.
type Snapshot struct {
	Score    int
	Moves    int
	Board    Board
	MaxTile  int
	GameOver bool
	Won      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Score:    g.score,
		Moves:    g.moves,
		Board:    g.board,
		MaxTile:  g.board.MaxTile(),
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
