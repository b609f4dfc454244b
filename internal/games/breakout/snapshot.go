package breakout

// Snapshot is a deep copy of the game state. Applying it back restores
// play exactly, apart from the random source.
type Snapshot struct {
	Tick        int
	PaddleX     Fixed
	PaddleWidth int
	Score       int
	Lives       int
	LevelIndex  int
	Cycle       int
	ServeDelay  int
	Speed       Fixed
	Serving     bool
	Balls       []Ball
	Pickups     []Pickup
	Effects     []Effect
	Bricks      [][]Brick
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		PaddleX:     g.paddle.X,
		PaddleWidth: g.paddle.Width,
		Score:       g.score,
		Lives:       g.lives,
		LevelIndex:  g.levelIndex,
		Cycle:       g.cycle,
		ServeDelay:  g.serveDelay,
		Speed:       g.speed,
		Serving:     g.state == stateServe,
		Bricks:      g.level.Clone().Bricks,
	}
	for _, b := range g.balls {
		s.Balls = append(s.Balls, *b)
	}
	for _, p := range g.powerups.Pickups {
		s.Pickups = append(s.Pickups, *p)
	}
	for _, e := range g.powerups.Effects {
		s.Effects = append(s.Effects, *e)
	}
	return s
}

// ApplySnapshot overwrites the game state. Any state that is not serving
// resumes as playing.
func (g *Game) ApplySnapshot(s Snapshot) {
	g.tick = s.Tick
	g.paddle.X = s.PaddleX
	g.paddle.Width = s.PaddleWidth
	g.score = s.Score
	g.lives = s.Lives
	g.levelIndex = s.LevelIndex
	g.cycle = s.Cycle
	g.serveDelay = s.ServeDelay
	g.speed = s.Speed

	g.level = GetLevel(s.LevelIndex)
	if s.Bricks != nil {
		g.level.Bricks = (&Level{Bricks: s.Bricks}).Clone().Bricks
	}

	g.balls = g.balls[:0]
	for _, b := range s.Balls {
		g.balls = append(g.balls, &b)
	}
	g.powerups.Pickups = g.powerups.Pickups[:0]
	for _, p := range s.Pickups {
		g.powerups.Pickups = append(g.powerups.Pickups, &p)
	}
	g.powerups.Effects = g.powerups.Effects[:0]
	for _, e := range s.Effects {
		g.powerups.Effects = append(g.powerups.Effects, &e)
	}

	g.state = statePlaying
	if s.Serving {
		g.state = stateServe
	}
}
