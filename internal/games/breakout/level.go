package breakout

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickEmpty  BrickType = iota
	BrickNormal           // one hit
	BrickHard             // two hits
	BrickSolid            // indestructible
)

// Brick is one cell of a level.
type Brick struct {
	Type   BrickType
	Points int
	Alive  bool
	HP     int
}

// Level is a brick layout, indexed [row][col].
type Level struct {
	Name   string
	Width  int
	Height int
	Bricks [][]Brick
}

// Clone returns a deep copy so a level can be replayed.
func (l *Level) Clone() *Level {
	c := &Level{Name: l.Name, Width: l.Width, Height: l.Height, Bricks: make([][]Brick, len(l.Bricks))}
	for i, row := range l.Bricks {
		c.Bricks[i] = append([]Brick(nil), row...)
	}
	return c
}

// CountAlive returns the number of bricks left to break. Solid bricks do
// not count.
func (l *Level) CountAlive() int {
	n := 0
	for _, row := range l.Bricks {
		for _, b := range row {
			if b.Alive && (b.Type == BrickNormal || b.Type == BrickHard) {
				n++
			}
		}
	}
	return n
}

// Total returns the number of breakable bricks the level started with.
func (l *Level) Total() int {
	n := 0
	for _, row := range l.Bricks {
		for _, b := range row {
			if b.Type == BrickNormal || b.Type == BrickHard {
				n++
			}
		}
	}
	return n
}

func parseBrick(ch byte) Brick {
	switch {
	case ch == '#':
		return Brick{Type: BrickNormal, Points: 10, Alive: true, HP: 1}
	case ch >= '1' && ch <= '9':
		return Brick{Type: BrickNormal, Points: int(ch-'0') * 10, Alive: true, HP: 1}
	case ch == 'H' || ch == 'h':
		return Brick{Type: BrickHard, Points: 20, Alive: true, HP: 2}
	case ch == 'X' || ch == 'x':
		return Brick{Type: BrickSolid, Alive: true}
	}
	return Brick{}
}

// ParseLevel builds a level from an ASCII map:
//
//	'#'      normal brick, 10 points
//	'1'-'9'  normal brick worth 10 × digit
//	'H'      hard brick, 2 hits, 20 points
//	'X'      solid brick
//	other    empty
//
// Short lines are padded with empty cells.
func ParseLevel(name string, lines []string) *Level {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	l := &Level{Name: name, Width: width, Height: len(lines), Bricks: make([][]Brick, len(lines))}
	for r, line := range lines {
		l.Bricks[r] = make([]Brick, width)
		for c := 0; c < len(line); c++ {
			l.Bricks[r][c] = parseBrick(line[c])
		}
	}
	return l
}

var levelMaps = []struct {
	name string
	rows []string
}{
	{"Classic", []string{
		"####################",
		"####################",
		"####################",
		"####################",
		"####################",
	}},
	{"Pyramid", []string{
		"........####........",
		"......########......",
		"....############....",
		"..################..",
		"####################",
	}},
	{"Checkerboard", []string{
		"#.#.#.#.#.#.#.#.#.#.",
		".#.#.#.#.#.#.#.#.#.#",
		"#.#.#.#.#.#.#.#.#.#.",
		".#.#.#.#.#.#.#.#.#.#",
		"#.#.#.#.#.#.#.#.#.#.",
		".#.#.#.#.#.#.#.#.#.#",
	}},
	{"Rainbow", []string{
		"55555555555555555555",
		"44444444444444444444",
		"33333333333333333333",
		"22222222222222222222",
		"11111111111111111111",
	}},
	{"Diamond", []string{
		".........##.........",
		"........####........",
		".......######.......",
		"......########......",
		".....##########.....",
		"......########......",
		".......######.......",
		"........####........",
		".........##.........",
	}},
	{"Fortress", []string{
		"HHHHHHHHHHHHHHHHHHHH",
		"H..................H",
		"H.################.H",
		"H.################.H",
		"H.################.H",
		"H..................H",
		"HHHHHHHHHHHHHHHHHHHH",
	}},
	{"Invaders", []string{
		"..#..........#......",
		".###........###.....",
		"#####......#####....",
		"#.#.#......#.#.#....",
		"#####......#####....",
		"....................",
		"......#..........#..",
		".....###........###.",
		"....#####......#####",
		"....#.#.#......#.#.#",
		"....#####......#####",
	}},
	{"Castle", []string{
		"X..X....X..X....X..X",
		"XXXX....XXXX....XXXX",
		"X..X....X..X....X..X",
		"....................",
		"####################",
		"####################",
		"HHHHHHHHHHHHHHHHHHHH",
	}},
	{"Final Boss", []string{
		"HHHHHHHHHHHHHHHHHHHH",
		"H999999999999999999H",
		"H##################H",
		"H##################H",
		"H##################H",
		"H999999999999999999H",
		"HHHHHHHHHHHHHHHHHHHH",
	}},
}

var levels = func() []*Level {
	out := make([]*Level, len(levelMaps))
	for i, m := range levelMaps {
		out[i] = ParseLevel(m.name, m.rows)
	}
	return out
}()

// LevelCount returns the number of built-in levels.
func LevelCount() int { return len(levels) }

// GetLevel returns a fresh copy of a built-in level. Indices wrap.
func GetLevel(index int) *Level {
	return levels[index%len(levels)].Clone()
}
