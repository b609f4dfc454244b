package life

import (
	"math/rand"

	"github.com/kamstrup/intmap"
)

// Preset is a selectable grid size.
type Preset struct {
	Width, Height int
}

// Presets are the grid sizes bound to F1..F4.
var Presets = [4]Preset{
	{40, 20},
	{60, 30},
	{80, 40},
	{120, 60},
}

// Grid is a bounded Life universe. Only live cells are stored, keyed by
// y*width+x, so stepping costs time proportional to the population.
type Grid struct {
	width, height int
	wrap          bool
	live          *intmap.Map[uint32, struct{}]
}

// NewGrid creates an empty grid. With wrap set the edges join up (torus);
// otherwise cells beyond the edge count as dead.
func NewGrid(width, height int, wrap bool) *Grid {
	return &Grid{
		width:  width,
		height: height,
		wrap:   wrap,
		live:   intmap.New[uint32, struct{}](64),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Population is the number of live cells.
func (g *Grid) Population() int { return g.live.Len() }

func (g *Grid) key(x, y int) uint32 { return uint32(y*g.width + x) }

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Alive reports whether (x, y) is live. Cells off the grid are dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.inside(x, y) {
		return false
	}
	_, ok := g.live.Get(g.key(x, y))
	return ok
}

// Set makes (x, y) live or dead. Off-grid coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.inside(x, y) {
		return
	}
	if alive {
		g.live.Put(g.key(x, y), struct{}{})
	} else {
		g.live.Del(g.key(x, y))
	}
}

// Toggle flips (x, y) and returns its new state.
func (g *Grid) Toggle(x, y int) bool {
	alive := !g.Alive(x, y)
	g.Set(x, y, alive)
	return alive
}

// Clear kills every cell.
func (g *Grid) Clear() { g.live.Clear() }

// Randomize clears the grid and then makes each cell live with
// probability fill.
func (g *Grid) Randomize(rng *rand.Rand, fill float64) {
	g.Clear()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if rng.Float64() < fill {
				g.live.Put(g.key(x, y), struct{}{})
			}
		}
	}
}

// Resized returns a copy with new dimensions, keeping the cells that fit.
func (g *Grid) Resized(width, height int) *Grid {
	out := NewGrid(width, height, g.wrap)
	g.each(func(x, y int) {
		out.Set(x, y, true)
	})
	return out
}

func (g *Grid) each(f func(x, y int)) {
	g.live.ForEach(func(k uint32, _ struct{}) bool {
		f(int(k)%g.width, int(k)/g.width)
		return true
	})
}

// neighbour resolves (x+dx, y+dy), wrapping when enabled.
func (g *Grid) neighbour(x, y, dx, dy int) (int, int, bool) {
	nx, ny := x+dx, y+dy
	if g.wrap {
		return (nx + g.width) % g.width, (ny + g.height) % g.height, true
	}
	return nx, ny, g.inside(nx, ny)
}

// Step advances one generation: a live cell with two or three live
// neighbours survives, a dead cell with exactly three becomes live, and
// every other cell is dead in the next generation.
func (g *Grid) Step() {
	counts := intmap.New[uint32, uint8](g.live.Len() * 8)
	g.each(func(x, y int) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny, ok := g.neighbour(x, y, dx, dy)
				if !ok {
					continue
				}
				k := g.key(nx, ny)
				n, _ := counts.Get(k)
				counts.Put(k, n+1)
			}
		}
	})

	next := intmap.New[uint32, struct{}](g.live.Len())
	counts.ForEach(func(k uint32, n uint8) bool {
		if n == 3 {
			next.Put(k, struct{}{})
		} else if _, alive := g.live.Get(k); alive && n == 2 {
			next.Put(k, struct{}{})
		}
		return true
	})
	g.live = next
}
