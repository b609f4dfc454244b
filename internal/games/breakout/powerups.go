package breakout

import "math/rand"

// PickupType is a falling power-up.
type PickupType int

const (
	PickupNone PickupType = iota - 1
	PickupWiden
	PickupShrink
	PickupMultiball
	PickupSticky
	PickupSpeedUp
	PickupSlowDown
	PickupExtraLife
)

var pickupGlyphs = [...]rune{'W', 'S', 'M', 'T', '+', '-', '♥'}

// Glyph returns the display character.
func (p PickupType) Glyph() rune {
	if p < 0 || int(p) >= len(pickupGlyphs) {
		return '?'
	}
	return pickupGlyphs[p]
}

// Pickup is a power-up falling from a broken brick.
type Pickup struct {
	Type   PickupType
	X, Y   Fixed
	VY     Fixed
	Active bool
}

func (p *Pickup) CellX() int { return p.X.ToCell() }
func (p *Pickup) CellY() int { return p.Y.ToCell() }

// EffectType is a timed modifier started by a pickup.
type EffectType int

const (
	EffectWiden EffectType = iota
	EffectShrink
	EffectSticky
	EffectSpeedUp
	EffectSlowDown
)

var effectLabels = [...]string{"W", "S", "T", "+", "-"}

func (e EffectType) String() string {
	if e < 0 || int(e) >= len(effectLabels) {
		return "?"
	}
	return effectLabels[e]
}

// Effect is an active modifier and the tick it ends on.
type Effect struct {
	Type      EffectType
	UntilTick int
}

// PowerUpConfig tunes spawning and effects. Durations are in ticks and
// speeds in fixed-point units.
type PowerUpConfig struct {
	SpawnChance int // percent per destroyed brick

	// Relative spawn weights, indexed by PickupType.
	Weights [7]int

	Durations [5]int // indexed by EffectType

	FallSpeed       int
	WidenAmount     int
	ShrinkAmount    int
	MinPaddleWidth  int
	MaxPaddleWidth  int
	SpeedMultiplier int // percent
	MinBallSpeed    int
	MaxBallSpeed    int
	MultiballCount  int
}

// DefaultPowerUpConfig returns the stock tuning.
func DefaultPowerUpConfig() PowerUpConfig {
	return PowerUpConfig{
		SpawnChance: 18,
		//          widen shrink multi sticky fast slow life
		Weights:   [7]int{25, 10, 20, 15, 10, 15, 5},
		Durations: [5]int{720, 720, 600, 480, 480},

		FallSpeed:       200,
		WidenAmount:     4,
		ShrinkAmount:    3,
		MinPaddleWidth:  3,
		MaxPaddleWidth:  24,
		SpeedMultiplier: 150,
		MinBallSpeed:    100,
		MaxBallSpeed:    800,
		MultiballCount:  2,
	}
}

// PowerUpManager tracks falling pickups and active effects.
type PowerUpManager struct {
	Config  PowerUpConfig
	Pickups []*Pickup
	Effects []*Effect
	rng     *rand.Rand
}

// NewPowerUpManager creates a manager drawing from rng.
func NewPowerUpManager(rng *rand.Rand, cfg PowerUpConfig) *PowerUpManager {
	return &PowerUpManager{Config: cfg, rng: rng}
}

// Reset drops all pickups and effects.
func (pm *PowerUpManager) Reset() {
	pm.Pickups = pm.Pickups[:0]
	pm.Effects = pm.Effects[:0]
}

// TrySpawn rolls for a pickup at the given cell and reports whether one
// dropped.
func (pm *PowerUpManager) TrySpawn(x, y int) bool {
	if pm.rng.Intn(100) >= pm.Config.SpawnChance {
		return false
	}
	pm.Pickups = append(pm.Pickups, &Pickup{
		Type:   pm.roll(),
		X:      ToFixed(x),
		Y:      ToFixed(y),
		VY:     Fixed(pm.Config.FallSpeed),
		Active: true,
	})
	return true
}

func (pm *PowerUpManager) roll() PickupType {
	total := 0
	for _, w := range pm.Config.Weights {
		total += w
	}
	if total <= 0 {
		return PickupWiden
	}
	n := pm.rng.Intn(total)
	for i, w := range pm.Config.Weights {
		if n < w {
			return PickupType(i)
		}
		n -= w
	}
	return PickupWiden
}

// Update moves pickups down and drops those below row h.
func (pm *PowerUpManager) Update(h int) {
	limit := ToFixed(h)
	kept := pm.Pickups[:0]
	for _, p := range pm.Pickups {
		if !p.Active {
			continue
		}
		p.Y = p.Y.Add(p.VY)
		if p.Y < limit {
			kept = append(kept, p)
		}
	}
	pm.Pickups = kept
}

// Collect removes and returns the first pickup touching the paddle, or
// PickupNone.
func (pm *PowerUpManager) Collect(paddle *Paddle) PickupType {
	for i, p := range pm.Pickups {
		if !p.Active {
			continue
		}
		if y := p.CellY(); y != paddle.Y && y != paddle.Y-1 {
			continue
		}
		if p.X >= paddle.Left() && p.X <= paddle.Right() {
			p.Active = false
			pm.Pickups = append(pm.Pickups[:i], pm.Pickups[i+1:]...)
			return p.Type
		}
	}
	return PickupNone
}

// AddEffect starts an effect or extends one already running.
func (pm *PowerUpManager) AddEffect(t EffectType, tick int) {
	until := tick + pm.Config.Durations[t]
	for _, e := range pm.Effects {
		if e.Type == t {
			e.UntilTick = until
			return
		}
	}
	pm.Effects = append(pm.Effects, &Effect{Type: t, UntilTick: until})
}

// RemoveEffect cancels an effect.
func (pm *PowerUpManager) RemoveEffect(t EffectType) {
	for i, e := range pm.Effects {
		if e.Type == t {
			pm.Effects = append(pm.Effects[:i], pm.Effects[i+1:]...)
			return
		}
	}
}

// Expire drops effects that have run out and returns their types.
func (pm *PowerUpManager) Expire(tick int) []EffectType {
	var expired []EffectType
	kept := pm.Effects[:0]
	for _, e := range pm.Effects {
		if e.UntilTick <= tick {
			expired = append(expired, e.Type)
		} else {
			kept = append(kept, e)
		}
	}
	pm.Effects = kept
	return expired
}

func (pm *PowerUpManager) HasEffect(t EffectType) bool {
	for _, e := range pm.Effects {
		if e.Type == t {
			return true
		}
	}
	return false
}

// Remaining returns the ticks left on an effect, or 0.
func (pm *PowerUpManager) Remaining(t EffectType, tick int) int {
	for _, e := range pm.Effects {
		if e.Type == t {
			return max(0, e.UntilTick-tick)
		}
	}
	return 0
}
