package spacejump

import (
	"math/rand"

	"github.com/vovakirdan/space-jump/internal/core"
)

// Background is the scrolling backdrop. Offset is the world's BackgroundY,
// always in (-Height, 0]; the backdrop is drawn twice, at offset and at
// offset + Height, to cover the view.
type Background interface {
	Height() float64
	Draw(dst *core.Screen, offset float64)
}

type star struct {
	x, y  float64
	glyph rune
	color core.Color
}

// Starfield is a tiled field of stars twice the world height.
type Starfield struct {
	world  float64
	height float64
	stars  []star
}

var starGlyphs = []rune{'.', '.', '.', '·', '*', '+'}
var starColors = []core.Color{core.ColorGray, core.ColorGray, core.ColorWhite, core.ColorCyan, core.ColorYellow}

// NewStarfield scatters density stars per world-square over the tile.
func NewStarfield(seed int64, world float64, density int) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	s := &Starfield{world: world, height: 2 * world}
	n := density * 2
	for range n {
		s.stars = append(s.stars, star{
			x:     rng.Float64() * world,
			y:     rng.Float64() * s.height,
			glyph: starGlyphs[rng.Intn(len(starGlyphs))],
			color: starColors[rng.Intn(len(starColors))],
		})
	}
	return s
}

// Height implements Background.
func (s *Starfield) Height() float64 { return s.height }

// Draw implements Background. The screen shows one world-size square.
func (s *Starfield) Draw(dst *core.Screen, offset float64) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	sx := float64(dst.Width()) / s.world
	sy := float64(dst.Height()) / s.world
	for _, st := range s.stars {
		for _, base := range [2]float64{offset, offset + s.height} {
			y := st.y + base
			if y < 0 || y >= s.world {
				continue
			}
			dst.SetColored(int(st.x*sx), int(y*sy), st.glyph, st.color)
		}
	}
}
