package desktop

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/space-jump/internal/core"
	"github.com/vovakirdan/space-jump/internal/games/spacejump"
)

var (
	spaceColor    = color.RGBA{0x0b, 0x0d, 0x21, 0xff}
	staticColor   = color.RGBA{0x4f, 0x7c, 0xff, 0xff}
	movingColor   = color.RGBA{0x3c, 0xd6, 0xd6, 0xff}
	iceColor      = color.RGBA{0xb8, 0xf0, 0xff, 0xff}
	rocketColor   = color.RGBA{0xff, 0xc8, 0x3c, 0xff}
	cometColor    = color.RGBA{0xff, 0x5a, 0x36, 0xff}
	alertColor    = color.RGBA{0xff, 0x30, 0x30, 0xff}
	playerColor   = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	boostedColor  = color.RGBA{0xff, 0xd8, 0x60, 0xff}
	deadColor     = color.RGBA{0xd0, 0x40, 0x40, 0xff}
	bannerColor   = color.RGBA{0x00, 0x00, 0x00, 0xc0}
	bannerOutline = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// cellColors maps terminal colors to pixel colors for the starfield.
var cellColors = map[core.Color]color.RGBA{
	core.ColorGray:   {0x70, 0x70, 0x80, 0xff},
	core.ColorWhite:  {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorCyan:   {0x80, 0xe0, 0xff, 0xff},
	core.ColorYellow: {0xff, 0xe0, 0x80, 0xff},
}

// projector maps world coordinates to pixels.
type projector struct {
	cam    spacejump.BoxView
	sx, sy float32
}

func newProjector(dst *ebiten.Image, cam spacejump.BoxView) projector {
	b := dst.Bounds()
	return projector{
		cam: cam,
		sx:  float32(float64(b.Dx()) / cam.W),
		sy:  float32(float64(b.Dy()) / cam.H),
	}
}

func (p projector) point(x, y float64) (float32, float32) {
	return float32(x-p.cam.X) * p.sx, float32(y-p.cam.Y) * p.sy
}

func (p projector) rect(b spacejump.BoxView) (x, y, w, h float32) {
	x, y = p.point(b.X, b.Y)
	return x, y, float32(b.W) * p.sx, float32(b.H) * p.sy
}

// DrawSnapshot draws the objects and the player of a snapshot.
func DrawSnapshot(dst *ebiten.Image, s spacejump.Snapshot) {
	if s.Camera.W <= 0 || s.Camera.H <= 0 {
		return
	}
	p := newProjector(dst, s.Camera)
	for _, o := range s.Objects {
		drawObject(dst, p, o)
	}
	drawPlayer(dst, p, s.Player)
}

func drawObject(dst *ebiten.Image, p projector, o spacejump.ObjectView) {
	x, y, w, h := p.rect(o.BoxView)
	switch o.Kind {
	case spacejump.KindStatic:
		vector.FillRect(dst, x, y, w, h, staticColor, false)
	case spacejump.KindMoving:
		vector.FillRect(dst, x, y, w, h, movingColor, false)
	case spacejump.KindIce:
		c := iceColor
		c.A = uint8(255 * math.Max(0.15, o.Fade))
		vector.FillRect(dst, x, y, w, h, c, false)
	case spacejump.KindRocket:
		vector.FillRect(dst, x+w/4, y+h/4, w/2, h*3/4, rocketColor, false)
		vector.StrokeLine(dst, x+w/4, y+h/4, x+w/2, y, 2, rocketColor, true)
		vector.StrokeLine(dst, x+w*3/4, y+h/4, x+w/2, y, 2, rocketColor, true)
	case spacejump.KindComet:
		vector.DrawFilledCircle(dst, x+w/2, y+h/2, w/2, cometColor, true)
	case spacejump.KindAlert:
		vector.StrokeRect(dst, x, y, w, h, 2, alertColor, false)
		ebitenutil.DebugPrintAt(dst, "!", int(x+w/2)-3, int(y+h/2)-8)
	}
}

// drawPlayer draws a stick figure whose limbs follow the pose angles.
func drawPlayer(dst *ebiten.Image, p projector, pl spacejump.PlayerView) {
	c := playerColor
	switch {
	case pl.Dead:
		c = deadColor
	case pl.Rocket:
		c = boostedColor
	}

	x, y, w, h := p.rect(pl.BoxView)
	cx := x + w/2
	head := h * 0.15
	shoulder := y + head*2
	hip := y + h*0.6

	vector.DrawFilledCircle(dst, cx, y+head, head, c, true)
	vector.StrokeLine(dst, cx, shoulder, cx, hip, 3, c, true)

	limb := func(fromY float32, angle float64, length float32) {
		dx := length * float32(math.Cos(angle))
		dy := -length * float32(math.Sin(angle))
		vector.StrokeLine(dst, cx, fromY, cx+dx, fromY+dy, 3, c, true)
		vector.StrokeLine(dst, cx, fromY, cx-dx, fromY+dy, 3, c, true)
	}
	limb(hip, pl.Pose.Legs, h*0.4)
	limb(shoulder, pl.Pose.Arms, h*0.3)
}

// drawBackground rasterizes the backdrop into cells and draws each
// non-empty cell as a small dot.
func drawBackground(dst *ebiten.Image, cells *core.Screen, bg spacejump.Background, offset float64) {
	cells.Clear()
	bg.Draw(cells, offset)

	b := dst.Bounds()
	cw := float32(b.Dx()) / float32(cells.Width())
	ch := float32(b.Dy()) / float32(cells.Height())
	for y := range cells.Height() {
		for x := range cells.Width() {
			cell := cells.GetCell(x, y)
			if cell.Rune == ' ' {
				continue
			}
			c, ok := cellColors[cell.Color]
			if !ok {
				c = cellColors[core.ColorGray]
			}
			size := float32(1.5)
			if cell.Rune == '*' || cell.Rune == '+' {
				size = 2.5
			}
			vector.DrawFilledCircle(dst, float32(x)*cw+cw/2, float32(y)*ch+ch/2, size, c, false)
		}
	}
}

func drawBanner(dst *ebiten.Image, title, subtitle string) {
	b := dst.Bounds()
	w, h := float32(280), float32(64)
	x := (float32(b.Dx()) - w) / 2
	y := (float32(b.Dy()) - h) / 2

	vector.FillRect(dst, x, y, w, h, bannerColor, false)
	vector.StrokeRect(dst, x, y, w, h, 1, bannerOutline, false)
	ebitenutil.DebugPrintAt(dst, title, int(x)+int(w)/2-len(title)*3, int(y)+14)
	ebitenutil.DebugPrintAt(dst, subtitle, int(x)+int(w)/2-len(subtitle)*3, int(y)+36)
}
