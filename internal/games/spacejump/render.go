package spacejump

import (
	"fmt"

	"github.com/vovakirdan/space-jump/internal/core"
)

// Visual characters for terminal rendering
const (
	PlatformChar = '▀'
	IceChar      = '░'
	MovingChar   = '═'
	RocketChar   = '^'
	CometChar    = '@'
	AlertChar    = '!'
	HeadChar     = 'O'
	BodyChar     = '█'
)

// view maps world coordinates onto screen cells.
type view struct {
	cam    BoxView
	sx, sy float64
}

func newView(dst *core.Screen, cam BoxView) view {
	return view{
		cam: cam,
		sx:  float64(dst.Width()) / cam.W,
		sy:  float64(dst.Height()) / cam.H,
	}
}

// rect converts a world box to a cell rectangle at least one cell in size.
func (v view) rect(b BoxView) core.Rect {
	x := int((b.X - v.cam.X) * v.sx)
	y := int((b.Y - v.cam.Y) * v.sy)
	w := max(1, int(b.W*v.sx+0.5))
	h := max(1, int(b.H*v.sy+0.5))
	return core.NewRect(x, y, w, h)
}

// RenderSnapshot draws a snapshot, optionally over a background.
func RenderSnapshot(dst *core.Screen, s Snapshot, bg Background) {
	dst.Clear()
	if bg != nil {
		bg.Draw(dst, s.BackgroundY)
	}

	v := newView(dst, s.Camera)
	for _, o := range s.Objects {
		drawObject(dst, v, o)
	}
	drawPlayer(dst, v, s.Player)
	drawHUD(dst, s)

	switch s.Phase {
	case PhaseRunning:
		if s.StartIn > 0 {
			drawCenteredMessage(dst, "GET READY", fmt.Sprintf("Starting in %.1fs", s.StartIn))
		}
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	}
}

func drawObject(dst *core.Screen, v view, o ObjectView) {
	r := v.rect(o.BoxView)
	switch o.Kind {
	case KindStatic:
		fill(dst, r, PlatformChar, core.ColorBlue)
	case KindMoving:
		fill(dst, r, MovingChar, core.ColorCyan)
	case KindIce:
		c := core.ColorGreen
		if o.Fade < 0.7 {
			c = core.ColorGray
		}
		fill(dst, r, IceChar, c)
	case KindRocket:
		fill(dst, r, RocketChar, core.ColorYellow)
	case KindComet:
		fill(dst, r, CometChar, core.ColorOrange)
	case KindAlert:
		dst.SetColored(r.X+r.W/2, 0, AlertChar, core.ColorRed)
	}
}

func fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// drawPlayer draws a head, a body and limbs whose shape follows the pose.
func drawPlayer(dst *core.Screen, v view, p PlayerView) {
	r := v.rect(p.BoxView)
	color := core.ColorWhite
	switch {
	case p.Dead:
		color = core.ColorRed
	case p.Rocket:
		color = core.ColorYellow
	}

	mid := r.X + r.W/2
	dst.SetColored(mid, r.Y, HeadChar, color)
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		dst.SetColored(mid, y, BodyChar, color)
	}

	arms := p.Pose.Arms - restAngle
	armY := r.Y + 1
	switch {
	case arms > 0.5:
		dst.SetColored(mid-1, armY, '\\', color)
		dst.SetColored(mid+1, armY, '/', color)
	case arms < -1.5:
		dst.SetColored(mid-1, armY-1, '\\', color)
		dst.SetColored(mid+1, armY-1, '/', color)
	default:
		dst.SetColored(mid-1, armY, '/', color)
		dst.SetColored(mid+1, armY, '\\', color)
	}

	legY := r.Bottom() - 1
	if legs := p.Pose.Legs - restAngle; legs < -0.3 || legs > 0.3 {
		dst.SetColored(mid-1, legY, '/', color)
		dst.SetColored(mid+1, legY, '\\', color)
	} else {
		dst.SetColored(mid, legY, '|', color)
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	scoreText := fmt.Sprintf(" Score: %d  High: %d ", s.Score, s.HighScore)
	dst.DrawText(2, 0, scoreText)

	levelText := fmt.Sprintf(" %s  Lvl: %.0f%% ", s.Level, s.Difficulty*100)
	dst.DrawText(dst.Width()-len([]rune(levelText))-2, 0, levelText)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
