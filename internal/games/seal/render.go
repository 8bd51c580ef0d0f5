package seal

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bouncing-seal/internal/core"
)

// Visual characters for rendering
const (
	TopIcebergChar    = '▒'
	BottomIcebergChar = '▓'
	SealIdleChar      = '●'
	SealBounceChar    = '▲'
	SealHitChar       = '✕'
)

// ScreenRenderer rasterises frames onto a terminal cell buffer.
type ScreenRenderer struct {
	Screen *core.Screen
}

// Draw clears the screen and draws f scaled to the screen size.
func (r ScreenRenderer) Draw(f Frame) {
	drawFrame(r.Screen, f)
}

// Render draws the current phase to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.phase == PhaseIdle || g.session == nil {
		g.drawTitle(dst)
		return
	}
	drawFrame(dst, g.session.Frame())
	if g.phase == PhaseOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Space to play again", g.session.Score()))
	}
}

// drawTitle renders the start prompt.
func (g *Game) drawTitle(dst *core.Screen) {
	dst.Clear()
	v := newViewport(dst, core.Size{W: g.cfg.Screen.Width, H: g.cfg.Screen.Height})

	x, y := v.point(core.Vec{X: g.cfg.Screen.Width / 4, Y: g.cfg.Screen.Height / 2})
	dst.DrawTextColor(x, y, "BOUNCING SEAL", core.ColorBrightWhite)

	_, y2 := v.point(core.Vec{Y: g.cfg.Screen.Height/2 + 100})
	if y2 <= y {
		y2 = y + 2
	}
	dst.DrawTextColor(x, y2, "PRESS SPACE OR UP", core.ColorWhite)
	dst.DrawTextColor(x, y2+1, "Esc to quit", core.ColorGray)
}

// drawFrame renders icebergs, the seal and the score.
func drawFrame(dst *core.Screen, f Frame) {
	dst.Clear()
	v := newViewport(dst, f.Screen)

	for _, o := range f.Tops {
		dst.DrawRect(v.rect(o, f.ObstacleSize), TopIcebergChar, core.ColorCyan)
	}
	for _, o := range f.Bottoms {
		dst.DrawRect(v.rect(o, f.ObstacleSize), BottomIcebergChar, core.ColorBrightCyan)
	}

	seal, color := SealIdleChar, core.ColorBrightWhite
	switch f.Sprite {
	case SpriteBounce:
		seal, color = SealBounceChar, core.ColorYellow
	case SpriteHit:
		seal, color = SealHitChar, core.ColorRed
	}
	dst.DrawRect(v.rect(f.Player, f.PlayerSize), seal, color)

	// HUD sits 50px in from the left and bottom edges.
	x, y := v.point(core.Vec{X: 50, Y: f.Screen.H - 50})
	y = core.Clamp(y, 0, dst.Height()-1)
	dst.DrawTextColor(x, y, fmt.Sprintf("Your score is: %d", f.Score), core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorRed)
	dst.DrawTextColor(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorWhite)
}

// viewport maps game pixels onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, world core.Size) viewport {
	return viewport{
		sx: float64(dst.Width()) / world.W,
		sy: float64(dst.Height()) / world.H,
	}
}

func (v viewport) point(p core.Vec) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y * v.sy))
}

// rect converts a sprite to cells. Every sprite covers at least one cell.
func (v viewport) rect(p core.Vec, s core.Size) core.Rect {
	x0, y0 := v.point(p)
	x1 := int(math.Ceil((p.X + s.W) * v.sx))
	y1 := int(math.Ceil((p.Y + s.H) * v.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}
