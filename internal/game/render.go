package game

import (
	"fmt"
	"math"
	"time"

	"github.com/okarpov/skyglide/internal/core"
)

// Rendering is a function of simulation state plus wall-clock time (for the
// mystery skin hue and the decorative starfield drift). It never mutates
// score, mode, or collision state.

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen, now time.Time) {
	dst.Clear()

	g.drawStars(dst, now)

	switch g.mode {
	case ModeSplash:
		g.drawSplash(dst)
	case ModeMenu:
		g.drawMenu(dst, now)
	case ModeTutorial:
		g.drawField(dst)
		g.drawCraft(dst, now)
		g.drawHUD(dst)
		g.drawCountdown(dst)
	case ModePlaying:
		g.drawField(dst)
		g.drawCraft(dst, now)
		g.drawParticles(dst)
		g.drawHUD(dst)
		if g.suspended {
			dst.DrawTextCenteredColored(dst.Height()/2, " PAUSED - focus lost ", core.ColorGray)
		}
	case ModeGameOver:
		g.drawField(dst)
		g.drawParticles(dst)
		g.drawHUD(dst)
		g.drawGameOver(dst)
	}
}

// toScreenX maps a playfield x to a screen column.
func (g *Game) toScreenX(dst *core.Screen, x float64) int {
	return int(x / g.cfg.Playfield.Width * float64(dst.Width()))
}

// toScreenY maps a playfield y to a screen row.
func (g *Game) toScreenY(dst *core.Screen, y float64) int {
	return int(y / g.cfg.Playfield.Height * float64(dst.Height()))
}

func (g *Game) drawStars(dst *core.Screen, now time.Time) {
	w := g.cfg.Playfield.Width
	drift := math.Mod(float64(now.UnixMilli())*0.01, w)
	for _, s := range g.stars {
		x := math.Mod(s.X-drift+w, w)
		dst.SetColored(g.toScreenX(dst, x), g.toScreenY(dst, s.Y), '·', core.ColorGray)
	}
}

func (g *Game) drawField(dst *core.Screen) {
	// Banners first so obstacles draw over them.
	for _, b := range g.field.Banners() {
		g.drawBanner(dst, b)
	}
	for _, p := range g.field.Pairs() {
		g.drawPair(dst, p)
	}
}

func (g *Game) drawPair(dst *core.Screen, p ObstaclePair) {
	x0 := g.toScreenX(dst, p.X)
	x1 := g.toScreenX(dst, p.X+g.cfg.Obstacles.Width)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	gapTop := g.toScreenY(dst, p.TopHeight)
	gapBottom := g.toScreenY(dst, p.BottomY)

	for x := x0; x < x1; x++ {
		for y := 0; y < gapTop; y++ {
			dst.SetColored(x, y, '█', core.ColorGreen)
		}
		if gapTop > 0 {
			dst.SetColored(x, gapTop-1, '▄', core.ColorBrightGreen)
		}
		for y := gapBottom; y < dst.Height(); y++ {
			dst.SetColored(x, y, '█', core.ColorGreen)
		}
		if gapBottom < dst.Height() {
			dst.SetColored(x, gapBottom, '▀', core.ColorBrightGreen)
		}
	}
}

// bannerShades maps glow intensity to a block shade.
var bannerShades = []rune{'░', '▒', '▓'}

func (g *Game) drawBanner(dst *core.Screen, b Banner) {
	frac := 0.0
	if g.cfg.Banners.GlowMax > 0 {
		frac = core.ClampF(b.Glow/g.cfg.Banners.GlowMax, 0, 0.999)
	}
	shade := bannerShades[int(frac*float64(len(bannerShades)))]

	x0 := g.toScreenX(dst, b.X)
	x1 := g.toScreenX(dst, b.X+b.W)
	y0 := g.toScreenY(dst, b.Y)
	y1 := g.toScreenY(dst, b.Y+b.H)
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, shade, core.ColorCyan)
		}
	}
}

func (g *Game) drawCraft(dst *core.Screen, now time.Time) {
	color := g.skin.ColorAt(time.Duration(now.UnixNano()))
	cx := g.toScreenX(dst, g.craft.X)
	cy := g.toScreenY(dst, g.craft.Y)

	// Nose rune follows the smoothed rotation.
	nose := '▶'
	if g.craft.Rotation < -0.25 {
		nose = '◥'
	} else if g.craft.Rotation > 0.25 {
		nose = '◢'
	}

	dst.SetColored(cx-1, cy, '●', color)
	dst.SetColored(cx, cy, nose, color)
	if g.craft.Thrusting(g.cfg.Physics) {
		dst.SetColored(cx-2, cy, '=', core.ColorOrange)
	}
}

// particleShades maps fade-alpha to a rune, brightest first.
var particleShades = []rune{'*', '+', '·'}

func (g *Game) drawParticles(dst *core.Screen) {
	for _, p := range g.particles.Items() {
		idx := int((1 - p.Alpha()) * float64(len(particleShades)))
		if idx >= len(particleShades) {
			idx = len(particleShades) - 1
		}
		dst.SetColored(g.toScreenX(dst, p.X), g.toScreenY(dst, p.Y), particleShades[idx], p.Color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightWhite)
	best := fmt.Sprintf(" Best: %d ", g.best)
	dst.DrawTextColored(dst.Width()-len(best)-2, 0, best, core.ColorGray)
	if g.muted {
		dst.DrawTextColored(2, dst.Height()-1, " muted ", core.ColorGray)
	}
}

func (g *Game) drawSplash(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-1, "S K Y G L I D E", core.ColorBrightCyan)
	dst.DrawTextCenteredColored(mid+1, "· · ·", core.ColorGray)
}

func (g *Game) drawMenu(dst *core.Screen, now time.Time) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-4, "S K Y G L I D E", core.ColorBrightCyan)

	skinColor := g.skin.ColorAt(time.Duration(now.UnixNano()))
	dst.DrawTextCenteredColored(mid-1, fmt.Sprintf("craft: ●▶  [%s]", g.skin), skinColor)

	dst.DrawTextCentered(mid+1, fmt.Sprintf("best: %d", g.best))
	dst.DrawTextCenteredColored(mid+3, "Space: play  |  Tab: skin  |  M: mute  |  Q: quit", core.ColorGray)
	if g.muted {
		dst.DrawTextColored(2, dst.Height()-1, " muted ", core.ColorGray)
	}
}

func (g *Game) drawCountdown(dst *core.Screen) {
	remaining := g.cfg.Timing.CountdownMs - g.modeClock
	if remaining < 0 {
		remaining = 0
	}
	n := int(remaining/1000) + 1
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-2, fmt.Sprintf("%d", n), core.ColorBrightYellow)
	dst.DrawTextCenteredColored(mid, "Space to rise - don't hit anything", core.ColorGray)
	dst.DrawTextCenteredColored(mid+1, "(press Space to start now)", core.ColorGray)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	title := "GAME OVER"
	subtitle := fmt.Sprintf("Score: %d  |  Space to retry", g.score)
	if g.newBest {
		title = "NEW BEST!"
	}

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(boxY+1, title, core.ColorBrightRed)
	dst.DrawTextCentered(boxY+3, subtitle)
}
