package serpent

import (
	"fmt"

	"github.com/serpent-arcade/serpent/internal/core"
	"github.com/serpent-arcade/serpent/internal/sim"
)

// Per-player glyphs and colors for the projection.
var playerStyle = map[sim.PlayerID]struct {
	head  rune
	body  rune
	color core.Color
}{
	sim.PlayerOne: {head: 'O', body: 'o', color: core.ColorBrightGreen},
	sim.PlayerTwo: {head: 'X', body: 'x', color: core.ColorBrightRed},
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderFood(dst)
	g.renderProjectiles(dst)
	g.renderSnakes(dst)

	switch {
	case g.match.State() == sim.StateEnded:
		line1, line2 := g.endOverlayLines()
		g.renderOverlay(dst, line1, line2)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// project maps a world position onto the playfield cells below the HUD.
func (g *Game) project(dst *core.Screen, v sim.Vec2) (int, int) {
	plane := g.match.Plane()
	fieldW := dst.Width()
	fieldH := dst.Height() - hudHeight

	x := int(v.X / plane.W * float64(fieldW))
	y := int(v.Y / plane.H * float64(fieldH))
	return core.Clamp(x, 0, fieldW-1), core.Clamp(y, 0, fieldH-1) + hudHeight
}

// renderHUD draws the top status bar and a separator line.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == sim.ModeDuo {
		p1 := g.match.Snake(sim.PlayerOne)
		p2 := g.match.Snake(sim.PlayerTwo)
		now := g.match.Tick()
		hud = fmt.Sprintf(" Serpent Duel - P1%s %d : %d P2%s  Speed: %.2f",
			snakeMarkers(p1, now), p1.Score, p2.Score, snakeMarkers(p2, now), g.match.Speed())
	} else {
		s := g.match.Snake(sim.PlayerOne)
		hud = fmt.Sprintf(" Serpent - Score: %d  Length: %d  Speed: %.2f",
			s.Score, s.Length(), g.match.Speed())
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// snakeMarkers annotates a HUD label with slow and reload indicators.
func snakeMarkers(s *sim.Snake, now uint64) string {
	markers := ""
	if s.Slowed(now) {
		markers += "~"
	}
	if now < s.CooldownUntil {
		markers += "."
	}
	return markers
}

// renderFood draws the single food item.
func (g *Game) renderFood(dst *core.Screen) {
	x, y := g.project(dst, g.match.Food())
	dst.SetCell(x, y, '*', core.ColorBrightYellow)
}

// renderProjectiles draws live shots in their owner's color.
func (g *Game) renderProjectiles(dst *core.Screen) {
	for _, p := range g.match.Projectiles() {
		x, y := g.project(dst, p.Pos)
		dst.SetCell(x, y, '+', playerStyle[p.Owner].color)
	}
}

// renderSnakes draws bodies first, then heads, so heads stay visible when a
// head and a body project to the same cell.
func (g *Game) renderSnakes(dst *core.Screen) {
	for _, s := range g.match.Snakes() {
		style := playerStyle[s.ID]
		color := style.color
		if !s.Alive {
			color = core.ColorGray
		}
		for _, seg := range s.Segments() {
			x, y := g.project(dst, seg)
			dst.SetCell(x, y, style.body, color)
		}
	}
	for _, s := range g.match.Snakes() {
		style := playerStyle[s.ID]
		color := style.color
		if !s.Alive {
			color = core.ColorGray
		}
		x, y := g.project(dst, s.Head)
		dst.SetCell(x, y, style.head, color)
	}
}

// renderOverlay draws a centered boxed message over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
