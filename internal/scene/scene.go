// Package scene draws game snapshots into a core.Screen.
package scene

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// Glyphs used by the scene.
const (
	PipeChar   = '█'
	BirdChar   = '█'
	DeadChar   = '▒'
	GroundChar = '░'
)

// ZoneRows returns how many screen rows belong to the play zone; the rest
// is ground.
func ZoneRows(rows int, term config.TerminalConfig) int {
	return max(rows-term.GroundRows, 0)
}

// ZoneSize converts a screen size in cells to the play zone size in length
// units, ready to be passed to session.Measure.
func ZoneSize(cols, rows int, term config.TerminalConfig) game.Size {
	return game.Size{
		Width:  float64(cols) * term.ColUnits,
		Height: float64(ZoneRows(rows, term)) * term.RowUnits,
	}
}

// mapper converts zone units to cells for one frame.
type mapper struct {
	sx, sy   float64
	zoneRows int
}

func newMapper(dst *core.Screen, geo game.Geometry, term config.TerminalConfig) mapper {
	rows := ZoneRows(dst.Height(), term)
	return mapper{
		sx:       float64(dst.Width()) / geo.Zone.Width,
		sy:       float64(rows) / geo.Zone.Height,
		zoneRows: rows,
	}
}

func (m mapper) col(u float64) int    { return int(math.Floor(u * m.sx)) }
func (m mapper) colEnd(u float64) int { return int(math.Ceil(u * m.sx)) }
func (m mapper) row(u float64) int    { return int(math.Round(u * m.sy)) }

// Draw renders the snapshot. The geometry carried by the snapshot is
// stretched over the screen, so a placeholder layout still fills it.
func Draw(dst *core.Screen, st game.ViewState, term config.TerminalConfig) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	geo := st.Geometry
	m := newMapper(dst, geo, term)

	for _, p := range st.Pipes {
		drawPipe(dst, m, p, geo)
	}
	drawGround(dst, m, st.Roads, geo)
	drawBird(dst, m, st, geo)

	switch st.Status {
	case game.StatusWaiting:
		drawWaiting(dst, m, st)
	case game.StatusRunning, game.StatusDying:
		dst.TextCentered(1, fmt.Sprintf(" %d ", st.Score), core.ColorScore)
	case game.StatusOver:
		drawOver(dst, m, st)
	}
}

// drawPipe renders one couple: upper pipe hanging from the top, lower pipe
// standing on the ground, each with a cap one cell wider on both sides.
func drawPipe(dst *core.Screen, m mapper, p game.PipeCouple, geo game.Geometry) {
	x0, x1 := m.col(p.Left(geo)), m.colEnd(p.Right(geo))
	if x1 <= x0 {
		return
	}

	if upper := m.row(p.UpperHeight); upper > 0 {
		dst.FillRect(core.Span(x0, 0, x1, upper-1), PipeChar, core.ColorPipe)
		dst.FillRect(core.Span(x0-1, upper-1, x1+1, upper), PipeChar, core.ColorPipeCap)
	}

	if lower := m.row(geo.Zone.Height - p.LowerHeight); lower < m.zoneRows {
		dst.FillRect(core.Span(x0, lower+1, x1, m.zoneRows), PipeChar, core.ColorPipe)
		dst.FillRect(core.Span(x0-1, lower, x1+1, lower+1), PipeChar, core.ColorPipeCap)
	}
}

// drawGround renders the road stripe and fills the rows below it. Each
// segment covers RoadSegment units from its offset; the pair repeats every
// two segments until the right edge. Stripes restart at every segment start.
func drawGround(dst *core.Screen, m mapper, roads [2]game.Road, geo game.Geometry) {
	if m.zoneRows >= dst.Height() {
		return
	}
	dst.FillRect(core.Span(0, m.zoneRows+1, dst.Width(), dst.Height()), GroundChar, core.ColorGround)

	seg := geo.RoadSegment
	if seg <= 0 {
		return
	}
	for _, r := range roads {
		for x := r.Offset; m.col(x) < dst.Width(); x += 2 * seg {
			start, end := m.col(x), m.colEnd(x+seg)
			for c := start; c < end; c++ {
				ch := '▓'
				if ((c-start)/2)%2 == 1 {
					ch = '▒'
				}
				dst.Set(c, m.zoneRows, ch, core.ColorRoad)
			}
		}
	}
}

// beak returns the glyph drawn in front of the bird for its tilt.
func beak(st game.ViewState) rune {
	switch st.BirdTilt() {
	case game.TiltLifting:
		return '╱'
	case game.TiltDying:
		return '×'
	}
	switch {
	case st.IsOver():
		return '×'
	case st.IsFalling():
		return '╲'
	}
	return '>'
}

func drawBird(dst *core.Screen, m mapper, st game.ViewState, geo game.Geometry) {
	b := st.Bird
	zone := geo.Zone
	offset := game.ClampedBirdOffset(b, geo)

	x0 := m.col((zone.Width - b.Width) / 2)
	x1 := max(m.colEnd((zone.Width+b.Width)/2), x0+1)
	y0 := m.row((zone.Height-b.Height)/2 + offset)
	y1 := max(m.row((zone.Height+b.Height)/2+offset), y0+1)
	// Keep the sprite inside the play zone
	if y1 > m.zoneRows {
		y0, y1 = max(m.zoneRows-(y1-y0), 0), m.zoneRows
	}

	body, color := BirdChar, core.ColorBird
	if st.IsQuickFalling() || st.IsOver() {
		body, color = DeadChar, core.ColorBirdDead
	}
	dst.FillRect(core.Span(x0, y0, x1, y1), body, color)
	dst.Set(x1, y0+(y1-y0)/2, beak(st), color)
}

func drawWaiting(dst *core.Screen, m mapper, st game.ViewState) {
	y := max(m.zoneRows/4, 0)
	dst.TextCentered(y, " FLAPPY ", core.ColorText)
	dst.TextCentered(y+2, " press space to flap ", core.ColorText)
	if st.BestScore > 0 {
		dst.TextCentered(y+3, fmt.Sprintf(" best %d ", st.BestScore), core.ColorScore)
	}
}

func drawOver(dst *core.Screen, m mapper, st game.ViewState) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score %d", st.Score),
		fmt.Sprintf("best  %d", st.BestScore),
		"r restart  q quit",
	}
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	w += 4
	h := len(lines) + 2

	box := core.NewRect((dst.Width()-w)/2, (m.zoneRows-h)/2, w, h)
	dst.Box(box, core.ColorBoard)
	for i, l := range lines {
		dst.TextCentered(box.Y+1+i, l, core.ColorBoard)
	}
}
