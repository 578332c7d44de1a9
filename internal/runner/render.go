package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Theme holds the glyphs and colors used to draw a snapshot.
type Theme struct {
	Obstacle      rune
	ObstacleColor core.Color
	Coin          rune
	CoinColor     core.Color
	Car           rune
	CarColor      core.Color
	LaneMark      rune
	LaneColor     core.Color
	HUDColor      core.Color
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	return Theme{
		Obstacle:      '▓',
		ObstacleColor: core.ColorBrightRed,
		Coin:          '●',
		CoinColor:     core.ColorBrightYellow,
		Car:           '█',
		CarColor:      core.ColorBrightCyan,
		LaneMark:      '┆',
		LaneColor:     core.ColorGray,
		HUDColor:      core.ColorWhite,
	}
}

// Layout limits for the track, in cells.
const (
	maxLaneWidth = 11
	minLaneWidth = 3
	hudRows      = 1
)

// trackLayout maps view units onto screen cells.
type trackLayout struct {
	left      int // x of the left border
	laneWidth int
	top       int // first row of the play field
	rows      int // play field height
}

func newTrackLayout(w, h int) trackLayout {
	laneW := (w - (Lanes + 1)) / Lanes
	laneW = core.Clamp(laneW, minLaneWidth, maxLaneWidth)
	trackW := Lanes*laneW + Lanes + 1
	return trackLayout{
		left:      (w - trackW) / 2,
		laneWidth: laneW,
		top:       hudRows,
		rows:      core.Max(h-hudRows, 1),
	}
}

// laneX returns the first column inside the given lane.
func (l trackLayout) laneX(lane int) int {
	return l.left + 1 + lane*(l.laneWidth+1)
}

// row converts a view y coordinate to a screen row.
func (l trackLayout) row(y float64) int {
	return l.top + int(math.Floor(y/ViewHeight*float64(l.rows)))
}

// height converts a view distance to a row count, at least one row.
func (l trackLayout) height(h float64) int {
	return core.Max(int(math.Round(h/ViewHeight*float64(l.rows))), 1)
}

// Render draws the snapshot into dst. The screen is cleared first.
func Render(dst *core.Screen, s Snapshot, theme Theme) {
	dst.Clear()
	lay := newTrackLayout(dst.Width(), dst.Height())

	for i := 0; i <= Lanes; i++ {
		x := lay.left + i*(lay.laneWidth+1)
		dst.DrawVLine(x, lay.top, lay.rows, theme.LaneMark, theme.LaneColor)
	}

	for _, it := range s.Items {
		drawItem(dst, lay, it, theme)
	}
	drawCar(dst, lay, s.PlayerLane, theme)
	drawHUD(dst, s, theme)

	switch s.Phase {
	case PhaseReady:
		drawCenteredMessage(dst, "LANE RUNNER", "Press start to play", theme.HUDColor)
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d", s.Score, s.HighScore), theme.HUDColor)
	}
}

func drawItem(dst *core.Screen, lay trackLayout, it Item, theme Theme) {
	top := lay.row(it.Y)
	h := lay.height(ItemHeight)
	x := lay.laneX(it.Lane)

	switch it.Type {
	case Obstacle:
		w := core.Max(lay.laneWidth-2, 1)
		for y := top; y < top+h; y++ {
			if y < lay.top {
				continue
			}
			for dx := 0; dx < w; dx++ {
				dst.SetColor(x+1+dx, y, theme.Obstacle, theme.ObstacleColor)
			}
		}
	case Coin:
		y := top + h/2
		if y >= lay.top {
			dst.SetColor(x+lay.laneWidth/2, y, theme.Coin, theme.CoinColor)
		}
	}
}

func drawCar(dst *core.Screen, lay trackLayout, lane int, theme Theme) {
	top := lay.row(carSpan.Top)
	h := lay.height(CarHeight)
	w := core.Max(lay.laneWidth-4, 1)
	x := lay.laneX(lane) + (lay.laneWidth-w)/2
	dst.DrawRect(core.NewRect(x, top, w, h), theme.Car, theme.CarColor)
}

func drawHUD(dst *core.Screen, s Snapshot, theme Theme) {
	left := fmt.Sprintf(" Score: %d ", s.Score)
	dst.DrawText(1, 0, left, theme.HUDColor)

	best := fmt.Sprintf(" Best: %d ", s.HighScore)
	dst.DrawTextCentered(0, best, theme.HUDColor)

	right := fmt.Sprintf(" Speed: %d ", s.Speed)
	dst.DrawText(dst.Width()-len(right)-1, 0, right, theme.HUDColor)
}

// drawCenteredMessage draws a message box in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, c)
}
