package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/gdamore/tcell/v2"
)

const BallChar = '\u2B24' // ⬤

// Canvas is a fixed-size drawing surface in logical arena units
type Canvas interface {
	Size() (width, height int)
	Clear(c color.Color)
	FillRect(x, y, w, h int, c color.Color)
	FillCircle(cx, cy, radius int, c color.Color)
	DrawText(x, y int, text string, c color.Color)
	DrawTextCentered(cx, y int, text string, c color.Color)
	Show()
}

// TerminalCanvas scales a logical arena onto the terminal cell grid
type TerminalCanvas struct {
	screen        *Screen
	width, height int
	background    color.Color
}

func NewTerminalCanvas(screen *Screen, width, height int) *TerminalCanvas {
	return &TerminalCanvas{
		screen:     screen,
		width:      width,
		height:     height,
		background: color.Black,
	}
}

func (c *TerminalCanvas) Size() (int, int) {
	return c.width, c.height
}

// scale returns terminal cells per logical unit on each axis
func (c *TerminalCanvas) scale() (float64, float64) {
	cols, rows := c.screen.Size()
	return float64(cols) / float64(c.width), float64(rows) / float64(c.height)
}

// cellSpan maps the logical interval [from, to) onto cell indexes,
// always covering at least one cell
func cellSpan(from, to int, scale float64) (int, int) {
	start := int(math.Floor(float64(from) * scale))
	end := int(math.Ceil(float64(to) * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

func (c *TerminalCanvas) Clear(col color.Color) {
	c.background = col
	c.screen.Clear()
	cols, rows := c.screen.Size()
	c.screen.FillRect(0, 0, cols, rows, c.bgStyle(), ' ')
}

func (c *TerminalCanvas) bgStyle() tcell.Style {
	return tcell.StyleDefault.Background(tcell.FromImageColor(c.background))
}

func (c *TerminalCanvas) FillRect(x, y, w, h int, col color.Color) {
	sx, sy := c.scale()
	x0, x1 := cellSpan(x, x+w, sx)
	y0, y1 := cellSpan(y, y+h, sy)
	style := tcell.StyleDefault.Background(tcell.FromImageColor(col))
	c.screen.FillRect(x0, y0, x1-x0, y1-y0, style, ' ')
}

// FillCircle fills every cell whose center lies inside the circle. A
// circle smaller than a cell is drawn as a single glyph.
func (c *TerminalCanvas) FillCircle(cx, cy, radius int, fill color.Color) {
	sx, sy := c.scale()
	x0, x1 := cellSpan(cx-radius, cx+radius, sx)
	y0, y1 := cellSpan(cy-radius, cy+radius, sy)
	style := tcell.StyleDefault.Background(tcell.FromImageColor(fill))

	filled := 0
	r2 := float64(radius * radius)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			dx := (float64(col)+0.5)/sx - float64(cx)
			dy := (float64(row)+0.5)/sy - float64(cy)
			if dx*dx+dy*dy <= r2 {
				c.screen.SetCell(col, row, style, ' ')
				filled++
			}
		}
	}

	if filled == 0 {
		glyph := c.bgStyle().Foreground(tcell.FromImageColor(fill))
		c.screen.SetCell(int(float64(cx)*sx), int(float64(cy)*sy), glyph, BallChar)
	}
}

func (c *TerminalCanvas) DrawText(x, y int, text string, col color.Color) {
	sx, sy := c.scale()
	cols, _ := c.screen.Size()
	cx := int(float64(x) * sx)
	if n := len([]rune(text)); cx+n > cols {
		cx = cols - n
	}
	if cx < 0 {
		cx = 0
	}
	c.screen.DrawText(cx, int(float64(y)*sy), text, c.bgStyle().Foreground(tcell.FromImageColor(col)).Bold(true))
}

func (c *TerminalCanvas) DrawTextCentered(cx, y int, text string, col color.Color) {
	sx, sy := c.scale()
	start := int(float64(cx)*sx) - len([]rune(text))/2
	if start < 0 {
		start = 0
	}
	c.screen.DrawText(start, int(float64(y)*sy), text, c.bgStyle().Foreground(tcell.FromImageColor(col)).Bold(true))
}

func (c *TerminalCanvas) Show() {
	c.screen.Show()
}

// ImageCanvas draws into an in-memory RGBA image
type ImageCanvas struct {
	dc     *gg.Context
	Frames int // Number of Show calls
}

func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{dc: gg.NewContext(width, height)}
}

func (c *ImageCanvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

func (c *ImageCanvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

func (c *ImageCanvas) FillRect(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

func (c *ImageCanvas) FillCircle(cx, cy, radius int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(float64(cx), float64(cy), float64(radius))
	c.dc.Fill()
}

func (c *ImageCanvas) DrawText(x, y int, text string, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(text, float64(x), float64(y), 0, 1)
}

func (c *ImageCanvas) DrawTextCentered(cx, y int, text string, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(text, float64(cx), float64(y), 0.5, 1)
}

func (c *ImageCanvas) Show() {
	c.Frames++
}

// Image returns the current frame
func (c *ImageCanvas) Image() image.Image {
	return c.dc.Image()
}
