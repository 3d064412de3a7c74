// Package terminal plays a round in a character-cell terminal.
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const fill = '█'

type disk struct {
	x, y, r float64
	style   tcell.Style
}

// Surface rasterises disks into the cells below the HUD row. Each cell is
// lit when its centre, mapped onto the canvas, lies inside a disk.
type Surface struct {
	screen        tcell.Screen
	width, height float64
	top           int
	disks         []disk
}

func NewSurface(screen tcell.Screen, width, height int) *Surface {
	return &Surface{
		screen: screen,
		width:  float64(width),
		height: float64(height),
		top:    1,
	}
}

func (s *Surface) Clear() {
	s.disks = s.disks[:0]
}

func (s *Surface) DrawDisk(x, y, radius float64, c color.Color) {
	s.disks = append(s.disks, disk{
		x:     x,
		y:     y,
		r:     radius,
		style: tcell.StyleDefault.Foreground(tcell.FromImageColor(c)),
	})
}

// Grid is the number of columns and rows available to the canvas.
func (s *Surface) Grid() (cols, rows int) {
	w, h := s.screen.Size()
	return w, max(h-s.top, 0)
}

// CellToCanvas maps the centre of a grid cell onto canvas coordinates.
func (s *Surface) CellToCanvas(col, row int) (x, y float64) {
	cols, rows := s.Grid()
	x = (float64(col) + 0.5) * s.width / float64(cols)
	y = (float64(row) + 0.5) * s.height / float64(rows)
	return x, y
}

// Paint writes the recorded disks to the screen. Later disks cover
// earlier ones.
func (s *Surface) Paint() {
	cols, rows := s.Grid()
	if cols == 0 || rows == 0 {
		return
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := s.CellToCanvas(col, row)
			for i := len(s.disks) - 1; i >= 0; i-- {
				d := s.disks[i]
				dx, dy := x-d.x, y-d.y
				if dx*dx+dy*dy <= d.r*d.r {
					s.screen.SetContent(col, row+s.top, fill, nil, d.style)
					break
				}
			}
		}
	}
}
