// Package render provides the 2D raster target the arm is drawn into.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Framebuffer is an RGBA pixel buffer with a background color. With
// half-block terminal cells the buffer is created at twice the terminal
// height.
type Framebuffer struct {
	Width  int
	Height int
	BG     color.RGBA

	img *image.RGBA
}

// NewFramebuffer creates a framebuffer of the given pixel size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Resize replaces the pixel buffer with one of the new size.
func (fb *Framebuffer) Resize(width, height int) {
	fb.Width = width
	fb.Height = height
	fb.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Clear fills the buffer with the background color.
func (fb *Framebuffer) Clear() {
	draw.Draw(fb.img, fb.img.Bounds(), image.NewUniform(fb.BG), image.Point{}, draw.Src)
}

// SetPixel writes one pixel, ignoring out-of-bounds coordinates.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.img.SetRGBA(x, y, c)
}

// DrawLine draws a line between two pixels (Bresenham).
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws a circle outline (midpoint algorithm).
func (fb *Framebuffer) DrawCircle(cx, cy, r int, c color.RGBA) {
	if r <= 0 {
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		fb.SetPixel(cx+x, cy+y, c)
		fb.SetPixel(cx+y, cy+x, c)
		fb.SetPixel(cx-y, cy+x, c)
		fb.SetPixel(cx-x, cy+y, c)
		fb.SetPixel(cx-x, cy-y, c)
		fb.SetPixel(cx-y, cy-x, c)
		fb.SetPixel(cx+y, cy-x, c)
		fb.SetPixel(cx+x, cy-y, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// ToImage returns the buffer as an image for display.
func (fb *Framebuffer) ToImage() *image.RGBA {
	return fb.img
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
