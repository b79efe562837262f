package main

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	spriteSize = 10

	textScale  = 2
	textAscent = 10 // proggy baseline offset, in font pixels
)

var textColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// NewBallSprite rasterizes a white filled circle of the given diameter on a
// transparent background. Edge pixels get partial alpha.
func NewBallSprite(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float32(size) / 2

	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			d := math32.Hypot(float32(px)+0.5-r, float32(py)+0.5-r)
			cover := math32.Max(0, math32.Min(1, r-d+0.5))
			if cover == 0 {
				continue
			}
			offset := img.PixOffset(px, py)
			img.Pix[offset] = 255
			img.Pix[offset+1] = 255
			img.Pix[offset+2] = 255
			img.Pix[offset+3] = uint8(cover * 255)
		}
	}
	return img
}

// TextCanvas is an RGBA overlay that tinyfont can draw into. Every font
// pixel covers a textScale x textScale block of the image.
type TextCanvas struct {
	Image *image.RGBA
	font  tinyfont.Fonter
}

func NewTextCanvas(width, height int) *TextCanvas {
	return &TextCanvas{
		Image: image.NewRGBA(image.Rect(0, 0, width, height)),
		font:  &proggy.TinySZ8pt7b,
	}
}

func (c *TextCanvas) Size() (x, y int16) {
	b := c.Image.Bounds()
	return int16(b.Dx() / textScale), int16(b.Dy() / textScale)
}

func (c *TextCanvas) SetPixel(x, y int16, col color.RGBA) {
	b := c.Image.Bounds()
	for dy := 0; dy < textScale; dy++ {
		for dx := 0; dx < textScale; dx++ {
			ix := int(x)*textScale + dx
			iy := int(y)*textScale + dy
			if ix < 0 || ix >= b.Dx() || iy < 0 || iy >= b.Dy() {
				continue
			}
			offset := c.Image.PixOffset(ix, iy)
			c.Image.Pix[offset] = col.R
			c.Image.Pix[offset+1] = col.G
			c.Image.Pix[offset+2] = col.B
			c.Image.Pix[offset+3] = col.A
		}
	}
}

func (c *TextCanvas) Display() error { return nil }

func (c *TextCanvas) Clear() {
	clear(c.Image.Pix)
}

// WriteLine draws s with its top-left corner at (x, y) in image pixels.
func (c *TextCanvas) WriteLine(x, y int, s string) {
	tinyfont.WriteLine(c, c.font, int16(x/textScale), int16(y/textScale)+textAscent, s, textColor)
}
