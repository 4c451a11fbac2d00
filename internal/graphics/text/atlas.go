// Package text bakes a TrueType font into a single-channel glyph atlas and
// lays out strings as textured triangles.
package text

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FloatsPerVertex is x, y, u, v.
const FloatsPerVertex = 4

// Glyph is one character's atlas placement and metrics, in pixels.
type Glyph struct {
	AtlasX, AtlasY float32
	Width, Height  float32
	BearingX       float32
	BearingY       float32
	Advance        float32
}

// Atlas is a baked glyph set.
type Atlas struct {
	Image  *image.Alpha
	Glyphs map[rune]Glyph
	// LineHeight is the face's ascent plus descent.
	LineHeight float32
}

const (
	firstRune = ' '
	lastRune  = '~'
	atlasW    = 512
	padding   = 1
)

// BakeDefault bakes the Go Mono font at px pixels.
func BakeDefault(px int) (*Atlas, error) {
	return Bake(gomono.TTF, px)
}

// Bake renders printable ASCII from ttf into an atlas. Rows are packed
// left to right and the atlas is as tall as the rows need.
func Bake(ttf []byte, px int) (*Atlas, error) {
	if px <= 0 {
		return nil, fmt.Errorf("text: font size %d", px)
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("text: new face: %w", err)
	}
	defer face.Close()

	type placed struct {
		r       rune
		x, y    int
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}
	var glyphs []placed
	x, y, rowH := 0, 0, 0
	for r := rune(firstRune); r <= lastRune; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		w, h := dr.Dx(), dr.Dy()
		if x+w+padding > atlasW {
			x = 0
			y += rowH + padding
			rowH = 0
		}
		glyphs = append(glyphs, placed{r: r, x: x, y: y, dr: dr, mask: mask, maskp: maskp, advance: advance})
		x += w + padding
		rowH = max(rowH, h)
	}

	img := image.NewAlpha(image.Rect(0, 0, atlasW, y+rowH+padding))
	atlas := &Atlas{Image: img, Glyphs: make(map[rune]Glyph, len(glyphs))}
	for _, g := range glyphs {
		w, h := g.dr.Dx(), g.dr.Dy()
		if w > 0 && h > 0 {
			draw.Draw(img, image.Rect(g.x, g.y, g.x+w, g.y+h), g.mask, g.maskp, draw.Src)
		}
		atlas.Glyphs[g.r] = Glyph{
			AtlasX:   float32(g.x),
			AtlasY:   float32(g.y),
			Width:    float32(w),
			Height:   float32(h),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  float32(math.Round(float64(g.advance) / 64)),
		}
	}
	m := face.Metrics()
	atlas.LineHeight = float32((m.Ascent + m.Descent).Ceil())
	return atlas, nil
}

func (a *Atlas) glyph(r rune) (Glyph, bool) {
	g, ok := a.Glyphs[r]
	if !ok {
		g, ok = a.Glyphs['?']
	}
	return g, ok
}

// Measure returns the pixel width and tallest glyph height of s.
func (a *Atlas) Measure(s string, scale float32) (w, h float32) {
	for _, r := range s {
		g, ok := a.glyph(r)
		if !ok {
			continue
		}
		w += g.Advance * scale
		h = max(h, g.Height*scale)
	}
	return w, h
}

// Append lays s out on the baseline at (x, y) in a top-left origin pixel
// space and appends two triangles per visible glyph to dst.
func (a *Atlas) Append(dst []float32, s string, x, y, scale float32) []float32 {
	aw := float32(a.Image.Rect.Dx())
	ah := float32(a.Image.Rect.Dy())
	for _, r := range s {
		g, ok := a.glyph(r)
		if !ok {
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.Width*scale
			y1 := y0 + g.Height*scale
			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah
			dst = append(dst,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += g.Advance * scale
	}
	return dst
}

// AppendLines lays out lines top to bottom starting at baseline y.
func (a *Atlas) AppendLines(dst []float32, lines []string, x, y, scale float32) []float32 {
	for _, l := range lines {
		dst = a.Append(dst, l, x, y, scale)
		y += a.LineHeight * scale
	}
	return dst
}
