// Package texture builds the RGBA layers of the block texture array,
// either procedurally or from a vertical strip image.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Style describes a procedural layer.
type Style struct {
	Base    color.NRGBA
	Speckle uint8 // brightness jitter per texel
}

// BlockStyles are indexed by texture layer: stone, dirt, grass top,
// grass side, sand, planks, glass, water, leaves.
var BlockStyles = []Style{
	{Base: color.NRGBA{125, 125, 125, 255}, Speckle: 24},
	{Base: color.NRGBA{134, 96, 67, 255}, Speckle: 20},
	{Base: color.NRGBA{95, 159, 53, 255}, Speckle: 18},
	{Base: color.NRGBA{110, 120, 60, 255}, Speckle: 16},
	{Base: color.NRGBA{219, 207, 163, 255}, Speckle: 10},
	{Base: color.NRGBA{162, 130, 78, 255}, Speckle: 12},
	{Base: color.NRGBA{200, 230, 240, 90}, Speckle: 6},
	{Base: color.NRGBA{45, 90, 200, 160}, Speckle: 8},
	{Base: color.NRGBA{60, 120, 40, 200}, Speckle: 30},
}

// ErrStrip is returned when a strip image cannot be cut into square layers.
var ErrStrip = errors.New("texture: strip is not a column of square tiles")

const patternSize = 4

func jitter(layer, x, y int) int {
	h := uint32(layer*73856093) ^ uint32(x*19349663) ^ uint32(y*83492791)
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return int(h%256) - 128
}

func clamp8(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

// Procedural returns one size x size layer per style. Each layer is a
// small speckle pattern scaled up with nearest-neighbor sampling.
func Procedural(styles []Style, size int) ([]*image.NRGBA, error) {
	if size < patternSize {
		return nil, fmt.Errorf("texture: layer size %d below %d", size, patternSize)
	}
	out := make([]*image.NRGBA, len(styles))
	for i, s := range styles {
		small := image.NewNRGBA(image.Rect(0, 0, patternSize, patternSize))
		for y := range patternSize {
			for x := range patternSize {
				d := jitter(i, x, y) * int(s.Speckle) / 128
				small.SetNRGBA(x, y, color.NRGBA{
					R: clamp8(int(s.Base.R) + d),
					G: clamp8(int(s.Base.G) + d),
					B: clamp8(int(s.Base.B) + d),
					A: s.Base.A,
				})
			}
		}
		layer := image.NewNRGBA(image.Rect(0, 0, size, size))
		xdraw.NearestNeighbor.Scale(layer, layer.Bounds(), small, small.Bounds(), xdraw.Src, nil)
		out[i] = layer
	}
	return out, nil
}

// SplitStrip cuts a column of square tiles into layers of size x size,
// rescaling when the tile width differs from size.
func SplitStrip(img image.Image, size int) ([]*image.NRGBA, error) {
	b := img.Bounds()
	tile := b.Dx()
	if tile == 0 || b.Dy()%tile != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrStrip, b.Dx(), b.Dy())
	}
	n := b.Dy() / tile
	out := make([]*image.NRGBA, n)
	for i := range n {
		src := image.Rect(b.Min.X, b.Min.Y+i*tile, b.Max.X, b.Min.Y+(i+1)*tile)
		layer := image.NewNRGBA(image.Rect(0, 0, size, size))
		if tile == size {
			xdraw.Copy(layer, image.Point{}, img, src, xdraw.Src, nil)
		} else {
			xdraw.ApproxBiLinear.Scale(layer, layer.Bounds(), img, src, xdraw.Src, nil)
		}
		out[i] = layer
	}
	return out, nil
}

// LoadStrip decodes a PNG strip from path and splits it.
func LoadStrip(path string, size int) ([]*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return SplitStrip(img, size)
}
