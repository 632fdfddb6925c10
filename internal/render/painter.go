//go:build ebiten

package render

import (
	"mazegen/internal/maze"

	"github.com/hajimehoshi/ebiten/v2"
)

// MazePainter uploads rasterized checkpoints into a single ebiten image.
type MazePainter struct {
	raster *Rasterizer
	img    *ebiten.Image
}

// NewMazePainter allocates a painter for frames of the given layout.
func NewMazePainter(layout Layout, palette Palette) *MazePainter {
	r := NewRasterizer(layout, palette)
	size := r.Layout().Size()
	return &MazePainter{raster: r, img: ebiten.NewImage(size.W, size.H)}
}

// Blit rasterizes cp and draws it onto dst at the given scale.
func (mp *MazePainter) Blit(dst *ebiten.Image, cp maze.Checkpoint, scale int) {
	if scale <= 0 {
		scale = 1
	}
	mp.img.WritePixels(mp.raster.Render(cp))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(mp.img, op)
}

// Size returns the dimensions of the underlying image.
func (mp *MazePainter) Size() (int, int) {
	s := mp.raster.Layout().Size()
	return s.W, s.H
}
