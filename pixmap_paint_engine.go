package pencil

import (
	"errors"
	"image"
)

type pixmapPaintEngine struct {
	pixmap   *Pixmap
	isActive bool
}

// NewPixmapPaintEngine creates a paint engine that renders into pixmap.
func NewPixmapPaintEngine(pixmap *Pixmap) PaintEngine {
	return &pixmapPaintEngine{pixmap: pixmap}
}

func (p *pixmapPaintEngine) GetWidth() int {
	return p.pixmap.Width
}

func (p *pixmapPaintEngine) GetHeight() int {
	return p.pixmap.Height
}

func (p *pixmapPaintEngine) Begin() error {
	if p.isActive {
		return errors.New("PixmapPaintEngine is already active")
	}

	p.isActive = true
	return nil
}

func (p *pixmapPaintEngine) Clear(rect image.Rectangle) error {
	if !p.isActive {
		return errors.New("PixmapPaintEngine is not active")
	}

	pix, err := EncodePixel(p.pixmap.PixFormat, Background)
	if err != nil {
		return err
	}
	p.pixmap.Fill(rect, pix)
	return nil
}

func (p *pixmapPaintEngine) FillRect(rect image.Rectangle, color Color) error {
	if !p.isActive {
		return errors.New("PixmapPaintEngine is not active")
	}

	rgba, err := color.RGBA()
	if err != nil {
		return err
	}
	pix, err := EncodePixel(p.pixmap.PixFormat, rgba)
	if err != nil {
		return err
	}
	p.pixmap.Fill(rect, pix)
	return nil
}

func (p *pixmapPaintEngine) End() error {
	if !p.isActive {
		return errors.New("PixmapPaintEngine is not active")
	}

	p.isActive = false
	return nil
}
