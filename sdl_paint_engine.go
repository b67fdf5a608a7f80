//go:build cgo

package pencil

import (
	"fmt"
	"image"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

var mutexSdlInit = sync.Mutex{}
var sdlInited = false

func initSdl() error {
	mutexSdlInit.Lock()
	defer mutexSdlInit.Unlock()

	if !sdlInited {
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			return err
		}
		sdlInited = true
	}
	return nil
}

// sdlPaintEngine draws into a target texture that survives Present, so
// cells painted by earlier frames stay visible under later ones.
type sdlPaintEngine struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	canvas   *sdl.Texture
	width    int
	height   int
}

// NewSDLPaintEngine creates a paint engine backed by an SDL window.
func NewSDLPaintEngine(title string, width int, height int) (PaintEngine, error) {
	if err := initSdl(); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	window, renderer, err := sdl.CreateWindowAndRenderer(int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}
	window.SetTitle(title)

	canvas, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_TARGET,
		int32(width), int32(height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}

	p := &sdlPaintEngine{
		window:   window,
		renderer: renderer,
		canvas:   canvas,
		width:    width,
		height:   height,
	}
	if err := clearSurface(p); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (p *sdlPaintEngine) GetWidth() int {
	return p.width
}

func (p *sdlPaintEngine) GetHeight() int {
	return p.height
}

func (p *sdlPaintEngine) Begin() error {
	return p.renderer.SetRenderTarget(p.canvas)
}

func (p *sdlPaintEngine) Clear(rect image.Rectangle) error {
	err := p.renderer.SetDrawColor(Background.R, Background.G, Background.B, Background.A)
	if err != nil {
		return err
	}
	sdlRect := toSDLRect(rect)
	return p.renderer.FillRect(&sdlRect)
}

func (p *sdlPaintEngine) FillRect(rect image.Rectangle, color Color) error {
	rgba, err := color.RGBA()
	if err != nil {
		return err
	}

	err = p.renderer.SetDrawColor(rgba.R, rgba.G, rgba.B, rgba.A)
	if err != nil {
		return err
	}
	sdlRect := toSDLRect(rect)
	return p.renderer.FillRect(&sdlRect)
}

func (p *sdlPaintEngine) End() error {
	if err := p.renderer.SetRenderTarget(nil); err != nil {
		return err
	}
	if err := p.renderer.Copy(p.canvas, nil, nil); err != nil {
		return err
	}
	p.renderer.Present()
	return nil
}

// Close releases the window and its renderer.
func (p *sdlPaintEngine) Close() error {
	p.canvas.Destroy()
	p.renderer.Destroy()
	p.window.Destroy()
	return nil
}

func toSDLRect(rect image.Rectangle) sdl.Rect {
	return sdl.Rect{
		X: int32(rect.Min.X),
		Y: int32(rect.Min.Y),
		W: int32(rect.Dx()),
		H: int32(rect.Dy()),
	}
}
