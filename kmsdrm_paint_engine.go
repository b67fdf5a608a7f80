//go:build linux && cgo

package pencil

/*
#cgo CFLAGS: -O3

#include <stddef.h>
#include <string.h>
#include <stdint.h>

typedef struct {
	int x;
	int y;
	int width;
	int height;
} Rect;

typedef struct {
	Rect rect;
	char* data;
	int bytePerLine;
} Framebuffer;

typedef enum {
	ccClearRect,
	ccFillRect
} CmdCode;

typedef struct {
	CmdCode code;
	Rect rect;
	uint32_t pixel;
} Cmd;

static inline
int min(int a, int b) {
	return a < b ? a : b;
}

static inline
int max(int a, int b) {
	return a > b ? a : b;
}

static
Rect intersect(const Rect* r1, const Rect* r2) {
	Rect ret;

	ret.x = max(r1->x, r2->x);
	ret.width = min(r1->x + r1->width, r2->x + r2->width) - ret.x;
	if (ret.width < 0)
		ret.width = 0;

	ret.y = max(r1->y, r2->y);
	ret.height = min(r1->y + r1->height, r2->y + r2->height) - ret.y;
	if (ret.height < 0)
		ret.height = 0;

	return ret;
}

static
void fillRect(Framebuffer* fb, int pixSize, const Rect* rect, uint32_t pixel) {
	Rect r = intersect(&fb->rect, rect);
	int maxRow = r.y + r.height;

	for (int row = r.y; row < maxRow; ++row) {
		char* pos = fb->data + row * fb->bytePerLine + r.x * pixSize;
		if (pixel == 0) {
			memset(pos, 0, r.width * pixSize);
			continue;
		}
		for (int i = 0; i < r.width; ++i, pos += pixSize) {
			memcpy(pos, &pixel, pixSize);
		}
	}
}

static
void playCmds(Framebuffer* fb, int pixSize, uint32_t background, Cmd* cmds, int cmdCount) {
	for (int i = 0; i < cmdCount; ++i) {
		switch (cmds[i].code) {
		case ccClearRect:
			fillRect(fb, pixSize, &cmds[i].rect, background);
			break;
		case ccFillRect:
			fillRect(fb, pixSize, &cmds[i].rect, cmds[i].pixel);
			break;
		default:
			break;
		}
	}
}
*/
import "C"

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"syscall"
	"unsafe"

	drm "github.com/rmcsoft/godrm"
	"github.com/rmcsoft/godrm/mode"
)

const (
	startCmdCapacity = 256
)

type framebuffer struct {
	handle uint32
	id     uint32
	buf    []byte

	fb C.Framebuffer
}

// kmsdrmPaintEngine draws straight into one scanned-out dumb buffer, so
// cells drawn by previous frames stay on screen.
type kmsdrmPaintEngine struct {
	card    *os.File
	modeset mode.Modeset

	pixFormat  PixelFormat
	pixSize    int
	background uint32

	framebuffer *framebuffer

	isActive bool
	cmds     []C.Cmd
}

func (p *kmsdrmPaintEngine) GetWidth() int {
	return int(p.modeset.Width)
}

func (p *kmsdrmPaintEngine) GetHeight() int {
	return int(p.modeset.Height)
}

func (p *kmsdrmPaintEngine) Begin() error {
	if p.isActive {
		return errors.New("KMSDRMPaintEngine is already active")
	}

	p.isActive = true
	return nil
}

func (p *kmsdrmPaintEngine) Clear(rect image.Rectangle) error {
	if !p.isActive {
		return errors.New("KMSDRMPaintEngine is not active")
	}

	cmd := p.newCmd(rect)
	cmd.code = C.ccClearRect
	return nil
}

func (p *kmsdrmPaintEngine) FillRect(rect image.Rectangle, c Color) error {
	if !p.isActive {
		return errors.New("KMSDRMPaintEngine is not active")
	}

	rgba, err := c.RGBA()
	if err != nil {
		return err
	}
	pixel, err := p.encode(rgba)
	if err != nil {
		return err
	}

	cmd := p.newCmd(rect)
	cmd.code = C.ccFillRect
	cmd.pixel = C.uint32_t(pixel)
	return nil
}

func (p *kmsdrmPaintEngine) End() error {
	if !p.isActive {
		return errors.New("KMSDRMPaintEngine is not active")
	}

	var cmds *C.Cmd
	if len(p.cmds) > 0 {
		cmds = &p.cmds[0]
	}
	C.playCmds(&p.framebuffer.fb, C.int(p.pixSize), C.uint32_t(p.background),
		cmds, C.int(len(p.cmds)))

	p.cmds = p.cmds[:0]
	p.isActive = false
	return nil
}

// Close releases the framebuffer and the DRM card.
func (p *kmsdrmPaintEngine) Close() error {
	p.destroyFramebuffer(p.framebuffer)
	return p.card.Close()
}

// NewKMSDRMPaintEngine creates a paint engine on the first connected output
// of DRM card cardNum.
func NewKMSDRMPaintEngine(cardNum int, pixFormat PixelFormat) (PaintEngine, error) {
	card, err := drm.OpenCard(cardNum)
	if err != nil {
		return nil, err
	}

	if !drm.HasDumbBuffer(card) {
		card.Close()
		return nil, fmt.Errorf("drm device %v does not support dumb buffers", cardNum)
	}

	paintEngine := kmsdrmPaintEngine{
		card:      card,
		pixFormat: pixFormat,
		pixSize:   GetPixelSize(pixFormat),
		isActive:  false,
		cmds:      make([]C.Cmd, 0, startCmdCapacity),
	}

	paintEngine.background, err = paintEngine.encode(Background)
	if err != nil {
		card.Close()
		return nil, err
	}

	simpleMSet, err := mode.NewSimpleModeset(card)
	if err != nil {
		card.Close()
		return nil, err
	}

	if len(simpleMSet.Modesets) == 0 {
		card.Close()
		return nil, errors.New("Modesets is empty")
	}

	paintEngine.modeset = simpleMSet.Modesets[0]
	paintEngine.framebuffer, err = paintEngine.createFramebuffer()
	if err != nil {
		card.Close()
		return nil, err
	}

	err = mode.SetCrtc(card, paintEngine.modeset.Crtc, paintEngine.framebuffer.id,
		0, 0, &paintEngine.modeset.Conn, 1, &paintEngine.modeset.Mode)
	if err != nil {
		paintEngine.Close()
		return nil, err
	}

	if err := clearSurface(&paintEngine); err != nil {
		paintEngine.Close()
		return nil, err
	}
	return &paintEngine, nil
}

// encode packs a color into the framebuffer's native pixel value.
func (p *kmsdrmPaintEngine) encode(rgba color.RGBA) (uint32, error) {
	pix, err := EncodePixel(p.pixFormat, rgba)
	if err != nil {
		return 0, err
	}

	buf := make([]byte, 4)
	copy(buf, pix)
	return binary.LittleEndian.Uint32(buf), nil
}

func (p *kmsdrmPaintEngine) newCmd(rect image.Rectangle) *C.Cmd {
	p.cmds = append(p.cmds, C.Cmd{})
	cmd := &p.cmds[len(p.cmds)-1]
	cmd.rect.x = C.int(rect.Min.X)
	cmd.rect.y = C.int(rect.Min.Y)
	cmd.rect.width = C.int(rect.Dx())
	cmd.rect.height = C.int(rect.Dy())
	return cmd
}

func (p *kmsdrmPaintEngine) createFramebuffer() (*framebuffer, error) {

	fb := &framebuffer{}
	var err error

	defer func() {
		if err != nil {
			p.destroyFramebuffer(fb)
		}
	}()

	width := p.modeset.Width
	height := p.modeset.Height
	bpp := GetPixelSize(p.pixFormat) * 8
	depth := GetPixelDepth(p.pixFormat)

	fbInfo, err := mode.CreateFB(p.card, uint16(width), uint16(height), uint32(bpp))
	if err != nil {
		return nil, err
	}

	fb.handle = fbInfo.Handle
	fb.id, err = mode.AddFB(p.card, uint16(width), uint16(height),
		uint8(depth), uint8(bpp), fbInfo.Pitch, fb.handle)
	if err != nil {
		return nil, err
	}

	offset, err := mode.MapDumb(p.card, fb.handle)
	if err != nil {
		return nil, err
	}

	fb.buf, err = syscall.Mmap(int(p.card.Fd()), int64(offset), int(fbInfo.Size),
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		return nil, err
	}

	fb.fb.rect.x = C.int(0)
	fb.fb.rect.y = C.int(0)
	fb.fb.rect.width = C.int(width)
	fb.fb.rect.height = C.int(height)
	fb.fb.data = (*C.char)(unsafe.Pointer(&fb.buf[0]))
	fb.fb.bytePerLine = C.int(fbInfo.Pitch)

	return fb, err
}

func (p *kmsdrmPaintEngine) destroyFramebuffer(fb *framebuffer) {
	if fb != nil && p.card != nil {
		if fb.id != 0 {
			mode.RmFB(p.card, fb.id)
			fb.id = 0
		}

		if fb.handle != 0 {
			mode.DestroyDumb(p.card, fb.handle)
			fb.handle = 0
		}

		if fb.buf != nil {
			syscall.Munmap(fb.buf)
			fb.buf = nil
		}
	}
}
