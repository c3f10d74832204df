package magnifier

import (
	"errors"
	"fmt"
	"image"

	"github.com/zoeyai/zoeymag/pkg/auto"
)

type fakeHost struct {
	cursor     auto.Point
	displays   []auto.Display
	pixelRatio float64
	captureErr error

	captures []auto.RectF
	scales   []image.Point
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		displays: []auto.Display{
			{Index: 0, Bounds: auto.Region{X: 0, Y: 0, Width: 1920, Height: 1080}},
			{Index: 1, Bounds: auto.Region{X: 1920, Y: 0, Width: 1280, Height: 1024}},
		},
		pixelRatio: 1,
	}
}

func (h *fakeHost) CursorPosition() auto.Point { return h.cursor }

func (h *fakeHost) ScreenAt(p auto.Point) (auto.Display, bool) {
	for _, d := range h.displays {
		if d.Bounds.Contains(p) {
			return d, true
		}
	}
	return auto.Display{}, false
}

func (h *fakeHost) CaptureRegion(d auto.Display, r auto.RectF) (image.Image, error) {
	h.captures = append(h.captures, r)
	if h.captureErr != nil {
		return nil, h.captureErr
	}
	region := r.Round()
	return image.NewRGBA(image.Rect(0, 0, region.Width, region.Height)), nil
}

func (h *fakeHost) ScaleImage(img image.Image, width, height int) image.Image {
	h.scales = append(h.scales, image.Pt(width, height))
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (h *fakeHost) DevicePixelRatio(auto.Display) float64 { return h.pixelRatio }

var errCapture = errors.New("capture failed")

type fakeSurface struct {
	width, height int
	img           image.Image
	label         string
	setImageCount int
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }

func (s *fakeSurface) SetImage(img image.Image) {
	s.img = img
	s.setImageCount++
}

func (s *fakeSurface) SetLabel(text string) { s.label = text }

type fakeChannel struct {
	enabled bool
	lines   []string
}

func (c *fakeChannel) IsDebugEnabled() bool { return c.enabled }

func (c *fakeChannel) Debug(format string, args ...interface{}) {
	if c.enabled {
		c.lines = append(c.lines, fmt.Sprintf(format, args...))
	}
}

type fakePainter struct {
	width, height float64
	rects         [][5]float64
}

func (p *fakePainter) Size() (float64, float64) { return p.width, p.height }

func (p *fakePainter) StrokeRect(x, y, width, height, pen float64) {
	p.rects = append(p.rects, [5]float64{x, y, width, height, pen})
}

func (w *Window) lastPosition() (auto.Point, bool) {
	return w.lastPos, w.hasLastPos
}
