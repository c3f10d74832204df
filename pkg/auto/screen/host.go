package screen

import (
	"image"

	"github.com/zoeyai/zoeymag/pkg/auto"
	"github.com/zoeyai/zoeymag/pkg/auto/input"
)

// Host 基于 robotgo 和 screenshot 的屏幕能力实现
type Host struct {
	// PixelRatio 系统无法查询显示器缩放比时使用，为空时按 1.0 处理
	PixelRatio func(d auto.Display) float64

	systemScale func(d auto.Display) (float64, bool)
}

// NewHost 创建屏幕能力实现
func NewHost(pixelRatio func(d auto.Display) float64) *Host {
	return &Host{PixelRatio: pixelRatio, systemScale: auto.DisplayScale}
}

// CursorPosition 当前鼠标全局坐标
func (h *Host) CursorPosition() auto.Point {
	x, y := input.GetMousePosition()
	return auto.Point{X: x, Y: y}
}

// ScreenAt 查找包含该点的显示器
func (h *Host) ScreenAt(p auto.Point) (auto.Display, bool) {
	return ScreenAt(p)
}

// CaptureRegion 截取显示器本地区域
func (h *Host) CaptureRegion(d auto.Display, r auto.RectF) (image.Image, error) {
	return CaptureRegion(d, r)
}

// ScaleImage 缩放图像
func (h *Host) ScaleImage(img image.Image, width, height int) image.Image {
	return Scale(img, width, height)
}

// DevicePixelRatio 光标所在显示器的设备像素比
func (h *Host) DevicePixelRatio(d auto.Display) float64 {
	if h.systemScale != nil {
		if r, ok := h.systemScale(d); ok && r > 0 {
			return r
		}
	}
	if h.PixelRatio == nil {
		return 1.0
	}
	if r := h.PixelRatio(d); r > 0 {
		return r
	}
	return 1.0
}
