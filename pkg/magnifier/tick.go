package magnifier

import (
	"math"

	"github.com/zoeyai/zoeymag/pkg/auto"
)

// Tick 定时器回调：采样鼠标位置，移动时重新截图
func (w *Window) Tick() {
	global := w.host.CursorPosition()
	d, ok := w.host.ScreenAt(global)
	if !ok {
		return
	}

	local := d.ToLocal(global)
	moved := !w.hasLastPos || w.lastPos != local
	w.updateTimerInterval(local)
	if !moved {
		return
	}
	w.recapture(d, local)
}

// updateTimerInterval 根据鼠标是否静止切换活动/空闲间隔
func (w *Window) updateTimerInterval(pos auto.Point) {
	active, idle := w.opts.ActiveInterval, w.opts.IdleInterval

	if w.hasLastPos && w.lastPos == pos {
		if w.timer.Interval() != idle {
			w.noMoveCount++
			if float64(w.noMoveCount) > float64(idle)/float64(active) {
				w.timer.SetInterval(idle)
				w.log.Timer.Debug("%s %v, still for %d ticks", w.State(), idle, w.noMoveCount)
			}
		}
	} else {
		if w.timer.Interval() != active {
			w.timer.SetInterval(active)
			w.log.Timer.Debug("%s %v", w.State(), active)
		}
		if w.noMoveCount > 0 {
			w.log.Timer.Debug("moved after %d still ticks", w.noMoveCount)
		}
		w.noMoveCount = 0
	}

	w.lastPos = pos
	w.hasLastPos = true
}

// CaptureSize 截图区域尺寸 = 显示面尺寸 / 倍率
func (w *Window) CaptureSize() auto.SizeF {
	width, height := w.surface.Size()
	return auto.SizeF{
		Width:  float64(width) / float64(w.zoom),
		Height: float64(height) / float64(w.zoom),
	}
}

// OutputSize 放大后的像素尺寸 = 显示面尺寸 × 设备像素比
func (w *Window) OutputSize(pixelRatio float64) (width, height int) {
	sw, sh := w.surface.Size()
	size := auto.SizeF{Width: float64(sw), Height: float64(sh)}.Scale(pixelRatio)
	return int(math.Round(size.Width)), int(math.Round(size.Height))
}

func (w *Window) recapture(d auto.Display, local auto.Point) {
	rect := auto.CenteredAt(local, w.CaptureSize())
	img, err := w.host.CaptureRegion(d, rect)
	if err != nil {
		w.log.General.Debug("截图失败: %v", err)
		return
	}

	width, height := w.OutputSize(w.host.DevicePixelRatio(d))
	scaled := w.host.ScaleImage(img, width, height)
	if scaled == nil {
		return
	}
	w.surface.SetImage(scaled)

	if w.log.General.IsDebugEnabled() {
		sw, sh := w.surface.Size()
		w.log.General.Debug("grab: %.1fx%.1f, captured: %v, scaled: %v, surface: %dx%d",
			rect.Width, rect.Height, img.Bounds().Size(), scaled.Bounds().Size(), sw, sh)
	}
}
