package magnifier

import "strconv"

// Steps 将滚动角度（1/8 度）换算为滚轮格数，每格 15 度
func Steps(angleDelta int) int {
	return angleDelta / 8 / 15
}

// Wrap 将倍率回绕到 [MinZoom, MaxZoom] 环上
func Wrap(zoom int) int {
	span := MaxZoom - MinZoom + 1
	return ((zoom-MinZoom)%span+span)%span + MinZoom
}

// Wheel 滚轮回调：按格数调整倍率并更新文字
func (w *Window) Wheel(angleDelta int) {
	if !w.opts.WheelEnabled {
		return
	}

	steps := Steps(angleDelta)
	if steps == 0 {
		return
	}

	w.zoom = Wrap(w.zoom + steps)
	w.surface.SetLabel(strconv.Itoa(w.zoom))
	w.log.Wheel.Debug("angle %d, steps %d, zoom %d", angleDelta, steps, w.zoom)
}
