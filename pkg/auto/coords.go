package auto

// =====================================================================
// 截图坐标说明
// =====================================================================
//
// 光标位置和显示器边界直接来自 robotgo / screenshot，与截图处于同一坐标空间：
//   - Windows (DPI Aware 进程): 物理像素
//   - macOS / Linux:            逻辑坐标，截图由系统按设备像素比输出
//
// 放大镜按逻辑像素计算截图尺寸（显示面尺寸 / 倍率），
// 因此在 Windows 上需要把尺寸乘以显示器的 DPI 缩放比，中心点保持不变。
// =====================================================================

const defaultDPI = 96

// ToCaptureRect 以中心为基准，把逻辑尺寸的矩形换算为截图坐标空间
func ToCaptureRect(r RectF, scale float64) RectF {
	if scale <= 0 || scale == 1 {
		return r
	}
	cx := r.X + r.Width/2
	cy := r.Y + r.Height/2
	w := r.Width * scale
	h := r.Height * scale
	return RectF{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// normalizeDPIScale 将 DPI 转换为缩放比，异常值按 1.0 处理
// 1.0 = 100%, 1.25 = 125%, 1.5 = 150%, 2.0 = 200%
func normalizeDPIScale(dpi int) float64 {
	if dpi <= 0 {
		return 1.0
	}
	scale := float64(dpi) / defaultDPI
	if scale < 0.5 || scale > 4.0 {
		return 1.0
	}
	return scale
}
