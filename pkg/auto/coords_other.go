//go:build !windows

package auto

// DisplayScale 非 Windows 平台无法从系统查询，由调用方自行确定
func DisplayScale(d Display) (float64, bool) {
	return 1.0, false
}

// CaptureScale 非 Windows 平台截图坐标即逻辑坐标
func CaptureScale(d Display) float64 {
	return 1.0
}
