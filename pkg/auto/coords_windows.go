//go:build windows

package auto

import (
	"syscall"
	"unsafe"
)

var (
	user32DPI = syscall.NewLazyDLL("user32.dll")
	gdi32DPI  = syscall.NewLazyDLL("gdi32.dll")
	shcoreDPI = syscall.NewLazyDLL("shcore.dll")

	procMonitorFromRect  = user32DPI.NewProc("MonitorFromRect")
	procGetDpiForMonitor = shcoreDPI.NewProc("GetDpiForMonitor")
	procGetDCDPI         = user32DPI.NewProc("GetDC")
	procReleaseDCDPI     = user32DPI.NewProc("ReleaseDC")
	procGetDeviceCapsDPI = gdi32DPI.NewProc("GetDeviceCaps")
)

const (
	monitorDefaultToNearest = 2
	mdtEffectiveDPI         = 0
	logpixelsX              = 88
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

// DisplayScale 获取显示器的 DPI 缩放比
func DisplayScale(d Display) (float64, bool) {
	dpi := monitorDPI(d.Bounds)
	if dpi == 0 {
		dpi = systemDPI()
	}
	return normalizeDPIScale(dpi), true
}

// CaptureScale DPI Aware 进程中截图使用物理像素，等于显示器缩放比
func CaptureScale(d Display) float64 {
	scale, _ := DisplayScale(d)
	return scale
}

// monitorDPI 方法1: GetDpiForMonitor (Windows 8.1+)
func monitorDPI(b Region) int {
	if procMonitorFromRect.Find() != nil || procGetDpiForMonitor.Find() != nil {
		return 0
	}

	r := winRect{
		Left:   int32(b.X),
		Top:    int32(b.Y),
		Right:  int32(b.X + b.Width),
		Bottom: int32(b.Y + b.Height),
	}
	hmon, _, _ := procMonitorFromRect.Call(uintptr(unsafe.Pointer(&r)), monitorDefaultToNearest)
	if hmon == 0 {
		return 0
	}

	var dpiX, dpiY uint32
	hr, _, _ := procGetDpiForMonitor.Call(hmon, mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dpiX)), uintptr(unsafe.Pointer(&dpiY)))
	if hr != 0 {
		return 0
	}
	return int(dpiX)
}

// systemDPI 方法2: GDI GetDeviceCaps
func systemDPI() int {
	if procGetDCDPI.Find() != nil || procGetDeviceCapsDPI.Find() != nil {
		return 0
	}
	dc, _, _ := procGetDCDPI.Call(0)
	if dc == 0 {
		return 0
	}
	defer procReleaseDCDPI.Call(0, dc)

	d, _, _ := procGetDeviceCapsDPI.Call(dc, uintptr(logpixelsX))
	return int(d)
}
