package screen

import (
	"github.com/kbinani/screenshot"

	"github.com/zoeyai/zoeymag/pkg/auto"
)

// Displays 枚举当前活动的显示器
func Displays() []auto.Display {
	n := screenshot.NumActiveDisplays()
	displays := make([]auto.Display, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		displays = append(displays, auto.Display{
			Index: i,
			Bounds: auto.Region{
				X:      b.Min.X,
				Y:      b.Min.Y,
				Width:  b.Dx(),
				Height: b.Dy(),
			},
		})
	}
	return displays
}

// ScreenAt 查找包含全局坐标点的显示器
func ScreenAt(p auto.Point) (auto.Display, bool) {
	return findDisplay(Displays(), p)
}

func findDisplay(displays []auto.Display, p auto.Point) (auto.Display, bool) {
	for _, d := range displays {
		if d.Bounds.Contains(p) {
			return d, true
		}
	}
	return auto.Display{}, false
}
