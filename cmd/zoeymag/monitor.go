package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zoeyai/zoeymag/pkg/auto"
)

// monitorInfo 显示器尺寸（设备无关像素）和缩放比
type monitorInfo struct {
	width, height int
	scale         float64
}

func monitorInfos() []monitorInfo {
	var infos []monitorInfo
	for _, m := range ebiten.AppendMonitors(nil) {
		w, h := m.Size()
		infos = append(infos, monitorInfo{width: w, height: h, scale: m.DeviceScaleFactor()})
	}
	return infos
}

// displayPixelRatio 按尺寸把 screenshot 的显示器对应到 ebiten 的显示器
func displayPixelRatio(d auto.Display) float64 {
	return matchMonitorScale(d, monitorInfos(), ebiten.Monitor().DeviceScaleFactor())
}

// matchMonitorScale 显示器边界可能是逻辑或物理像素，两种尺寸都参与匹配；
// 没有匹配或匹配到多个缩放比不同的显示器时返回 fallback
func matchMonitorScale(d auto.Display, monitors []monitorInfo, fallback float64) float64 {
	w, h := d.Bounds.Width, d.Bounds.Height
	scale := 0.0
	for _, m := range monitors {
		logical := m.width == w && m.height == h
		physical := int(math.Round(float64(m.width)*m.scale)) == w &&
			int(math.Round(float64(m.height)*m.scale)) == h
		if !logical && !physical {
			continue
		}
		if scale != 0 && scale != m.scale {
			return fallback
		}
		scale = m.scale
	}
	if scale <= 0 {
		return fallback
	}
	return scale
}
