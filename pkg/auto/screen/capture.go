// Package screen 提供显示器查询、区域截图和图像缩放功能
package screen

import (
	"fmt"
	"image"

	"github.com/go-vgo/robotgo"

	"github.com/zoeyai/zoeymag/pkg/auto"
)

// CaptureRegion 截取显示器本地坐标下的区域，r 的尺寸为逻辑像素
// 区域超出屏幕边界时不做检查，由 robotgo 自行裁剪
func CaptureRegion(d auto.Display, r auto.RectF) (image.Image, error) {
	region := auto.ToCaptureRect(r, auto.CaptureScale(d)).Round()
	origin := d.Bounds.Origin()

	img, err := robotgo.CaptureImg(origin.X+region.X, origin.Y+region.Y, region.Width, region.Height)
	if err != nil {
		return nil, fmt.Errorf("截取区域失败: %w", err)
	}
	if img == nil {
		return nil, fmt.Errorf("截取区域失败: 图像为空")
	}
	return img, nil
}
