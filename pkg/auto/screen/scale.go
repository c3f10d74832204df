package screen

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale 将图像缩放到指定像素尺寸
func Scale(src image.Image, width, height int) image.Image {
	if src == nil || width <= 0 || height <= 0 {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if src.Bounds().Empty() {
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
