// Package auto 提供屏幕相关功能共享的几何类型和工具函数。
// 具体功能分布在子包中：screen, input。
package auto

import "math"

// Point 表示二维整数坐标点
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Sub 返回 p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Region 表示整数矩形区域
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Origin 区域左上角
func (r Region) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains 判断点是否落在区域内（右、下边界不包含）
func (r Region) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// SizeF 浮点尺寸
type SizeF struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scale 按系数缩放尺寸
func (s SizeF) Scale(factor float64) SizeF {
	return SizeF{Width: s.Width * factor, Height: s.Height * factor}
}

// RectF 浮点矩形，截图区域可能是小数尺寸
type RectF struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CenteredAt 返回以 center 为中心、尺寸为 size 的矩形
func CenteredAt(center Point, size SizeF) RectF {
	return RectF{
		X:      float64(center.X) - size.Width/2,
		Y:      float64(center.Y) - size.Height/2,
		Width:  size.Width,
		Height: size.Height,
	}
}

// Round 四舍五入为整数区域，宽高至少为 1
func (r RectF) Round() Region {
	return Region{
		X:      int(math.Round(r.X)),
		Y:      int(math.Round(r.Y)),
		Width:  MaxInt(1, int(math.Round(r.Width))),
		Height: MaxInt(1, int(math.Round(r.Height))),
	}
}

// MaxInt 返回最大值
func MaxInt(values ...int) int {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Display 物理显示器句柄
type Display struct {
	Index  int    `json:"index"`
	Bounds Region `json:"bounds"`
}

// ToLocal 将全局坐标转换为显示器本地坐标
func (d Display) ToLocal(p Point) Point {
	return p.Sub(d.Bounds.Origin())
}
