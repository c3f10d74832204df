// Package input 提供鼠标状态查询
package input

import (
	"github.com/go-vgo/robotgo"
)

// GetMousePosition 获取鼠标全局位置
func GetMousePosition() (x, y int) {
	return robotgo.Location()
}
