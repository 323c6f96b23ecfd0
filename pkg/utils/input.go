// Package utils 提供平台与输入相关的通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回第一个活动触摸点的位置，没有触摸时返回鼠标位置
func PointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// DefaultCursorCaptured 返回场景启动时是否捕获鼠标
// 移动端没有鼠标，以触摸位置拾取
func DefaultCursorCaptured() bool {
	return !IsMobile()
}
