// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标左键）
// 返回是否按下以及按下位置，触摸优先
func IsPointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsAnyKeyJustPressed 检查给定按键中是否有任意一个在本帧刚按下
func IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// IsConfirmKeyJustPressed 回车、小键盘回车或空格
func IsConfirmKeyJustPressed() bool {
	return IsAnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace)
}

// VolumeKeyDelta 返回本帧音量键对应的调整方向
// +/= 键返回 1，- 键返回 -1，否则返回 0
func VolumeKeyDelta() int {
	switch {
	case IsAnyKeyJustPressed(ebiten.KeyEqual, ebiten.KeyNumpadAdd):
		return 1
	case IsAnyKeyJustPressed(ebiten.KeyMinus, ebiten.KeyNumpadSubtract):
		return -1
	}
	return 0
}
