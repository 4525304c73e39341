package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ScaleFactors 计算把 srcW×srcH 的图片拉伸到 dstW×dstH 所需的缩放系数
// 源尺寸为 0 时返回 (0, 0)，调用方不绘制即可
func ScaleFactors(srcW, srcH int, dstW, dstH float64) (sx, sy float64) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}
	return dstW / float64(srcW), dstH / float64(srcH)
}

// DrawImageScaled 将图片拉伸绘制到 dst 的 (x, y, w, h) 区域
// img 为 nil 时不绘制并返回 false，调用方负责回退绘制
//
// 用法：
//
//	if !utils.DrawImageScaled(screen, moleImg, 126, 135, 80, 80) {
//	    // 使用矢量图形代替
//	}
func DrawImageScaled(dst, img *ebiten.Image, x, y, w, h float64) bool {
	if dst == nil || img == nil {
		return false
	}

	bounds := img.Bounds()
	sx, sy := ScaleFactors(bounds.Dx(), bounds.Dy(), w, h)
	if sx == 0 || sy == 0 {
		return false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
	return true
}

// ScaleImage 生成一张 w×h 的新图片（用于一次性缩放光标等素材）
// img 为 nil 时返回 nil
func ScaleImage(img *ebiten.Image, w, h int) *ebiten.Image {
	if img == nil || w <= 0 || h <= 0 {
		return nil
	}
	scaled := ebiten.NewImage(w, h)
	DrawImageScaled(scaled, img, 0, 0, float64(w), float64(h))
	return scaled
}
