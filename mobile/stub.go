//go:build !mobile

// stub.go - 桌面构建时的占位文件
//
// 桌面端由根目录 main.go 启动游戏，此处只保留 Dummy，
// 使 go build ./... 和 go vet ./... 不因空包失败。
package mobile

// Dummy 是一个空导出函数，与 mobile.go 中的同名函数保持一致
func Dummy() {}
