package main

import (
	"flag"
	"log"

	"github.com/decker502/whackamole/pkg/app"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，必须在任何资源加载之前
	embedded.Init(assetsFS)

	gameApp := app.NewApp(app.Config{Verbose: *verbose})

	// 设置窗口属性
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	// 关闭窗口时先保存设置，由 App.Update 处理
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
