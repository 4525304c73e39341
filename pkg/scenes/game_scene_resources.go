package scenes

import (
	"log"

	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/game"
	"github.com/decker502/whackamole/pkg/mole"
	"github.com/decker502/whackamole/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 图片资源ID，与 assets/config/resources.yaml 对应
const (
	ImageMole   = "IMAGE_MOLE"
	ImageTrap   = "IMAGE_TRAP"
	ImageMallet = "IMAGE_MALLET"
)

// effectSoundIDs 场景初始化时预加载的音效
var effectSoundIDs = []string{
	string(mole.SoundHit),
	string(mole.SoundTrap),
	string(mole.SoundWin),
	string(mole.SoundLose),
}

// sceneAssets 场景使用的图片与字体，任一项都可能为 nil
type sceneAssets struct {
	moleImage   *ebiten.Image
	trapImage   *ebiten.Image
	malletImage *ebiten.Image
	hudFont     *text.GoTextFace
	titleFont   *text.GoTextFace
	messageFont *text.GoTextFace
}

// loadSceneAssets 加载场景资源
// 加载失败只记录日志，由各系统使用回退绘制
func loadSceneAssets(rm *game.ResourceManager) sceneAssets {
	var assets sceneAssets
	if rm == nil {
		log.Printf("[GameScene] Warning: no ResourceManager, using fallback graphics")
		return assets
	}

	assets.moleImage = loadImage(rm, ImageMole)
	assets.trapImage = loadImage(rm, ImageTrap)
	// 触屏设备没有悬停指针，不显示木槌光标
	if !utils.IsMobile() {
		assets.malletImage = loadImage(rm, ImageMallet)
	}

	assets.hudFont = loadFont(rm, game.FontGoBold, config.HUDFontSize)
	assets.titleFont = loadFont(rm, game.FontGoBold, config.DialogTitleSize)
	assets.messageFont = loadFont(rm, game.FontGoRegular, config.DialogMessageSize)

	return assets
}

func loadImage(rm *game.ResourceManager, id string) *ebiten.Image {
	img, err := rm.LoadImageByID(id)
	if err != nil {
		log.Printf("[GameScene] Warning: Failed to load %s: %v", id, err)
		return nil
	}
	return img
}

func loadFont(rm *game.ResourceManager, name string, size float64) *text.GoTextFace {
	face, err := rm.LoadFont(name, size)
	if err != nil {
		log.Printf("[GameScene] Warning: Failed to load font %s: %v", name, err)
		return nil
	}
	return face
}
