package game

// ResourceConfig 资源清单的顶层结构，对应 assets/config/resources.yaml
//
// 结构：
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  sprites:
//	    images: [...]
//	  audio:
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"` // 所有资源路径的前缀（如 "assets"）
	Groups   map[string]ResourceGroup `yaml:"groups"`    // 按组名索引的资源组
}

// ResourceGroup 一组可以一起加载的资源
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource 图片资源定义
//
// 示例：
//
//	- id: IMAGE_MOLE
//	  path: images/mole      # 省略扩展名时默认 .png
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource 音频资源定义
//
// 示例：
//
//	- id: SOUND_MUSIC
//	  path: sounds/music.wav
//	  loop: true             # 背景音乐循环播放
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
	Loop bool   `yaml:"loop,omitempty"`
}

// 省略扩展名时使用的默认扩展名
const (
	defaultImageExt = ".png"
	defaultSoundExt = ".wav"
)

// buildFullPath 拼接 base_path 与资源相对路径
//
// 示例：
//   - ("assets", "images/mole.png") -> "assets/images/mole.png"
//   - ("", "images/mole.png") -> "images/mole.png"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
