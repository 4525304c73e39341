// check_resources - 资源清单校验程序
// 以 -root 目录作为资源文件系统（与游戏嵌入的 assets/ 结构相同），
// 加载 assets/config/resources.yaml，逐个加载图片和音频并输出报告，
// 同时列出资源目录中未被清单引用的文件。
// 用法：go run ./cmd/check_resources [-root dir] [-config path] [-verbose]
package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/decker502/whackamole/pkg/embedded"
	"github.com/decker502/whackamole/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	rootDir    = flag.String("root", ".", "包含 assets/ 的目录")
	configPath = flag.String("config", "assets/config/resources.yaml", "资源清单路径（相对于 -root）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

// assetPatterns 需要被清单覆盖的资源文件
var assetPatterns = []string{
	"assets/images/*",
	"assets/sounds/*",
}

// ValidationReport 单个资源的校验结果
type ValidationReport struct {
	ID      string
	Passed  bool
	Message string
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	// 与游戏运行时相同，通过 embedded 包读取资源
	embedded.Init(os.DirFS(*rootDir))

	rm := game.NewResourceManager(audio.NewContext(48000))
	if err := rm.LoadResourceConfig(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}

	var reports []ValidationReport
	referenced := make(map[string]bool)
	for _, id := range rm.ResourceIDs() {
		reports = append(reports, checkResource(rm, id))
		if path, ok := rm.ResolvePath(id); ok {
			referenced[path] = true
		}
	}

	failed := 0
	for _, r := range reports {
		status := "✓ PASS"
		if !r.Passed {
			status = "✗ FAIL"
			failed++
		}
		fmt.Printf("%s | %-14s | %s\n", status, r.ID, r.Message)
	}

	unreferenced, err := findUnreferenced(referenced, assetPatterns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
	for _, path := range unreferenced {
		fmt.Printf("⚠ UNUSED | %s\n", path)
	}

	fmt.Printf("\n%d resources, %d failed, %d unreferenced files\n", len(reports), failed, len(unreferenced))

	if failed > 0 {
		os.Exit(1)
	}
}

// checkResource 读取并解码一个资源
func checkResource(rm *game.ResourceManager, id string) ValidationReport {
	path, _ := rm.ResolvePath(id)
	if !embedded.Exists(path) {
		return ValidationReport{ID: id, Message: fmt.Sprintf("%s: file not found", path)}
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return ValidationReport{ID: id, Message: err.Error()}
	}
	summary := fmt.Sprintf("%s (%d bytes, md5 %x)", path, len(data), md5.Sum(data))

	if rm.IsSound(id) {
		_, err = rm.LoadSoundByID(id)
	} else {
		_, err = rm.LoadImageByID(id)
	}
	if err != nil {
		return ValidationReport{ID: id, Message: err.Error()}
	}
	return ValidationReport{ID: id, Passed: true, Message: summary}
}

// findUnreferenced 返回匹配 patterns 但不在 referenced 中的文件（排序后）
func findUnreferenced(referenced map[string]bool, patterns []string) ([]string, error) {
	var unreferenced []string
	for _, pattern := range patterns {
		matches, err := embedded.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", pattern, err)
		}
		for _, path := range matches {
			if !referenced[path] {
				unreferenced = append(unreferenced, path)
			}
		}
	}
	sort.Strings(unreferenced)
	return unreferenced, nil
}
