package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	audiodec "github.com/decker502/whackamole/internal/audio"
	"github.com/decker502/whackamole/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// Built-in font names accepted by LoadFont.
const (
	FontGoBold    = "gobold"
	FontGoRegular = "goregular"
)

// ResourceManager is responsible for centralized management of game resources.
// Images, audio players and font faces are loaded once and cached by path.
//
// Files are read from the embedded filesystem when pkg/embedded has been
// initialized, otherwise from the local disk (used by tests and tools).
//
// Thread Safety Note:
// The caches are plain maps. All loading happens on the game loop goroutine.
type ResourceManager struct {
	imageCache      map[string]*ebiten.Image
	audioCache      map[string]*audio.Player
	audioContext    *audio.Context
	fontSourceCache map[string]*text.GoTextFaceSource

	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> file path
	loopingIDs  map[string]bool   // Sound IDs declared with loop: true
	soundIDs    map[string]bool   // IDs declared under sounds:
}

// NewResourceManager creates a ResourceManager with empty caches.
// audioContext may be nil; audio loading then fails with an error and the
// game runs silently.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:      make(map[string]*ebiten.Image),
		audioCache:      make(map[string]*audio.Player),
		audioContext:    audioContext,
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		resourceMap:     make(map[string]string),
		loopingIDs:      make(map[string]bool),
		soundIDs:        make(map[string]bool),
	}
}

// readResource reads a file from the embedded FS or the local disk.
func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadImage loads a PNG image and caches it.
//
// Returns an error if the file cannot be read or decoded. Callers are expected
// to log the error and fall back to vector drawing.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// audioStream is the common shape of the wav/mp3/vorbis decoded streams.
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio decodes WAV, MP3, OGG Vorbis or Sun AU data, resampled to the context rate.
func (rm *ResourceManager) decodeAudio(path string) (audioStream, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available for %s", path)
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}

	// The whole file is kept in memory so the stream can seek freely.
	reader := bytes.NewReader(data)
	sampleRate := rm.audioContext.SampleRate()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	case ".au":
		stream, err := audiodec.DecodeAU(reader, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg, .au)", ext)
	}
}

// LoadAudio loads an audio file wrapped in an infinite loop (background music).
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect loads a one-shot sound effect (no loop).
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadFont creates a face of the given size from one of the Go fonts bundled
// with golang.org/x/image (FontGoBold, FontGoRegular).
func (rm *ResourceManager) LoadFont(name string, size float64) (*text.GoTextFace, error) {
	source, exists := rm.fontSourceCache[name]
	if !exists {
		var ttf []byte
		switch name {
		case FontGoBold:
			ttf = gobold.TTF
		case FontGoRegular:
			ttf = goregular.TTF
		default:
			return nil, fmt.Errorf("unknown font: %s", name)
		}

		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
		}
		rm.fontSourceCache[name] = source
	}

	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// LoadResourceConfig parses the YAML resource manifest and builds the
// ID -> path mapping.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := readResource(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded resource config %s: %d groups, %d resources",
		configPath, len(config.Groups), len(rm.resourceMap))
	return nil
}

// buildResourceMap maps every resource ID to its full path.
//
//	IMAGE_MOLE -> assets/images/mole.png
//	SOUND_HIT  -> assets/sounds/hit.wav
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	rm.loopingIDs = make(map[string]bool)
	rm.soundIDs = make(map[string]bool)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += defaultImageExt
			}
			rm.resourceMap[img.ID] = fullPath
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += defaultSoundExt
			}
			rm.resourceMap[sound.ID] = fullPath
			rm.soundIDs[sound.ID] = true
			if sound.Loop {
				rm.loopingIDs[sound.ID] = true
			}
		}
	}
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, exists := rm.resourceMap[resourceID]
	return path, exists
}

// ResourceIDs returns every ID in the manifest, sorted.
func (rm *ResourceManager) ResourceIDs() []string {
	ids := make([]string, 0, len(rm.resourceMap))
	for id := range rm.resourceMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsSound reports whether a manifest ID refers to a sound.
func (rm *ResourceManager) IsSound(resourceID string) bool {
	_, ok := rm.soundIDs[resourceID]
	return ok
}

// LoadImageByID loads an image by its manifest ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.LoadImage(filePath)
}

// LoadSoundByID loads a sound by its manifest ID, looping or one-shot as
// declared in the manifest.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	if rm.loopingIDs[resourceID] {
		return rm.LoadAudio(filePath)
	}
	return rm.LoadSoundEffect(filePath)
}

// LoadResourceGroup loads every image and sound of a group.
// Loading continues past failures; all failures are returned joined so the
// caller can log them and keep running with whatever did load.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	var errs []error
	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			errs = append(errs, fmt.Errorf("image %s in group %s: %w", img.ID, groupName, err))
		}
	}
	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil {
			errs = append(errs, fmt.Errorf("sound %s in group %s: %w", sound.ID, groupName, err))
		}
	}

	return errors.Join(errs...)
}

// GroupNames returns the names of all groups in the manifest.
func (rm *ResourceManager) GroupNames() []string {
	if rm.config == nil {
		return nil
	}
	names := make([]string, 0, len(rm.config.Groups))
	for name := range rm.config.Groups {
		names = append(names, name)
	}
	return names
}
