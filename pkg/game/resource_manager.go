package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of widget resources.
// It provides loading and caching mechanisms for photos and sound clips,
// ensuring that resources are loaded only once and reused afterwards.
//
// All paths are relative to the asset file system (the tree holding images/ and sounds/):
// a directory on desktop (os.DirFS) and the embedded copy in the mobile build.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext, os.DirFS("assets"))
//	img, err := rm.LoadImage("images/Miso.jpg")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	assets        fs.FS                        // File system that resource paths are resolved against
	imageCache    map[string]*ebiten.Image     // Cache for loaded images: path -> Image
	imageFailures map[string]error             // Paths that failed to load (not retried)
	pcmCache      map[string][]byte            // Cache for decoded clips: path -> 16-bit stereo PCM
	audioContext  *audio.Context               // Global audio context for audio decoding
	fontFaceCache map[float64]*text.GoTextFace // Cache for UI faces: size -> face
	fontSource    *text.GoTextFaceSource
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context (may be nil, audio loading then fails gracefully).
//   - assets: File system that resource paths are resolved against (nil = working directory).
func NewResourceManager(audioContext *audio.Context, assets fs.FS) *ResourceManager {
	if assets == nil {
		assets = os.DirFS(".")
	}
	return &ResourceManager{
		assets:        assets,
		imageCache:    make(map[string]*ebiten.Image),
		imageFailures: make(map[string]error),
		pcmCache:      make(map[string][]byte),
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// resolve converts a resource path into an fs.FS path ("./images/a.jpg" -> "images/a.jpg").
func resolve(p string) string {
	return path.Clean(strings.TrimPrefix(filepath.ToSlash(p), "/"))
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Cache entries are keyed by the cleaned path, so "./images/a.jpg" and "images/a.jpg" share one entry.
// A path that failed once is remembered and the same error is returned without retrying.
// Supported formats: PNG and JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	key := resolve(path)
	// Check if the image is already cached
	if cachedImage, exists := rm.imageCache[key]; exists {
		return cachedImage, nil
	}
	if err, failed := rm.imageFailures[key]; failed {
		return nil, err
	}

	img, err := rm.decodeImage(path)
	if err != nil {
		rm.imageFailures[key] = err
		return nil, err
	}

	// Convert to Ebitengine image and store in cache
	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[key] = ebitenImg
	return ebitenImg, nil
}

func (rm *ResourceManager) decodeImage(path string) (image.Image, error) {
	file, err := rm.assets.Open(resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Preload loads an image into the cache ahead of its first use.
// Failures are logged and swallowed; the view falls back to a placeholder.
func (rm *ResourceManager) Preload(path string) {
	if _, err := rm.LoadImage(path); err != nil {
		log.Printf("[ResourceManager] Preload skipped: %v", err)
	}
}

// LoadClip reads and decodes an audio file into 16-bit stereo PCM at the
// audio context's sample rate. Decoded clips are cached by path.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
func (rm *ResourceManager) LoadClip(path string) ([]byte, error) {
	if pcm, exists := rm.pcmCache[path]; exists {
		return pcm, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	// Read the entire file into memory to avoid file handle issues
	audioData, err := fs.ReadFile(rm.assets, resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)
	sampleRate := rm.audioContext.SampleRate()

	// Decode based on format
	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		decoded, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		stream = decoded
	case ".wav":
		decoded, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", path, err)
	}
	rm.pcmCache[path] = pcm
	return pcm, nil
}

// NewSoundPlayer creates a fresh, non-looping player for a clip.
// Every call returns an independent player so overlapping playbacks do not cut each other off.
func (rm *ResourceManager) NewSoundPlayer(path string) (*audio.Player, error) {
	pcm, err := rm.LoadClip(path)
	if err != nil {
		return nil, err
	}
	return rm.audioContext.NewPlayerFromBytes(pcm), nil
}

// NewLoopPlayer creates a player that repeats the clip forever.
func (rm *ResourceManager) NewLoopPlayer(path string) (*audio.Player, error) {
	pcm, err := rm.LoadClip(path)
	if err != nil {
		return nil, err
	}
	loopStream := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create loop player for %s: %w", path, err)
	}
	return player, nil
}

// UIFont returns the UI text face of the given size.
// The Go Regular typeface is bundled so no font file is needed at runtime.
func (rm *ResourceManager) UIFont(size float64) (*text.GoTextFace, error) {
	if face, exists := rm.fontFaceCache[size]; exists {
		return face, nil
	}
	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}
	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
