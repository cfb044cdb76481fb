package game

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/fishcatch/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager is responsible for centralized management of game resources.
// It loads and caches sound effects and font faces so that each resource is
// decoded only once.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches are plain Go maps and are
// only touched from the ebiten game loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	face, err := rm.LoadFont(24)
type ResourceManager struct {
	audioCache    map[string]*audio.Player     // Cache for loaded audio players: path -> Player
	audioContext  *audio.Context               // Global audio context, nil disables playback
	fontSource    *text.GoTextFaceSource       // Parsed default font, created lazily
	fontFaceCache map[float64]*text.GoTextFace // Cache for text faces: size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is used to create players; it may be nil, in which
// case sound effects fail to load with ErrNoAudioContext.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadSoundEffect loads a one-shot sound effect from the specified path and caches it.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
//
// Parameters:
//   - path: The file path to the sound effect (e.g., "assets/audio/orchestral-glory.mp3").
//     Paths under "data/" are looked up in the embedded data first.
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if the file cannot be opened, decoded, or the format is unsupported.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mp3" && ext != ".ogg" {
		return nil, fmt.Errorf("%w: %s (supported: .mp3, .ogg)", ErrUnsupportedAudio, ext)
	}

	audioData, err := readAsset(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, ErrNoAudioContext)
	}

	reader := bytes.NewReader(audioData)
	var stream io.ReadSeeker
	switch ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decodedStream
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// readAsset reads a file from the embedded data/ tree when it is there,
// otherwise from the local filesystem.
func readAsset(path string) ([]byte, error) {
	if embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadFont returns the default UI face at the given size.
// The font source is parsed once; faces are cached per size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
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

// FaceFunc adapts LoadFont for the canvas; faces that fail to load come back nil.
func (rm *ResourceManager) FaceFunc() func(size float64) *text.GoTextFace {
	return func(size float64) *text.GoTextFace {
		face, err := rm.LoadFont(size)
		if err != nil {
			return nil
		}
		return face
	}
}
