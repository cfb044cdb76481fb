package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/fishcatch/pkg/embedded"
)

// TestNewResourceManager tests the creation of a new ResourceManager instance.
func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager(nil)

	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.audioCache == nil {
		t.Error("audioCache is nil")
	}
	if rm.fontFaceCache == nil {
		t.Error("fontFaceCache is nil")
	}
}

func TestLoadSoundEffectErrors(t *testing.T) {
	dir := t.TempDir()
	silent := filepath.Join(dir, "silent.mp3")
	if err := os.WriteFile(silent, []byte("not really audio"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    filepath.Join(dir, "missing.mp3"),
			wantErr: os.ErrNotExist,
		},
		{
			name:    "unsupported extension",
			path:    filepath.Join(dir, "sound.wav"),
			wantErr: ErrUnsupportedAudio,
		},
		{
			name:    "no audio context",
			path:    silent,
			wantErr: ErrNoAudioContext,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := NewResourceManager(nil)
			player, err := rm.LoadSoundEffect(tt.path)
			if player != nil {
				t.Error("expected nil player")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if _, cached := rm.audioCache[tt.path]; cached {
				t.Error("failed load must not be cached")
			}
		})
	}
}

// data/ 下的音效优先从嵌入文件读取，移动端没有本地文件也能加载
func TestLoadSoundEffectPrefersEmbeddedData(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/audio/win.mp3": &fstest.MapFile{Data: []byte("not really audio")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		// 读取成功后才会走到缺少音频上下文这一步
		{"embedded file", "data/audio/win.mp3", ErrNoAudioContext},
		{"missing everywhere", "data/audio/lose.mp3", os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResourceManager(nil).LoadSoundEffect(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFontCachesPerSize(t *testing.T) {
	rm := NewResourceManager(nil)

	face, err := rm.LoadFont(24)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	again, err := rm.LoadFont(24)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if face != again {
		t.Error("expected cached face for the same size")
	}

	other, _ := rm.LoadFont(16)
	if other == face {
		t.Error("different sizes should produce different faces")
	}
	if other.Source != face.Source {
		t.Error("faces should share one font source")
	}

	if rm.FaceFunc()(24) != face {
		t.Error("FaceFunc should return the cached face")
	}
}
