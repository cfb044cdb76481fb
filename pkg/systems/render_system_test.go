package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/ecs"
)

func TestRenderSystemBackground(t *testing.T) {
	tests := []struct {
		name       string
		background string
		want       color.RGBA
	}{
		{"海水蓝", config.BackgroundColor, color.RGBA{R: 0x66, G: 0xcc, B: 0xff, A: 0xff}},
		{"颜色名", "navy", color.RGBA{R: 0x00, G: 0x00, B: 0x80, A: 0xff}},
		{"无法解析时为黑色", "not-a-color", color.RGBA{A: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := canvas.New(ecs.NewEntityManager(), nil)
			rs := NewRenderSystem(cv, tt.background, nil)
			if got := rs.Background(); got != tt.want {
				t.Errorf("Background() = %v, want %v", got, tt.want)
			}
		})
	}
}
