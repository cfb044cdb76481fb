package systems

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 绘制海水背景和画布上的全部图形
type RenderSystem struct {
	canvas     *canvas.Canvas
	background color.RGBA
}

// NewRenderSystem 创建渲染系统
// background 为背景颜色名或 "#rrggbb"，无法解析时使用黑色并记录警告
func NewRenderSystem(cv *canvas.Canvas, background string, logger *log.Logger) *RenderSystem {
	if logger == nil {
		logger = log.Default()
	}
	bg, err := canvas.ParseColor(background)
	if err != nil {
		logger.WithPrefix("RenderSystem").Warn("invalid background color", "err", err)
	}
	bg.A = 0xff
	return &RenderSystem{
		canvas:     cv,
		background: bg,
	}
}

// Background 返回背景颜色
func (s *RenderSystem) Background() color.RGBA {
	return s.background
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.canvas.Draw(screen)
}
