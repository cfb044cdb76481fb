package systems

import (
	"github.com/charmbracelet/log"
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/utils"
)

// PointerSource 返回本帧是否刚发生点击/触摸及其位置
type PointerSource func() (bool, int, int)

// InputSystem 把点击转换为对鱼的点击
//
// 命中测试取点击位置最上层的图形，再经画布归属表找到所属实体；
// 只有属于鱼的图形会转交给控制器，其余点击静默忽略。
type InputSystem struct {
	canvas     *canvas.Canvas
	registry   *FishRegistry
	controller *GameController
	pointer    PointerSource
	logger     *log.Logger
}

// NewInputSystem 创建输入系统，默认同时支持鼠标左键和触摸
func NewInputSystem(cv *canvas.Canvas, registry *FishRegistry, controller *GameController, logger *log.Logger) *InputSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &InputSystem{
		canvas:     cv,
		registry:   registry,
		controller: controller,
		pointer:    utils.IsJustTouchedOrClicked,
		logger:     logger.WithPrefix("InputSystem"),
	}
}

// SetPointerSource 替换输入来源（用于无窗口运行和测试）
func (s *InputSystem) SetPointerSource(src PointerSource) {
	s.pointer = src
}

// Update 读取本帧输入并分发
func (s *InputSystem) Update() {
	if s.pointer == nil {
		return
	}
	clicked, x, y := s.pointer()
	if !clicked {
		return
	}
	s.HandleClick(float64(x), float64(y))
}

// HandleClick 处理 (x, y) 处的一次点击
// 返回: 是否点中了一条鱼
func (s *InputSystem) HandleClick(x, y float64) bool {
	shape, ok := s.canvas.HitTest(x, y)
	if !ok {
		return false
	}
	owner, ok := s.canvas.Owner(shape)
	if !ok || !s.registry.IsFish(owner) {
		s.logger.Debug("click on non-fish shape ignored", "x", x, "y", y, "shape", shape)
		return false
	}
	s.controller.OnFishClicked(owner)
	return true
}
