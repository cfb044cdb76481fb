package systems

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/ecs"
	"github.com/decker502/fishcatch/pkg/game"
)

// 提示文字位置与样式
const (
	promptY        = 30.0
	promptFontSize = 20.0
)

// TargetSelector 在开局时选出目标鱼并显示提示
type TargetSelector struct {
	canvas   *canvas.Canvas
	registry *FishRegistry
	session  *game.Session
	rng      *rand.Rand
	prompt   canvas.ShapeID
	logger   *log.Logger
}

// NewTargetSelector 创建目标选择器
func NewTargetSelector(cv *canvas.Canvas, registry *FishRegistry, session *game.Session, rng *rand.Rand, logger *log.Logger) *TargetSelector {
	if logger == nil {
		logger = log.Default()
	}
	return &TargetSelector{
		canvas:   cv,
		registry: registry,
		session:  session,
		rng:      rng,
		prompt:   ecs.InvalidEntity,
		logger:   logger.WithPrefix("TargetSelector"),
	}
}

// ChooseTarget 从 fish 中均匀随机选出目标鱼，写入会话并绘制提示
// 每局只能成功调用一次，之后返回 ErrTargetAlreadyChosen
func (s *TargetSelector) ChooseTarget(fish []ecs.EntityID) (ecs.EntityID, error) {
	if _, chosen := s.session.Target(); chosen {
		return ecs.InvalidEntity, ErrTargetAlreadyChosen
	}
	if len(fish) == 0 {
		return ecs.InvalidEntity, ErrNoFish
	}

	target := fish[s.rng.Intn(len(fish))]
	color, ok := s.registry.Color(target)
	if !ok {
		return ecs.InvalidEntity, fmt.Errorf("entity %d is not a fish: %w", target, game.ErrInvalidTarget)
	}
	if err := s.session.SetTarget(target); err != nil {
		return ecs.InvalidEntity, err
	}

	s.prompt = s.canvas.DrawText(config.GameWindowWidth/2, promptY, PromptText(color),
		canvas.Style{Fill: "white", FontSize: promptFontSize})
	s.logger.Info("target chosen", "id", target, "color", color)
	return target, nil
}

// Prompt 返回提示文字的图形句柄
func (s *TargetSelector) Prompt() (canvas.ShapeID, bool) {
	return s.prompt, s.prompt != ecs.InvalidEntity
}

// PromptText 生成提示文字
func PromptText(color string) string {
	return fmt.Sprintf("Find the %s fish!", color)
}
