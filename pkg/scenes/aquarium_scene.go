package scenes

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/ecs"
	"github.com/decker502/fishcatch/pkg/game"
	"github.com/decker502/fishcatch/pkg/scheduler"
	"github.com/decker502/fishcatch/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// AquariumScene 抓鱼小游戏的唯一场景
//
// 场景拥有本局的全部状态：实体管理器、画布、调度器和会话。
// 每帧先处理输入，再推进调度器，最后清理被删除的实体。
type AquariumScene struct {
	entityManager *ecs.EntityManager
	canvas        *canvas.Canvas
	scheduler     *scheduler.Scheduler
	session       *game.Session

	registry   *systems.FishRegistry
	selector   *systems.TargetSelector
	controller *systems.GameController
	decor      *systems.DecorSystem
	input      *systems.InputSystem
	render     *systems.RenderSystem

	target ecs.EntityID
	logger *log.Logger
}

// NewAquariumScene 创建并启动水族箱场景
//
// 参数:
//   - rm: 资源管理器，提供文本字体；为 nil 时使用估算尺寸和调试字体
//   - sound: 音效播放器，可为 nil
//   - tuning: 调参
//   - rng: 随机数源；为 nil 时以当前时间为种子
//   - logger: 日志记录器，可为 nil
//
// 返回: 已开始倒计时的场景，或创建鱼群/选择目标失败的错误
func NewAquariumScene(rm *game.ResourceManager, sound systems.SoundPlayer, tuning *config.Tuning, rng *rand.Rand, logger *log.Logger) (*AquariumScene, error) {
	if logger == nil {
		logger = log.Default()
	}
	if tuning == nil {
		tuning = config.DefaultTuning()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &AquariumScene{
		entityManager: ecs.NewEntityManager(),
		scheduler:     scheduler.New(),
		logger:        logger.WithPrefix("AquariumScene"),
	}
	s.canvas = canvas.New(s.entityManager, logger)
	if rm != nil {
		s.canvas.SetFaceFunc(rm.FaceFunc())
	}
	s.session = game.NewSession(s.scheduler.Now, config.GameDuration)

	s.render = systems.NewRenderSystem(s.canvas, config.BackgroundColor, logger)
	s.decor = systems.NewDecorSystem(s.entityManager, s.canvas, s.scheduler, rng, tuning, logger)
	s.registry = systems.NewFishRegistry(s.entityManager, s.canvas, rng, tuning.Fish, logger)
	s.selector = systems.NewTargetSelector(s.canvas, s.registry, s.session, rng, logger)
	s.controller = systems.NewGameController(s.entityManager, s.canvas, s.scheduler, s.session,
		s.registry, sound, tuning, rng, logger)
	s.input = systems.NewInputSystem(s.canvas, s.registry, s.controller, logger)

	// 装饰在鱼之前创建，鱼绘制在上层
	s.decor.Setup()

	if err := s.registry.CreateAll(config.FishColors); err != nil {
		return nil, fmt.Errorf("failed to create fish: %w", err)
	}
	target, err := s.selector.ChooseTarget(s.registry.Fish())
	if err != nil {
		return nil, fmt.Errorf("failed to choose target fish: %w", err)
	}
	s.target = target

	s.decor.Start()
	s.controller.Start()

	s.logger.Info("aquarium ready", "fish", len(s.registry.Fish()), "target", target)
	return s, nil
}

// Update 推进一帧
// deltaTime 为本帧时长（秒）
func (s *AquariumScene) Update(deltaTime float64) {
	s.input.Update()
	s.scheduler.Advance(time.Duration(deltaTime * float64(time.Second)))
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *AquariumScene) Draw(screen *ebiten.Image) {
	s.render.Draw(screen)
}

// Session 返回本局会话
func (s *AquariumScene) Session() *game.Session {
	return s.session
}

// Target 返回目标鱼
func (s *AquariumScene) Target() ecs.EntityID {
	return s.target
}

// Canvas 返回画布
func (s *AquariumScene) Canvas() *canvas.Canvas {
	return s.canvas
}

// Registry 返回鱼群注册表
func (s *AquariumScene) Registry() *systems.FishRegistry {
	return s.registry
}

// Controller 返回游戏控制器
func (s *AquariumScene) Controller() *systems.GameController {
	return s.controller
}

// Decor 返回装饰系统
func (s *AquariumScene) Decor() *systems.DecorSystem {
	return s.decor
}

// Input 返回输入系统
func (s *AquariumScene) Input() *systems.InputSystem {
	return s.input
}

// Now 返回当前游戏时间
func (s *AquariumScene) Now() time.Duration {
	return s.scheduler.Now()
}
