package systems

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/ecs"
	"github.com/decker502/fishcatch/pkg/entities"
)

// FishRegistry 管理本局的所有鱼
//
// 负责在随机位置创建鱼，并在每次倒计时 tick 时让鱼随机游动。
// 游动后整条鱼（含尾巴和背鳍）必须严格位于游动区域内，否则本次不动。
type FishRegistry struct {
	entityManager *ecs.EntityManager
	canvas        *canvas.Canvas
	rng           *rand.Rand
	tuning        config.FishTuning
	playfield     canvas.Rect
	fish          []ecs.EntityID // 按创建顺序
	logger        *log.Logger
}

// NewFishRegistry 创建鱼群注册表
// 参数:
//   - em: EntityManager 实例
//   - cv: 画布
//   - rng: 随机数源（出生位置与抖动共用）
//   - tuning: 鱼的出生区域与抖动参数
//   - logger: 日志记录器，可为 nil
func NewFishRegistry(em *ecs.EntityManager, cv *canvas.Canvas, rng *rand.Rand, tuning config.FishTuning, logger *log.Logger) *FishRegistry {
	if logger == nil {
		logger = log.Default()
	}
	minX, minY, maxX, maxY := config.PlayfieldBounds()
	return &FishRegistry{
		entityManager: em,
		canvas:        cv,
		rng:           rng,
		tuning:        tuning,
		playfield:     canvas.Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY},
		logger:        logger.WithPrefix("FishRegistry"),
	}
}

// Playfield 返回鱼的游动区域
func (r *FishRegistry) Playfield() canvas.Rect {
	return r.playfield
}

// CreateFish 在出生区域内随机位置创建一条指定颜色的鱼
// 出生区域为 [marginX, width-W-marginX] × [spawnTop, height-H-spawnBottomMargin]
func (r *FishRegistry) CreateFish(color string) (ecs.EntityID, error) {
	if _, err := canvas.ParseColor(color); err != nil {
		return ecs.InvalidEntity, fmt.Errorf("%w: %q", ErrUnknownColor, color)
	}

	minX := int(r.tuning.SpawnMarginX)
	maxX := int(config.GameWindowWidth - config.FishWidth - r.tuning.SpawnMarginX)
	minY := int(r.tuning.SpawnTop)
	maxY := int(config.GameWindowHeight - config.FishHeight - r.tuning.SpawnBottomMargin)

	x := float64(minX + r.rng.Intn(maxX-minX+1))
	y := float64(minY + r.rng.Intn(maxY-minY+1))

	id := entities.NewFishEntity(r.entityManager, r.canvas, x, y, color)
	r.fish = append(r.fish, id)
	r.logger.Debug("fish created", "id", id, "color", color, "x", x, "y", y)
	return id, nil
}

// CreateAll 为每种颜色创建一条鱼
func (r *FishRegistry) CreateAll(colors []string) error {
	for _, c := range colors {
		if _, err := r.CreateFish(c); err != nil {
			return err
		}
	}
	r.logger.Info("fish school ready", "count", len(r.fish))
	return nil
}

// Fish 返回所有鱼的实体ID（副本，按创建顺序）
func (r *FishRegistry) Fish() []ecs.EntityID {
	out := make([]ecs.EntityID, len(r.fish))
	copy(out, r.fish)
	return out
}

// IsFish 检查实体是否是本注册表中的鱼
func (r *FishRegistry) IsFish(id ecs.EntityID) bool {
	return ecs.HasComponent[*components.FishComponent](r.entityManager, id)
}

// Color 返回鱼的颜色
func (r *FishRegistry) Color(id ecs.EntityID) (string, bool) {
	fish, ok := ecs.GetComponent[*components.FishComponent](r.entityManager, id)
	if !ok {
		return "", false
	}
	return fish.Color, true
}

// Bounds 返回整条鱼的包围盒
func (r *FishRegistry) Bounds(id ecs.EntityID) (canvas.Rect, bool) {
	return r.canvas.GroupBounds(id)
}

// Jitter 让一条鱼随机游动一次
// dx、dy 分别独立地从候选位移中均匀选取；
// 移动后的包围盒不严格位于游动区域内时放弃本次移动。
//
// 返回: 是否实际移动
func (r *FishRegistry) Jitter(id ecs.EntityID) bool {
	bounds, ok := r.Bounds(id)
	if !ok {
		return false
	}

	dx := r.tuning.JitterX[r.rng.Intn(len(r.tuning.JitterX))]
	dy := r.tuning.JitterY[r.rng.Intn(len(r.tuning.JitterY))]

	if !bounds.Translate(dx, dy).StrictlyInside(r.playfield) {
		return false
	}
	if dx == 0 && dy == 0 {
		return false
	}
	r.canvas.MoveGroup(id, dx, dy)
	return true
}

// JitterAll 让每条鱼各游动一次，返回实际移动的鱼的数量
func (r *FishRegistry) JitterAll() int {
	moved := 0
	for _, id := range r.fish {
		if r.Jitter(id) {
			moved++
		}
	}
	return moved
}
