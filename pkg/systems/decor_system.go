package systems

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/ecs"
	"github.com/decker502/fishcatch/pkg/entities"
	"github.com/decker502/fishcatch/pkg/scheduler"
)

// DecorSystem 水族箱的装饰动画：波浪、水草、气泡、螃蟹
//
// 四个周期任务互相独立，一旦启动就不会停止，也不影响胜负。
type DecorSystem struct {
	entityManager *ecs.EntityManager
	canvas        *canvas.Canvas
	scheduler     *scheduler.Scheduler
	rng           *rand.Rand
	tuning        *config.Tuning

	wavePhase  float64
	plantAngle float64
	crab       ecs.EntityID
	started    bool

	logger *log.Logger
}

// NewDecorSystem 创建装饰系统
func NewDecorSystem(em *ecs.EntityManager, cv *canvas.Canvas, sched *scheduler.Scheduler, rng *rand.Rand, tuning *config.Tuning, logger *log.Logger) *DecorSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &DecorSystem{
		entityManager: em,
		canvas:        cv,
		scheduler:     sched,
		rng:           rng,
		tuning:        tuning,
		crab:          ecs.InvalidEntity,
		logger:        logger.WithPrefix("DecorSystem"),
	}
}

// Setup 创建海底、波浪、水草和螃蟹
// 绘制顺序决定层次：沙地与波浪在最下，之后是贝壳、石头、水草、螃蟹
func (s *DecorSystem) Setup() {
	w, h := float64(config.GameWindowWidth), float64(config.GameWindowHeight)

	wt := s.tuning.Waves
	for i, color := range wt.Colors {
		width := 2 + float64(i)
		if i < len(wt.Widths) {
			width = wt.Widths[i]
		}
		baseline := wt.Baseline + wt.LayerSpacing*float64(i)
		speed := wt.SpeedBase + wt.SpeedStep*float64(i)
		entities.NewWaveEntity(s.entityManager, s.canvas, i, baseline, speed, color, width)
	}

	entities.NewSeabed(s.canvas, s.rng, s.tuning.Decor.Shells, s.tuning.Decor.Rocks)

	pt := s.tuning.Plants
	for x := pt.StartX; x < w; x += pt.Spacing {
		entities.NewPlantEntity(s.entityManager, s.canvas, x, h-pt.BaseOffset, pt.Height, pt.Color)
	}

	ct := s.tuning.Crab
	s.crab = entities.NewCrabEntity(s.entityManager, s.canvas, ct.StartX, h-ct.FloorDepth, ct.Speed)

	// 立即算出波浪形状，避免第一帧出现退化线条
	s.updateWaves()

	s.logger.Info("decor ready", "shapes", s.canvas.Len())
}

// Start 启动四个装饰周期任务；重复调用无效
func (s *DecorSystem) Start() {
	if s.started {
		return
	}
	s.started = true

	s.scheduler.Every(s.tuning.WaveInterval(), nil, s.tickWaves)
	s.scheduler.Every(s.tuning.PlantInterval(), nil, s.tickPlants)
	s.scheduler.Every(s.tuning.BubbleInterval(), nil, s.tickBubbles)
	s.scheduler.Every(s.tuning.CrabInterval(), nil, s.tickCrab)
}

// Crab 返回螃蟹实体
func (s *DecorSystem) Crab() ecs.EntityID {
	return s.crab
}

func (s *DecorSystem) tickWaves() {
	s.wavePhase += s.tuning.Waves.PhaseStep
	s.updateWaves()
}

// updateWaves 按当前相位重算每层波浪
// y = baseline + amplitude·sin(x·frequency + phase·speed)，x 从 0 到 width+step
func (s *DecorSystem) updateWaves() {
	wt := s.tuning.Waves
	for _, id := range ecs.GetEntitiesWith1[*components.WaveComponent](s.entityManager) {
		wave, ok := ecs.GetComponent[*components.WaveComponent](s.entityManager, id)
		if !ok || !s.entityManager.IsAlive(id) {
			continue
		}
		points := make([]float64, 0, 2*(int(config.GameWindowWidth/wt.SampleStep)+2))
		for x := 0.0; x < config.GameWindowWidth+wt.SampleStep; x += wt.SampleStep {
			y := wave.Baseline + wt.Amplitude*math.Sin(x*wt.Frequency+s.wavePhase*wave.Speed)
			points = append(points, x, y)
		}
		s.canvas.SetCoords(wave.Shape, points)
	}
}

// tickPlants 水草摇摆：中点水平偏移 amplitude·sin(angle + baseX·spatialPhase)
func (s *DecorSystem) tickPlants() {
	pt := s.tuning.Plants
	s.plantAngle += pt.SwayStep
	for _, id := range ecs.GetEntitiesWith1[*components.PlantComponent](s.entityManager) {
		plant, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		if !ok || !s.entityManager.IsAlive(id) {
			continue
		}
		sway := pt.Amplitude * math.Sin(s.plantAngle+plant.BaseX*pt.SpatialPhase)
		s.canvas.SetCoords(plant.Shape, entities.PlantCoords(plant.BaseX, plant.BaseY, plant.Height, sway))
	}
}

// tickBubbles 按概率生成新气泡，所有气泡上升，顶端越过窗口上沿的删除
func (s *DecorSystem) tickBubbles() {
	bt := s.tuning.Bubbles
	if s.rng.Float64() < bt.SpawnChance {
		lo := int(bt.SpawnMargin)
		hi := config.GameWindowWidth - int(bt.SpawnMargin)
		x := float64(lo + s.rng.Intn(hi-lo+1))
		size := float64(bt.MinSize + s.rng.Intn(bt.MaxSize-bt.MinSize+1))
		speed := bt.MinSpeed + s.rng.Float64()*(bt.MaxSpeed-bt.MinSpeed)
		entities.NewBubbleEntity(s.entityManager, s.canvas, x, config.GameWindowHeight-bt.FloorOffset, size, speed)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.BubbleComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		bubble, _ := ecs.GetComponent[*components.BubbleComponent](s.entityManager, id)
		s.canvas.Move(id, 0, -bubble.RiseSpeed)
		if r, ok := s.canvas.Bounds(id); ok && r.MinY < 0 {
			s.canvas.Delete(id)
		}
	}
}

// tickCrab 螃蟹横向移动，碰到窗口左右边缘时先掉头再移动
func (s *DecorSystem) tickCrab() {
	crab, ok := ecs.GetComponent[*components.CrabComponent](s.entityManager, s.crab)
	if !ok {
		return
	}
	if r, ok := s.canvas.GroupBounds(s.crab); ok {
		if (r.MaxX >= config.GameWindowWidth && crab.Direction > 0) || (r.MinX <= 0 && crab.Direction < 0) {
			crab.Direction = -crab.Direction
		}
	}
	s.canvas.MoveGroup(s.crab, crab.Speed*crab.Direction, 0)
}
