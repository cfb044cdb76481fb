package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/ecs"
	"github.com/decker502/fishcatch/pkg/game"
	"github.com/decker502/fishcatch/pkg/scheduler"
)

// frame 测试中模拟的一帧
const frame = time.Second / 60

// recordingSound 记录播放请求的音效播放器
type recordingSound struct {
	played    []string
	available bool
}

func (r *recordingSound) PlaySound(path string) bool {
	r.played = append(r.played, path)
	return r.available
}

// harness 组装一局游戏所需的全部系统
type harness struct {
	em         *ecs.EntityManager
	cv         *canvas.Canvas
	sched      *scheduler.Scheduler
	rng        *rand.Rand
	tuning     *config.Tuning
	session    *game.Session
	registry   *FishRegistry
	selector   *TargetSelector
	controller *GameController
	decor      *DecorSystem
	input      *InputSystem
	sound      *recordingSound
}

// newHarness 创建测试局面
// targetColor 非空时直接指定该颜色的鱼为目标，否则随机选择
func newHarness(t *testing.T, seed int64, colors []string, targetColor string) *harness {
	t.Helper()

	h := &harness{
		em:     ecs.NewEntityManager(),
		sched:  scheduler.New(),
		rng:    rand.New(rand.NewSource(seed)),
		tuning: config.DefaultTuning(),
		sound:  &recordingSound{available: true},
	}
	h.cv = canvas.New(h.em, nil)
	h.session = game.NewSession(h.sched.Now, config.GameDuration)
	h.registry = NewFishRegistry(h.em, h.cv, h.rng, h.tuning.Fish, nil)
	if err := h.registry.CreateAll(colors); err != nil {
		t.Fatalf("CreateAll failed: %v", err)
	}

	h.selector = NewTargetSelector(h.cv, h.registry, h.session, h.rng, nil)
	if targetColor != "" {
		id := h.fishByColor(t, targetColor)
		if err := h.session.SetTarget(id); err != nil {
			t.Fatalf("SetTarget failed: %v", err)
		}
	} else if _, err := h.selector.ChooseTarget(h.registry.Fish()); err != nil {
		t.Fatalf("ChooseTarget failed: %v", err)
	}

	h.controller = NewGameController(h.em, h.cv, h.sched, h.session, h.registry, h.sound, h.tuning, h.rng, nil)
	h.decor = NewDecorSystem(h.em, h.cv, h.sched, h.rng, h.tuning, nil)
	h.input = NewInputSystem(h.cv, h.registry, h.controller, nil)
	h.input.SetPointerSource(nil)
	return h
}

// fishByColor 查找指定颜色的鱼
func (h *harness) fishByColor(t *testing.T, color string) ecs.EntityID {
	t.Helper()
	for _, id := range h.registry.Fish() {
		if c, _ := h.registry.Color(id); c == color {
			return id
		}
	}
	t.Fatalf("no %s fish", color)
	return ecs.InvalidEntity
}

// advance 按帧推进游戏时间，与主循环一样每帧清理已删除实体
func (h *harness) advance(d time.Duration) {
	for end := h.sched.Now() + d; h.sched.Now() < end; {
		h.sched.Advance(frame)
		h.em.RemoveMarkedEntities()
	}
}

// statusText 返回结局文字
func (h *harness) statusText(t *testing.T) string {
	t.Helper()
	id, ok := h.controller.Status()
	if !ok {
		return ""
	}
	text, _ := h.cv.Text(id)
	return text
}
