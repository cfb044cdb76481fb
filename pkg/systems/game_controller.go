package systems

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/ecs"
	"github.com/decker502/fishcatch/pkg/entities"
	"github.com/decker502/fishcatch/pkg/game"
	"github.com/decker502/fishcatch/pkg/scheduler"
)

// 结局文字
const (
	WinText  = "You Win!"
	LoseText = "Wrong Fish!"

	statusFontSize = 28.0
	timerFontSize  = 16.0
	timerX         = config.GameWindowWidth - 70.0
	timerY         = 30.0
)

// SoundPlayer 播放一次性音效
// 返回 false 表示音效不可用，调用方不应因此中断流程
type SoundPlayer interface {
	PlaySound(path string) bool
}

// GameController 一局游戏的控制器
//
// 职责：
//   - 以随机间隔推进倒计时，每次 tick 先检查超时，未超时再让鱼游动
//   - 处理鱼的点击，判定胜负
//   - 获胜时播放音乐并放下渔网
//   - 结局文字只绘制一次
//
// 结束后倒计时任务自动停止；装饰动画不受影响。
type GameController struct {
	entityManager *ecs.EntityManager
	canvas        *canvas.Canvas
	scheduler     *scheduler.Scheduler
	session       *game.Session
	registry      *FishRegistry
	sound         SoundPlayer
	tuning        *config.Tuning
	rng           *rand.Rand
	winSoundPath  string

	countdown scheduler.TaskID
	started   bool
	status    canvas.ShapeID // 结局文字
	timer     canvas.ShapeID // 剩余时间
	net       ecs.EntityID   // 下落中的渔网
	netDone   bool           // 渔网已经落出窗口
	ticks     int            // 已执行的倒计时 tick 数

	logger *log.Logger
}

// NewGameController 创建游戏控制器
//
// 参数:
//   - em: EntityManager 实例
//   - cv: 画布
//   - sched: 调度器，其 Now 也是会话的时钟
//   - session: 本局会话，目标鱼应已选定
//   - registry: 鱼群注册表
//   - sound: 音效播放器，可为 nil
//   - tuning: 调参，获胜音乐路径取自 tuning.Audio.WinSound
//   - rng: 随机数源（倒计时间隔）
//   - logger: 日志记录器，可为 nil
func NewGameController(em *ecs.EntityManager, cv *canvas.Canvas, sched *scheduler.Scheduler, session *game.Session,
	registry *FishRegistry, sound SoundPlayer, tuning *config.Tuning, rng *rand.Rand, logger *log.Logger) *GameController {
	if logger == nil {
		logger = log.Default()
	}
	winSound := tuning.Audio.WinSound
	if winSound == "" {
		winSound = config.WinSoundPath
	}
	return &GameController{
		entityManager: em,
		canvas:        cv,
		scheduler:     sched,
		session:       session,
		registry:      registry,
		sound:         sound,
		tuning:        tuning,
		rng:           rng,
		winSoundPath:  winSound,
		status:        ecs.InvalidEntity,
		timer:         ecs.InvalidEntity,
		net:           ecs.InvalidEntity,
		logger:        logger.WithPrefix("GameController"),
	}
}

// Start 显示剩余时间并启动倒计时；重复调用无效
func (c *GameController) Start() {
	if c.started {
		return
	}
	c.started = true

	c.timer = c.canvas.DrawText(timerX, timerY, TimerText(c.session),
		canvas.Style{Fill: "white", FontSize: timerFontSize})

	minDelay, maxDelay := c.tuning.CountdownRange()
	c.countdown = c.scheduler.EveryRandom(minDelay, maxDelay, c.rng, c.session.IsRunning, c.tick)
	c.logger.Info("countdown started", "limit", c.session.Limit(), "tick", fmt.Sprintf("%v-%v", minDelay, maxDelay))
}

// tick 倒计时的一步：先判超时，再让鱼游动
func (c *GameController) tick() {
	if !c.session.IsRunning() {
		return
	}
	c.ticks++

	if c.session.TimedOut() {
		c.logger.Info("time is up", "elapsed", c.session.Elapsed())
		c.end(game.EndTimeout)
		return
	}

	moved := c.registry.JitterAll()
	c.canvas.SetText(c.timer, TimerText(c.session))
	c.logger.Debug("countdown tick", "tick", c.ticks, "moved", moved, "remaining", c.session.Remaining())
}

// OnFishClicked 处理对鱼的点击
// 游戏结束后的点击被忽略。
//
// 返回: 本次点击是否改变了游戏状态
func (c *GameController) OnFishClicked(id ecs.EntityID) bool {
	if !c.session.IsRunning() {
		c.logger.Debug("click ignored, game over", "fish", id)
		return false
	}

	target, _ := c.session.Target()
	if id == target {
		c.logger.Info("target fish caught", "fish", id)
		c.win()
		return true
	}

	color, _ := c.registry.Color(id)
	c.logger.Info("wrong fish clicked", "fish", id, "color", color)
	c.end(game.EndWrongFish)
	return true
}

func (c *GameController) win() {
	if !c.session.Win() {
		return
	}
	if c.sound == nil || !c.sound.PlaySound(c.winSoundPath) {
		c.logger.Warn("win sound unavailable, continuing", "path", c.winSoundPath)
	}
	c.startNet()
	c.showStatus()
}

// end 以失败结束本局；已结束时无效果
func (c *GameController) end(reason game.EndReason) {
	if !c.session.Lose(reason) {
		return
	}
	c.logger.Info("game lost", "reason", reason)
	c.showStatus()
}

// showStatus 绘制结局文字，只绘制一次
func (c *GameController) showStatus() {
	if c.status != ecs.InvalidEntity {
		return
	}
	text, color := LoseText, "black"
	if c.session.State() == game.SessionWon {
		text, color = WinText, "white"
	}
	c.status = c.canvas.DrawText(config.GameWindowWidth/2, config.GameWindowHeight/2, text,
		canvas.Style{Fill: color, FontSize: statusFontSize})
}

// startNet 在目标鱼周围放下渔网，之后每个 tick 下移，落出窗口后删除
func (c *GameController) startNet() {
	if c.net != ecs.InvalidEntity || c.netDone {
		return
	}
	target, _ := c.session.Target()
	bounds, ok := c.registry.Bounds(target)
	if !ok {
		c.logger.Warn("target fish has no bounds, skipping net", "fish", target)
		return
	}

	nt := c.tuning.Net
	c.net = entities.NewNetEntity(c.entityManager, c.canvas, bounds, nt.Padding, nt.Color, nt.Step)
	c.scheduler.Every(c.tuning.NetInterval(), c.netActive, c.netTick)
	c.logger.Debug("net dropped", "net", c.net)
}

func (c *GameController) netActive() bool {
	return c.net != ecs.InvalidEntity
}

func (c *GameController) netTick() {
	c.canvas.MoveGroup(c.net, 0, c.tuning.Net.Step)

	r, ok := c.canvas.GroupBounds(c.net)
	if ok && r.MaxY <= config.GameWindowHeight {
		return
	}
	c.canvas.DeleteGroup(c.net)
	c.net = ecs.InvalidEntity
	c.netDone = true
	c.logger.Debug("net removed")
}

// Session 返回本局会话
func (c *GameController) Session() *game.Session {
	return c.session
}

// Net 返回下落中的渔网实体
func (c *GameController) Net() (ecs.EntityID, bool) {
	return c.net, c.net != ecs.InvalidEntity
}

// NetFinished 渔网是否已经落出窗口
func (c *GameController) NetFinished() bool {
	return c.netDone
}

// Status 返回结局文字的图形句柄
func (c *GameController) Status() (canvas.ShapeID, bool) {
	return c.status, c.status != ecs.InvalidEntity
}

// Ticks 返回已执行的倒计时 tick 数
func (c *GameController) Ticks() int {
	return c.ticks
}

// TimerText 生成剩余时间文字
func TimerText(s *game.Session) string {
	return fmt.Sprintf("Time: %.1fs", s.Remaining().Seconds())
}
