package game

import (
	"time"

	"github.com/decker502/fishcatch/pkg/ecs"
)

// SessionState 一局游戏的状态
type SessionState int

const (
	// SessionRunning 进行中，倒计时和鱼的抖动都在运行
	SessionRunning SessionState = iota
	// SessionWon 点中了目标鱼
	SessionWon
	// SessionLost 点错了鱼或超时
	SessionLost
)

// String 返回状态名称
func (s SessionState) String() string {
	switch s {
	case SessionRunning:
		return "Running"
	case SessionWon:
		return "Won"
	case SessionLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// EndReason 游戏结束的原因
type EndReason int

const (
	// EndNone 尚未结束
	EndNone EndReason = iota
	// EndCaught 点中目标鱼
	EndCaught
	// EndWrongFish 点中了其他鱼
	EndWrongFish
	// EndTimeout 时间耗尽
	EndTimeout
)

// String 返回结束原因名称
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndCaught:
		return "caught"
	case EndWrongFish:
		return "wrong fish"
	case EndTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Session 一局游戏的状态机
//
// 状态只能从 Running 单向转移到 Won 或 Lost，且只转移一次。
// 目标鱼只能设置一次。时间来自注入的时钟，测试可以完全控制。
type Session struct {
	clock  func() time.Duration
	start  time.Duration
	limit  time.Duration
	state  SessionState
	reason EndReason
	target ecs.EntityID
}

// NewSession 创建一局新游戏，开始时间取自 clock 的当前值
//
// 参数:
//   - clock: 返回当前游戏时间的函数（通常是调度器的 Now）
//   - limit: 时间上限，到达即超时
func NewSession(clock func() time.Duration, limit time.Duration) *Session {
	return &Session{
		clock:  clock,
		start:  clock(),
		limit:  limit,
		state:  SessionRunning,
		target: ecs.InvalidEntity,
	}
}

// State 返回当前状态
func (s *Session) State() SessionState {
	return s.state
}

// Reason 返回结束原因，进行中时为 EndNone
func (s *Session) Reason() EndReason {
	return s.reason
}

// IsRunning 是否仍在进行中
func (s *Session) IsRunning() bool {
	return s.state == SessionRunning
}

// IsTerminal 是否已结束
func (s *Session) IsTerminal() bool {
	return s.state != SessionRunning
}

// Limit 返回时间上限
func (s *Session) Limit() time.Duration {
	return s.limit
}

// Elapsed 返回从开局到现在经过的游戏时间
func (s *Session) Elapsed() time.Duration {
	return s.clock() - s.start
}

// Remaining 返回剩余时间，不小于 0
func (s *Session) Remaining() time.Duration {
	left := s.limit - s.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// TimedOut 经过时间是否已达到上限
func (s *Session) TimedOut() bool {
	return s.Elapsed() >= s.limit
}

// SetTarget 设置目标鱼，只能调用一次
func (s *Session) SetTarget(id ecs.EntityID) error {
	if id == ecs.InvalidEntity {
		return ErrInvalidTarget
	}
	if s.target != ecs.InvalidEntity {
		return ErrTargetAlreadyChosen
	}
	s.target = id
	return nil
}

// Target 返回目标鱼；尚未选择时第二个返回值为 false
func (s *Session) Target() (ecs.EntityID, bool) {
	return s.target, s.target != ecs.InvalidEntity
}

// Win 转移到 Won；已结束时不做任何事并返回 false
func (s *Session) Win() bool {
	return s.finish(SessionWon, EndCaught)
}

// Lose 转移到 Lost；已结束时不做任何事并返回 false
func (s *Session) Lose(reason EndReason) bool {
	return s.finish(SessionLost, reason)
}

func (s *Session) finish(state SessionState, reason EndReason) bool {
	if s.state != SessionRunning {
		return false
	}
	s.state = state
	s.reason = reason
	return true
}
