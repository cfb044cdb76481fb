package game

import "errors"

var (
	// ErrTargetAlreadyChosen 目标鱼在一局中只能选择一次
	ErrTargetAlreadyChosen = errors.New("target fish already chosen")

	// ErrInvalidTarget 目标鱼实体 ID 无效
	ErrInvalidTarget = errors.New("invalid target fish")

	// ErrUnsupportedAudio 音频格式不受支持
	ErrUnsupportedAudio = errors.New("unsupported audio format")

	// ErrNoAudioContext 未提供音频上下文，无法创建播放器
	ErrNoAudioContext = errors.New("audio context not available")
)
