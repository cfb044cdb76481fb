package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理音效的加载与播放
//   - 音频缺失或损坏时只记录警告，不影响游戏流程
type AudioManager struct {
	resourceManager *ResourceManager
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（路径 -> 播放器）
	failed          map[string]bool          // 加载失败的路径，避免重复警告
	volume          float64
	logger          *log.Logger
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - logger: 日志记录器，可为 nil
func NewAudioManager(rm *ResourceManager, logger *log.Logger) *AudioManager {
	if logger == nil {
		logger = log.Default()
	}
	return &AudioManager{
		resourceManager: rm,
		soundPlayers:    make(map[string]*audio.Player),
		failed:          make(map[string]bool),
		volume:          1.0,
		logger:          logger.WithPrefix("AudioManager"),
	}
}

// PlaySound 播放音效，单次播放，不等待结束
//
// 参数：
//   - path: 音频文件路径（.mp3 或 .ogg）
//
// 返回：
//   - bool: 是否成功开始播放
func (am *AudioManager) PlaySound(path string) bool {
	player := am.getSoundPlayer(path)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		am.logger.Warn("failed to rewind sound", "path", path, "err", err)
	}
	player.Play()
	am.logger.Debug("playing sound", "path", path)
	return true
}

// SetSoundVolume 设置音效音量，范围 0.0 ~ 1.0
func (am *AudioManager) SetSoundVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	am.volume = volume
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(path string) *audio.Player {
	if player, exists := am.soundPlayers[path]; exists {
		return player
	}
	if am.failed[path] {
		return nil
	}

	player, err := am.resourceManager.LoadSoundEffect(path)
	if err != nil {
		am.failed[path] = true
		am.logger.Warn("sound unavailable", "path", path, "err", err)
		return nil
	}
	am.soundPlayers[path] = player
	return player
}
