// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/game"
	"github.com/decker502/fishcatch/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用调试日志（每次 tick 的细节）
	Verbose bool
	// TuningPath 嵌入的调参文件路径，为空时使用 config.TuningPath
	TuningPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	logger                   *log.Logger
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	logger := NewLogger(cfg.Verbose)

	tuningPath := cfg.TuningPath
	if tuningPath == "" {
		tuningPath = config.TuningPath
	}
	tuning, err := config.LoadTuningFile(tuningPath)
	if err != nil {
		return nil, fmt.Errorf("调参配置加载失败: %w", err)
	}
	logger.Info("tuning loaded", "path", tuningPath)

	// 初始化音频上下文
	audioContext := audio.NewContext(audioSampleRate)

	resourceManager := game.NewResourceManager(audioContext)
	audioManager := game.NewAudioManager(resourceManager, logger)
	audioManager.SetSoundVolume(tuning.Audio.Volume)

	scene, err := scenes.NewAquariumScene(resourceManager, audioManager, tuning, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager(logger)
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		logger:       logger.WithPrefix("App"),
	}, nil
}

// NewLogger 创建应用日志记录器，输出到标准错误
func NewLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.logger.Debug("delayed SetWindowSize", "width", config.GameWindowWidth, "height", config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
