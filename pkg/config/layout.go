package config

import "time"

// 窗口与布局配置常量
// 本文件定义了水族箱场景的尺寸、鱼的尺寸和游戏时长等编译期常量
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// WindowTitle 窗口标题
	WindowTitle = "Catch the Fish!"

	// FishWidth 鱼身宽度（像素）
	FishWidth = 60.0

	// FishHeight 鱼身高度（像素）
	FishHeight = 30.0

	// FishTailLength 鱼尾向鱼身左侧伸出的长度
	FishTailLength = 20.0

	// FishFinHeight 背鳍高出鱼身上沿的高度
	FishFinHeight = 15.0

	// GameDuration 一局游戏的时长，超时即失败
	GameDuration = 10 * time.Second

	// PromptMargin 顶部提示文字区域的高度，鱼不能游入
	PromptMargin = 100.0

	// SandHeight 底部沙地的高度
	SandHeight = 60.0

	// WinSoundPath 获胜音乐（本地文件，缺失时只记录警告）
	WinSoundPath = "assets/audio/orchestral-glory.mp3"

	// BackgroundColor 海水背景色
	BackgroundColor = "#66ccff"

	// SandColor 沙地颜色
	SandColor = "#d2b48c"
)

// FishColors 鱼的颜色集合，每种颜色一条鱼
var FishColors = []string{"orange", "blue", "green", "purple", "yellow", "pink", "red", "black"}

// PlayfieldBounds 返回鱼可活动的区域：min x, min y, max x, max y
// 比窗口小：顶部留出提示文字区域，底部去掉沙地
func PlayfieldBounds() (float64, float64, float64, float64) {
	return 0, PromptMargin, GameWindowWidth, GameWindowHeight - SandHeight
}
