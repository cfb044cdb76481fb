package components

import "github.com/decker502/fishcatch/pkg/ecs"

// FishComponent 标记一条鱼
type FishComponent struct {
	Color string // 鱼的颜色名，同时作为提示文字的一部分
}

// BubbleComponent 上升的气泡，挂在气泡图形实体上
type BubbleComponent struct {
	RiseSpeed float64 // 每次 tick 上升的像素数
}

// CrabComponent 在沙地上来回爬行的螃蟹
type CrabComponent struct {
	Direction float64 // +1 向右，-1 向左
	Speed     float64 // 每次 tick 移动的像素数
}

// WaveComponent 一层波浪
type WaveComponent struct {
	Shape    ecs.EntityID // 波浪折线图形
	Layer    int          // 层序号，从 0 开始
	Baseline float64      // 基线 Y 坐标
	Speed    float64      // 相位速度倍率，不同层不同值形成视差
}

// PlantComponent 摇摆的水草
type PlantComponent struct {
	Shape  ecs.EntityID // 水草折线图形
	BaseX  float64
	BaseY  float64
	Height float64
}

// NetComponent 获胜后下落的渔网
type NetComponent struct {
	Step float64 // 每次 tick 下移的像素数
}
