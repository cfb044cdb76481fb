package entities

import (
	"math/rand"

	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/config"
)

// rockColors 石头的候选颜色
var rockColors = []string{"#666666", "#777777", "#888888"}

// NewSeabed 绘制静态的海底：沙地、贝壳和石头
// 这些图形不归属任何实体，点击时被忽略
//
// 参数:
//   - cv: 画布
//   - rng: 随机数源，决定贝壳和石头的位置
//   - shells, rocks: 贝壳和石头数量
//
// 返回: 所有图形句柄，沙地在最前
func NewSeabed(cv *canvas.Canvas, rng *rand.Rand, shells, rocks int) []canvas.ShapeID {
	w, h := float64(config.GameWindowWidth), float64(config.GameWindowHeight)
	ids := make([]canvas.ShapeID, 0, 1+shells+rocks)

	ids = append(ids, cv.DrawShape(components.ShapeRectangle,
		[]float64{0, h - config.SandHeight, w, h},
		canvas.Style{Fill: config.SandColor}))

	for i := 0; i < shells; i++ {
		x := float64(randInt(rng, 20, config.GameWindowWidth-20))
		y := float64(randInt(rng, config.GameWindowHeight-55, config.GameWindowHeight-10))
		ids = append(ids, cv.DrawShape(components.ShapeArc,
			[]float64{x, y, x + 20, y + 12},
			canvas.Style{Fill: "#fff5ee", Outline: config.SandColor}))
	}

	for i := 0; i < rocks; i++ {
		x := float64(randInt(rng, 0, config.GameWindowWidth))
		y := float64(randInt(rng, config.GameWindowHeight-50, config.GameWindowHeight-20))
		size := randInt(rng, 20, 50)
		color := rockColors[rng.Intn(len(rockColors))]
		ids = append(ids, cv.DrawShape(components.ShapeOval,
			[]float64{x, y, x + float64(size), y + float64(size/2)},
			canvas.Style{Fill: color, Outline: "#444444"}))
	}

	return ids
}

// randInt 返回 [lo, hi] 闭区间内的随机整数
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
