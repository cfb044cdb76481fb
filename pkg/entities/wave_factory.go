package entities

import (
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/ecs"
)

// NewWaveEntity 创建一层波浪
// 折线坐标在第一次 tick 时才计算，创建时为退化的一点
//
// 参数:
//   - layer: 层序号
//   - baseline: 基线 Y 坐标
//   - speed: 相位速度倍率
//   - color, width: 线条颜色与宽度
func NewWaveEntity(em *ecs.EntityManager, cv *canvas.Canvas, layer int, baseline, speed float64, color string, width float64) ecs.EntityID {
	id := em.CreateEntity()

	shape := cv.DrawShape(components.ShapeLine,
		[]float64{0, baseline, 0, baseline},
		canvas.Style{Fill: color, Width: width})

	cv.Own(id, shape)
	em.AddComponent(id, &components.WaveComponent{
		Shape:    shape,
		Layer:    layer,
		Baseline: baseline,
		Speed:    speed,
	})

	return id
}
