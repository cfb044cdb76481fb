package entities

import (
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/ecs"
)

// NewNetEntity 在目标区域外扩 padding 处创建渔网
// 渔网是一个只有描边的矩形
//
// 参数:
//   - around: 被捕获的鱼的包围盒
//   - padding: 渔网比鱼大出的距离
//   - color: 渔网颜色
//   - step: 每次 tick 的下移距离
func NewNetEntity(em *ecs.EntityManager, cv *canvas.Canvas, around canvas.Rect, padding float64, color string, step float64) ecs.EntityID {
	id := em.CreateEntity()

	r := around.Inset(padding)
	shape := cv.DrawShape(components.ShapeRectangle,
		[]float64{r.MinX, r.MinY, r.MaxX, r.MaxY},
		canvas.Style{Outline: color, Width: 3})

	cv.Own(id, shape)
	em.AddComponent(id, &components.NetComponent{Step: step})

	return id
}
