package entities

import (
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/ecs"
)

// NewBubbleEntity 创建一个气泡
// 气泡只有一个白色描边圆，BubbleComponent 直接挂在图形实体上
func NewBubbleEntity(em *ecs.EntityManager, cv *canvas.Canvas, x, y, size, riseSpeed float64) ecs.EntityID {
	id := cv.DrawShape(components.ShapeOval,
		[]float64{x, y, x + size, y + size},
		canvas.Style{Outline: "white", Width: 1})

	em.AddComponent(id, &components.BubbleComponent{RiseSpeed: riseSpeed})
	return id
}
