package entities

import (
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/ecs"
)

// NewPlantEntity 创建一株水草
// 水草是一条三点折线：根部、中点、顶端；摇摆时只移动中点
func NewPlantEntity(em *ecs.EntityManager, cv *canvas.Canvas, baseX, baseY, height float64, color string) ecs.EntityID {
	id := em.CreateEntity()

	shape := cv.DrawShape(components.ShapeLine,
		PlantCoords(baseX, baseY, height, 0),
		canvas.Style{Fill: color, Width: 3})

	cv.Own(id, shape)
	em.AddComponent(id, &components.PlantComponent{
		Shape:  shape,
		BaseX:  baseX,
		BaseY:  baseY,
		Height: height,
	})

	return id
}

// PlantCoords 计算水草折线坐标，sway 为中点的水平偏移
func PlantCoords(baseX, baseY, height, sway float64) []float64 {
	return []float64{
		baseX, baseY,
		baseX + sway, baseY - height/2,
		baseX, baseY - height,
	}
}
