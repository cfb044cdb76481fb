package entities

import (
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/ecs"
)

// crabLegOffsets 六条腿相对身体左边缘的 X 偏移
var crabLegOffsets = []float64{2, 8, 14, 26, 32, 38}

// NewCrabEntity 创建螃蟹
// 参数:
//   - em: EntityManager 实例
//   - cv: 画布
//   - x, y: 身体外接矩形左上角（身体 40x25）
//   - speed: 每次 tick 的水平位移
//
// 返回: 螃蟹实体ID，初始向右爬行
func NewCrabEntity(em *ecs.EntityManager, cv *canvas.Canvas, x, y, speed float64) ecs.EntityID {
	id := em.CreateEntity()

	shapes := []canvas.ShapeID{
		// 身体
		cv.DrawShape(components.ShapeOval, []float64{x, y, x + 40, y + 25},
			canvas.Style{Fill: "maroon", Outline: "darkred"}),
		// 眼睛
		cv.DrawShape(components.ShapeOval, []float64{x + 8, y - 8, x + 14, y - 2},
			canvas.Style{Fill: "white", Outline: "black"}),
		cv.DrawShape(components.ShapeOval, []float64{x + 26, y - 8, x + 32, y - 2},
			canvas.Style{Fill: "white", Outline: "black"}),
		cv.DrawShape(components.ShapeOval, []float64{x + 10, y - 6, x + 12, y - 4},
			canvas.Style{Fill: "black"}),
		cv.DrawShape(components.ShapeOval, []float64{x + 28, y - 6, x + 30, y - 4},
			canvas.Style{Fill: "black"}),
		// 钳子
		cv.DrawShape(components.ShapeOval, []float64{x - 10, y + 5, x, y + 15},
			canvas.Style{Fill: "red", Outline: "black"}),
		cv.DrawShape(components.ShapeOval, []float64{x + 40, y + 5, x + 50, y + 15},
			canvas.Style{Fill: "red", Outline: "black"}),
	}
	for _, dx := range crabLegOffsets {
		shapes = append(shapes, cv.DrawShape(components.ShapeLine,
			[]float64{x + dx, y + 25, x + dx, y + 35},
			canvas.Style{Fill: "black"}))
	}

	cv.Own(id, shapes...)
	em.AddComponent(id, &components.CrabComponent{
		Direction: 1,
		Speed:     speed,
	})

	return id
}
