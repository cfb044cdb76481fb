package entities

import (
	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/ecs"
)

// NewFishEntity 创建一条鱼
// 鱼由五个图形组成：身体、尾巴、背鳍、眼白、瞳孔，全部归属于同一个实体
//
// 参数:
//   - em: EntityManager 实例
//   - cv: 画布
//   - x, y: 鱼身外接矩形的左上角
//   - color: 鱼身颜色
//
// 返回: 鱼实体ID
func NewFishEntity(em *ecs.EntityManager, cv *canvas.Canvas, x, y float64, color string) ecs.EntityID {
	id := em.CreateEntity()

	w, h := config.FishWidth, config.FishHeight

	body := cv.DrawShape(components.ShapeOval,
		[]float64{x, y, x + w, y + h},
		canvas.Style{Fill: color, Outline: "darkred"})

	tail := cv.DrawShape(components.ShapePolygon,
		[]float64{
			x, y + h/2,
			x - config.FishTailLength, y,
			x - config.FishTailLength, y + h,
		},
		canvas.Style{Fill: "red", Outline: "darkred"})

	fin := cv.DrawShape(components.ShapePolygon,
		[]float64{
			x + 20, y,
			x + 30, y - config.FishFinHeight,
			x + 40, y,
		},
		canvas.Style{Fill: "darkorange", Outline: "black"})

	eye := cv.DrawShape(components.ShapeOval,
		[]float64{x + w - 15, y + 5, x + w - 5, y + 15},
		canvas.Style{Fill: "white", Outline: "black"})

	pupil := cv.DrawShape(components.ShapeOval,
		[]float64{x + w - 10, y + 8, x + w - 7, y + 12},
		canvas.Style{Fill: "black"})

	cv.Own(id, body, tail, fin, eye, pupil)
	em.AddComponent(id, &components.FishComponent{Color: color})

	return id
}
