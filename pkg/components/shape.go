package components

import (
	"image/color"

	"github.com/decker502/fishcatch/pkg/ecs"
)

// ShapeKind 图形种类
type ShapeKind int

const (
	// ShapeRectangle 矩形，坐标为 x1, y1, x2, y2
	ShapeRectangle ShapeKind = iota
	// ShapeOval 椭圆，坐标为外接矩形 x1, y1, x2, y2
	ShapeOval
	// ShapePolygon 多边形，坐标为顶点序列 x0, y0, x1, y1, ...
	ShapePolygon
	// ShapeLine 折线，坐标为顶点序列
	ShapeLine
	// ShapeArc 上半椭圆扇形（贝壳），坐标为外接矩形
	ShapeArc
	// ShapeText 文本，坐标为中心点 x, y
	ShapeText
)

// String 返回图形种类名称（用于日志）
func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeOval:
		return "oval"
	case ShapePolygon:
		return "polygon"
	case ShapeLine:
		return "line"
	case ShapeArc:
		return "arc"
	case ShapeText:
		return "text"
	default:
		return "unknown"
	}
}

// ShapeStyle 已解析的绘制样式
type ShapeStyle struct {
	Fill       color.RGBA
	Outline    color.RGBA
	HasFill    bool    // 是否填充
	HasOutline bool    // 是否描边
	Width      float64 // 描边宽度（像素）
	FontSize   float64 // 字号（仅文本）
}

// ShapeComponent 画布上的一个保留图形
// 图形本身是一个实体，Points 为世界坐标
type ShapeComponent struct {
	Kind   ShapeKind
	Points []float64
	Style  ShapeStyle
	Text   string // 仅 ShapeText 使用

	// TextWidth/TextHeight 文本的测量尺寸，用于包围盒计算
	TextWidth  float64
	TextHeight float64
}

// GroupComponent 拥有一组图形的逻辑实体（如一条鱼、螃蟹、渔网）
// 点击命中某个图形后，通过画布的归属表找到该实体
type GroupComponent struct {
	Shapes []ecs.EntityID
}
