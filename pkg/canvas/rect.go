package canvas

// Rect 轴对齐矩形（包围盒），Min 为左上角，Max 为右下角
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width 返回宽度
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height 返回高度
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Contains 检查点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// StrictlyInside 检查 r 是否严格位于 outer 内部（不接触边界）
func (r Rect) StrictlyInside(outer Rect) bool {
	return r.MinX > outer.MinX && r.MaxX < outer.MaxX &&
		r.MinY > outer.MinY && r.MaxY < outer.MaxY
}

// Translate 返回平移后的矩形
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Union 返回同时包含 r 和 o 的最小矩形
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Inset 返回四边各向外扩展 d 像素的矩形（d 为负时向内收缩）
func (r Rect) Inset(d float64) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

// boundsOfPoints 计算坐标序列 x0, y0, x1, y1, ... 的包围盒
func boundsOfPoints(points []float64) (Rect, bool) {
	if len(points) < 2 {
		return Rect{}, false
	}
	r := Rect{MinX: points[0], MinY: points[1], MaxX: points[0], MaxY: points[1]}
	for i := 2; i+1 < len(points); i += 2 {
		x, y := points[i], points[i+1]
		r.MinX = min(r.MinX, x)
		r.MinY = min(r.MinY, y)
		r.MaxX = max(r.MaxX, x)
		r.MaxY = max(r.MaxY, y)
	}
	return r, true
}
