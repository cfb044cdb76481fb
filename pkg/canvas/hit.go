package canvas

import (
	"math"

	"github.com/decker502/fishcatch/pkg/components"
)

// hitSlop 命中测试时描边两侧额外的容差（像素）
const hitSlop = 1.0

// containsPoint 检查点 (x, y) 是否落在图形的可见部分上
// 有填充的图形按内部区域判定，没有填充的只判定描边附近
func containsPoint(shape *components.ShapeComponent, x, y float64) bool {
	pts := shape.Points
	st := shape.Style
	tol := st.Width/2 + hitSlop

	switch shape.Kind {
	case components.ShapeRectangle:
		if len(pts) < 4 {
			return false
		}
		r := normalizedRect(pts)
		if st.HasFill {
			return r.Contains(x, y)
		}
		return r.Inset(tol).Contains(x, y) && !r.Inset(-tol).Contains(x, y)

	case components.ShapeOval:
		if len(pts) < 4 {
			return false
		}
		cx, cy, rx, ry := ellipseOf(pts)
		if st.HasFill {
			return inEllipse(x, y, cx, cy, rx+tol, ry+tol)
		}
		return onEllipse(x, y, cx, cy, rx, ry, tol)

	case components.ShapeArc:
		if len(pts) < 4 {
			return false
		}
		cx, cy, rx, ry := ellipseOf(pts)
		if y > cy+tol {
			return false
		}
		if st.HasFill {
			return inEllipse(x, y, cx, cy, rx+tol, ry+tol)
		}
		return onEllipse(x, y, cx, cy, rx, ry, tol) ||
			nearSegment(x, y, cx-rx, cy, cx+rx, cy, tol)

	case components.ShapePolygon:
		if len(pts) < 6 {
			return false
		}
		if nearPolyline(x, y, pts, true, tol) {
			return true
		}
		return st.HasFill && inPolygon(x, y, pts)

	case components.ShapeLine:
		if len(pts) < 4 {
			return false
		}
		return nearPolyline(x, y, pts, false, tol)

	default:
		return true
	}
}

func normalizedRect(pts []float64) Rect {
	return Rect{
		MinX: min(pts[0], pts[2]),
		MinY: min(pts[1], pts[3]),
		MaxX: max(pts[0], pts[2]),
		MaxY: max(pts[1], pts[3]),
	}
}

// ellipseOf 返回外接矩形坐标对应的椭圆中心与半轴
func ellipseOf(pts []float64) (cx, cy, rx, ry float64) {
	r := normalizedRect(pts)
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2, r.Width() / 2, r.Height() / 2
}

func inEllipse(x, y, cx, cy, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx, dy := (x-cx)/rx, (y-cy)/ry
	return dx*dx+dy*dy <= 1
}

// onEllipse 检查点是否落在椭圆描边的 tol 范围内
func onEllipse(x, y, cx, cy, rx, ry, tol float64) bool {
	if !inEllipse(x, y, cx, cy, rx+tol, ry+tol) {
		return false
	}
	if rx-tol <= 0 || ry-tol <= 0 {
		return true
	}
	return !inEllipse(x, y, cx, cy, rx-tol, ry-tol)
}

// inPolygon 射线法判断点是否在多边形内部
func inPolygon(x, y float64, pts []float64) bool {
	inside := false
	n := len(pts) / 2
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := pts[2*i], pts[2*i+1]
		xj, yj := pts[2*j], pts[2*j+1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// nearPolyline 检查点到折线（closed 时首尾相连）的距离是否不超过 tol
func nearPolyline(x, y float64, pts []float64, closed bool, tol float64) bool {
	n := len(pts) / 2
	for i := 0; i+1 < n; i++ {
		if nearSegment(x, y, pts[2*i], pts[2*i+1], pts[2*i+2], pts[2*i+3], tol) {
			return true
		}
	}
	if closed && n > 2 {
		return nearSegment(x, y, pts[2*n-2], pts[2*n-1], pts[0], pts[1], tol)
	}
	return false
}

func nearSegment(px, py, x1, y1, x2, y2, tol float64) bool {
	dx, dy := x2-x1, y2-y1
	t := 0.0
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = math.Max(0, math.Min(1, ((px-x1)*dx+(py-y1)*dy)/l2))
	}
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy)) <= tol
}
