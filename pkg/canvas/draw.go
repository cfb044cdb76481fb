package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/fishcatch/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ovalSegments 椭圆近似使用的线段数
const ovalSegments = 36

var whiteImage *ebiten.Image

// whiteSubImage 返回用于 DrawTriangles 的 1x1 白色源图
// 延迟创建，避免在没有图形上下文的测试中触发
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Draw 按创建顺序绘制所有图形
func (c *Canvas) Draw(screen *ebiten.Image) {
	for _, id := range c.order {
		shape, ok := c.shape(id)
		if !ok {
			continue
		}
		c.drawShape(screen, shape)
	}
}

func (c *Canvas) drawShape(screen *ebiten.Image, shape *components.ShapeComponent) {
	st := shape.Style
	pts := shape.Points

	switch shape.Kind {
	case components.ShapeRectangle:
		if len(pts) < 4 {
			return
		}
		x1, y1 := float32(min(pts[0], pts[2])), float32(min(pts[1], pts[3]))
		w, h := float32(math.Abs(pts[2]-pts[0])), float32(math.Abs(pts[3]-pts[1]))
		if st.HasFill {
			vector.DrawFilledRect(screen, x1, y1, w, h, st.Fill, true)
		}
		if st.HasOutline {
			vector.StrokeRect(screen, x1, y1, w, h, float32(st.Width), st.Outline, true)
		}

	case components.ShapeOval:
		if len(pts) < 4 {
			return
		}
		path := ellipsePath(pts[0], pts[1], pts[2], pts[3], 0, 2*math.Pi, false)
		fillAndStroke(screen, path, st)

	case components.ShapeArc:
		if len(pts) < 4 {
			return
		}
		path := ellipsePath(pts[0], pts[1], pts[2], pts[3], math.Pi, 2*math.Pi, true)
		fillAndStroke(screen, path, st)

	case components.ShapePolygon:
		if len(pts) < 6 {
			return
		}
		path := polylinePath(pts)
		path.Close()
		fillAndStroke(screen, path, st)

	case components.ShapeLine:
		if len(pts) < 4 {
			return
		}
		clr := st.Fill
		if !st.HasFill {
			clr = st.Outline
		}
		strokePath(screen, polylinePath(pts), st.Width, clr)

	case components.ShapeText:
		c.drawText(screen, shape)
	}
}

func (c *Canvas) drawText(screen *ebiten.Image, shape *components.ShapeComponent) {
	if len(shape.Points) < 2 {
		return
	}
	x, y := shape.Points[0], shape.Points[1]

	var face *text.GoTextFace
	if c.faces != nil {
		face = c.faces(shape.Style.FontSize)
	}
	if face == nil {
		ebitenutil.DebugPrintAt(screen, shape.Text,
			int(x-shape.TextWidth/2), int(y-shape.TextHeight/2))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = shape.Style.FontSize * 1.2
	op.ColorScale.ScaleWithColor(shape.Style.Fill)
	text.Draw(screen, shape.Text, face, op)
}

// ellipsePath 构造外接矩形 (x1,y1)-(x2,y2) 内从 start 到 end 的椭圆弧
// pie 为 true 时闭合到圆心，形成扇形
func ellipsePath(x1, y1, x2, y2, start, end float64, pie bool) *vector.Path {
	cx, cy := (x1+x2)/2, (y1+y2)/2
	rx, ry := math.Abs(x2-x1)/2, math.Abs(y2-y1)/2

	path := &vector.Path{}
	for i := 0; i <= ovalSegments; i++ {
		a := start + (end-start)*float64(i)/ovalSegments
		px := float32(cx + rx*math.Cos(a))
		py := float32(cy + ry*math.Sin(a))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	if pie {
		path.LineTo(float32(cx), float32(cy))
	}
	path.Close()
	return path
}

func polylinePath(pts []float64) *vector.Path {
	path := &vector.Path{}
	path.MoveTo(float32(pts[0]), float32(pts[1]))
	for i := 2; i+1 < len(pts); i += 2 {
		path.LineTo(float32(pts[i]), float32(pts[i+1]))
	}
	return path
}

func fillAndStroke(screen *ebiten.Image, path *vector.Path, st components.ShapeStyle) {
	if st.HasFill {
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		drawVertices(screen, vs, is, st.Fill)
	}
	if st.HasOutline {
		strokePath(screen, path, st.Width, st.Outline)
	}
}

func strokePath(screen *ebiten.Image, path *vector.Path, width float64, clr color.RGBA) {
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(screen, vs, is, clr)
}

func drawVertices(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage(), op)
}
