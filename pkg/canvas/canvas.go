// Package canvas 提供保留模式的图形画布
//
// 画布上的每个图形都是 ecs 中的一个实体（带 ShapeComponent），
// 由不透明的 ShapeID 标识。逻辑实体（鱼、螃蟹、渔网）通过 Own 声明
// 自己拥有哪些图形，点击时先命中测试得到最上层图形，再经归属表找到实体。
//
// 画布本身只是数据：Draw 之外的操作不依赖图形上下文，可以在测试中直接使用。
package canvas

import (
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ShapeID 画布图形句柄
type ShapeID = ecs.EntityID

// Style 未解析的绘制样式，颜色为名称或 "#rrggbb"，空串表示不填充/不描边
type Style struct {
	Fill     string
	Outline  string
	Width    float64
	FontSize float64
}

// FaceFunc 根据字号返回文本字体
type FaceFunc func(size float64) *text.GoTextFace

// defaultFontSize 未指定字号时使用
const defaultFontSize = 16.0

// Canvas 保留模式画布
type Canvas struct {
	em     *ecs.EntityManager
	order  []ShapeID                // 绘制顺序，后面的在上层
	owners map[ShapeID]ecs.EntityID // 图形 -> 所属实体
	faces  FaceFunc
	logger *log.Logger
}

// New 创建画布
func New(em *ecs.EntityManager, logger *log.Logger) *Canvas {
	if logger == nil {
		logger = log.Default()
	}
	return &Canvas{
		em:     em,
		order:  make([]ShapeID, 0, 256),
		owners: make(map[ShapeID]ecs.EntityID),
		logger: logger.WithPrefix("Canvas"),
	}
}

// SetFaceFunc 设置文本字体来源；未设置时文本尺寸按字号估算，绘制使用调试字体
func (c *Canvas) SetFaceFunc(f FaceFunc) {
	c.faces = f
}

// DrawShape 创建一个图形并返回句柄
func (c *Canvas) DrawShape(kind components.ShapeKind, coords []float64, style Style) ShapeID {
	id := c.em.CreateEntity()
	points := make([]float64, len(coords))
	copy(points, coords)
	ecs.AddComponent(c.em, id, &components.ShapeComponent{
		Kind:   kind,
		Points: points,
		Style:  c.resolveStyle(style),
	})
	c.order = append(c.order, id)
	return id
}

// DrawText 在 (x, y) 居中绘制文本
func (c *Canvas) DrawText(x, y float64, s string, style Style) ShapeID {
	if style.FontSize <= 0 {
		style.FontSize = defaultFontSize
	}
	id := c.DrawShape(components.ShapeText, []float64{x, y}, style)
	c.SetText(id, s)
	return id
}

// SetText 修改文本内容并重新测量尺寸
func (c *Canvas) SetText(id ShapeID, s string) {
	shape, ok := c.shape(id)
	if !ok || shape.Kind != components.ShapeText {
		return
	}
	shape.Text = s
	shape.TextWidth, shape.TextHeight = c.measure(s, shape.Style.FontSize)
}

// Text 返回文本图形的内容
func (c *Canvas) Text(id ShapeID) (string, bool) {
	shape, ok := c.shape(id)
	if !ok || shape.Kind != components.ShapeText {
		return "", false
	}
	return shape.Text, true
}

// Move 平移图形
func (c *Canvas) Move(id ShapeID, dx, dy float64) {
	shape, ok := c.shape(id)
	if !ok {
		return
	}
	for i := 0; i+1 < len(shape.Points); i += 2 {
		shape.Points[i] += dx
		shape.Points[i+1] += dy
	}
}

// SetCoords 替换图形的全部坐标
func (c *Canvas) SetCoords(id ShapeID, coords []float64) {
	shape, ok := c.shape(id)
	if !ok {
		return
	}
	shape.Points = append(shape.Points[:0], coords...)
}

// Coords 返回图形坐标的副本
func (c *Canvas) Coords(id ShapeID) []float64 {
	shape, ok := c.shape(id)
	if !ok {
		return nil
	}
	out := make([]float64, len(shape.Points))
	copy(out, shape.Points)
	return out
}

// Bounds 返回图形的包围盒
func (c *Canvas) Bounds(id ShapeID) (Rect, bool) {
	shape, ok := c.shape(id)
	if !ok {
		return Rect{}, false
	}
	if shape.Kind == components.ShapeText {
		if len(shape.Points) < 2 {
			return Rect{}, false
		}
		x, y := shape.Points[0], shape.Points[1]
		w, h := shape.TextWidth/2, shape.TextHeight/2
		return Rect{MinX: x - w, MinY: y - h, MaxX: x + w, MaxY: y + h}, true
	}
	return boundsOfPoints(shape.Points)
}

// Delete 删除图形；对已删除或未知句柄无效果
func (c *Canvas) Delete(id ShapeID) {
	for i, sid := range c.order {
		if sid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			delete(c.owners, id)
			c.em.DestroyEntity(id)
			return
		}
	}
}

// Own 声明 owner 拥有这些图形，并登记到归属表
func (c *Canvas) Own(owner ecs.EntityID, ids ...ShapeID) {
	group, ok := ecs.GetComponent[*components.GroupComponent](c.em, owner)
	if !ok {
		group = &components.GroupComponent{}
		ecs.AddComponent(c.em, owner, group)
	}
	for _, id := range ids {
		c.owners[id] = owner
		group.Shapes = append(group.Shapes, id)
	}
}

// Owner 返回图形所属的实体
func (c *Canvas) Owner(id ShapeID) (ecs.EntityID, bool) {
	owner, ok := c.owners[id]
	return owner, ok
}

// MoveGroup 平移实体拥有的全部图形
func (c *Canvas) MoveGroup(owner ecs.EntityID, dx, dy float64) {
	group, ok := ecs.GetComponent[*components.GroupComponent](c.em, owner)
	if !ok {
		return
	}
	for _, id := range group.Shapes {
		c.Move(id, dx, dy)
	}
}

// GroupBounds 返回实体拥有的全部图形的联合包围盒
func (c *Canvas) GroupBounds(owner ecs.EntityID) (Rect, bool) {
	group, ok := ecs.GetComponent[*components.GroupComponent](c.em, owner)
	if !ok {
		return Rect{}, false
	}
	var (
		out   Rect
		found bool
	)
	for _, id := range group.Shapes {
		r, ok := c.Bounds(id)
		if !ok {
			continue
		}
		if !found {
			out, found = r, true
			continue
		}
		out = out.Union(r)
	}
	return out, found
}

// DeleteGroup 删除实体拥有的全部图形并销毁实体本身
func (c *Canvas) DeleteGroup(owner ecs.EntityID) {
	group, ok := ecs.GetComponent[*components.GroupComponent](c.em, owner)
	if ok {
		for _, id := range group.Shapes {
			c.Delete(id)
		}
		group.Shapes = nil
	}
	c.em.DestroyEntity(owner)
}

// HitTest 返回可见部分覆盖点 (x, y) 的最上层图形
// 包围盒只用于快速排除；椭圆、多边形按实际形状判定，没有填充的图形只有描边可点
func (c *Canvas) HitTest(x, y float64) (ShapeID, bool) {
	for i := len(c.order) - 1; i >= 0; i-- {
		id := c.order[i]
		shape, ok := c.shape(id)
		if !ok {
			continue
		}
		r, ok := c.Bounds(id)
		if !ok || !r.Inset(shape.Style.Width/2+hitSlop).Contains(x, y) {
			continue
		}
		if containsPoint(shape, x, y) {
			return id, true
		}
	}
	return ecs.InvalidEntity, false
}

// Exists 检查句柄是否仍在画布上
func (c *Canvas) Exists(id ShapeID) bool {
	_, ok := c.shape(id)
	return ok
}

// Len 返回画布上的图形数量
func (c *Canvas) Len() int {
	return len(c.order)
}

// shape 获取仍在画布上的图形组件
func (c *Canvas) shape(id ShapeID) (*components.ShapeComponent, bool) {
	if !c.em.IsAlive(id) {
		return nil, false
	}
	return ecs.GetComponent[*components.ShapeComponent](c.em, id)
}

// resolveStyle 解析颜色名；未知颜色记录警告并退回黑色
func (c *Canvas) resolveStyle(style Style) components.ShapeStyle {
	out := components.ShapeStyle{
		Width:    style.Width,
		FontSize: style.FontSize,
	}
	if out.Width <= 0 {
		out.Width = 1
	}
	if style.Fill != "" {
		fill, err := ParseColor(style.Fill)
		if err != nil {
			c.logger.Warn("falling back to black fill", "err", err)
		}
		fill.A = 0xff
		out.Fill, out.HasFill = fill, true
	}
	if style.Outline != "" {
		outline, err := ParseColor(style.Outline)
		if err != nil {
			c.logger.Warn("falling back to black outline", "err", err)
		}
		outline.A = 0xff
		out.Outline, out.HasOutline = outline, true
	}
	return out
}

// measure 测量文本尺寸；没有字体时按字号估算
func (c *Canvas) measure(s string, size float64) (float64, float64) {
	if c.faces != nil {
		if face := c.faces(size); face != nil {
			return text.Measure(s, face, size*1.2)
		}
	}
	return 0.6 * size * float64(utf8.RuneCountInString(s)), size
}
