package canvas

import (
	"testing"

	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/ecs"
)

func newTestCanvas() (*ecs.EntityManager, *Canvas) {
	em := ecs.NewEntityManager()
	return em, New(em, nil)
}

func TestDrawShapeBoundsAndMove(t *testing.T) {
	_, cv := newTestCanvas()

	id := cv.DrawShape(components.ShapeOval, []float64{100, 150, 160, 180}, Style{Fill: "blue"})

	r, ok := cv.Bounds(id)
	if !ok {
		t.Fatal("bounds should exist for a new shape")
	}
	want := Rect{MinX: 100, MinY: 150, MaxX: 160, MaxY: 180}
	if r != want {
		t.Errorf("expected %+v, got %+v", want, r)
	}

	cv.Move(id, 25, -20)
	r, _ = cv.Bounds(id)
	want = Rect{MinX: 125, MinY: 130, MaxX: 185, MaxY: 160}
	if r != want {
		t.Errorf("after move expected %+v, got %+v", want, r)
	}
}

func TestDrawShapeCopiesCoords(t *testing.T) {
	_, cv := newTestCanvas()
	coords := []float64{0, 0, 10, 10}
	id := cv.DrawShape(components.ShapeRectangle, coords, Style{Fill: "red"})

	coords[0] = 999
	r, _ := cv.Bounds(id)
	if r.MinX != 0 {
		t.Errorf("canvas must not alias caller coords, got MinX=%f", r.MinX)
	}
}

func TestDeleteShape(t *testing.T) {
	_, cv := newTestCanvas()
	id := cv.DrawShape(components.ShapeRectangle, []float64{0, 0, 10, 10}, Style{Fill: "red"})

	cv.Delete(id)

	if cv.Exists(id) {
		t.Error("deleted shape should not exist")
	}
	if _, ok := cv.Bounds(id); ok {
		t.Error("deleted shape should have no bounds")
	}
	if cv.Len() != 0 {
		t.Errorf("expected empty canvas, got %d shapes", cv.Len())
	}

	// 重复删除无副作用
	cv.Delete(id)
}

func TestHitTestReturnsTopmost(t *testing.T) {
	_, cv := newTestCanvas()
	bottom := cv.DrawShape(components.ShapeRectangle, []float64{0, 0, 100, 100}, Style{Fill: "tan"})
	top := cv.DrawShape(components.ShapeOval, []float64{40, 40, 60, 60}, Style{Fill: "blue"})

	tests := []struct {
		name   string
		x, y   float64
		want   ShapeID
		wantOK bool
	}{
		{"overlap picks top", 50, 50, top, true},
		{"only bottom", 10, 10, bottom, true},
		{"edge is inclusive", 100, 100, bottom, true},
		{"miss", 150, 150, ecs.InvalidEntity, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cv.HitTest(tt.x, tt.y)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("HitTest(%v,%v) = (%d,%v), want (%d,%v)", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestHitTestSkipsDeleted(t *testing.T) {
	_, cv := newTestCanvas()
	bottom := cv.DrawShape(components.ShapeRectangle, []float64{0, 0, 100, 100}, Style{Fill: "tan"})
	top := cv.DrawShape(components.ShapeRectangle, []float64{0, 0, 100, 100}, Style{Fill: "white"})
	cv.Delete(top)

	got, ok := cv.HitTest(50, 50)
	if !ok || got != bottom {
		t.Errorf("expected bottom shape after deleting top, got (%d,%v)", got, ok)
	}
}

func TestGroupOwnership(t *testing.T) {
	em, cv := newTestCanvas()
	owner := em.CreateEntity()

	body := cv.DrawShape(components.ShapeOval, []float64{100, 100, 160, 130}, Style{Fill: "green"})
	tail := cv.DrawShape(components.ShapePolygon, []float64{100, 115, 80, 100, 80, 130}, Style{Fill: "red"})
	cv.Own(owner, body, tail)

	for _, id := range []ShapeID{body, tail} {
		got, ok := cv.Owner(id)
		if !ok || got != owner {
			t.Errorf("shape %d: expected owner %d, got (%d,%v)", id, owner, got, ok)
		}
	}

	r, ok := cv.GroupBounds(owner)
	if !ok {
		t.Fatal("group bounds should exist")
	}
	want := Rect{MinX: 80, MinY: 100, MaxX: 160, MaxY: 130}
	if r != want {
		t.Errorf("expected group bounds %+v, got %+v", want, r)
	}

	cv.MoveGroup(owner, 10, 5)
	r, _ = cv.GroupBounds(owner)
	if r != want.Translate(10, 5) {
		t.Errorf("expected moved bounds %+v, got %+v", want.Translate(10, 5), r)
	}

	cv.DeleteGroup(owner)
	if cv.Len() != 0 {
		t.Errorf("expected all group shapes deleted, %d left", cv.Len())
	}
	if _, ok := cv.Owner(body); ok {
		t.Error("ownership entry should be removed with the shape")
	}
	if em.IsAlive(owner) {
		t.Error("owner entity should be destroyed")
	}
}

func TestTextBoundsAreCentered(t *testing.T) {
	_, cv := newTestCanvas()
	id := cv.DrawText(400, 30, "Find the blue fish!", Style{Fill: "white", FontSize: 20})

	r, ok := cv.Bounds(id)
	if !ok {
		t.Fatal("text should have bounds")
	}
	if cx := (r.MinX + r.MaxX) / 2; cx != 400 {
		t.Errorf("text should be centered on x=400, got %f", cx)
	}
	if r.Width() <= 0 || r.Height() <= 0 {
		t.Errorf("text bounds should be non-empty, got %+v", r)
	}

	s, ok := cv.Text(id)
	if !ok || s != "Find the blue fish!" {
		t.Errorf("unexpected text %q", s)
	}

	cv.SetText(id, "x")
	r2, _ := cv.Bounds(id)
	if r2.Width() >= r.Width() {
		t.Error("shorter text should measure narrower")
	}
}

func TestSetCoordsReplacesPolyline(t *testing.T) {
	_, cv := newTestCanvas()
	id := cv.DrawShape(components.ShapeLine, []float64{0, 0, 0, 0}, Style{Fill: "#0099cc", Width: 2})

	cv.SetCoords(id, []float64{0, 80, 20, 85, 40, 78})
	got := cv.Coords(id)
	if len(got) != 6 || got[3] != 85 {
		t.Errorf("unexpected coords %v", got)
	}
}

func TestUnknownColorFallsBackToBlack(t *testing.T) {
	em, cv := newTestCanvas()
	id := cv.DrawShape(components.ShapeRectangle, []float64{0, 0, 1, 1}, Style{Fill: "not-a-color"})

	shape, ok := ecs.GetComponent[*components.ShapeComponent](em, id)
	if !ok {
		t.Fatal("shape component missing")
	}
	if !shape.Style.HasFill {
		t.Fatal("fill should still be enabled")
	}
	if f := shape.Style.Fill; f.R != 0 || f.G != 0 || f.B != 0 || f.A != 0xff {
		t.Errorf("expected opaque black, got %+v", f)
	}
}

func TestHitTestUsesShapeOutline(t *testing.T) {
	_, cv := newTestCanvas()
	water := cv.DrawShape(components.ShapeRectangle, []float64{0, 0, 400, 400}, Style{Fill: "#66ccff"})
	oval := cv.DrawShape(components.ShapeOval, []float64{100, 100, 160, 130}, Style{Fill: "blue", Outline: "darkred"})
	tail := cv.DrawShape(components.ShapePolygon, []float64{200, 115, 180, 100, 180, 130}, Style{Fill: "red"})
	bubble := cv.DrawShape(components.ShapeOval, []float64{300, 300, 320, 320}, Style{Outline: "white"})
	frame := cv.DrawShape(components.ShapeRectangle, []float64{20, 250, 120, 350}, Style{Outline: "darkgreen", Width: 3})
	weed := cv.DrawShape(components.ShapeLine, []float64{250, 200, 250, 140}, Style{Fill: "seagreen", Width: 3})

	tests := []struct {
		name string
		x, y float64
		want ShapeID
	}{
		{"椭圆中心", 130, 115, oval},
		{"椭圆包围盒角落落到下层", 102, 102, water},
		{"三角形内部", 190, 115, tail},
		{"三角形包围盒角落落到下层", 199, 101, water},
		{"空心气泡描边", 300, 310, bubble},
		{"空心气泡内部落到下层", 310, 310, water},
		{"空心矩形边框", 21, 300, frame},
		{"空心矩形内部落到下层", 70, 300, water},
		{"折线附近", 251, 170, weed},
		{"折线包围盒外侧", 255, 170, water},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cv.HitTest(tt.x, tt.y)
			if !ok || got != tt.want {
				t.Errorf("HitTest(%v,%v) = (%d,%v), want %d", tt.x, tt.y, got, ok, tt.want)
			}
		})
	}
}

// 后画的鱼身包围盒盖住先画的鱼身时，点击落在先画的鱼身可见部分上
func TestHitTestOverlappingOvals(t *testing.T) {
	_, cv := newTestCanvas()
	under := cv.DrawShape(components.ShapeOval, []float64{200, 200, 260, 230}, Style{Fill: "blue", Outline: "darkred"})
	over := cv.DrawShape(components.ShapeOval, []float64{240, 222, 300, 252}, Style{Fill: "red", Outline: "darkred"})

	tests := []struct {
		name string
		x, y float64
		want ShapeID
	}{
		{"上层包围盒角落里的下层鱼身", 243, 224, under},
		{"两者都覆盖时取上层", 255, 228, over},
		{"只在上层", 280, 240, over},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cv.HitTest(tt.x, tt.y)
			if !ok || got != tt.want {
				t.Errorf("HitTest(%v,%v) = (%d,%v), want %d", tt.x, tt.y, got, ok, tt.want)
			}
		})
	}
}
