package entities

import (
	"math/rand"
	"testing"

	"github.com/decker502/fishcatch/pkg/canvas"
	"github.com/decker502/fishcatch/pkg/components"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/ecs"
)

func newTestCanvas() (*ecs.EntityManager, *canvas.Canvas) {
	em := ecs.NewEntityManager()
	return em, canvas.New(em, nil)
}

func TestNewFishEntity(t *testing.T) {
	em, cv := newTestCanvas()

	id := NewFishEntity(em, cv, 200, 250, "blue")

	fish, ok := ecs.GetComponent[*components.FishComponent](em, id)
	if !ok {
		t.Fatal("fish entity should have FishComponent")
	}
	if fish.Color != "blue" {
		t.Errorf("expected color blue, got %s", fish.Color)
	}

	group, ok := ecs.GetComponent[*components.GroupComponent](em, id)
	if !ok {
		t.Fatal("fish entity should own shapes")
	}
	if len(group.Shapes) != 5 {
		t.Errorf("expected 5 shapes, got %d", len(group.Shapes))
	}
	for _, sid := range group.Shapes {
		owner, ok := cv.Owner(sid)
		if !ok || owner != id {
			t.Errorf("shape %d should be owned by fish %d", sid, id)
		}
	}

	// 包围盒包含尾巴（向左 20）和背鳍（向上 15）
	r, ok := cv.GroupBounds(id)
	if !ok {
		t.Fatal("fish should have group bounds")
	}
	want := canvas.Rect{MinX: 180, MinY: 235, MaxX: 200 + config.FishWidth, MaxY: 250 + config.FishHeight}
	if r != want {
		t.Errorf("expected bounds %+v, got %+v", want, r)
	}
}

func TestNewCrabEntity(t *testing.T) {
	em, cv := newTestCanvas()

	id := NewCrabEntity(em, cv, 100, 550, 2)

	crab, ok := ecs.GetComponent[*components.CrabComponent](em, id)
	if !ok {
		t.Fatal("crab entity should have CrabComponent")
	}
	if crab.Direction != 1 || crab.Speed != 2 {
		t.Errorf("unexpected crab state %+v", crab)
	}

	group, _ := ecs.GetComponent[*components.GroupComponent](em, id)
	// 身体 + 4 眼 + 2 钳 + 6 腿
	if len(group.Shapes) != 13 {
		t.Errorf("expected 13 crab shapes, got %d", len(group.Shapes))
	}

	r, _ := cv.GroupBounds(id)
	if r.MinX != 90 || r.MaxX != 150 {
		t.Errorf("expected crab x span 90..150, got %.0f..%.0f", r.MinX, r.MaxX)
	}
}

func TestPlantCoords(t *testing.T) {
	got := PlantCoords(50, 580, 60, 12)
	want := []float64{50, 580, 62, 550, 50, 520}
	if len(got) != len(want) {
		t.Fatalf("expected %d coords, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coord %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestNewPlantAndWaveEntities(t *testing.T) {
	em, cv := newTestCanvas()

	plant := NewPlantEntity(em, cv, 50, 580, 60, "sea green")
	pc, ok := ecs.GetComponent[*components.PlantComponent](em, plant)
	if !ok || !cv.Exists(pc.Shape) {
		t.Fatal("plant should reference a live shape")
	}

	wave := NewWaveEntity(em, cv, 1, 105, 1.0, "#0077aa", 3)
	wc, ok := ecs.GetComponent[*components.WaveComponent](em, wave)
	if !ok || !cv.Exists(wc.Shape) {
		t.Fatal("wave should reference a live shape")
	}
	if wc.Layer != 1 || wc.Baseline != 105 {
		t.Errorf("unexpected wave component %+v", wc)
	}
}

func TestNewBubbleEntity(t *testing.T) {
	em, cv := newTestCanvas()

	id := NewBubbleEntity(em, cv, 300, 570, 8, 2.5)

	if !cv.Exists(id) {
		t.Fatal("bubble should be a shape on the canvas")
	}
	b, ok := ecs.GetComponent[*components.BubbleComponent](em, id)
	if !ok || b.RiseSpeed != 2.5 {
		t.Errorf("unexpected bubble component %+v", b)
	}
	if _, owned := cv.Owner(id); owned {
		t.Error("bubble should not be owned by any entity")
	}
}

func TestNewNetEntity(t *testing.T) {
	em, cv := newTestCanvas()

	around := canvas.Rect{MinX: 100, MinY: 200, MaxX: 180, MaxY: 245}
	id := NewNetEntity(em, cv, around, 20, "darkgreen", 5)

	r, ok := cv.GroupBounds(id)
	if !ok {
		t.Fatal("net should have bounds")
	}
	want := canvas.Rect{MinX: 80, MinY: 180, MaxX: 200, MaxY: 265}
	if r != want {
		t.Errorf("expected %+v, got %+v", want, r)
	}
	if !ecs.HasComponent[*components.NetComponent](em, id) {
		t.Error("net entity should have NetComponent")
	}
}

func TestNewSeabed(t *testing.T) {
	_, cv := newTestCanvas()
	rng := rand.New(rand.NewSource(1))

	ids := NewSeabed(cv, rng, 10, 15)
	if len(ids) != 26 {
		t.Fatalf("expected 26 shapes, got %d", len(ids))
	}

	sand, _ := cv.Bounds(ids[0])
	want := canvas.Rect{MinX: 0, MinY: 540, MaxX: 800, MaxY: 600}
	if sand != want {
		t.Errorf("expected sand %+v, got %+v", want, sand)
	}

	for _, id := range ids[1:] {
		r, _ := cv.Bounds(id)
		if r.MinY < float64(config.GameWindowHeight)-55 {
			t.Errorf("decor shape %d above the sand: %+v", id, r)
		}
		if _, owned := cv.Owner(id); owned {
			t.Errorf("decor shape %d should not be owned", id)
		}
	}
}
