package collision

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

func placedArea(t AreaType, shape gamemath.Shape, x, y float64) *Area {
	a := NewArea(t, shape, matHull)
	NewBody(mgl64.Vec2{x, y}, 1).MustAddArea(a, true)
	return a
}

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	cfg := testConfig()
	ix, err := NewIndex(&cfg)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	return ix
}

func visits(ix *Index, typ AreaType, box gamemath.AABB) []*Area {
	var out []*Area
	ix.ForEach(typ, box, func(a *Area) Signal {
		out = append(out, a)
		return Continue
	})
	return out
}

func TestIndex_InsertQueryRemove(t *testing.T) {
	ix := newTestIndex(t)
	a := placedArea(typeShip, gamemath.NewRect(2, 2), 50, 50)
	b := placedArea(typeShip, gamemath.NewRect(2, 2), 150, 150)

	ha, err := ix.Insert(a)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := ix.Insert(b); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got := visits(ix, typeShip, gamemath.NewAABB(40, 40, 60, 60))
	if len(got) != 1 || got[0] != a {
		t.Errorf("query near a = %v, want [a]", got)
	}
	if got := visits(ix, typeWall, gamemath.NewAABB(0, 0, 200, 200)); len(got) != 0 {
		t.Errorf("wall grid should be empty, got %d", len(got))
	}

	ix.Remove(ha)
	ix.Remove(ha)
	ix.Remove(nil)
	if a.Registered() {
		t.Errorf("removed area still reports a handle")
	}
	if got := visits(ix, typeShip, gamemath.NewAABB(40, 40, 60, 60)); len(got) != 0 {
		t.Errorf("query after remove = %v", got)
	}
	if ix.Len(typeShip) != 1 {
		t.Errorf("Len = %d, want 1", ix.Len(typeShip))
	}
}

func TestIndex_InsertErrors(t *testing.T) {
	ix := newTestIndex(t)
	a := placedArea(typeShip, gamemath.NewCircle(1), 10, 10)
	if _, err := ix.Insert(a); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := ix.Insert(a); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("double insert: err = %v, want ErrAlreadyRegistered", err)
	}
	if _, err := ix.Insert(placedArea(typeUnindexed, gamemath.NewCircle(1), 10, 10)); !errors.Is(err, ErrNoGrid) {
		t.Errorf("unindexed type: err = %v, want ErrNoGrid", err)
	}
}

func TestIndex_LargeAreaVisitedOnce(t *testing.T) {
	ix := newTestIndex(t)
	big := placedArea(typeProjectile, gamemath.NewRect(120, 120), 100, 100)
	if _, err := ix.Insert(big); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := visits(ix, typeProjectile, gamemath.NewAABB(0, 0, 200, 200)); len(got) != 1 {
		t.Errorf("area spanning many cells visited %d times, want 1", len(got))
	}
}

func TestIndex_NestedScanVisitsOnce(t *testing.T) {
	ix := newTestIndex(t)
	big := placedArea(typeProjectile, gamemath.NewRect(120, 120), 100, 100)
	small := placedArea(typeProjectile, gamemath.NewRect(4, 4), 60, 60)
	for _, a := range []*Area{big, small} {
		if _, err := ix.Insert(a); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	counts := map[*Area]int{}
	ix.ForEach(typeProjectile, gamemath.NewAABB(0, 0, 200, 200), func(a *Area) Signal {
		counts[a]++
		visits(ix, typeProjectile, a.Bounds())
		return Continue
	})
	if counts[big] != 1 || counts[small] != 1 {
		t.Errorf("visits with nested queries = big %d, small %d, want 1 each", counts[big], counts[small])
	}
}

func TestIndex_OutsideRegionIsKept(t *testing.T) {
	ix := newTestIndex(t)
	far := placedArea(typeShip, gamemath.NewRect(2, 2), -1000, 5000)
	if _, err := ix.Insert(far); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	got := visits(ix, typeShip, gamemath.NewAABB(-1002, 4998, -998, 5002))
	if len(got) != 1 || got[0] != far {
		t.Errorf("area far outside the world was lost: %v", got)
	}
}

func TestIndex_UnboundedSingleCell(t *testing.T) {
	ix := newTestIndex(t)
	g := ix.grids[ix.slotOf[typeReceptor]]
	if g.cols != 1 || g.rows != 1 {
		t.Fatalf("unbounded grid has %dx%d cells, want 1x1", g.cols, g.rows)
	}
	a := placedArea(typeReceptor, gamemath.NewCircle(3), 190, 10)
	if _, err := ix.Insert(a); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := visits(ix, typeReceptor, gamemath.NewAABB(185, 5, 195, 15)); len(got) != 1 {
		t.Errorf("receptor not found, got %d", len(got))
	}
}

func TestIndex_StopEndsScan(t *testing.T) {
	ix := newTestIndex(t)
	for i := 0; i < 5; i++ {
		if _, err := ix.Insert(placedArea(typeWall, gamemath.NewRect(4, 4), 20+float64(i)*10, 20)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	n := 0
	sig := ix.ForEach(typeWall, gamemath.NewAABB(0, 0, 200, 200), func(*Area) Signal {
		n++
		return Stop
	})
	if sig != Stop || n != 1 {
		t.Errorf("signal = %v after %d visits, want Stop after 1", sig, n)
	}
}

func TestIndex_SlotsFollowTypeOrder(t *testing.T) {
	ix := newTestIndex(t)
	var prev AreaType
	for i, g := range ix.grids {
		if ix.slotOf[g.typ] != i {
			t.Errorf("slot of %#x = %d, want %d", uint32(g.typ), ix.slotOf[g.typ], i)
		}
		if g.typ <= prev {
			t.Errorf("grid types out of order: %#x after %#x", uint32(g.typ), uint32(prev))
		}
		prev = g.typ
	}
	if ix.HasGrid(typeUnindexed) {
		t.Errorf("unindexed type must have no grid")
	}
}

func TestIndex_Layout(t *testing.T) {
	ix := newTestIndex(t)

	l, ok := ix.Layout(typeShip)
	if !ok {
		t.Fatalf("no layout for ship grid")
	}
	want := GridLayout{Type: typeShip, Origin: mgl64.Vec2{-20, -20}, CellW: 16, CellH: 16, Cols: 15, Rows: 15}
	if l != want {
		t.Errorf("layout = %+v, want %+v", l, want)
	}

	if _, ok := ix.Layout(typeUnindexed); ok {
		t.Errorf("unindexed type should have no layout")
	}
}
