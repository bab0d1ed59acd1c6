package collision

import (
	"fmt"
	"math"

	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Signal tells an iteration whether to keep going.
type Signal int

const (
	Continue Signal = iota
	Stop
)

// Handle is the index's receipt for an inserted area.
type Handle struct {
	obj     *resolv.Object
	grid    *grid
	area    *Area
	removed bool
}

// grid is one uniform bucket grid holding the areas of a single type.
type grid struct {
	typ        AreaType
	space      *resolv.Space
	cellW      int
	cellH      int
	cols, rows int
	count      int
}

// Index keeps one grid per allocated area type. Grids are found through an
// explicit type to slot table.
type Index struct {
	grids  []*grid
	slotOf map[AreaType]int
	origin float64
	extW   float64
	extH   float64
}

// NewIndex allocates the grids listed in cfg.CellSizes. Each grid covers the
// world expanded by the outer margin.
func NewIndex(cfg *Config) (*Index, error) {
	b := cfg.Boundary
	ix := &Index{
		slotOf: make(map[AreaType]int),
		origin: b.Margin,
		extW:   math.Ceil(b.Width + 2*b.Margin),
		extH:   math.Ceil(b.Height + 2*b.Margin),
	}
	for _, t := range cfg.gridTypes() {
		g, err := ix.newGrid(t, cfg.CellSizes[t])
		if err != nil {
			return nil, err
		}
		ix.slotOf[t] = len(ix.grids)
		ix.grids = append(ix.grids, g)
	}
	return ix, nil
}

func (ix *Index) newGrid(t AreaType, size float64) (*grid, error) {
	cw, ch := int(ix.extW), int(ix.extH)
	if !math.IsInf(size, 1) {
		cw = max(1, int(math.Ceil(size)))
		ch = cw
	}
	cw = min(cw, int(ix.extW))
	ch = min(ch, int(ix.extH))
	if cw < 1 || ch < 1 {
		return nil, fmt.Errorf("%w: empty grid for type %#x", ErrInvalidConfig, uint32(t))
	}
	cols := int(math.Ceil(ix.extW / float64(cw)))
	rows := int(math.Ceil(ix.extH / float64(ch)))
	return &grid{
		typ:   t,
		space: resolv.NewSpace(cols*cw, rows*ch, cw, ch),
		cellW: cw,
		cellH: ch,
		cols:  cols,
		rows:  rows,
	}, nil
}

// HasGrid reports whether areas of type t can be inserted.
func (ix *Index) HasGrid(t AreaType) bool {
	_, ok := ix.slotOf[t]
	return ok
}

// Len returns the number of areas currently stored for type t.
func (ix *Index) Len(t AreaType) int {
	slot, ok := ix.slotOf[t]
	if !ok {
		return 0
	}
	return ix.grids[slot].count
}

// GridLayout describes the cells of one grid in world coordinates.
type GridLayout struct {
	Type       AreaType
	Origin     mgl64.Vec2
	CellW      float64
	CellH      float64
	Cols, Rows int
}

// Layout returns the cell layout of the grid for type t.
func (ix *Index) Layout(t AreaType) (GridLayout, bool) {
	slot, ok := ix.slotOf[t]
	if !ok {
		return GridLayout{}, false
	}
	g := ix.grids[slot]
	return GridLayout{
		Type:   t,
		Origin: mgl64.Vec2{-ix.origin, -ix.origin},
		CellW:  float64(g.cellW),
		CellH:  float64(g.cellH),
		Cols:   g.cols,
		Rows:   g.rows,
	}, true
}

// Insert buckets the area by its current bounds.
func (ix *Index) Insert(a *Area) (*Handle, error) {
	if a.handle != nil {
		return nil, fmt.Errorf("%w: type %#x of %v", ErrAlreadyRegistered, uint32(a.Type), a.body)
	}
	slot, ok := ix.slotOf[a.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %#x", ErrNoGrid, uint32(a.Type))
	}
	g := ix.grids[slot]

	minX, minY, maxX, maxY := ix.local(a.Bounds())
	// resolv treats the far edge as an exclusive pixel, so grow by one to
	// cover the cell holding maxX/maxY.
	obj := resolv.NewObject(minX, minY, maxX-minX+1, maxY-minY+1)
	obj.Data = a
	g.space.Add(obj)
	g.count++

	h := &Handle{obj: obj, grid: g, area: a}
	a.handle = h
	return h, nil
}

// Remove takes the handle's area out of its grid. Nil or already removed
// handles are ignored.
func (ix *Index) Remove(h *Handle) {
	if h == nil || h.removed {
		return
	}
	h.grid.space.Remove(h.obj)
	h.grid.count--
	h.removed = true
	if h.area.handle == h {
		h.area.handle = nil
	}
}

// ForEach visits every area of type t whose cells intersect box, each once.
// Candidates are broadphase only; callers test exact geometry. The visitor must
// not insert or remove areas of type t, but it may run queries of its own.
func (ix *Index) ForEach(t AreaType, box gamemath.AABB, visit func(*Area) Signal) Signal {
	slot, ok := ix.slotOf[t]
	if !ok {
		return Continue
	}
	return ix.scan(ix.grids[slot], box, visit)
}

func (ix *Index) scan(g *grid, box gamemath.AABB, visit func(*Area) Signal) Signal {
	if g.count == 0 {
		return Continue
	}

	minX, minY, maxX, maxY := ix.local(box)
	cx0, cy0 := g.space.WorldToSpace(minX, minY)
	cx1, cy1 := g.space.WorldToSpace(maxX, maxY)
	cx0, cx1 = max(cx0, 0), min(cx1, g.cols-1)
	cy0, cy1 = max(cy0, 0), min(cy1, g.rows-1)

	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			cell := g.space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				a, ok := obj.Data.(*Area)
				if !ok {
					continue
				}
				// An area spanning several cells is visited only in the first
				// of them inside the scanned range.
				ox, oy, _, _ := obj.BoundsToSpace(0, 0)
				if max(ox, cx0) != cx || max(oy, cy0) != cy {
					continue
				}
				if !a.Bounds().Overlaps(box) {
					continue
				}
				if visit(a) == Stop {
					return Stop
				}
			}
		}
	}
	return Continue
}

// local converts a world box into grid space, clamped to the covered region so
// far-away boxes land in the edge cells instead of being dropped.
func (ix *Index) local(b gamemath.AABB) (minX, minY, maxX, maxY float64) {
	const inset = 1e-6
	clampX := func(v float64) float64 { return gamemath.ClampFloat(v+ix.origin, 0, ix.extW-inset) }
	clampY := func(v float64) float64 { return gamemath.ClampFloat(v+ix.origin, 0, ix.extH-inset) }
	return clampX(b.Min[0]), clampY(b.Min[1]), clampX(b.Max[0]), clampY(b.Max[1])
}
