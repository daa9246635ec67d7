package nav

import (
	"container/heap"
	"fmt"
	"math"
)

// CostInfinite marks a cell as impassable or not yet reached.
const CostInfinite uint32 = math.MaxUint32

type costCell struct {
	cost    uint32
	visited bool
}

// Flowfield owns the navigation grid buffers for one map: the subtile wall
// masks, the cost-to-target grid and the memoized per-cell flow directions.
// It is built once per level and stepped every tick; all access happens on
// the simulation goroutine.
type Flowfield struct {
	width  int
	height int
	walls  []uint8

	// target is the live target in fractional tile coordinates. The
	// transient target is the tile the current wavefront was seeded from;
	// it only catches up to the live target when the frontier drains.
	targetX    float64
	targetY    float64
	transientX int
	transientY int

	targetChanged bool

	cost     []costCell
	field    []Dir
	frontier frontierHeap
}

// NewFlowfield creates a field over a width×height tile grid. walls holds
// one subtile bitmask per tile, row-major.
func NewFlowfield(width, height int, walls []uint8) (*Flowfield, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("nav: invalid grid dimensions %dx%d", width, height)
	}
	if len(walls) != width*height {
		return nil, fmt.Errorf("nav: wall grid has %d cells, want %d", len(walls), width*height)
	}

	f := &Flowfield{
		width:  width,
		height: height,
		walls:  walls,
		cost:   make([]costCell, width*height),
		field:  make([]Dir, width*height),
		// Arm the first wavefront unconditionally. The transient target
		// starts at tile (0, 0), so without this a first SetTarget landing
		// there would never seed a propagation.
		targetChanged: true,
	}
	for i := range f.cost {
		f.cost[i] = costCell{cost: CostInfinite}
	}
	return f, nil
}

func (f *Flowfield) Width() int  { return f.width }
func (f *Flowfield) Height() int { return f.height }

// SetTarget updates the live target in fractional tile coordinates. The
// wavefront is re-seeded from the new tile once the current one drains.
func (f *Flowfield) SetTarget(tx, ty float64) {
	if f == nil {
		return
	}
	f.targetX = tx
	f.targetY = ty
	if int(tx) != f.transientX || int(ty) != f.transientY {
		f.targetChanged = true
	}
}

// Propagating reports whether a wavefront is currently in flight.
func (f *Flowfield) Propagating() bool {
	return f != nil && f.frontier.Len() > 0
}

// IndexAt maps fractional tile coordinates to a cell index.
func (f *Flowfield) IndexAt(tx, ty float64) (int, bool) {
	if f == nil || len(f.cost) == 0 {
		return 0, false
	}
	if tx < 0 || ty < 0 || int(tx) >= f.width || int(ty) >= f.height {
		return 0, false
	}
	return int(tx) + int(ty)*f.width, true
}

// CostAt returns the cost and visited flag for a cell index.
func (f *Flowfield) CostAt(index int) (uint32, bool) {
	if f == nil || index < 0 || index >= len(f.cost) {
		return CostInfinite, false
	}
	c := f.cost[index]
	return c.cost, c.visited
}

// FieldAt returns the memoized direction for a cell without deriving it.
func (f *Flowfield) FieldAt(index int) Dir {
	if f == nil || index < 0 || index >= len(f.field) {
		return Dir{}
	}
	return f.field[index]
}

// minCostAt is the octile distance from a cell to the transient target: the
// theoretical cost with nothing in the way. A cell whose actual cost matches
// it has line of sight to the target.
func (f *Flowfield) minCostAt(index int) uint32 {
	col := index % f.width
	row := index / f.width
	dx := uint32(abs(f.transientX - col))
	dy := uint32(abs(f.transientY - row))
	diag := min(dx, dy)
	straight := max(dx, dy) - diag
	return diag*stepCostDiagonal + straight*stepCostCardinal
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Step advances the wavefront by this tick's iteration budget. dt is the
// tick duration; secondsPerIter is how long one full-grid propagation is
// allowed to take, so larger maps spread their cost over more frames.
func (f *Flowfield) Step(dt, secondsPerIter float64) {
	if f == nil || len(f.cost) == 0 || dt <= 0 || secondsPerIter <= 0 {
		return
	}

	if !f.targetChanged && f.frontier.Len() == 0 {
		return
	}

	if f.frontier.Len() == 0 {
		// Idle -> propagating: freeze the transient target and re-seed.
		f.transientX = int(f.targetX)
		f.transientY = int(f.targetY)
		start, ok := f.IndexAt(f.targetX, f.targetY)
		if !ok {
			return
		}
		for i := range f.cost {
			f.cost[i].visited = false
		}
		f.cost[start] = costCell{cost: 0, visited: true}
		heap.Push(&f.frontier, frontierNode{index: start, cost: 0})
	}

	tileCount := float64(f.width * f.height)
	fps := 1.0 / dt
	iterations := int(math.Ceil(tileCount / (fps * secondsPerIter)))

	for range iterations {
		if f.frontier.Len() == 0 {
			break
		}
		node := heap.Pop(&f.frontier).(frontierNode)
		i := node.index
		if f.cost[i].cost != node.cost {
			// Stale entry: the cell was reached more cheaply after this
			// node was pushed.
			continue
		}
		f.field[i] = Dir{}

		x := i % f.width
		y := i / f.width
		var wallMask uint8

		for _, nb := range neighbors {
			nx := x + nb.dx
			ny := y + nb.dy
			if nx < 0 || nx >= f.width || ny < 0 || ny >= f.height {
				continue
			}
			n := nx + ny*f.width

			if f.walls[n] != 0 {
				wallMask |= nb.mask
				f.cost[n] = costCell{cost: CostInfinite, visited: true}
				continue
			}
			if f.cost[n].visited {
				continue
			}
			if nb.cost == stepCostDiagonal && diagonalBlocked(wallMask, nb.mask) {
				continue
			}

			next := node.cost + nb.cost
			f.cost[n] = costCell{cost: next, visited: true}
			heap.Push(&f.frontier, frontierNode{index: n, cost: next})
		}
	}

	if f.frontier.Len() == 0 {
		// Propagating -> idle: the field is converged for the transient
		// target, later SetTarget calls may re-arm it.
		f.targetChanged = false
	}
}

// FlowAt derives (or returns the memoized) flow direction for a tile given
// in fractional tile coordinates. costThreshold bounds how far from the
// target directions are still re-derived; beyond it a stale memoized
// direction is accepted as-is.
func (f *Flowfield) FlowAt(tx, ty float64, smooth bool, costThreshold uint32) Dir {
	i, ok := f.IndexAt(tx, ty)
	if !ok {
		return Dir{}
	}

	cost := f.cost[i].cost
	lineOfSight := cost == f.minCostAt(i)

	if (cost > costThreshold || !lineOfSight) && f.field[i].Valid() {
		return f.field[i]
	}

	col := i % f.width
	row := i / f.width
	var neighborWallMask uint8

	if !f.field[i].Valid() || f.targetChanged || ambiguousAngle(f.field[i]) {
		subtile := f.walls[i]
		best := CostInfinite

		for _, nb := range neighbors {
			nx := col + nb.dx
			ny := row + nb.dy
			if nx < 0 || nx >= f.width || ny < 0 || ny >= f.height || subtile&nb.mask == nb.mask {
				continue
			}
			n := nx + ny*f.width

			neighborCost := f.cost[n].cost
			if neighborCost == CostInfinite {
				neighborWallMask |= nb.mask
				continue
			}
			if neighborCost < best {
				if diagonalBlocked(neighborWallMask, nb.mask) {
					continue
				}
				best = neighborCost
				f.field[i] = nb.dir
			}
		}
	}

	// Cells that can see the target point straight at it instead of at the
	// cheapest neighbor, which removes staircasing in open areas. Restricted
	// to cells with no adjacent wall, and to directions that are diagonal or
	// exactly in line with the target, so hugging behavior near walls stays
	// intact.
	if smooth && neighborWallMask == 0 && lineOfSight &&
		((f.field[i].Valid() && f.field[i].X != 0 && f.field[i].Y != 0) ||
			col == f.transientX || row == f.transientY) {
		var dx, dy float64
		if cost < costThreshold {
			dx = f.targetX - float64(col) - 0.5
			dy = f.targetY - float64(row) - 0.5
		} else {
			dx = float64(f.transientX) - float64(col) - 0.5
			dy = float64(f.transientY) - float64(row) - 0.5
		}
		if d := dirFrom(dx, dy); d.Valid() {
			f.field[i] = d
		}
	}

	if f.field[i].Valid() {
		return f.field[i]
	}
	return DirNorth
}

// frontierNode is one wavefront entry. Entries are never re-keyed; a cell
// reached more cheaply later simply leaves a stale node behind, skipped on
// pop by comparing against the authoritative cost grid.
type frontierNode struct {
	index int
	cost  uint32
}

type frontierHeap []frontierNode

func (h frontierHeap) Len() int           { return len(h) }
func (h frontierHeap) Less(i, j int) bool { return h[i].cost < h[j].cost }
func (h frontierHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) {
	*h = append(*h, x.(frontierNode))
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	*h = old[:n-1]
	return node
}
