package ecs

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/chase/geom"
	"github.com/milk9111/chase/nav"
)

type collisionType cp.CollisionType

const (
	collisionTypeWall collisionType = iota + 1
	collisionTypeTrigger
	collisionTypePlayer
	collisionTypeChaser
)

const (
	categoryWall uint = 1 << iota
	categoryTrigger
	categoryPlayer
	categoryChaser
)

const wallSegmentRadius = 0.5

// PhysicsWorld wraps the chipmunk space. Bodies are registered per
// entity so systems can move between the two id spaces.
type PhysicsWorld struct {
	space *cp.Space

	entityToBody   map[int]*cp.Body
	shapeToEntity  map[*cp.Shape]int
	triggerSpawner map[*cp.Shape]int
	firedTriggers  []int

	wallFilter cp.ShapeFilter
}

func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:          space,
		entityToBody:   make(map[int]*cp.Body),
		shapeToEntity:  make(map[*cp.Shape]int),
		triggerSpawner: make(map[*cp.Shape]int),
		wallFilter:     cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categoryWall),
	}

	handler := space.NewCollisionHandler(cp.CollisionType(collisionTypePlayer), cp.CollisionType(collisionTypeTrigger))
	handler.UserData = pw
	handler.BeginFunc = triggerBegin

	return pw
}

func (pw *PhysicsWorld) Space() *cp.Space {
	return pw.space
}

func triggerBegin(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
	pw := userData.(*PhysicsWorld)
	_, trigger := arb.Shapes()
	if id, ok := pw.triggerSpawner[trigger]; ok {
		pw.firedTriggers = append(pw.firedTriggers, id)
	}
	return false
}

// DrainTriggers returns the spawner ids whose triggers the player
// entered since the previous call.
func (pw *PhysicsWorld) DrainTriggers() []int {
	fired := pw.firedTriggers
	pw.firedTriggers = nil
	return fired
}

// AddWalls installs static segment colliders for the level outlines.
// Only the rigid pairs collide; bevelled corner diagonals remain open so
// bodies sliding along a wall do not catch on convex corners.
func (pw *PhysicsWorld) AddWalls(outlines []nav.Outline) {
	body := pw.space.StaticBody
	for _, outline := range outlines {
		for _, pair := range outline.Rigid {
			a := outline.Vertices[pair[0]]
			b := outline.Vertices[pair[1]]
			shape := pw.space.AddShape(cp.NewSegment(body, cp.Vector{X: a.X, Y: a.Y}, cp.Vector{X: b.X, Y: b.Y}, wallSegmentRadius))
			shape.SetCollisionType(cp.CollisionType(collisionTypeWall))
			shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryWall, cp.ALL_CATEGORIES))
			shape.SetElasticity(0)
			shape.SetFriction(0)
		}
	}
}

// AddBounds closes the level perimeter so bodies cannot leave the map.
func (pw *PhysicsWorld) AddBounds(width, height float64) {
	body := pw.space.StaticBody
	corners := []cp.Vector{
		{X: 0, Y: 0},
		{X: width, Y: 0},
		{X: width, Y: height},
		{X: 0, Y: height},
	}
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		shape := pw.space.AddShape(cp.NewSegment(body, a, b, wallSegmentRadius))
		shape.SetCollisionType(cp.CollisionType(collisionTypeWall))
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryWall, cp.ALL_CATEGORIES))
		shape.SetElasticity(0)
		shape.SetFriction(0)
	}
}

// AddTriggerRect registers a sensor volume that fires the spawner when
// the player enters it.
func (pw *PhysicsWorld) AddTriggerRect(center geom.Point, width, height float64, spawnerID int) {
	bb := cp.BB{
		L: center.X - width/2,
		B: center.Y - height/2,
		R: center.X + width/2,
		T: center.Y + height/2,
	}
	shape := pw.space.AddShape(cp.NewBox2(pw.space.StaticBody, bb, 0))
	pw.registerTrigger(shape, spawnerID)
}

// AddTriggerEllipse registers an elliptical sensor, approximated as a
// polygon when the axes differ.
func (pw *PhysicsWorld) AddTriggerEllipse(center geom.Point, width, height float64, spawnerID int) {
	rx, ry := width/2, height/2
	var shape *cp.Shape
	if math.Abs(rx-ry) < 1e-9 {
		shape = pw.space.AddShape(cp.NewCircle(pw.space.StaticBody, rx, cp.Vector{X: center.X, Y: center.Y}))
	} else {
		const segments = 16
		verts := make([]cp.Vector, segments)
		for i := 0; i < segments; i++ {
			theta := 2 * math.Pi * float64(i) / segments
			verts[i] = cp.Vector{
				X: center.X + rx*math.Cos(theta),
				Y: center.Y + ry*math.Sin(theta),
			}
		}
		shape = pw.space.AddShape(cp.NewPolyShapeRaw(pw.space.StaticBody, segments, verts, 0))
	}
	pw.registerTrigger(shape, spawnerID)
}

func (pw *PhysicsWorld) registerTrigger(shape *cp.Shape, spawnerID int) {
	shape.SetSensor(true)
	shape.SetCollisionType(cp.CollisionType(collisionTypeTrigger))
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryTrigger, categoryPlayer))
	pw.triggerSpawner[shape] = spawnerID
}

// AddPlayerBody creates the dynamic body for the player entity.
func (pw *PhysicsWorld) AddPlayerBody(e Entity, pos geom.Point, radius, mass float64) *cp.Body {
	return pw.addCircleBody(e, pos, radius, mass, collisionTypePlayer, categoryPlayer)
}

// AddChaserBody creates the dynamic body for a chaser entity.
func (pw *PhysicsWorld) AddChaserBody(e Entity, pos geom.Point, radius, mass float64) *cp.Body {
	return pw.addCircleBody(e, pos, radius, mass, collisionTypeChaser, categoryChaser)
}

func (pw *PhysicsWorld) addCircleBody(e Entity, pos geom.Point, radius, mass float64, ct collisionType, category uint) *cp.Body {
	body := pw.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	shape := pw.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetCollisionType(cp.CollisionType(ct))
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category, cp.ALL_CATEGORIES))
	shape.SetElasticity(0)
	shape.SetFriction(0)
	pw.entityToBody[e.ID] = body
	pw.shapeToEntity[shape] = e.ID
	return body
}

// SetNoclip swaps the entity's shape masks so it passes through walls
// while still overlapping trigger sensors.
func (pw *PhysicsWorld) SetNoclip(e Entity, enabled bool) {
	body, ok := pw.entityToBody[e.ID]
	if !ok {
		return
	}
	mask := cp.ALL_CATEGORIES
	if enabled {
		mask &^= categoryWall
	}
	body.EachShape(func(shape *cp.Shape) {
		filter := shape.Filter
		filter.Mask = mask
		shape.SetFilter(filter)
	})
}

func (pw *PhysicsWorld) Body(e Entity) (*cp.Body, bool) {
	body, ok := pw.entityToBody[e.ID]
	return body, ok
}

// NearestWall returns the closest point on any wall collider within
// maxDist of p. ok is false when no wall is in range.
func (pw *PhysicsWorld) NearestWall(p geom.Point, maxDist float64) (geom.Point, float64, bool) {
	info := pw.space.PointQueryNearest(cp.Vector{X: p.X, Y: p.Y}, maxDist, pw.wallFilter)
	if info.Shape == nil {
		return geom.Point{}, 0, false
	}
	return geom.Pt(info.Point.X, info.Point.Y), info.Distance, true
}

func (pw *PhysicsWorld) Step(dt float64) {
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) removeEntity(e Entity) {
	body, ok := pw.entityToBody[e.ID]
	if !ok {
		return
	}
	body.EachShape(func(shape *cp.Shape) {
		delete(pw.shapeToEntity, shape)
		pw.space.RemoveShape(shape)
	})
	pw.space.RemoveBody(body)
	delete(pw.entityToBody, e.ID)
}
