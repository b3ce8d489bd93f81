package system

import (
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/pixelhop/internal/domain/entity"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

// Layer is a collision category bit
type Layer uint

const (
	LayerGround Layer = 1 << iota
	LayerHazard
	LayerBounce
	LayerPickup

	LayerAll = LayerGround | LayerHazard | LayerBounce | LayerPickup
)

// String returns the layer name
func (l Layer) String() string {
	switch l {
	case LayerGround:
		return "ground"
	case LayerHazard:
		return "hazard"
	case LayerBounce:
		return "bounce"
	case LayerPickup:
		return "pickup"
	default:
		return "mixed"
	}
}

// Contact is a static shape found by a query
type Contact struct {
	Layer  Layer
	ID     entity.EntityID
	Bounds entity.Rect
}

// CollisionWorld indexes the stage's static geometry and pickups in a
// chipmunk space. Nothing is simulated; the space only answers queries.
// Coordinates are pixels, so a BB's B edge is the top of a tile.
type CollisionWorld struct {
	space    *cp.Space
	contacts map[*cp.Shape]Contact
	pickups  map[entity.EntityID]*cp.Shape
	nextID   entity.EntityID
}

// NewCollisionWorld builds the static shapes for stage. Contiguous ground
// tiles are merged into larger boxes; hazard and bounce tiles stay one box
// per tile so each pad is its own trigger.
func NewCollisionWorld(stage *entity.Stage) *CollisionWorld {
	w := &CollisionWorld{
		space:    cp.NewSpace(),
		contacts: make(map[*cp.Shape]Contact),
		pickups:  make(map[entity.EntityID]*cp.Shape),
	}
	w.buildStaticShapes(stage)
	return w
}

func (w *CollisionWorld) buildStaticShapes(stage *entity.Stage) {
	ts := float64(stage.TileSize)
	processed := make([][]bool, stage.Height)
	for y := range processed {
		processed[y] = make([]bool, stage.Width)
	}

	isGround := func(x, y int) bool {
		return !processed[y][x] && stage.Tiles[y][x].Type == entity.TileGround
	}

	for y := 0; y < stage.Height; y++ {
		for x := 0; x < stage.Width; x++ {
			if processed[y][x] {
				continue
			}
			tile := stage.Tiles[y][x]
			rect := entity.Rect{X: float64(x) * ts, Y: float64(y) * ts, W: ts, H: ts}

			switch tile.Type {
			case entity.TileHazard:
				w.add(LayerHazard, rect)
			case entity.TileBounce:
				w.add(LayerBounce, rect)
			case entity.TileGround:
				// Greedily grow width then height.
				gw := 1
				for x+gw < stage.Width && isGround(x+gw, y) {
					gw++
				}
				gh := 1
			heightLoop:
				for y+gh < stage.Height {
					for xi := x; xi < x+gw; xi++ {
						if !isGround(xi, y+gh) {
							break heightLoop
						}
					}
					gh++
				}
				for yy := y; yy < y+gh; yy++ {
					for xx := x; xx < x+gw; xx++ {
						processed[yy][xx] = true
					}
				}
				rect.W = float64(gw) * ts
				rect.H = float64(gh) * ts
				w.add(LayerGround, rect)
			}
			processed[y][x] = true
		}
	}
}

func (w *CollisionWorld) add(layer Layer, rect entity.Rect) *cp.Shape {
	w.nextID++
	return w.addWithID(layer, w.nextID, rect)
}

func (w *CollisionWorld) addWithID(layer Layer, id entity.EntityID, rect entity.Rect) *cp.Shape {
	shape := cp.NewBox2(w.space.StaticBody, toBB(rect), 0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES))
	w.space.AddShape(shape)
	w.contacts[shape] = Contact{Layer: layer, ID: id, Bounds: rect}
	return shape
}

// AddPickup indexes a pickup under its own ID
func (w *CollisionWorld) AddPickup(id entity.EntityID, bounds entity.Rect) {
	if _, ok := w.pickups[id]; ok {
		w.RemovePickup(id)
	}
	w.pickups[id] = w.addWithID(LayerPickup, id, bounds)
}

// RemovePickup drops a pickup from the index. Unknown IDs are ignored.
func (w *CollisionWorld) RemovePickup(id entity.EntityID) {
	shape, ok := w.pickups[id]
	if !ok {
		return
	}
	w.space.RemoveShape(shape)
	delete(w.contacts, shape)
	delete(w.pickups, id)
}

// GroundProbe reports whether a circle at (x, y) overlaps the ground layer
func (w *CollisionWorld) GroundProbe(x, y, radius float64) bool {
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(LayerGround))
	info := w.space.PointQueryNearest(cp.Vector{X: x, Y: y}, radius, filter)
	return info != nil && info.Shape != nil
}

// Overlaps returns the shapes on layers that overlap r with non-zero area,
// ordered by ID.
func (w *CollisionWorld) Overlaps(r entity.Rect, layers Layer) []Contact {
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(layers))
	var out []Contact
	w.space.BBQuery(toBB(r), filter, func(shape *cp.Shape, _ interface{}) {
		c, ok := w.contacts[shape]
		if !ok || !c.Bounds.Intersects(r) {
			return
		}
		out = append(out, c)
	}, nil)

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ShapeCount returns the number of indexed shapes
func (w *CollisionWorld) ShapeCount() int {
	return len(w.contacts)
}

func toBB(r entity.Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}

// GroundSensor is the circle probe under the player's feet
type GroundSensor struct {
	world   *CollisionWorld
	radius  float64 // pixels
	offsetY float64 // pixels
}

// NewGroundSensor converts the configured radius from world units to pixels
func NewGroundSensor(world *CollisionWorld, cfg config.GroundCheckConfig, pixelsPerUnit float64) *GroundSensor {
	return &GroundSensor{
		world:   world,
		radius:  cfg.Radius * pixelsPerUnit,
		offsetY: cfg.OffsetY,
	}
}

// Grounded reports whether the probe below body touches ground. A rising
// body is never grounded, so takeoff frames keep the circle's overlap with
// the floor from refilling coyote time and air jumps.
func (s *GroundSensor) Grounded(body *entity.Body) bool {
	if body.Vel.Y > 0 {
		return false
	}
	x, y := body.Feet()
	return s.world.GroundProbe(x, y+s.offsetY, s.radius)
}

// Radius returns the probe radius in pixels
func (s *GroundSensor) Radius() float64 {
	return s.radius
}
