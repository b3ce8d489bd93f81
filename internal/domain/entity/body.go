package entity

// Rect is an axis-aligned rectangle in pixels (top-left origin, Y down)
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether r and o overlap with non-zero area
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Inflate grows the rect by d pixels on every side
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Body represents the physical body of an entity.
// Position is in pixels (screen space, Y down); velocity is in world units
// per second with Y up, the same convention the movement controller uses.
type Body struct {
	X, Y          float64
	Width, Height float64
	Vel           Vector2

	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
	FacingRight bool
}

// Velocity returns the current velocity
func (b *Body) Velocity() Vector2 {
	return b.Vel
}

// SetVelocity replaces the current velocity
func (b *Body) SetVelocity(v Vector2) {
	b.Vel = v
}

// Bounds returns the body rect in pixels
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Feet returns the bottom-center point of the body in pixels
func (b *Body) Feet() (x, y float64) {
	return b.X + b.Width/2, b.Y + b.Height
}

// PixelX returns the integer pixel X position
func (b *Body) PixelX() int {
	return int(b.X)
}

// PixelY returns the integer pixel Y position
func (b *Body) PixelY() int {
	return int(b.Y)
}

// SetPixelPos moves the body to the given pixel position
func (b *Body) SetPixelPos(x, y int) {
	b.X = float64(x)
	b.Y = float64(y)
}

// NewBody creates a body of the given size at a pixel position
func NewBody(x, y int, width, height float64) *Body {
	return &Body{
		X:           float64(x),
		Y:           float64(y),
		Width:       width,
		Height:      height,
		FacingRight: true,
	}
}
