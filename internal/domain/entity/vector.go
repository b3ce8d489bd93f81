package entity

// Vector2 is a 2D vector in world units.
// Y grows upward: a positive Y velocity moves the body up the screen.
type Vector2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}
