package component

// BodyComponent is an axis-aligned box centered on (X, Y) with velocity in world units per second
// Y grows downward, the world climbs toward negative Y
type BodyComponent struct {
	X, Y          float64
	VX, VY        float64
	Width, Height float64

	// Gravity marks bodies accelerated by world gravity
	Gravity bool
}

// Top returns the upper edge
func (b BodyComponent) Top() float64 { return b.Y - b.Height/2 }

// Bottom returns the lower edge
func (b BodyComponent) Bottom() float64 { return b.Y + b.Height/2 }

// Left returns the left edge
func (b BodyComponent) Left() float64 { return b.X - b.Width/2 }

// Right returns the right edge
func (b BodyComponent) Right() float64 { return b.X + b.Width/2 }
