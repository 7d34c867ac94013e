// internal/component/balloon.go
package component

// Balloon is the balloon being inflated on the pump.
type Balloon struct {
	Scale       float64 // 0.1 .. 1.0
	ColorIndex  int
	LetterIndex int
}

// FlyingBalloon is a launched balloon bouncing around the canvas.
type FlyingBalloon struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Scale          float64
	ColorIndex     int
	LetterIndex    int
}

// Move advances the balloon by one frame of velocity.
func (b *FlyingBalloon) Move() {
	b.X += b.SpeedX
	b.Y += b.SpeedY
}

// Contains reports whether (x, y) lies strictly inside the balloon's square box.
func (b *FlyingBalloon) Contains(x, y, size float64) bool {
	return x > b.X && x < b.X+size && y > b.Y && y < b.Y+size
}
