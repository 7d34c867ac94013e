// internal/component/layout.go
package component

import "balloon-pump/internal/config"

// Rect is an axis-aligned box in canvas coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// ContainsStrict reports whether (x, y) is inside r grown by margin on every side.
// Edges do not count.
func (r Rect) ContainsStrict(x, y, margin float64) bool {
	return x > r.X-margin && x < r.X+r.Width+margin &&
		y > r.Y-margin && y < r.Y+r.Height+margin
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Point is a canvas position.
type Point struct {
	X, Y float64
}

// Layout holds the pump geometry for a canvas of a given size. Everything is
// anchored to the bottom-right corner.
type Layout struct {
	Width, Height float64
	Pump          Rect
	Handle        Rect
	Nozzle        Rect
	Anchor        Point // bottom-center of the balloon being inflated
}

// NewLayout computes the pump, handle and nozzle boxes for a width x height canvas.
func NewLayout(width, height float64) Layout {
	pump := Rect{
		X:      width - config.PumpOffset,
		Y:      height - config.PumpOffset,
		Width:  config.PumpSize,
		Height: config.PumpSize,
	}
	handle := Rect{
		X:      pump.X + config.HandleOffsetX,
		Y:      pump.Y + config.HandleOffsetY,
		Width:  config.HandleWidth,
		Height: config.HandleHeight,
	}
	nozzle := Rect{
		X:      pump.X + config.NozzleOffsetX,
		Y:      pump.Y + config.NozzleOffsetY,
		Width:  config.NozzleSize,
		Height: config.NozzleSize,
	}
	return Layout{
		Width:  width,
		Height: height,
		Pump:   pump,
		Handle: handle,
		Nozzle: nozzle,
		Anchor: Point{
			X: nozzle.X + config.AnchorOffsetX,
			Y: nozzle.Y + config.AnchorOffsetY,
		},
	}
}

// BalloonOrigin returns the top-left corner of a balloon of the given scale
// sitting on the nozzle.
func (l Layout) BalloonOrigin(scale float64) Point {
	size := config.BalloonSize * scale
	return Point{
		X: l.Anchor.X - size/2,
		Y: l.Anchor.Y - size + config.BalloonSeatOffset,
	}
}
