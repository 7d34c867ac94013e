package render

import (
	"image/color"
	"math"
	"testing"

	"balloon-pump/internal/config"
)

func TestBurstOutline(t *testing.T) {
	points := BurstOutline()
	if len(points) != config.PopPetals*3 {
		t.Fatalf("len(BurstOutline()) = %d, want %d", len(points), config.PopPetals*3)
	}

	const eps = 1e-9
	for i := 0; i < config.PopPetals; i++ {
		center, tip, notch := points[i*3], points[i*3+1], points[i*3+2]
		if math.Abs(center[0]) > eps || math.Abs(center[1]) > eps {
			t.Errorf("petal %d: center = %v, want origin", i, center)
		}
		if r := math.Hypot(tip[0], tip[1]); math.Abs(r-math.Hypot(15, 70)) > eps {
			t.Errorf("petal %d: tip radius = %v", i, r)
		}
		if r := math.Hypot(notch[0], notch[1]); math.Abs(r-40) > eps {
			t.Errorf("petal %d: notch radius = %v", i, r)
		}
	}

	// The last petal has made a full turn, so its notch points straight down.
	last := points[len(points)-1]
	if math.Abs(last[0]) > 1e-6 || math.Abs(last[1]-40) > 1e-6 {
		t.Errorf("last notch = %v, want (0, 40)", last)
	}
}

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	want := color.RGBA{100, 50, 25, 255}
	if got != want {
		t.Errorf("DarkenColor() = %v, want %v", got, want)
	}
}
