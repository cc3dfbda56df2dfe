package geo

import "testing"

func TestPercentToPixels(t *testing.T) {
	x, y, w, h := PercentToPixels(10, 50, 80, 10, 1080, 1920)
	if x != 108 || y != 960 || w != 864 || h != 192 {
		t.Errorf("got (%d,%d,%d,%d)", x, y, w, h)
	}
}

func TestPercentToPixelsTruncates(t *testing.T) {
	// 33.33% of 100 = 33.33 → truncates to 33, never rounds to 34.
	x, _, _, _ := PercentToPixels(33.33, 0, 0, 0, 100, 100)
	if x != 33 {
		t.Errorf("x = %d, want 33 (floor semantics)", x)
	}

	// 0.5% of 1920 = 9.6 → 9.
	_, _, _, h := PercentToPixels(0, 0, 0, 0.5, 1080, 1920)
	if h != 9 {
		t.Errorf("h = %d, want 9", h)
	}
}

func TestPixelsToPercentRoundTrip(t *testing.T) {
	xPct, yPct, wPct, hPct := PixelsToPercent(108, 960, 864, 192, 1080, 1920)
	if xPct != 10 || yPct != 50 || wPct != 80 || hPct != 10 {
		t.Errorf("got (%v,%v,%v,%v)", xPct, yPct, wPct, hPct)
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"identical", NewBox(0, 0, 10, 10), NewBox(0, 0, 10, 10), true},
		{"partial", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"contained", NewBox(0, 0, 100, 100), NewBox(10, 10, 5, 5), true},
		{"disjoint horizontal", NewBox(0, 0, 10, 10), NewBox(20, 0, 10, 10), false},
		{"disjoint vertical", NewBox(0, 0, 10, 10), NewBox(0, 20, 10, 10), false},
		{"touching edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"touching corner", NewBox(0, 0, 10, 10), NewBox(10, 10, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlap = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlap(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlap (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMinGap(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want int
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), 0},
		{"touching", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), 0},
		{"horizontal gap", NewBox(0, 0, 10, 10), NewBox(25, 0, 10, 10), 15},
		{"vertical gap", NewBox(0, 0, 10, 10), NewBox(0, 18, 10, 10), 8},
		// Diagonal separation uses the larger axis gap, not Euclidean distance.
		{"diagonal takes max axis", NewBox(0, 0, 10, 10), NewBox(13, 30, 10, 10), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinGap(tt.a, tt.b); got != tt.want {
				t.Errorf("MinGap = %d, want %d", got, tt.want)
			}
			if got := MinGap(tt.b, tt.a); got != tt.want {
				t.Errorf("MinGap (swapped) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTooClose(t *testing.T) {
	logo := NewBox(100, 100, 50, 50)

	// 10px away with a 20px margin: too close.
	if !TooClose(logo, NewBox(160, 100, 50, 50), 20) {
		t.Error("box 10px away should violate a 20px margin")
	}

	// 30px away with a 20px margin: fine.
	if TooClose(logo, NewBox(180, 100, 50, 50), 20) {
		t.Error("box 30px away should clear a 20px margin")
	}
}

func TestBoxAccessors(t *testing.T) {
	b := NewBox(10, 20, 30, 40)
	if b.Width() != 30 || b.Height() != 40 || b.Area() != 1200 {
		t.Errorf("unexpected dims: w=%d h=%d area=%d", b.Width(), b.Height(), b.Area())
	}
	if b.CenterX() != 25 || b.CenterY() != 40 {
		t.Errorf("unexpected center: (%v,%v)", b.CenterX(), b.CenterY())
	}

	e := b.Expand(5)
	if e.MinX != 5 || e.MinY != 15 || e.MaxX != 45 || e.MaxY != 65 {
		t.Errorf("Expand: %+v", e)
	}
}
