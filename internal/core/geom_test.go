package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(5, 5, 10, 10),
			b:        NewBox(10, 10, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(5, 5, 10, 10),
			b:        NewBox(20, 5, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(5, 5, 10, 10),
			b:        NewBox(5, 20, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        NewBox(5, 5, 10, 10),
			b:        NewBox(15, 5, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(10, 10, 20, 20),
			b:        NewBox(10, 10, 2, 2),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(50, 40, 100, 70)

	if b.Left() != 0 || b.Right() != 100 {
		t.Errorf("horizontal edges = (%v, %v), expected (0, 100)", b.Left(), b.Right())
	}
	if b.Top() != 5 || b.Bottom() != 75 {
		t.Errorf("vertical edges = (%v, %v), expected (5, 75)", b.Top(), b.Bottom())
	}
}

func TestBoxScaled(t *testing.T) {
	b := NewBox(50, 40, 100, 70).Scaled(0.5)

	if b.Center != (Vec{X: 50, Y: 40}) {
		t.Errorf("Scaled() moved the centre to %+v", b.Center)
	}
	if b.Size.W != 50 || b.Size.H != 35 {
		t.Errorf("Scaled() size = %+v, expected {50 35}", b.Size)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
