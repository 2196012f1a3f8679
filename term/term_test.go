package term

import "testing"

func TestWidthIsPositive(t *testing.T) {
	// Whether or not the test runs under a TTY, the fallback guarantees
	// a usable value.
	if w := Width(); w <= 0 {
		t.Errorf("Width() = %d, expected a positive value", w)
	}
}

func TestHeightIsPositive(t *testing.T) {
	if h := Height(); h <= 0 {
		t.Errorf("Height() = %d, expected a positive value", h)
	}
}

func TestDefaults(t *testing.T) {
	if DefaultWidth != 80 {
		t.Errorf("DefaultWidth = %d, expected 80", DefaultWidth)
	}
	if DefaultHeight != 24 {
		t.Errorf("DefaultHeight = %d, expected 24", DefaultHeight)
	}
}
