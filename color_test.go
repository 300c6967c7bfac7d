package logo

import (
	"math"
	"testing"
)

func TestColorHexRoundTrip(t *testing.T) {
	colors := []Color{
		Col(0, 0, 0, 1),
		Col(1, 1, 1, 1),
		Color255(0xE3, 0x9C, 0x02, 0xFF),
		Color255(0x12, 0x34, 0x56, 0xFF),
	}

	for _, c := range colors {
		parsed, err := ColorFromHex(c.Hex())
		if err != nil {
			t.Fatalf("failed to parse %s: %v", c.Hex(), err)
		}

		if parsed.ToRlColor() != c.ToRlColor() {
			t.Errorf("round trip of %s changed the color: %v != %v",
				c.Hex(), parsed, c)
		}
	}
}

func TestColorFromHexInvalid(t *testing.T) {
	for _, hex := range []string{"", "red", "#12", "#12345", "#GGGGGG"} {
		if _, err := ColorFromHex(hex); err == nil {
			t.Errorf("expected error for %q", hex)
		}
	}
}

func TestColorHSV(t *testing.T) {
	red := Col(1, 0, 0, 1)

	h, s, v := red.ToHSV()

	if math.Abs(h) > 0.001 || math.Abs(s-1) > 0.001 || math.Abs(v-1) > 0.001 {
		t.Errorf("expected red to be hsv(0, 1, 1), got (%f, %f, %f)", h, s, v)
	}

	back := FromHSV(h, s, v, 0.5)

	if math.Abs(back.R-1) > 0.001 || math.Abs(back.G) > 0.001 || math.Abs(back.B) > 0.001 {
		t.Errorf("expected red back from hsv, got %v", back)
	}

	if back.A != 0.5 {
		t.Errorf("alpha should pass through, got %f", back.A)
	}
}

func TestLerpRGBA(t *testing.T) {
	black := Col(0, 0, 0, 1)
	white := Col(1, 1, 1, 1)

	mid := LerpRGBA(black, white, 0.5)

	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 || mid.A != 1 {
		t.Errorf("expected middle gray, got %v", mid)
	}
}

func TestFadeAlpha(t *testing.T) {
	c := Col(1, 1, 1, 0.8).FadeAlpha(0.5)

	if math.Abs(c.A-0.4) > 0.001 {
		t.Errorf("expected alpha 0.4, got %f", c.A)
	}
}
