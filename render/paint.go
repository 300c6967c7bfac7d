package render

import (
	"fmt"
	"strconv"

	"github.com/gogpu/gg"
)

type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Paint is either a solid color or a two stop linear gradient.
// Colors are kept as hex strings so designs serialize the same way
// users type them.
type Paint struct {
	Gradient bool

	Color  string
	Color2 string

	Axis Axis
}

func SolidPaint(hex string) Paint {
	return Paint{Color: hex}
}

func GradientPaint(hex1, hex2 string, axis Axis) Paint {
	return Paint{
		Gradient: true,
		Color:    hex1,
		Color2:   hex2,
		Axis:     axis,
	}
}

func (p Paint) Validate() error {
	if _, err := ParseHexColor(p.Color); err != nil {
		return err
	}

	if p.Gradient {
		if _, err := ParseHexColor(p.Color2); err != nil {
			return err
		}
	}

	return nil
}

// brush returns the gg brush for filling the rect (x, y, w, h) with p.
func (p Paint) brush(x, y, w, h float64) (gg.Brush, error) {
	c1, err := ParseHexColor(p.Color)
	if err != nil {
		return nil, err
	}

	if !p.Gradient {
		return gg.Solid(c1), nil
	}

	c2, err := ParseHexColor(p.Color2)
	if err != nil {
		return nil, err
	}

	var grad *gg.LinearGradientBrush

	if p.Axis == AxisHorizontal {
		grad = gg.NewLinearGradientBrush(x, y, x+w, y)
	} else {
		grad = gg.NewLinearGradientBrush(x, y, x, y+h)
	}

	grad.AddColorStop(0, c1)
	grad.AddColorStop(1, c2)

	return grad, nil
}

// ParseHexColor parses "#RGB", "#RRGGBB" and "#RRGGBBAA" colors.
// The leading '#' is optional.
func ParseHexColor(s string) (gg.RGBA, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	parse := func(sub string) (float64, error) {
		n, err := strconv.ParseUint(sub, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", s)
		}
		return float64(n) / 255, nil
	}

	var col gg.RGBA
	var err error

	col.A = 1

	switch len(hex) {
	case 3:
		if col.R, err = parse(hex[0:1] + hex[0:1]); err != nil {
			return gg.RGBA{}, err
		}
		if col.G, err = parse(hex[1:2] + hex[1:2]); err != nil {
			return gg.RGBA{}, err
		}
		if col.B, err = parse(hex[2:3] + hex[2:3]); err != nil {
			return gg.RGBA{}, err
		}
	case 6, 8:
		if col.R, err = parse(hex[0:2]); err != nil {
			return gg.RGBA{}, err
		}
		if col.G, err = parse(hex[2:4]); err != nil {
			return gg.RGBA{}, err
		}
		if col.B, err = parse(hex[4:6]); err != nil {
			return gg.RGBA{}, err
		}
		if len(hex) == 8 {
			if col.A, err = parse(hex[6:8]); err != nil {
				return gg.RGBA{}, err
			}
		}
	default:
		return gg.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	return col, nil
}

// HexColor formats a color the way ParseHexColor reads it back.
// Alpha is only included when it's not fully opaque.
func HexColor(c gg.RGBA) string {
	to255 := func(f float64) int {
		n := int(f*255 + 0.5)
		if n < 0 {
			n = 0
		} else if n > 255 {
			n = 255
		}
		return n
	}

	if c.A < 1 {
		return fmt.Sprintf("#%02X%02X%02X%02X", to255(c.R), to255(c.G), to255(c.B), to255(c.A))
	}

	return fmt.Sprintf("#%02X%02X%02X", to255(c.R), to255(c.G), to255(c.B))
}
