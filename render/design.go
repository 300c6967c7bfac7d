package render

import "fmt"

const (
	MinCanvasSize = 50
	MaxCanvasSize = 4096

	MinFontSize = 10
	MaxFontSize = 500

	MinDepth = 1
	MaxDepth = 20
)

// Design is the complete description of a logo. It is a plain value :
// the editor mutates a copy of it and the renderer turns it into pixels.
type Design struct {
	Text string

	// FontName is the display name shown in the font list.
	// FontPath is the file the face is loaded from. An empty path means
	// "use whatever default font the catalog resolves".
	FontName string
	FontPath string

	FontSize float64

	TextPaint       Paint
	BackgroundPaint Paint

	Enable3D bool
	Depth    int

	Width  int
	Height int
}

func DefaultDesign() Design {
	return Design{
		Text:     "A",
		FontName: "Default",
		FontSize: 72,

		TextPaint:       SolidPaint("#000000"),
		BackgroundPaint: SolidPaint("#FFFFFF"),

		Enable3D: false,
		Depth:    5,

		Width:  500,
		Height: 500,
	}
}

func (d Design) Validate() error {
	if d.Width < MinCanvasSize || d.Height < MinCanvasSize {
		return fmt.Errorf("canvas dimensions must be at least %dx%d", MinCanvasSize, MinCanvasSize)
	}

	if d.Width > MaxCanvasSize || d.Height > MaxCanvasSize {
		return fmt.Errorf("canvas dimensions must be at most %dx%d", MaxCanvasSize, MaxCanvasSize)
	}

	if d.FontSize < MinFontSize || d.FontSize > MaxFontSize {
		return fmt.Errorf("font size %v is outside of %v - %v", d.FontSize, MinFontSize, MaxFontSize)
	}

	if d.Enable3D {
		if d.Depth < MinDepth || d.Depth > MaxDepth {
			return fmt.Errorf("3d depth %v is outside of %v - %v", d.Depth, MinDepth, MaxDepth)
		}
	}

	if err := d.TextPaint.Validate(); err != nil {
		return fmt.Errorf("text color: %w", err)
	}

	if err := d.BackgroundPaint.Validate(); err != nil {
		return fmt.Errorf("background color: %w", err)
	}

	return nil
}
