package logo

const (
	MinTargetFPS = 30
	MaxTargetFPS = 240
)

type Options struct {
	TargetFPS int32

	// draw a checkerboard behind the preview so transparent
	// backgrounds are visible
	Checkerboard bool

	// persist the current design and options on exit
	AutoSaveSession bool
}

var DefaultOptions Options

var TheOptions Options

func init() {
	DefaultOptions.TargetFPS = 60
	DefaultOptions.Checkerboard = true
	DefaultOptions.AutoSaveSession = true

	TheOptions = DefaultOptions
}
