package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the first decoding pass: the frame block, everything else kept
// for the second pass.
type fileRoot struct {
	Frame  *frameBlock `hcl:"frame,block"`
	Remain hcl.Body    `hcl:",remain"`
}

// evaluatedRoot is decoded from fileRoot.Remain with the frame in scope.
type evaluatedRoot struct {
	Script *scriptBlock `hcl:"script,block"`
	Turtle *turtleBlock `hcl:"turtle,block"`
	Render *renderBlock `hcl:"render,block"`
	Log    *logBlock    `hcl:"log,block"`
}

type frameBlock struct {
	Width  *int `hcl:"width,optional"`
	Height *int `hcl:"height,optional"`
	FPS    *int `hcl:"fps,optional"`
	Frames *int `hcl:"frames,optional"`
}

type scriptBlock struct {
	Path        *string `hcl:"path,optional"`
	ReloadEvery *int    `hcl:"reload_every,optional"`
	Indent      *string `hcl:"indent,optional"`
}

type turtleBlock struct {
	Start         []float64 `hcl:"start,optional"`
	IndicatorSize *float64  `hcl:"indicator_size,optional"`
	SegmentLimit  *int      `hcl:"segment_limit,optional"`
}

type renderBlock struct {
	Output          *string  `hcl:"output,optional"`
	PNGPath         *string  `hcl:"png_path,optional"`
	HollowIndicator *bool    `hcl:"hollow_indicator,optional"`
	Bounds          *bool    `hcl:"bounds,optional"`
	StartMarker     *float64 `hcl:"start_marker,optional"`
	HeadingRay      *float64 `hcl:"heading_ray,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}
