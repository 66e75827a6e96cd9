package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/turtlego/internal/config"
	"github.com/vk/turtlego/internal/ctxlog"
	"github.com/vk/turtlego/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load applies every given file on top of base. A directory contributes all
// of its .hcl files in lexical order.
func (l *Loader) Load(ctx context.Context, base config.Settings, paths ...string) (config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.expand(paths)
	if err != nil {
		return base, err
	}

	parser := hclparse.NewParser()
	settings := base
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return base, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if settings, err = l.apply(settings, hclFile.Body); err != nil {
			return base, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
		}
		logger.Debug("Applied settings file.", "file", file)
	}

	logger.Debug("HCL loading complete.", "files", len(files))
	return settings, nil
}

func (l *Loader) expand(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
		files = append(files, found...)
	}
	return files, nil
}

// apply decodes one file body in two passes and merges it onto s.
func (l *Loader) apply(s config.Settings, body hcl.Body) (config.Settings, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return s, diags
	}
	if f := root.Frame; f != nil {
		set(&s.Frame.Width, f.Width)
		set(&s.Frame.Height, f.Height)
		set(&s.Frame.FPS, f.FPS)
		set(&s.Frame.Frames, f.Frames)
	}

	var rest evaluatedRoot
	if diags := gohcl.DecodeBody(root.Remain, evalContext(s), &rest); diags.HasErrors() {
		return s, diags
	}
	if b := rest.Script; b != nil {
		set(&s.Script.Path, b.Path)
		set(&s.Script.ReloadEvery, b.ReloadEvery)
		set(&s.Script.Indent, b.Indent)
	}
	if b := rest.Turtle; b != nil {
		if b.Start != nil {
			s.Turtle.Start = b.Start
		}
		set(&s.Turtle.IndicatorSize, b.IndicatorSize)
		set(&s.Turtle.SegmentLimit, b.SegmentLimit)
	}
	if b := rest.Render; b != nil {
		set(&s.Render.Output, b.Output)
		set(&s.Render.PNGPath, b.PNGPath)
		set(&s.Render.HollowIndicator, b.HollowIndicator)
		set(&s.Render.Bounds, b.Bounds)
		set(&s.Render.StartMarker, b.StartMarker)
		set(&s.Render.HeadingRay, b.HeadingRay)
	}
	if b := rest.Log; b != nil {
		set(&s.Log.Level, b.Level)
		set(&s.Log.Format, b.Format)
	}
	return s, nil
}

func evalContext(s config.Settings) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"frame": cty.ObjectVal(map[string]cty.Value{
				"width":  cty.NumberIntVal(int64(s.Frame.Width)),
				"height": cty.NumberIntVal(int64(s.Frame.Height)),
				"fps":    cty.NumberIntVal(int64(s.Frame.FPS)),
			}),
		},
		Functions: map[string]function.Function{
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
			"abs":   stdlib.AbsoluteFunc,
		},
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
