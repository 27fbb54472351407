// Package sheet reads tag sheets: HCL files that declare the frames to write
// to each audio file.
//
//	file "01 - Intro.mp3" {
//	  tag = 2
//	  tags = {
//	    Title  = "Intro"
//	    Artist = env.ARTIST
//	  }
//	}
//
// Expressions may reference dir (the sheet's absolute directory) and env (the
// process environment). Relative file paths are resolved against dir.
package sheet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/sonnes/kid3/core"
	"github.com/zclconf/go-cty/cty"
)

// Sheet is a decoded tag sheet.
type Sheet struct {
	Files []File `hcl:"file,block"`
}

// File is one file block.
type File struct {
	Path string            `hcl:"path,label"`
	Tag  *int              `hcl:"tag,optional"`
	Tags map[string]string `hcl:"tags"`
}

// TagNumber returns the block's tag selector, TagDefault when unset.
func (f File) TagNumber() core.TagNumber {
	if f.Tag == nil {
		return core.TagDefault
	}
	return core.TagNumber(*f.Tag)
}

// Setter writes frames to a file. *kid3.Client satisfies it.
type Setter interface {
	SetTagsOn(ctx context.Context, tags core.Frames, path string, tag core.TagNumber) error
}

// ReadFile parses and decodes the sheet at path.
func ReadFile(path string) (*Sheet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return Parse(src, abs)
}

// Parse decodes a sheet from src. filename names the sheet in diagnostics and
// its directory becomes dir.
func Parse(src []byte, filename string) (*Sheet, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	dir := filepath.Dir(filename)
	var s Sheet
	diags = gohcl.DecodeBody(file.Body, evalContext(dir), &s)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	for i, f := range s.Files {
		if f.Tag != nil {
			switch core.TagNumber(*f.Tag) {
			case core.Tag1, core.Tag2, core.TagBoth:
			default:
				return nil, fmt.Errorf("%s: file %q: invalid tag %d (want 1, 2 or 12)", filename, f.Path, *f.Tag)
			}
		}
		if !filepath.IsAbs(f.Path) {
			s.Files[i].Path = filepath.Join(dir, f.Path)
		}
	}
	return &s, nil
}

func evalContext(dir string) *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"dir": cty.StringVal(dir),
			"env": cty.ObjectVal(env),
		},
	}
}

// Apply writes every file block in order, stopping at the first failure.
func Apply(ctx context.Context, w Setter, s *Sheet) error {
	for _, f := range s.Files {
		if err := w.SetTagsOn(ctx, core.Frames(f.Tags), f.Path, f.TagNumber()); err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}
	}
	return nil
}
