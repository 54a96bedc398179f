package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/platformid/internal/config"
	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL profile loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// fileRoot is a struct used to decode all top-level blocks from any file.
type fileRoot struct {
	Profiles []*Profile `hcl:"profile,block"`
	Remain   hcl.Body   `hcl:",remain"`
}

// Load parses every .hcl file under paths and merges their profiles into a
// single model. Files are read in sorted order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		if attrs, _ := root.Remain.JustAttributes(); len(attrs) > 0 {
			logger.Warn("Ignoring top-level attributes.", "file", file, "count", len(attrs))
		}

		for _, p := range root.Profiles {
			profile, err := l.translateProfile(ctx, file, p)
			if err != nil {
				return nil, err
			}
			if err := model.Add(profile); err != nil {
				return nil, err
			}
		}
	}

	if len(model.Profiles) == 0 {
		logger.Warn("No profiles found.", "paths", paths)
	}
	logger.Debug("HCL loading complete.", "profiles", len(model.Profiles))
	return model, nil
}
