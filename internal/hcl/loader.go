package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/graphnode/internal/config"
	"github.com/vk/graphnode/internal/ctxlog"
	"github.com/vk/graphnode/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL graph loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load parses every .hcl file under paths and merges their blocks into a
// single model, keeping the order in which files and blocks were found.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
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

		part := &config.Model{}
		if root.Graph != nil {
			part.Mode = root.Graph.Mode
		}
		for _, n := range root.Nodes {
			rec, err := l.translateNode(ctx, n, file)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			part.Records = append(part.Records, rec)
		}

		if err := model.Merge(part); err != nil {
			return nil, fmt.Errorf("in file %s: %w", file, err)
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "records", len(model.Records), "mode", model.Mode)
	return model, nil
}
