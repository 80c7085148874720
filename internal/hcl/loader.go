package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/rtappgo/internal/config"
	"github.com/vk/rtappgo/internal/ctxlog"
	"github.com/vk/rtappgo/internal/fsutil"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL application description loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and merges the decoded
// blocks into one config.Model. Structural problems — syntax errors, unknown
// attributes, duplicate blocks or names, unevaluable initializers — fail the
// load; cross-reference problems are deliberately left for the verifier.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.CollectFiles(path, ".hcl")
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found under %v", paths)
	}
	logger.Debug("Discovered application description files.", "count", len(files))

	m := &config.Model{
		Resources: make(map[string]*config.Resource),
		Tasks:     make(map[string]*config.Task),
	}

	parser := hclparse.NewParser()
	merged := mergeState{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		if err := l.merge(m, &root, &merged); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}

	logger.Debug("Application description loaded.",
		"tasks", len(m.Tasks), "resources", len(m.Resources))
	return m, nil
}
