// Package yaml provides the YAML implementation of the config.Loader
// interface.
package yaml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/graphnode/internal/config"
	"github.com/vk/graphnode/internal/ctxlog"
	"github.com/vk/graphnode/internal/fsutil"
	yamlv3 "gopkg.in/yaml.v3"
)

// fileRoot mirrors the document layout of a YAML graph file.
type fileRoot struct {
	Mode  string      `yaml:"mode"`
	Nodes []nodeEntry `yaml:"nodes"`
}

type nodeEntry struct {
	Key        string             `yaml:"key"`
	Parents    []string           `yaml:"parents"`
	Children   []string           `yaml:"children"`
	Neighbours []string           `yaml:"neighbours"`
	Weights    map[string]float64 `yaml:"weights"`
	Labels     map[string]string  `yaml:"labels"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML graph loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load decodes every YAML file under paths and merges them into one model.
// Unknown fields are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		part, err := decodeFile(file)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(part); err != nil {
			return nil, fmt.Errorf("in file %s: %w", file, err)
		}
	}

	logger.Debug("YAML loading complete.", "files", len(files), "records", len(model.Records), "mode", model.Mode)
	return model, nil
}

func decodeFile(file string) (*config.Model, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
	}

	var root fileRoot
	dec := yamlv3.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}

	model := &config.Model{Mode: root.Mode}
	for _, n := range root.Nodes {
		model.Records = append(model.Records, &config.Record{
			Key:        n.Key,
			Parents:    n.Parents,
			Children:   n.Children,
			Neighbours: n.Neighbours,
			Weights:    n.Weights,
			Labels:     n.Labels,
			Source:     file,
		})
	}
	return model, nil
}
