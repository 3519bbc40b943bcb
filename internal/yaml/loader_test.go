package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/graphnode/internal/config"
	"github.com/vk/graphnode/internal/ctxlog"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "europe.yaml", `
mode: undirected
nodes:
  - key: Paris
    neighbours: [Berlin, Bruxelles]
    weights:
      Berlin: 1054
      Bruxelles: 312
    labels:
      country: FR
  - key: Berlin
`)

	model, err := NewLoader().Load(testContext(), dir)
	require.NoError(t, err)

	want := &config.Model{
		Mode: config.ModeUndirected,
		Records: []*config.Record{
			{
				Key:        "Paris",
				Neighbours: []string{"Berlin", "Bruxelles"},
				Weights:    map[string]float64{"Berlin": 1054, "Bruxelles": 312},
				Labels:     map[string]string{"country": "FR"},
				Source:     path,
			},
			{Key: "Berlin", Source: path},
		},
	}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_BothExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "nodes:\n  - key: a\n    children: [b]\n")
	writeFile(t, dir, "b.yml", "mode: directed\nnodes:\n  - key: b\n    parents: [a]\n")
	writeFile(t, dir, "c.hcl", `node "c" {}`)

	model, err := NewLoader().Load(testContext(), dir)
	require.NoError(t, err)
	assert.Equal(t, config.ModeDirected, model.Mode)
	require.Len(t, model.Records, 2)
	assert.Equal(t, []string{"b"}, model.Records[0].ChildKeys())
	assert.Equal(t, []string{"a"}, model.Records[1].ParentKeys())
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.yaml", "")

	model, err := NewLoader().Load(testContext(), dir)
	require.NoError(t, err)
	assert.Empty(t, model.Records)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "unknown field",
			files:   map[string]string{"bad.yaml": "nodes:\n  - key: a\n    colour: red\n"},
			wantErr: "failed to decode YAML file",
		},
		{
			name:    "malformed document",
			files:   map[string]string{"bad.yaml": "nodes: [\n"},
			wantErr: "failed to decode YAML file",
		},
		{
			name:    "weight is not a number",
			files:   map[string]string{"bad.yaml": "nodes:\n  - key: a\n    weights: {b: far}\n"},
			wantErr: "failed to decode YAML file",
		},
		{
			name: "conflicting modes",
			files: map[string]string{
				"a.yaml": "mode: directed\n",
				"b.yaml": "mode: undirected\n",
			},
			wantErr: "conflicting graph modes",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tc.files {
				writeFile(t, dir, name, content)
			}
			_, err := NewLoader().Load(testContext(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
