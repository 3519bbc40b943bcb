package app

import (
	"context"
	"fmt"

	"github.com/vk/graphnode/internal/config"
	"github.com/vk/graphnode/internal/ctxlog"
	"github.com/vk/graphnode/internal/graph"
)

// Run loads the configured files, builds the graph, runs the optional
// shortest-path query and writes the report.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	model, err := config.Chain(ctx, a.config.GraphPaths, a.loaders...)
	if err != nil {
		return fmt.Errorf("failed to load graph files: %w", err)
	}
	if err := model.Validate(); err != nil {
		return err
	}
	logger.Info("Graph files loaded.", "records", len(model.Records))

	mode := a.config.Mode
	if mode == "" {
		mode = model.Mode
	}
	if mode == "" {
		mode = config.ModeDirected
	}
	if a.config.Mode != "" && model.Mode != "" && a.config.Mode != model.Mode {
		logger.Warn("Mode flag overrides the mode declared in the files.", "flag", a.config.Mode, "files", model.Mode)
	}

	var g *graph.Graph[*config.Record]
	if mode == config.ModeUndirected {
		g = graph.NewUndirected(ctx, model.Records)
	} else {
		g = graph.NewDirected(ctx, model.Records)
	}
	edges := g.BuildEdges(recordWeight)
	logger.Debug("Graph built.", "mode", g.Mode(), "nodes", g.Len(), "edges", edges.Len(), "circular", g.HasCircularRef())

	rep := newReport(g)
	if a.config.From != "" {
		rep.addQuery(g, a.config.From, a.config.To)
		if rep.Query.Found {
			logger.Info("Shortest path found.", "from", a.config.From, "to", a.config.To, "weight", rep.Query.Weight)
		} else {
			logger.Warn("No path between the requested nodes.", "from", a.config.From, "to", a.config.To)
		}
	}

	if err := rep.render(a.outW, a.config.Output); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}

// recordWeight reads link weights from the record's declared weights.
func recordWeight(n *graph.Node[*config.Record], target string) (string, string, float64) {
	return n.Key(), target, n.Data.WeightTo(target)
}
