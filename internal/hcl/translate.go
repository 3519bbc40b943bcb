package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/graphnode/internal/config"
	"github.com/vk/graphnode/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateNode converts the HCL-specific node schema into the agnostic model.
func (l *Loader) translateNode(ctx context.Context, n *nodeBlock, file string) (*config.Record, error) {
	rec := &config.Record{
		Key:        n.Key,
		Parents:    n.Parents,
		Children:   n.Children,
		Neighbours: n.Neighbours,
		Source:     file,
	}

	if err := decodeMap(ctx, n.Weights, "weights", cty.Map(cty.Number), &rec.Weights); err != nil {
		return nil, fmt.Errorf("node %q: %w", n.Key, err)
	}
	if err := decodeMap(ctx, n.Labels, "labels", cty.Map(cty.String), &rec.Labels); err != nil {
		return nil, fmt.Errorf("node %q: %w", n.Key, err)
	}
	return rec, nil
}

// decodeMap evaluates a map-valued attribute without variables, converts it
// to want and binds it to target. An omitted or null attribute leaves target
// untouched.
func decodeMap(ctx context.Context, expr hcl.Expression, attrName string, want cty.Type, target any) error {
	logger := ctxlog.FromContext(ctx)

	if !isExprDefined(ctx, expr, attrName) {
		return nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return fmt.Errorf("invalid %s: %w", attrName, diags)
	}
	if val.IsNull() {
		return nil
	}

	converted, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", attrName, want.FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"attribute", attrName,
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(converted, target)
}

// isExprDefined checks if an HCL expression was actually present in the
// source. The decoder fills omitted optional expression fields with a
// zero-width placeholder, so a nil check alone is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}

	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}
