package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Graph modes accepted in files and on the command line.
const (
	ModeDirected   = "directed"
	ModeUndirected = "undirected"
)

// Model is the unified, format-agnostic representation of a graph file set.
type Model struct {
	// Mode is "directed", "undirected" or empty when no file declared it.
	Mode    string    `validate:"omitempty,oneof=directed undirected"`
	Records []*Record `validate:"dive,required"`
}

// Record is the format-agnostic representation of a `node` block or entry.
// It satisfies both graph.DirectedRecord and graph.UndirectedRecord.
type Record struct {
	Key        string             `validate:"required"`
	Parents    []string           `validate:"dive,required"`
	Children   []string           `validate:"dive,required"`
	Neighbours []string           `validate:"dive,required"`
	Weights    map[string]float64 `validate:"dive,keys,required,endkeys,gte=0"`
	Labels     map[string]string

	// Source is the file the record was read from.
	Source string
}

// NodeKey implements graph.Keyed.
func (r *Record) NodeKey() string { return r.Key }

// ParentKeys implements graph.DirectedRecord.
func (r *Record) ParentKeys() []string { return r.Parents }

// ChildKeys implements graph.DirectedRecord.
func (r *Record) ChildKeys() []string { return r.Children }

// NeighbourKeys implements graph.UndirectedRecord.
func (r *Record) NeighbourKeys() []string { return r.Neighbours }

// WeightTo returns the declared weight of the link to target, or 1 when the
// record does not declare one.
func (r *Record) WeightTo(target string) float64 {
	if w, ok := r.Weights[target]; ok {
		return w
	}
	return 1.0
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the model's struct constraints: known mode, non-empty keys
// and non-negative weights.
func (m *Model) Validate() error {
	if err := validate.Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid graph model: %s", describe(verrs[0]))
		}
		return fmt.Errorf("invalid graph model: %w", err)
	}
	return nil
}

// Merge appends other into m. Records keep their order; a mode declared on
// both sides must agree.
func (m *Model) Merge(other *Model) error {
	if other == nil {
		return nil
	}
	if other.Mode != "" {
		if m.Mode != "" && m.Mode != other.Mode {
			return fmt.Errorf("conflicting graph modes %q and %q", m.Mode, other.Mode)
		}
		m.Mode = other.Mode
	}
	m.Records = append(m.Records, other.Records...)
	return nil
}

func describe(fe validator.FieldError) string {
	msg := fmt.Sprintf("field %s failed on the '%s' rule", fe.Namespace(), fe.Tag())
	if fe.Param() != "" {
		msg = fmt.Sprintf("field %s failed on the '%s=%s' rule", fe.Namespace(), fe.Tag(), fe.Param())
	}
	return msg
}
