package detect

import (
	"fmt"

	"data-profiler/internal/table"
)

// Step is one unit of the type detection pipeline. Apply must return a new
// table (never mutate its input) with the same columns in the same order.
type Step interface {
	Name() string
	Apply(t *table.Table) (*table.Table, error)
}

// Ensure interface implementation
var _ Step = (*EmptyColumnStep)(nil)
var _ Step = (*ForcedTextStep)(nil)
var _ Step = (*NumericConversionStep)(nil)
var _ Step = (*DateConversionStep)(nil)
var _ Step = (*BooleanConversionStep)(nil)
var _ Step = (*CategoricalConversionStep)(nil)
var _ Step = (*ObjectToTextStep)(nil)

// Pipeline runs the fixed, ordered step list once over a private copy of
// the input table. Rerunning it on its own output is a no-op.
type Pipeline struct {
	steps  []Step
	onStep func(name string)
}

// NewPipeline builds the canonical step order:
// Empty → ForcedText → Numeric → Date → (Boolean) → Categorical → ObjectToText.
// The boolean step only participates when enableBoolean is set.
func NewPipeline(cfg KeywordConfig, enableBoolean bool) *Pipeline {
	steps := []Step{
		NewEmptyColumnStep(),
		NewForcedTextStep(cfg),
		NewNumericStep(cfg),
		NewDateStep(cfg),
	}
	if enableBoolean {
		steps = append(steps, NewBooleanStep(cfg))
	}
	steps = append(steps,
		NewCategoricalStep(cfg),
		NewObjectToTextStep(),
	)
	return &Pipeline{steps: steps}
}

// OnStep registers a callback invoked after each completed step, used by
// the CLI to drive a progress bar.
func (p *Pipeline) OnStep(fn func(name string)) {
	p.onStep = fn
}

func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// Run clones the input and feeds it through every step in order. Column
// level conversion failures are absorbed inside the steps; only structural
// violations (shape change after a step) abort the run.
func (p *Pipeline) Run(t *table.Table) (*table.Table, error) {
	if t == nil {
		return nil, fmt.Errorf("nil table")
	}
	out := t.Clone()
	rows := out.RowCount()
	cols := len(out.Columns)

	for _, s := range p.steps {
		next, err := s.Apply(out)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", s.Name(), err)
		}
		if len(next.Columns) != cols {
			return nil, fmt.Errorf("step %s changed column count from %d to %d", s.Name(), cols, len(next.Columns))
		}
		if err := next.Validate(); err != nil {
			return nil, fmt.Errorf("step %s: %w", s.Name(), err)
		}
		if next.RowCount() != rows {
			return nil, fmt.Errorf("step %s changed row count from %d to %d", s.Name(), rows, next.RowCount())
		}
		out = next
		if p.onStep != nil {
			p.onStep(s.Name())
		}
	}
	return out, nil
}
