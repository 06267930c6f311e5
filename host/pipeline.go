// pipeline.go implements the resource pipeline: an ordered chain of
// transform stages the resource list is folded through before resources are
// finalised.
//
// Reducer contract: every stage receives the full list and its return value
// replaces the list wholesale. The pipeline takes that return at face value,
// including an unintentionally partial one; see extension.Transformer for
// the documented sharp edge. Stages run strictly in activation order, and
// the first failure aborts the fold.

package host

import (
	"github.com/fernholt/trellis/internal/log"
	"github.com/fernholt/trellis/resource"
)

// Pipeline owns the ordered transform stages of one application state.
type Pipeline struct {
	generation string
	stages     []*activation
}

func newPipeline(generation string) *Pipeline {
	return &Pipeline{generation: generation}
}

// add appends a stage in activation order.
func (p *Pipeline) add(a *activation) {
	p.stages = append(p.stages, a)
}

// Stages returns the stage owners' extension names in run order.
func (p *Pipeline) Stages() []string {
	out := make([]string, len(p.stages))
	for i, a := range p.stages {
		out[i] = a.name
	}
	return out
}

// Run folds the resource list through every stage and returns the final
// collection. A stage failure aborts the remaining fold with a
// PipelineStageError carrying the 1-based stage index.
func (p *Pipeline) Run(resources resource.List) (resource.List, error) {
	for i, a := range p.stages {
		next, err := a.transformer.TransformResources(resources)
		log.Event("pipeline:stage", "transform").
			Extension(a.name).
			Stage(i + 1).
			Generation(p.generation).
			Detail("in", len(resources)).
			Detail("out", len(next)).
			Write(err)
		if err != nil {
			return nil, &PipelineStageError{Stage: i + 1, Extension: a.name, Err: err}
		}
		resources = next
	}
	return resources, nil
}
