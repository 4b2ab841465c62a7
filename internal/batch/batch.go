// Package batch fans independent chromaticity conversions out across worker
// goroutines. Every query against the converter is a pure computation over
// the shared immutable renotation table, so the work is embarrassingly
// parallel: no locking, no ordering guarantee between items.
package batch

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	parallel "github.com/kovidgoyal/go-parallel"

	"github.com/colourkit/munsell/internal/munsell"
)

// Result pairs one input chromaticity with its converted specification.
type Result struct {
	Input munsell.Chromaticity
	Spec  munsell.Specification
	Err   error
}

// Convert runs every input through the converter, distributing the work
// across the default number of workers. Results are returned in input order;
// per-item failures are recorded in the item's Err, not returned.
func Convert(conv *munsell.Converter, inputs []munsell.Chromaticity, logger hclog.Logger) ([]Result, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	results := make([]Result, len(inputs))

	process := func(start, limit int) {
		for i := start; i < limit; i++ {
			spec, err := conv.ToSpecification(inputs[i])
			results[i] = Result{Input: inputs[i], Spec: spec, Err: err}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, process, 0, len(inputs)); err != nil {
		return nil, fmt.Errorf("batch conversion failed: %w", err)
	}

	converged, approximate, failed := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
		case r.Spec.Approximate:
			approximate++
		default:
			converged++
		}
	}
	logger.Debug("batch conversion finished",
		"items", len(inputs), "converged", converged, "approximate", approximate, "failed", failed)
	return results, nil
}
