package service

import (
	"context"
	"log"
)

// The multi-entity write paths compose several single-document writes
// with no storage-level transaction around them. Each one runs as a
// saga: ordered steps with per-step compensating actions, so a step
// that fails undoes whatever the earlier steps persisted.

type sagaStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

type saga struct {
	name  string
	steps []sagaStep
}

// execute runs the steps in order. On failure it fires the
// compensations of every completed step in reverse order, best-effort,
// and returns the step's error.
func (s *saga) execute(ctx context.Context) error {
	for i, step := range s.steps {
		err := step.run(ctx)
		if err == nil {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			prev := s.steps[j]
			if prev.compensate == nil {
				continue
			}
			if cerr := prev.compensate(ctx); cerr != nil {
				log.Printf("saga %s: compensating %q failed: %v", s.name, prev.name, cerr)
			}
		}
		return err
	}
	return nil
}
