package usecase

import (
	"context"
	"fmt"
	"log"
)

// The order-creation write path is a sequence of dependent remote calls with
// no surrounding transaction (client -> counter -> header -> lines). It runs
// as an explicit saga: each step may register a compensation, and when a step
// fails the compensations of every completed step run in reverse order.
// Compensation failures are logged but do not mask the original step error.

type sagaStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error // nil when there is nothing to undo
}

type saga struct {
	name  string
	steps []sagaStep
}

func newSaga(name string) *saga {
	return &saga{name: name}
}

func (s *saga) addStep(step sagaStep) {
	s.steps = append(s.steps, step)
}

// execute runs the steps in order. On a step failure it compensates completed
// steps in reverse and returns the failing step's error wrapped with the step
// name.
func (s *saga) execute(ctx context.Context) error {
	var completed []sagaStep

	for _, step := range s.steps {
		log.Printf("[order][saga] %s step=%s start", s.name, step.name)
		if err := step.run(ctx); err != nil {
			log.Printf("[order][saga] %s step=%s failed err=%v", s.name, step.name, err)
			s.compensateAll(ctx, completed)
			return fmt.Errorf("%s: %w", step.name, err)
		}
		log.Printf("[order][saga] %s step=%s ok", s.name, step.name)
		completed = append(completed, step)
	}
	return nil
}

func (s *saga) compensateAll(ctx context.Context, completed []sagaStep) {
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.compensate == nil {
			continue
		}
		if err := step.compensate(ctx); err != nil {
			// Best effort: a failed compensation can leave an orphan behind,
			// which is strictly better than masking the original error.
			log.Printf("[order][saga] %s compensation step=%s failed err=%v", s.name, step.name, err)
			continue
		}
		log.Printf("[order][saga] %s compensation step=%s ok", s.name, step.name)
	}
}
