package usecase

import "context"

// Step is one named write in an ordered multi-entity save.
type Step struct {
	Name string
	Fn   func(context.Context) error
}

// StepRunner executes dependent writes strictly in order: each step's
// success gates the next. The store gives us no multi-row transaction, so a
// failure leaves earlier writes in place; the runner records what completed
// so the failure can say which tiers persisted.
type StepRunner struct {
	steps     []Step
	completed []string
}

func NewStepRunner() *StepRunner {
	return &StepRunner{}
}

func (r *StepRunner) Add(name string, fn func(context.Context) error) {
	r.steps = append(r.steps, Step{Name: name, Fn: fn})
}

// Run executes the steps, returning a *PartialSaveError on the first
// failure.
func (r *StepRunner) Run(ctx context.Context) error {
	for _, step := range r.steps {
		if err := step.Fn(ctx); err != nil {
			return &PartialSaveError{
				Step:      step.Name,
				Completed: r.Completed(),
				Cause:     err,
			}
		}
		r.completed = append(r.completed, step.Name)
	}
	return nil
}

// Completed returns the names of the steps that have run successfully, in
// order.
func (r *StepRunner) Completed() []string {
	out := make([]string, len(r.completed))
	copy(out, r.completed)
	return out
}

// MarkCompleted records a write performed outside the step list, keeping the
// partial-save report accurate.
func (r *StepRunner) MarkCompleted(name string) {
	r.completed = append(r.completed, name)
}
