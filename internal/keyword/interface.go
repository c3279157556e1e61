package keyword

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Run recomputes all keyword matches from the current rule set.
	Run(ctx context.Context, input RunInput) (RunOutput, error)
}
