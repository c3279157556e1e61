package agecheck

import (
	"context"

	"videxcl-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Dispatch reads the evaluation config from the sheet, selects videos
	// without a verdict, and fans them out in batches.
	Dispatch(ctx context.Context, input DispatchInput) (DispatchOutput, error)
	// Evaluate runs the model over every video in one batch and appends the
	// verdict rows.
	Evaluate(ctx context.Context, input EvaluateInput) (EvaluateOutput, error)
}

//go:generate mockery --name Producer
type Producer interface {
	PublishEvaluationUnit(ctx context.Context, unit model.AgeEvaluationUnit) error
}
