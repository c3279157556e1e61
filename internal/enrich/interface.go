package enrich

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Enrich(ctx context.Context, input EnrichInput) (EnrichOutput, error)
}
