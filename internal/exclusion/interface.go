package exclusion

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Snapshot(ctx context.Context, input SnapshotInput) (SnapshotOutput, error)
	// Apply uploads matched placements that are not yet on the account's
	// shared exclusion list, then refreshes the snapshot.
	Apply(ctx context.Context, input ApplyInput) (ApplyOutput, error)
}
