package exclusion

import "videxcl-srv/internal/model"

// SnapshotInput is one snapshot run for an account.
type SnapshotInput struct {
	Unit model.AccountWorkUnit
}

// SnapshotOutput reports the result of a snapshot run.
type SnapshotOutput struct {
	AccountID string
	Entries   int
}

// ApplyInput is one exclusion upload run for an account.
type ApplyInput struct {
	AccountID     string
	SharedSetName string
}

// ApplyOutput reports the result of an upload run.
type ApplyOutput struct {
	AccountID string
	Videos    int
	Channels  int
	Uploaded  int
	// Entries is the snapshot size after the upload.
	Entries int
}
