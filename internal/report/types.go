package report

import "videxcl-srv/internal/model"

// ExtractInput is one extraction run: a work unit plus the content type the
// consuming stage is responsible for.
type ExtractInput struct {
	Unit        model.AccountWorkUnit
	ContentType string // model.ContentTypeVideo | model.ContentTypeChannel
}

// ExtractOutput reports the result of an extraction run.
type ExtractOutput struct {
	AccountID  string
	Rows       int  // report rows persisted
	NewContent int  // content units fanned out
	Dispatched bool // thumbnail dispatch published (video runs only)
}
