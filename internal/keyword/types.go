package keyword

// RunInput is one match engine run.
type RunInput struct {
	SheetID string
}

// RunOutput reports the result of a match engine run.
type RunOutput struct {
	Keywords int // rules read from the config source
	Scanned  int // content records scanned
	Matches  int // match rows materialized
}
