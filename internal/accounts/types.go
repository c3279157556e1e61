package accounts

// SelectInput is the input for a fan-out run.
type SelectInput struct {
	SheetID string
}

// SelectOutput reports the result of a fan-out run.
type SelectOutput struct {
	RunID    string
	Accounts int // enabled accounts found in the config source
	Emitted  int // units successfully published
	Failed   int // units whose publish failed
}
