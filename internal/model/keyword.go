package model

// Matched field constants
const (
	MatchFieldTitle       = "title"
	MatchFieldDescription = "description"
	MatchFieldTags        = "tags"
)

// KeywordRule is one externally configured keyword, read fresh per run.
type KeywordRule struct {
	Keyword string
}

// KeywordMatch is one derived match row. The table is a transient
// materialization, fully recomputed per engine run.
type KeywordMatch struct {
	ContentID    string `json:"content_id"`
	MatchedField string `json:"matched_field"`
	Keyword      string `json:"keyword"`
}
