package usecase

import (
	"context"
	"strings"

	"videxcl-srv/internal/keyword"
	"videxcl-srv/internal/model"
)

// Run reads the rule set fresh, scans every content record, and swaps the
// match materialization. The rules are never cached between runs: edits to
// the sheet take effect on the next trigger.
func (uc *implUseCase) Run(ctx context.Context, input keyword.RunInput) (keyword.RunOutput, error) {
	rules, err := uc.readRules(ctx, input.SheetID)
	if err != nil {
		return keyword.RunOutput{}, err
	}

	matcher, err := keyword.NewMatcher(rules)
	if err != nil {
		uc.l.Errorf(ctx, "keyword.usecase.Run: matcher build failed: %v", err)
		return keyword.RunOutput{}, err
	}

	contents, err := uc.repo.ListContent(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "keyword.usecase.Run: content scan failed: %v", err)
		return keyword.RunOutput{}, keyword.ErrPersistFailed
	}

	var matches []model.KeywordMatch
	for _, c := range contents {
		matches = append(matches, scanContent(matcher, c)...)
	}

	if err := uc.repo.ReplaceMatches(ctx, matches); err != nil {
		uc.l.Errorf(ctx, "keyword.usecase.Run: materialization swap failed: %v", err)
		return keyword.RunOutput{}, keyword.ErrPersistFailed
	}

	output := keyword.RunOutput{
		Keywords: len(rules),
		Scanned:  len(contents),
		Matches:  len(matches),
	}
	uc.l.Infof(ctx, "keyword.usecase.Run: keywords=%d scanned=%d matches=%d",
		output.Keywords, output.Scanned, output.Matches)
	return output, nil
}

// readRules loads the keyword rules from the configured sheet range. One
// keyword per row, first cell; blank rows are skipped.
func (uc *implUseCase) readRules(ctx context.Context, sheetID string) ([]model.KeywordRule, error) {
	rows, err := uc.sheets.ReadRange(ctx, sheetID, uc.keywordsRange)
	if err != nil {
		uc.l.Errorf(ctx, "keyword.usecase.readRules: config source read failed: %v", err)
		return nil, keyword.ErrConfigSourceUnreachable
	}

	var rules []model.KeywordRule
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		kw := strings.TrimSpace(row[0])
		if kw == "" {
			continue
		}
		rules = append(rules, model.KeywordRule{Keyword: kw})
	}
	return rules, nil
}

// scanContent matches one content record field by field.
func scanContent(matcher *keyword.Matcher, c model.ContentMetadata) []model.KeywordMatch {
	fields := []struct {
		name string
		text string
	}{
		{model.MatchFieldTitle, c.Title},
		{model.MatchFieldDescription, c.Description},
		{model.MatchFieldTags, strings.Join(c.Tags, " ")},
	}

	var matches []model.KeywordMatch
	for _, f := range fields {
		for _, kw := range matcher.Match(f.text) {
			matches = append(matches, model.KeywordMatch{
				ContentID:    c.ContentID,
				MatchedField: f.name,
				Keyword:      kw,
			})
		}
	}
	return matches
}
