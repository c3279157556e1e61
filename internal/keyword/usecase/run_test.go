package usecase

import (
	"context"
	"errors"
	"testing"

	"videxcl-srv/internal/keyword"
	"videxcl-srv/internal/model"
	"videxcl-srv/pkg/log"
)

type fakeSheets struct {
	rows [][]string
	err  error
}

func (f *fakeSheets) ReadRange(_ context.Context, _, _ string) ([][]string, error) {
	return f.rows, f.err
}

type fakeKeywordRepo struct {
	contents []model.ContentMetadata
	listErr  error

	replaced    []model.KeywordMatch
	replaceErr  error
	replaceRuns int
}

func (f *fakeKeywordRepo) ListContent(_ context.Context) ([]model.ContentMetadata, error) {
	return f.contents, f.listErr
}

func (f *fakeKeywordRepo) ReplaceMatches(_ context.Context, matches []model.KeywordMatch) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaceRuns++
	f.replaced = matches
	return nil
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	l := log.NewNop()

	t.Run("matches across fields", func(t *testing.T) {
		repo := &fakeKeywordRepo{
			contents: []model.ContentMetadata{
				{
					ContentID:   "v1",
					Title:       "spam compilation",
					Description: "the best pranks",
					Tags:        []string{"comedy", "spam"},
				},
				{ContentID: "v2", Title: "cooking show"},
			},
		}
		sheetsClient := &fakeSheets{rows: [][]string{{"spam"}, {"prank"}, {""}}}

		uc := New(l, repo, sheetsClient, "Keywords!A2:A")
		output, err := uc.Run(ctx, keyword.RunInput{SheetID: "sheet-1"})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}

		if output.Keywords != 2 {
			t.Errorf("Keywords = %d, want 2", output.Keywords)
		}
		if output.Scanned != 2 {
			t.Errorf("Scanned = %d, want 2", output.Scanned)
		}
		want := []model.KeywordMatch{
			{ContentID: "v1", MatchedField: model.MatchFieldTitle, Keyword: "spam"},
			{ContentID: "v1", MatchedField: model.MatchFieldDescription, Keyword: "prank"},
			{ContentID: "v1", MatchedField: model.MatchFieldTags, Keyword: "spam"},
		}
		if len(repo.replaced) != len(want) {
			t.Fatalf("replaced %d matches, want %d: %v", len(repo.replaced), len(want), repo.replaced)
		}
		for i, m := range want {
			if repo.replaced[i] != m {
				t.Errorf("match[%d] = %+v, want %+v", i, repo.replaced[i], m)
			}
		}
	})

	t.Run("full recompute clears stale matches", func(t *testing.T) {
		repo := &fakeKeywordRepo{
			contents: []model.ContentMetadata{{ContentID: "v1", Title: "calm nature film"}},
		}
		sheetsClient := &fakeSheets{rows: [][]string{{"spam"}}}

		uc := New(l, repo, sheetsClient, "Keywords!A2:A")
		output, err := uc.Run(ctx, keyword.RunInput{SheetID: "sheet-1"})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if output.Matches != 0 {
			t.Errorf("Matches = %d, want 0", output.Matches)
		}
		if repo.replaceRuns != 1 {
			t.Errorf("replace runs = %d, want 1 (empty swap still runs)", repo.replaceRuns)
		}
		if len(repo.replaced) != 0 {
			t.Errorf("replaced = %v, want empty", repo.replaced)
		}
	})

	t.Run("config source unreachable", func(t *testing.T) {
		repo := &fakeKeywordRepo{}
		sheetsClient := &fakeSheets{err: errors.New("timeout")}

		uc := New(l, repo, sheetsClient, "Keywords!A2:A")
		if _, err := uc.Run(ctx, keyword.RunInput{SheetID: "sheet-1"}); err != keyword.ErrConfigSourceUnreachable {
			t.Errorf("err = %v, want ErrConfigSourceUnreachable", err)
		}
		if repo.replaceRuns != 0 {
			t.Errorf("replace runs = %d, want 0", repo.replaceRuns)
		}
	})

	t.Run("empty rule set", func(t *testing.T) {
		repo := &fakeKeywordRepo{}
		sheetsClient := &fakeSheets{rows: [][]string{{" "}}}

		uc := New(l, repo, sheetsClient, "Keywords!A2:A")
		if _, err := uc.Run(ctx, keyword.RunInput{SheetID: "sheet-1"}); err != keyword.ErrNoKeywords {
			t.Errorf("err = %v, want ErrNoKeywords", err)
		}
	})

	t.Run("persist failure", func(t *testing.T) {
		repo := &fakeKeywordRepo{
			contents:   []model.ContentMetadata{{ContentID: "v1", Title: "spam"}},
			replaceErr: errors.New("tx aborted"),
		}
		sheetsClient := &fakeSheets{rows: [][]string{{"spam"}}}

		uc := New(l, repo, sheetsClient, "Keywords!A2:A")
		if _, err := uc.Run(ctx, keyword.RunInput{SheetID: "sheet-1"}); err != keyword.ErrPersistFailed {
			t.Errorf("err = %v, want ErrPersistFailed", err)
		}
	})
}
