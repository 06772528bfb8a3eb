package sources

import (
	"context"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
)

// Adapter fetches one external source and normalizes its response into
// canonical contests. Implementations isolate faults: Fetch never panics
// and never returns a Go error to the caller; any failure is carried
// inside the Result so one broken source cannot halt the others.
type Adapter interface {
	Platform() domain.Platform
	Fetch(ctx context.Context) Result
}

// Result is the explicit per-adapter outcome of one extraction pass:
// either a batch of normalized contests or a failure reason, never both.
type Result struct {
	Platform domain.Platform
	Contests []domain.Contest
	Err      error
}

func Success(p domain.Platform, contests []domain.Contest) Result {
	return Result{Platform: p, Contests: contests}
}

func Failure(p domain.Platform, err error) Result {
	return Result{Platform: p, Err: err}
}
