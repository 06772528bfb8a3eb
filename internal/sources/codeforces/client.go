package codeforces

import (
	"context"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
)

const DefaultAPIURL = "https://codeforces.com/api/contest.list"

// Adapter fetches the Codeforces contest list. The API is flat JSON with
// epoch-second start times and second-granularity durations, so mapping
// is a direct per-entry translation.
type Adapter struct {
	client *sources.Client
	apiURL string
}

func New(client *sources.Client, apiURL string) *Adapter {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Adapter{client: client, apiURL: apiURL}
}

func (a *Adapter) Platform() domain.Platform { return domain.PlatformCodeforces }

func (a *Adapter) Fetch(ctx context.Context) sources.Result {
	var resp contestListResponse
	if err := a.client.GetJSON(ctx, a.apiURL, &resp); err != nil {
		return sources.Failure(a.Platform(), err)
	}
	contests, err := mapContests(resp)
	if err != nil {
		return sources.Failure(a.Platform(), err)
	}
	return sources.Success(a.Platform(), contests)
}
