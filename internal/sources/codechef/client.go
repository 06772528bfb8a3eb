package codechef

import (
	"context"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
)

const DefaultAPIURL = "https://www.codechef.com/api/list/contests/all"

// Adapter fetches the CodeChef contests API, whose payload is split into
// future/present/past lists with ISO-8601 start and end fields.
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

func (a *Adapter) Platform() domain.Platform { return domain.PlatformCodechef }

func (a *Adapter) Fetch(ctx context.Context) sources.Result {
	var resp contestsResponse
	if err := a.client.GetJSON(ctx, a.apiURL, &resp); err != nil {
		return sources.Failure(a.Platform(), err)
	}
	contests, err := mapContests(resp)
	if err != nil {
		return sources.Failure(a.Platform(), err)
	}
	return sources.Success(a.Platform(), contests)
}
