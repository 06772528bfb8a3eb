package leetcode

import (
	"context"
	"fmt"
	"time"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
)

// allContestsQuery is the supplementary structured extraction path: the
// GraphQL endpoint behind the same site, queried independently of the
// page scrape.
const allContestsQuery = `{ allContests { title titleSlug startTime duration } }`

type graphqlRequest struct {
	Query string `json:"query"`
}

type graphqlResponse struct {
	Data struct {
		AllContests []graphqlContest `json:"allContests"`
	} `json:"data"`
}

type graphqlContest struct {
	Title     string `json:"title"`
	TitleSlug string `json:"titleSlug"`
	StartTime int64  `json:"startTime"`
	Duration  int64  `json:"duration"`
}

func (a *Adapter) fetchGraphql(ctx context.Context) ([]domain.Contest, error) {
	var resp graphqlResponse
	err := a.client.PostJSON(ctx, a.graphqlURL, graphqlRequest{Query: allContestsQuery}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Data.AllContests) == 0 {
		return nil, fmt.Errorf("%w: empty allContests result", sources.ErrShape)
	}
	contests := make([]domain.Contest, 0, len(resp.Data.AllContests))
	for _, e := range resp.Data.AllContests {
		if e.TitleSlug == "" || e.StartTime == 0 {
			continue
		}
		start := time.Unix(e.StartTime, 0).UTC()
		end := start.Add(time.Duration(e.Duration) * time.Second)
		contests = append(contests, domain.Contest{
			ID:          "lc-" + e.TitleSlug,
			Name:        e.Title,
			URL:         a.baseURL + "/contest/" + e.TitleSlug,
			Platform:    domain.PlatformLeetcode,
			StartTime:   start,
			EndTime:     &end,
			DurationSec: e.Duration,
		})
	}
	return contests, nil
}
