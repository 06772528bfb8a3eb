package codeforces

import (
	"fmt"
	"time"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
)

// mapContests converts a contest.list response into canonical contests.
// The status flag gates the whole batch; individual entries without a
// published start time (very old gym contests) are skipped.
func mapContests(resp contestListResponse) ([]domain.Contest, error) {
	if resp.Status != "OK" {
		return nil, fmt.Errorf("%w: status %q (%s)", sources.ErrShape, resp.Status, resp.Comment)
	}
	contests := make([]domain.Contest, 0, len(resp.Result))
	for _, e := range resp.Result {
		if e.StartTimeSeconds == 0 || e.Name == "" {
			continue
		}
		start := time.Unix(e.StartTimeSeconds, 0).UTC()
		end := start.Add(time.Duration(e.DurationSeconds) * time.Second)
		contests = append(contests, domain.Contest{
			ID:          fmt.Sprintf("cf-%d", e.ID),
			Name:        e.Name,
			URL:         fmt.Sprintf("https://codeforces.com/contests/%d", e.ID),
			Platform:    domain.PlatformCodeforces,
			StartTime:   start,
			EndTime:     &end,
			DurationSec: e.DurationSeconds,
		})
	}
	return contests, nil
}
