package codechef

import (
	"fmt"
	"time"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
)

// maxPastContests bounds the historical footprint: only the 10 most
// recent past contests (source order) are kept per pass.
const maxPastContests = 10

// mapContests flattens the three partitions into canonical contests.
// All future and present contests are kept; the past list is truncated.
// Entries with unparseable or inverted timestamps are skipped rather
// than failing the batch.
func mapContests(resp contestsResponse) ([]domain.Contest, error) {
	if resp.Status != "success" {
		return nil, fmt.Errorf("%w: status %q", sources.ErrShape, resp.Status)
	}
	past := resp.Past
	if len(past) > maxPastContests {
		past = past[:maxPastContests]
	}
	entries := make([]contestEntry, 0, len(resp.Future)+len(resp.Present)+len(past))
	entries = append(entries, resp.Future...)
	entries = append(entries, resp.Present...)
	entries = append(entries, past...)

	contests := make([]domain.Contest, 0, len(entries))
	for _, e := range entries {
		c, ok := mapEntry(e)
		if !ok {
			continue
		}
		contests = append(contests, c)
	}
	return contests, nil
}

func mapEntry(e contestEntry) (domain.Contest, bool) {
	if e.Code == "" || e.Name == "" {
		return domain.Contest{}, false
	}
	start, err := time.Parse(time.RFC3339, e.StartISO)
	if err != nil {
		return domain.Contest{}, false
	}
	end, err := time.Parse(time.RFC3339, e.EndISO)
	if err != nil {
		return domain.Contest{}, false
	}
	if end.Before(start) {
		return domain.Contest{}, false
	}
	start, end = start.UTC(), end.UTC()
	return domain.Contest{
		ID:          "cc-" + e.Code,
		Name:        e.Name,
		URL:         "https://www.codechef.com/" + e.Code,
		Platform:    domain.PlatformCodechef,
		StartTime:   start,
		EndTime:     &end,
		DurationSec: int64(end.Sub(start) / time.Second),
	}, true
}
