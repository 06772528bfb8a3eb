package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
)

// fakeAdapter returns a canned result after an optional delay.
type fakeAdapter struct {
	platform domain.Platform
	contests []domain.Contest
	err      error
	delay    time.Duration
}

func (f *fakeAdapter) Platform() domain.Platform { return f.platform }

func (f *fakeAdapter) Fetch(ctx context.Context) sources.Result {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
		}
	}
	if f.err != nil {
		return sources.Failure(f.platform, f.err)
	}
	return sources.Success(f.platform, f.contests)
}

func namedContest(id string, p domain.Platform) domain.Contest {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	return domain.Contest{
		ID: id, Name: "Contest " + id, URL: "https://example.com/" + id,
		Platform: p, StartTime: start, EndTime: &end, DurationSec: 3600,
	}
}

func TestCollectConcatenatesInDeclarationOrder(t *testing.T) {
	adapters := []sources.Adapter{
		// The first adapter is slowest; order must still follow declaration.
		&fakeAdapter{platform: domain.PlatformCodeforces, delay: 30 * time.Millisecond,
			contests: []domain.Contest{namedContest("cf-1", domain.PlatformCodeforces)}},
		&fakeAdapter{platform: domain.PlatformCodechef,
			contests: []domain.Contest{namedContest("cc-1", domain.PlatformCodechef)}},
		&fakeAdapter{platform: domain.PlatformLeetcode,
			contests: []domain.Contest{namedContest("lc-1", domain.PlatformLeetcode)}},
	}

	o := NewOrchestrator(adapters, logger.New("error", false))
	batch := o.Collect(context.Background())

	want := []string{"cf-1", "cc-1", "lc-1"}
	if len(batch) != len(want) {
		t.Fatalf("Collect() returned %d contests, want %d", len(batch), len(want))
	}
	for i, id := range want {
		if batch[i].ID != id {
			t.Errorf("batch[%d] = %s, want %s", i, batch[i].ID, id)
		}
	}
}

func TestCollectIsolatesFailingAdapter(t *testing.T) {
	adapters := []sources.Adapter{
		&fakeAdapter{platform: domain.PlatformCodeforces,
			err: errors.Join(sources.ErrNetwork, errors.New("connection refused"))},
		&fakeAdapter{platform: domain.PlatformCodechef,
			contests: []domain.Contest{namedContest("cc-1", domain.PlatformCodechef)}},
		&fakeAdapter{platform: domain.PlatformLeetcode,
			contests: []domain.Contest{namedContest("lc-1", domain.PlatformLeetcode)}},
	}

	o := NewOrchestrator(adapters, logger.New("error", false))
	batch := o.Collect(context.Background())

	if len(batch) != 2 {
		t.Fatalf("Collect() returned %d contests, want 2 despite one failure", len(batch))
	}
	if batch[0].ID != "cc-1" || batch[1].ID != "lc-1" {
		t.Errorf("Collect() = %v, want surviving adapters in order", batch)
	}
}

func TestCollectAllAdaptersFailing(t *testing.T) {
	adapters := []sources.Adapter{
		&fakeAdapter{platform: domain.PlatformCodeforces, err: sources.ErrNetwork},
		&fakeAdapter{platform: domain.PlatformCodechef, err: sources.ErrShape},
		&fakeAdapter{platform: domain.PlatformLeetcode, err: sources.ErrDrift},
	}

	o := NewOrchestrator(adapters, logger.New("error", false))
	if batch := o.Collect(context.Background()); len(batch) != 0 {
		t.Errorf("Collect() = %v, want empty batch", batch)
	}
}
