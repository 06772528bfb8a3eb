package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "contests.db"), logger.New("error", false))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return store
}

func testContest(id string, platform domain.Platform, start time.Time) domain.Contest {
	end := start.Add(2 * time.Hour)
	return domain.Contest{
		ID:          id,
		Name:        "Contest " + id,
		URL:         "https://example.com/" + id,
		Platform:    platform,
		StartTime:   start,
		EndTime:     &end,
		DurationSec: 7200,
	}
}

func TestUpsertReportsBranch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	c := testContest("cf-1", domain.PlatformCodeforces, time.Now().UTC().Truncate(time.Second))

	inserted, err := store.Upsert(ctx, c)
	if err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}
	if !inserted {
		t.Error("first Upsert() reported update, want insert")
	}

	c.Name = "Renamed"
	inserted, err = store.Upsert(ctx, c)
	if err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}
	if inserted {
		t.Error("second Upsert() reported insert, want update")
	}

	got, err := store.Get(ctx, "cf-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil || got.Name != "Renamed" {
		t.Errorf("Get() after update = %+v, want renamed contest", got)
	}
}

func TestUpsertPreservesCreatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	c := testContest("cc-1", domain.PlatformCodechef, time.Now().UTC().Truncate(time.Second))

	if _, err := store.Upsert(ctx, c); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	first, err := store.Get(ctx, "cc-1")
	if err != nil || first == nil {
		t.Fatalf("Get() = %v, %v", first, err)
	}

	time.Sleep(10 * time.Millisecond)
	c.URL = "https://example.com/moved"
	if _, err := store.Upsert(ctx, c); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}
	second, err := store.Get(ctx, "cc-1")
	if err != nil || second == nil {
		t.Fatalf("Get() = %v, %v", second, err)
	}

	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt changed on update: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if second.URL != "https://example.com/moved" {
		t.Errorf("URL not replaced: %s", second.URL)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	store := newTestStore(t)
	got, err := store.Get(context.Background(), "cf-nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() on missing id = %+v, want nil", got)
	}
}

func TestListOrdersByStartTimeAndFiltersByPlatform(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for _, c := range []domain.Contest{
		testContest("cf-late", domain.PlatformCodeforces, base.Add(48*time.Hour)),
		testContest("lc-mid", domain.PlatformLeetcode, base.Add(24*time.Hour)),
		testContest("cf-early", domain.PlatformCodeforces, base),
	} {
		if _, err := store.Upsert(ctx, c); err != nil {
			t.Fatalf("Upsert(%s) error = %v", c.ID, err)
		}
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List() returned %d contests, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].StartTime.Before(all[i-1].StartTime) {
			t.Errorf("List() not ascending by start time: %s before %s", all[i].ID, all[i-1].ID)
		}
	}

	cf, err := store.List(ctx, domain.PlatformCodeforces)
	if err != nil {
		t.Fatalf("List(codeforces) error = %v", err)
	}
	if len(cf) != 2 || cf[0].ID != "cf-early" || cf[1].ID != "cf-late" {
		t.Errorf("List(codeforces) = %v", cf)
	}
}

func TestDeleteEndedBeforeScopesPlatforms(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	old := time.Now().UTC().AddDate(0, -3, 0) // ended three months ago

	for _, c := range []domain.Contest{
		testContest("cf-old", domain.PlatformCodeforces, old),
		testContest("lc-old", domain.PlatformLeetcode, old),
		testContest("lc-new", domain.PlatformLeetcode, time.Now().UTC()),
	} {
		if _, err := store.Upsert(ctx, c); err != nil {
			t.Fatalf("Upsert(%s) error = %v", c.ID, err)
		}
	}

	cutoff := time.Now().UTC().AddDate(0, -2, 0)
	deleted, err := store.DeleteEndedBefore(ctx, cutoff,
		[]domain.Platform{domain.PlatformCodechef, domain.PlatformLeetcode})
	if err != nil {
		t.Fatalf("DeleteEndedBefore() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("DeleteEndedBefore() deleted %d, want 1", deleted)
	}

	// The codeforces contest is just as old but its platform is exempt.
	if got, _ := store.Get(ctx, "cf-old"); got == nil {
		t.Error("codeforces contest was deleted despite platform exemption")
	}
	if got, _ := store.Get(ctx, "lc-old"); got != nil {
		t.Error("stale leetcode contest survived the sweep")
	}
	if got, _ := store.Get(ctx, "lc-new"); got == nil {
		t.Error("fresh leetcode contest was deleted")
	}
}

func TestDeleteEndedBeforeIgnoresMissingEndTime(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := testContest("lc-open", domain.PlatformLeetcode, time.Now().UTC().AddDate(0, -6, 0))
	c.EndTime = nil
	c.DurationSec = 0
	if _, err := store.Upsert(ctx, c); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	deleted, err := store.DeleteEndedBefore(ctx, time.Now().UTC(),
		[]domain.Platform{domain.PlatformLeetcode})
	if err != nil {
		t.Fatalf("DeleteEndedBefore() error = %v", err)
	}
	if deleted != 0 {
		t.Errorf("DeleteEndedBefore() deleted %d contests without end time", deleted)
	}
}
