package domain

import (
	"fmt"
	"time"
)

// Platform identifies the external source a contest was ingested from.
type Platform string

const (
	PlatformCodeforces Platform = "codeforces"
	PlatformCodechef   Platform = "codechef"
	PlatformLeetcode   Platform = "leetcode"
)

// Platforms lists every supported platform in ingestion order.
var Platforms = []Platform{PlatformCodeforces, PlatformCodechef, PlatformLeetcode}

// ParsePlatform validates a platform string coming from the outside
// (query parameters, config files).
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformCodeforces, PlatformCodechef, PlatformLeetcode:
		return Platform(s), nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// Contest is the canonical normalized representation of one contest event.
//
// It is NOT tied to any single upstream schema. Every adapter maps its
// source payload into this structure before anything else touches it.
//
// A Contest is uniquely identified by ID, which carries a per-platform
// prefix ("cf-", "cc-", "lc-") followed by the source-native identifier.
type Contest struct {
	// ID is the canonical unique identifier. Primary key.
	ID string `gorm:"primaryKey;size:191" json:"id"`

	// Name is the display title as published by the source.
	Name string `gorm:"size:255" json:"name"`

	// URL is the canonical link to the contest page.
	URL string `gorm:"size:512" json:"url"`

	// Platform is the source this contest was ingested from.
	Platform Platform `gorm:"index;size:32" json:"platform"`

	// StartTime is the absolute start timestamp (UTC).
	StartTime time.Time `gorm:"index" json:"start_time"`

	// EndTime is the absolute end timestamp. Nil when the source does
	// not publish one and no default applies.
	EndTime *time.Time `json:"end_time,omitempty"`

	// DurationSec is the contest length in seconds. When EndTime is set
	// it must equal EndTime - StartTime.
	DurationSec int64 `json:"duration_sec"`

	// CreatedAt is set by the store on first insert and preserved
	// across reconciliation. UpdatedAt changes on every upsert.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Contest) TableName() string { return "contests" }

// Validate checks the cross-field invariants a contest must satisfy
// before it may enter reconciliation.
func (c *Contest) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("contest has empty id")
	}
	if c.Name == "" {
		return fmt.Errorf("contest %s has empty name", c.ID)
	}
	if _, err := ParsePlatform(string(c.Platform)); err != nil {
		return fmt.Errorf("contest %s: %w", c.ID, err)
	}
	if c.StartTime.IsZero() {
		return fmt.Errorf("contest %s has zero start time", c.ID)
	}
	if c.EndTime != nil {
		if c.EndTime.Before(c.StartTime) {
			return fmt.Errorf("contest %s ends before it starts", c.ID)
		}
		if got := int64(c.EndTime.Sub(c.StartTime) / time.Second); got != c.DurationSec {
			return fmt.Errorf("contest %s duration %ds does not match end-start %ds",
				c.ID, c.DurationSec, got)
		}
	}
	return nil
}
