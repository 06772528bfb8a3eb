package sources

import (
	"fmt"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
)

// Dedup removes duplicate contests produced within a single extraction
// pass. Two records are duplicates when they share a name and a start
// instant, regardless of ID (independent extraction paths synthesize
// different IDs for the same contest). The first occurrence in encounter
// order wins. Idempotent: Dedup(Dedup(s)) == Dedup(s).
func Dedup(contests []domain.Contest) []domain.Contest {
	if len(contests) < 2 {
		return contests
	}
	seen := make(map[string]struct{}, len(contests))
	out := make([]domain.Contest, 0, len(contests))
	for _, c := range contests {
		key := fmt.Sprintf("%s|%d", c.Name, c.StartTime.Unix())
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
