package codeforces

// contestListResponse mirrors the contest.list payload.
// https://codeforces.com/api/contest.list
type contestListResponse struct {
	Status  string         `json:"status"`
	Comment string         `json:"comment,omitempty"`
	Result  []contestEntry `json:"result"`
}

type contestEntry struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Phase            string `json:"phase"`
	StartTimeSeconds int64  `json:"startTimeSeconds"`
	DurationSeconds  int64  `json:"durationSeconds"`
}
