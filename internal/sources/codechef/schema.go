package codechef

// contestsResponse mirrors the CodeChef contests API payload, which
// partitions contests into three ordered lists. Past contests arrive
// most-recent first.
type contestsResponse struct {
	Status  string         `json:"status"`
	Future  []contestEntry `json:"future_contests"`
	Present []contestEntry `json:"present_contests"`
	Past    []contestEntry `json:"past_contests"`
}

type contestEntry struct {
	Code     string `json:"contest_code"`
	Name     string `json:"contest_name"`
	StartISO string `json:"contest_start_date_iso"`
	EndISO   string `json:"contest_end_date_iso"`
}
