package leetcode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
)

const graphqlBody = `{"data":{"allContests":[
  {"title":"Weekly Contest 300","titleSlug":"weekly-contest-300","startTime":1656210600,"duration":5400},
  {"title":"Weekly Contest 299","titleSlug":"weekly-contest-299","startTime":1655605800,"duration":5400}
]}}`

func newTestAdapter(t *testing.T, pageHandler, graphqlHandler http.HandlerFunc) *Adapter {
	t.Helper()
	pageSrv := httptest.NewServer(pageHandler)
	t.Cleanup(pageSrv.Close)
	gqlSrv := httptest.NewServer(graphqlHandler)
	t.Cleanup(gqlSrv.Close)

	return New(
		sources.NewClient(2*time.Second),
		logger.New("error", false),
		pageSrv.URL+"/contest/",
		gqlSrv.URL,
	)
}

func TestFetchMergesAndDeduplicatesBothPaths(t *testing.T) {
	a := newTestAdapter(t,
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(samplePage))
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(graphqlBody))
		},
	)

	res := a.Fetch(context.Background())
	if res.Err != nil {
		t.Fatalf("Fetch() err = %v", res.Err)
	}

	// Page yields Weekly 300 + Biweekly 81; GraphQL yields Weekly 300 +
	// Weekly 299. Weekly 300 shares (name, start) across paths and
	// collapses, scrape occurrence first.
	if len(res.Contests) != 3 {
		t.Fatalf("Fetch() returned %d contests, want 3", len(res.Contests))
	}
	if res.Contests[0].ID != "lc-weekly-contest-300-1656210600" {
		t.Errorf("first contest = %s, want the scraped occurrence", res.Contests[0].ID)
	}
	for _, c := range res.Contests {
		if err := c.Validate(); err != nil {
			t.Errorf("contest %s failed validation: %v", c.ID, err)
		}
	}
}

func TestFetchDegradesToGraphqlWhenPageDrifts(t *testing.T) {
	a := newTestAdapter(t,
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body>redesigned page</body></html>`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(graphqlBody))
		},
	)

	res := a.Fetch(context.Background())
	if res.Err != nil {
		t.Fatalf("Fetch() err = %v, want degraded success", res.Err)
	}
	if len(res.Contests) != 2 {
		t.Errorf("Fetch() returned %d contests, want 2 from graphql", len(res.Contests))
	}
}

func TestFetchFailsWhenBothPathsFail(t *testing.T) {
	a := newTestAdapter(t,
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body>redesigned page</body></html>`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{"allContests":[]}}`))
		},
	)

	res := a.Fetch(context.Background())
	if res.Err == nil {
		t.Fatal("Fetch() succeeded with both paths failing")
	}
	if len(res.Contests) != 0 {
		t.Errorf("Fetch() returned contests alongside failure: %v", res.Contests)
	}
}

func TestBaseOf(t *testing.T) {
	tests := []struct{ in, want string }{
		{"https://leetcode.com/contest/", "https://leetcode.com"},
		{"http://127.0.0.1:8081/contest/", "http://127.0.0.1:8081"},
		{"https://leetcode.com", "https://leetcode.com"},
	}
	for _, tt := range tests {
		if got := baseOf(tt.in); got != tt.want {
			t.Errorf("baseOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
