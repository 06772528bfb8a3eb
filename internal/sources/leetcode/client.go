package leetcode

import (
	"context"
	"errors"
	"strings"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
)

const (
	DefaultPageURL    = "https://leetcode.com/contest/"
	DefaultGraphqlURL = "https://leetcode.com/graphql"
)

// Adapter extracts LeetCode contests via two independent paths run in
// sequence: a scrape of the rendered contest page, then a supplementary
// GraphQL query. The merged batch is deduplicated on (name, start) since
// the paths synthesize different IDs for the same contest; the scrape
// result wins on collision (first occurrence).
//
// One failing path degrades to the other path's records with a warning;
// only when both fail does the adapter report a failure.
type Adapter struct {
	client     *sources.Client
	logger     logger.Logger
	pageURL    string
	graphqlURL string
	baseURL    string
}

func New(client *sources.Client, log logger.Logger, pageURL, graphqlURL string) *Adapter {
	if pageURL == "" {
		pageURL = DefaultPageURL
	}
	if graphqlURL == "" {
		graphqlURL = DefaultGraphqlURL
	}
	return &Adapter{
		client:     client,
		logger:     log,
		pageURL:    pageURL,
		graphqlURL: graphqlURL,
		baseURL:    baseOf(pageURL),
	}
}

func (a *Adapter) Platform() domain.Platform { return domain.PlatformLeetcode }

func (a *Adapter) Fetch(ctx context.Context) sources.Result {
	scraped, scrapeErr := a.fetchPage(ctx)
	if scrapeErr != nil {
		a.logger.Warn("leetcode page scrape failed",
			logger.String("kind", sources.Kind(scrapeErr)),
			logger.Error(scrapeErr))
	}

	queried, queryErr := a.fetchGraphql(ctx)
	if queryErr != nil {
		a.logger.Warn("leetcode graphql query failed",
			logger.String("kind", sources.Kind(queryErr)),
			logger.Error(queryErr))
	}

	if scrapeErr != nil && queryErr != nil {
		return sources.Failure(a.Platform(), errors.Join(scrapeErr, queryErr))
	}

	merged := make([]domain.Contest, 0, len(scraped)+len(queried))
	merged = append(merged, scraped...)
	merged = append(merged, queried...)
	return sources.Success(a.Platform(), sources.Dedup(merged))
}

func (a *Adapter) fetchPage(ctx context.Context) ([]domain.Contest, error) {
	body, err := a.client.GetHTML(ctx, a.pageURL)
	if err != nil {
		return nil, err
	}
	return parsePage(body, a.baseURL)
}

// baseOf reduces a page URL to its scheme://host origin for building
// canonical contest links.
func baseOf(pageURL string) string {
	rest := pageURL
	scheme := ""
	if i := strings.Index(rest, "://"); i >= 0 {
		scheme = rest[:i+3]
		rest = rest[i+3:]
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return scheme + rest
}
