package leetcode

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
)

// defaultContestLength is assumed when a card carries a "Starts:" marker
// but no "Ends:" marker.
const defaultContestLength = 90 * time.Minute

// timeLayout matches timestamps as rendered on contest cards,
// e.g. "Jun 26, 2022 02:30 UTC".
const timeLayout = "Jan 2, 2006 15:04 MST"

// scheduleRe extracts the "Starts: ... Ends: ..." span from a card's
// visible text. The Ends group is optional.
var scheduleRe = regexp.MustCompile(
	`Starts:\s*([A-Za-z]{3} \d{1,2}, \d{4} \d{2}:\d{2} [A-Z]{3})` +
		`(?:[\s\S]*?Ends:\s*([A-Za-z]{3} \d{1,2}, \d{4} \d{2}:\d{2} [A-Z]{3}))?`)

// parsePage extracts contest cards from the rendered contest page.
//
// The extraction is heuristic by design: a card is any anchor pointing
// at a /contest/ path, its name is the text before the "Starts:" marker
// and the schedule is regexp-matched from the card text. A page that
// parses as HTML but yields zero cards is reported as drift so the
// operator learns the page layout changed.
func parsePage(body []byte, baseURL string) ([]domain.Contest, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %v", sources.ErrDrift, err)
	}

	var cards []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && isContestHref(attr(n, "href")) {
			if text := nodeText(n); strings.Contains(text, "Starts:") {
				cards = append(cards, text)
				return // do not descend into a matched card
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no contest cards found", sources.ErrDrift)
	}

	contests := make([]domain.Contest, 0, len(cards))
	for _, card := range cards {
		if c, ok := parseCard(card, baseURL); ok {
			contests = append(contests, c)
		}
	}
	if len(contests) == 0 {
		return nil, fmt.Errorf("%w: %d cards found, none parseable", sources.ErrDrift, len(cards))
	}
	return contests, nil
}

// parseCard turns one card's text into a contest. The ID is synthesized
// from the normalized name plus the start epoch since the page exposes
// no native identifier.
func parseCard(text, baseURL string) (domain.Contest, bool) {
	m := scheduleRe.FindStringSubmatchIndex(text)
	if m == nil {
		return domain.Contest{}, false
	}
	name := strings.TrimSpace(text[:m[0]])
	name = strings.TrimSuffix(name, "Starts:")
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return domain.Contest{}, false
	}

	start, err := time.Parse(timeLayout, text[m[2]:m[3]])
	if err != nil {
		return domain.Contest{}, false
	}
	start = start.UTC()

	var end time.Time
	if m[4] >= 0 {
		end, err = time.Parse(timeLayout, text[m[4]:m[5]])
		if err != nil || end.Before(start) {
			return domain.Contest{}, false
		}
		end = end.UTC()
	} else {
		end = start.Add(defaultContestLength)
	}

	slug := slugify(name)
	return domain.Contest{
		ID:          fmt.Sprintf("lc-%s-%d", slug, start.Unix()),
		Name:        name,
		URL:         baseURL + "/contest/" + slug,
		Platform:    domain.PlatformLeetcode,
		StartTime:   start,
		EndTime:     &end,
		DurationSec: int64(end.Sub(start) / time.Second),
	}, true
}

// slugify lower-cases a name and replaces whitespace runs with hyphens.
func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func isContestHref(href string) bool {
	return strings.HasPrefix(href, "/contest/") ||
		strings.Contains(href, "leetcode.com/contest/")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
