package poster

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Service is the poster lookup surface consumed by the handlers.
type Service interface {
	Search(ctx context.Context, title string, year int) []string
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// Client queries the poster search API and downloads poster images.
// It is stateless and safe for concurrent use across sessions.
type Client struct {
	http         *resty.Client
	endpoint     string
	fetchTimeout time.Duration
	maxResults   int
}

// searchResponse carries the known result groups. Absent keys decode as nil,
// which is treated the same as an empty group.
type searchResponse struct {
	Jisshu2 []string `json:"jisshu-2"`
	Jisshu3 []string `json:"jisshu-3"`
	Jisshu4 []string `json:"jisshu-4"`
}

func (r *searchResponse) groups() [][]string {
	return [][]string{r.Jisshu2, r.Jisshu3, r.Jisshu4}
}

func NewClient(endpoint string, searchTimeout, fetchTimeout time.Duration, maxResults int) *Client {
	client := resty.New().SetTimeout(searchTimeout)
	logrus.Infof("Initialized poster client with endpoint: %s", endpoint)
	return &Client{
		http:         client,
		endpoint:     endpoint,
		fetchTimeout: fetchTimeout,
		maxResults:   maxResults,
	}
}

// Search returns up to maxResults poster URLs for the given title, deduplicated
// in first-seen order. Any failure (transport, non-200, malformed body) is logged
// and yields an empty result: the user retries by resending the video, so a
// failed search is a normal outcome here, never an error.
func (c *Client) Search(ctx context.Context, title string, year int) []string {
	query := BuildQuery(title, year)
	if query == "" {
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", query).
		SetResult(&searchResponse{}).
		Get(c.endpoint)
	if err != nil {
		logrus.WithError(err).WithField("query", query).Warn("Poster search request failed")
		return nil
	}
	if resp.IsError() {
		logrus.WithFields(logrus.Fields{
			"query":  query,
			"status": resp.Status(),
		}).Warn("Poster search returned error status")
		return nil
	}

	result, ok := resp.Result().(*searchResponse)
	if !ok || result == nil {
		logrus.WithField("query", query).Warn("Failed to parse poster search response")
		return nil
	}

	posters := dedupe(result.groups(), c.maxResults)
	logrus.WithFields(logrus.Fields{
		"query":   query,
		"posters": len(posters),
	}).Info("Poster search completed")
	return posters
}

// FetchImage downloads a poster into memory so it can be re-uploaded as a video
// cover. Unlike Search, failures are surfaced: the caller reports them and keeps
// its state so the user can retry the apply.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	resp, err := c.http.R().SetContext(fetchCtx).Get(imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download poster: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("poster download error: %s", resp.Status())
	}
	return resp.Body(), nil
}

// BuildQuery normalizes a title and optional year into the API query string:
// stripped to letters, digits and spaces, single-spaced.
func BuildQuery(title string, year int) string {
	if year > 0 {
		title = title + " " + strconv.Itoa(year)
	}

	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func dedupe(groups [][]string, limit int) []string {
	seen := make(map[string]struct{})
	var posters []string
	for _, group := range groups {
		for _, u := range group {
			if u == "" {
				continue
			}
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			posters = append(posters, u)
			if len(posters) == limit {
				return posters
			}
		}
	}
	return posters
}
