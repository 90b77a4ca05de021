package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gitcanvas/gitcanvas/pkg/buildinfo"
	"github.com/gitcanvas/gitcanvas/pkg/cache"
	gcerrors "github.com/gitcanvas/gitcanvas/pkg/errors"
	"github.com/gitcanvas/gitcanvas/pkg/httputil"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
)

const (
	DefaultBaseURL          = "https://api.github.com"
	DefaultContributionsURL = "https://github-contributions-api.jogruber.de/v4"

	// maxRepoPages caps pagination at 1000 repositories.
	maxRepoPages = 10

	// languageSample is how many repositories feed the language breakdown.
	languageSample = 10

	// TopLanguages is the length of the language breakdown.
	TopLanguages = 5

	// HistoryDays is how much activity history is kept, 53 full weeks.
	HistoryDays = 371
)

// Client fetches GitHub profiles. It is safe for concurrent use.
type Client struct {
	*httputil.Client
	baseURL    string
	contribURL string

	// contrib talks to the third-party contributions API and never
	// carries the GitHub token.
	contrib *httputil.Client
	keyer      cache.Keyer
	logger     *log.Logger
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another REST endpoint, such as GitHub
// Enterprise or a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithContributionsURL replaces the contributions API endpoint.
func WithContributionsURL(u string) Option {
	return func(c *Client) { c.contribURL = strings.TrimRight(u, "/") }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPolicy replaces the retry policy.
func WithPolicy(p httputil.Policy) Option {
	return func(c *Client) {
		c.Policy = p
		c.contrib.Policy = p
	}
}

// NewClient creates a GitHub client. Pass an empty token for
// unauthenticated requests (60 per hour). backend may be nil to disable
// caching; keyer may be nil for unprefixed keys.
func NewClient(token string, backend cache.Cache, keyer cache.Keyer, opts ...Option) *Client {
	headers := map[string]string{
		"Accept":     "application/vnd.github+json",
		"User-Agent": buildinfo.UserAgent(),
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}

	c := &Client{
		Client:     httputil.NewClient(httputil.NewJSONCache(backend, cache.ProfileTTL), headers),
		baseURL:    DefaultBaseURL,
		contribURL: DefaultContributionsURL,
		contrib:    httputil.NewClient(nil, map[string]string{"User-Agent": buildinfo.UserAgent()}),
		keyer:      keyer,
		logger:     log.NewWithOptions(io.Discard, log.Options{}),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ profile.Source = (*Client)(nil)

// Fetch returns the normalized profile of username, from cache when
// possible.
func (c *Client) Fetch(ctx context.Context, username string) (profile.Data, error) {
	return c.fetch(ctx, username, false)
}

// Refresh fetches username upstream and overwrites any cached copy.
func (c *Client) Refresh(ctx context.Context, username string) (profile.Data, error) {
	return c.fetch(ctx, username, true)
}

func (c *Client) fetch(ctx context.Context, username string, refresh bool) (profile.Data, error) {
	if err := gcerrors.ValidateUsername(username); err != nil {
		return profile.Data{}, err
	}

	var d profile.Data
	err := c.Cached(ctx, c.keyer.ProfileKey(username), refresh, &d, func() error {
		return c.fetchProfile(ctx, username, &d)
	})
	if err != nil {
		return profile.Data{}, classify(err, username)
	}
	return d, nil
}

func (c *Client) fetchProfile(ctx context.Context, username string, d *profile.Data) error {
	user, err := c.fetchUser(ctx, username)
	if err != nil {
		return err
	}

	repos, err := c.fetchRepos(ctx, username)
	if err != nil {
		if isRateLimit(err) || errors.Is(err, context.Canceled) {
			return err
		}
		// cards still render without repository data
		c.logger.Warn("repository listing failed", "user", username, "err", err)
		repos = nil
	}

	days, total, err := c.fetchContributions(ctx, username)
	if err != nil {
		c.logger.Warn("contributions unavailable", "user", username, "err", err)
	}

	*d = profile.Data{
		Username:     user.Login,
		TotalStars:   sumStars(repos),
		TotalCommits: total,
		PublicRepos:  user.PublicRepos,
		Followers:    user.Followers,
		TopLanguages: computeLanguages(repos),
		Activity:     days,
	}
	c.logger.Debug("fetched profile",
		"user", user.Login,
		"repos", len(repos),
		"days", len(days),
		"commits", total)
	return nil
}

func (c *Client) fetchUser(ctx context.Context, username string) (*userResponse, error) {
	var u userResponse
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))
	if err := c.Get(ctx, endpoint, &u); err != nil {
		return nil, err
	}
	if u.Login == "" {
		u.Login = username
	}
	return &u, nil
}

func (c *Client) fetchRepos(ctx context.Context, username string) ([]repoResponse, error) {
	var all []repoResponse
	next := fmt.Sprintf("%s/users/%s/repos?per_page=100&type=owner", c.baseURL, url.PathEscape(username))
	for page := 0; next != "" && page < maxRepoPages; page++ {
		var repos []repoResponse
		n, err := c.GetPage(ctx, next, &repos)
		if err != nil {
			return nil, err
		}
		all = append(all, repos...)
		next = n
	}
	return all, nil
}

// fetchContributions returns the trailing HistoryDays of activity and the
// all-time contribution total. Days after today are dropped: the API pads
// the current year to December 31.
func (c *Client) fetchContributions(ctx context.Context, username string) ([]profile.Day, profile.Count, error) {
	var resp contributionsResponse
	endpoint := fmt.Sprintf("%s/%s", c.contribURL, url.PathEscape(username))
	if err := c.contrib.Get(ctx, endpoint, &resp); err != nil {
		return nil, profile.Unknown, err
	}

	total := profile.Unknown
	if resp.Total != nil {
		var sum int
		for _, n := range resp.Total {
			sum += n
		}
		total = profile.Known(sum)
	}

	today := c.now().UTC().Format(time.DateOnly)
	days := make([]profile.Day, 0, len(resp.Contributions))
	for _, e := range resp.Contributions {
		if e.Date > today {
			continue
		}
		days = append(days, profile.Day{Date: e.Date, Count: max(e.Count, 0)})
	}
	slices.SortStableFunc(days, func(a, b profile.Day) int { return strings.Compare(a.Date, b.Date) })
	if len(days) > HistoryDays {
		days = days[len(days)-HistoryDays:]
	}
	return days, total, nil
}

func sumStars(repos []repoResponse) int {
	var total int
	for _, r := range repos {
		total += r.Stars
	}
	return total
}

// computeLanguages counts primary languages over the first repositories
// of the listing and keeps the most frequent, ties broken by name.
func computeLanguages(repos []repoResponse) []profile.Language {
	counts := make(map[string]int)
	for _, r := range repos[:min(len(repos), languageSample)] {
		if r.Language != "" {
			counts[r.Language]++
		}
	}
	langs := make([]profile.Language, 0, len(counts))
	for name, n := range counts {
		langs = append(langs, profile.Language{Name: name, Weight: n})
	}
	slices.SortFunc(langs, func(a, b profile.Language) int {
		if a.Weight != b.Weight {
			return b.Weight - a.Weight
		}
		return strings.Compare(a.Name, b.Name)
	})
	return langs[:min(len(langs), TopLanguages)]
}

func isRateLimit(err error) bool {
	var se *httputil.StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Status == 429 || (se.Status == 403 && se.Exhausted)
}

// classify maps transport and status failures onto the upstream error codes.
func classify(err error, username string) error {
	var ge *gcerrors.Error
	if errors.As(err, &ge) {
		return err
	}

	var se *httputil.StatusError
	switch {
	case errors.As(err, &se) && se.Status == 404:
		return gcerrors.Wrap(gcerrors.ErrCodeUserNotFound, err, "github user %q not found", username)
	case isRateLimit(err):
		if se.RetryAfter > 0 {
			return gcerrors.Wrap(gcerrors.ErrCodeRateLimited, err, "github rate limit exceeded, retry in %s", se.RetryAfter)
		}
		return gcerrors.Wrap(gcerrors.ErrCodeRateLimited, err, "github rate limit exceeded")
	case se != nil, errors.Is(err, httputil.ErrNetwork):
		return gcerrors.Wrap(gcerrors.ErrCodeUpstream, err, "github request failed")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return gcerrors.Wrap(gcerrors.ErrCodeUpstream, err, "github request aborted")
	default:
		return gcerrors.Wrap(gcerrors.ErrCodeUnknown, err, "fetch %s", username)
	}
}
