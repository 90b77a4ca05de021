package profile

import (
	"context"

	"github.com/gitcanvas/gitcanvas/pkg/errors"
)

// Source fetches the profile of a GitHub user.
type Source interface {
	Fetch(ctx context.Context, username string) (Data, error)
}

// SampleSource is a Source that serves [Sample] for any valid username.
type SampleSource struct{}

func (SampleSource) Fetch(ctx context.Context, username string) (Data, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return Data{}, err
	}
	return Sample(username), ctx.Err()
}

// Sample returns a fixed profile for offline rendering and demos.
// Activity spans 196 days with a weekly rhythm and a few busy streaks.
func Sample(username string) Data {
	days := make([]Day, 196)
	for i := range days {
		weekday := i % 7
		switch {
		case weekday == 0 || weekday == 6:
			days[i].Count = (i / 7) % 2
		case i%23 == 0:
			days[i].Count = 12
		default:
			days[i].Count = (i*7 + weekday*3) % 6
		}
	}
	return Data{
		Username:     username,
		TotalStars:   120,
		TotalCommits: Known(450),
		PublicRepos:  25,
		Followers:    85,
		TopLanguages: []Language{
			{Name: "Go", Weight: 10},
			{Name: "TypeScript", Weight: 5},
			{Name: "Rust", Weight: 2},
		},
		Activity: days,
	}
}
