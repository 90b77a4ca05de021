// Package profile defines the normalized profile record that every card is
// rendered from.
//
// A [Data] value is produced by a fetcher (see [github.com/gitcanvas/gitcanvas/pkg/github])
// or built directly by callers, and is treated as read-only by the renderer.
package profile

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Data is the normalized profile record consumed by the card renderer.
type Data struct {
	Username     string     `json:"username"`
	TotalStars   int        `json:"total_stars"`
	TotalCommits Count      `json:"total_commits"`
	PublicRepos  int        `json:"public_repos"`
	Followers    int        `json:"followers"`
	TopLanguages []Language `json:"top_languages,omitempty"` // rank order, highest weight first
	Activity     []Day      `json:"activity,omitempty"`      // chronological, oldest first
}

// Language is one entry of the language breakdown.
type Language struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// Day holds the contribution count for a single calendar day.
type Day struct {
	Date  string `json:"date,omitempty"` // YYYY-MM-DD when the source reports it
	Count int    `json:"count"`
}

// Count is an integer that may be unknown, such as a commit total the
// upstream could not report.
type Count struct {
	Value int
	Known bool
}

// Known returns a Count holding n.
func Known(n int) Count { return Count{Value: n, Known: true} }

// Unknown is the zero Count.
var Unknown = Count{}

// unknownText is how an unknown count is rendered and serialized.
const unknownText = "N/A"

// String renders the count, or "N/A" when unknown.
func (c Count) String() string {
	if !c.Known {
		return unknownText
	}
	return strconv.Itoa(c.Value)
}

// MarshalJSON encodes a known count as a number and an unknown one as "N/A".
func (c Count) MarshalJSON() ([]byte, error) {
	if !c.Known {
		return json.Marshal(unknownText)
	}
	return json.Marshal(c.Value)
}

// UnmarshalJSON accepts a number, null, or any string (treated as unknown).
func (c *Count) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) || (len(b) > 0 && b[0] == '"') {
		*c = Unknown
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = Known(n)
	return nil
}

// TotalWeight sums the weights of all languages.
func (d Data) TotalWeight() int {
	var total int
	for _, l := range d.TopLanguages {
		total += l.Weight
	}
	return total
}

// RecentActivity returns at most the last n days of activity.
func (d Data) RecentActivity(n int) []Day {
	if n <= 0 {
		return nil
	}
	if len(d.Activity) <= n {
		return d.Activity
	}
	return d.Activity[len(d.Activity)-n:]
}
