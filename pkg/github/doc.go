// Package github fetches the public profile data behind the gitcanvas
// cards.
//
// [Client.Fetch] combines three upstream calls into one [profile.Data]:
//
//   - GET /users/{user}: followers and public repository count
//   - GET /users/{user}/repos: star total and the language breakdown
//   - the public contributions API: daily activity and the commit total
//
// Results are cached per user through a [cache.Cache]. Failures are
// returned as [errors.Error] values carrying one of USER_NOT_FOUND,
// RATE_LIMITED, UPSTREAM_ERROR or UNKNOWN, ready for the error card.
//
// The contributions API is best effort: when it fails the commit total is
// unknown (rendered as N/A) and the activity history is empty.
package github
