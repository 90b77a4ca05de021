// Package httputil provides the HTTP plumbing shared by upstream API
// clients.
//
// # Overview
//
//   - [Client]: JSON GET requests with default headers, status mapping,
//     pagination and observability hooks
//   - [JSONCache]: JSON values on top of any [cache.Cache] backend
//   - [Retry]: retry with exponential backoff for transient failures
//
// # Caching
//
// [Client.Cached] checks the cache, runs the fetch under the retry policy
// on a miss, and stores the populated value:
//
//	var user User
//	err := client.Cached(ctx, "users:"+login, false, &user, func() error {
//	    return client.Get(ctx, url, &user)
//	})
//
// # Retry
//
// Only errors marked with [Retryable] are retried: transport failures and
// 5xx responses. 4xx responses come back as [*StatusError] at once so the
// caller can map them (404 to not found, 403/429 to rate limited).
//
// # Configuration
//
//   - Request timeout: 10 seconds
//   - Retry: 3 attempts, 1 second initial backoff
package httputil
