// Package workers runs the background jobs of the API server.
//
// A Worker blocks until its context is cancelled. Workers aggregates them and
// is started by the server next to the HTTP listener.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is
// cancelled.
type Worker interface {
	Run(ctx context.Context)
}
