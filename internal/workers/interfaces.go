// Package workers runs the background jobs of the server next to the HTTP
// listener. Every worker blocks in Run until its context is cancelled.
package workers

import "context"

// Worker is a background job. Run returns when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
