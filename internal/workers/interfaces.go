// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import (
	"context"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutine, which
// exits when ctx is cancelled or Stop is called. Stop blocks until that
// goroutine has returned and is a no-op for a worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Synchronizer runs one synchronization and reports its outcome.
type Synchronizer interface {
	Synchronize(ctx context.Context) models.SyncOutcome
}
