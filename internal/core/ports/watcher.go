package ports

import "context"

// Watcher observes a directory tree and emits debounced batches of changed
// paths, relative to the watched root.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching root recursively. Events are delivered until ctx
	// is cancelled or Stop is called.
	Start(ctx context.Context, root string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Events returns the channel of debounced change batches.
	Events() <-chan []string
}
